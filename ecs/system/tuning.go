package system

import (
	"log"
	"path/filepath"

	"github.com/milk9111/aimassist/assist"
	"github.com/milk9111/aimassist/ecs"
	"github.com/milk9111/aimassist/ecs/component"
	"github.com/milk9111/aimassist/prefabs"
)

// TuningSystem applies edited tuning files to running assistants. It drains
// the watcher without blocking, so config changes land between ticks.
type TuningSystem struct {
	changes <-chan prefabs.Change
	errs    <-chan error
	load    func(name string) (assist.Config, error)
}

func NewTuningSystem(watcher *prefabs.Watcher) *TuningSystem {
	if watcher == nil {
		return &TuningSystem{load: prefabs.LoadAimAssistConfig}
	}
	return NewTuningSystemWithLoader(watcher.Events, watcher.Errors, prefabs.LoadAimAssistConfig)
}

func NewTuningSystemWithLoader(changes <-chan prefabs.Change, errs <-chan error, load func(string) (assist.Config, error)) *TuningSystem {
	return &TuningSystem{changes: changes, errs: errs, load: load}
}

func (ts *TuningSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for {
		select {
		case change, ok := <-ts.changes:
			if !ok {
				ts.changes = nil
				continue
			}
			ts.apply(w, change)
		case err, ok := <-ts.errs:
			if !ok {
				ts.errs = nil
				continue
			}
			log.Printf("Tuning: watcher error: %v", err)
		default:
			return
		}
	}
}

func (ts *TuningSystem) apply(w *ecs.World, change prefabs.Change) {
	ecs.ForEach(w, component.AimAssistComponent.Kind(), func(e ecs.Entity, aa *component.AimAssist) {
		if aa.Tuning == "" {
			return
		}
		// A script may back any curve, so script edits reload every tuning.
		if !change.Script && filepath.Base(aa.Tuning) != change.Name() {
			return
		}

		cfg, err := ts.load(aa.Tuning)
		if err != nil {
			log.Printf("Tuning: reload %s: %v", aa.Tuning, err)
			return
		}
		aa.Config = cfg
		if aa.Assistant != nil {
			aa.Assistant.SetConfig(cfg)
			if aa.Assistant.Enabled() != cfg.Enabled {
				aa.Assistant.Enable(cfg.Enabled)
			}
		}
		log.Printf("Tuning: reloaded %s for entity %v", aa.Tuning, e)
	})
}
