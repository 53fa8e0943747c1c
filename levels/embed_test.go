package levels

import "testing"

func TestLoadEmbeddedRange(t *testing.T) {
	lvl, err := LoadLevel("range.yaml")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if lvl.Name != "range" || len(lvl.Entities) != 9 {
		t.Fatalf("level %q has %d entities", lvl.Name, len(lvl.Entities))
	}

	byName := make(map[string]Entity, len(lvl.Entities))
	for _, e := range lvl.Entities {
		byName[e.Name] = e
	}
	if friendly := byName["dummy_friendly"]; friendly.Team == nil || *friendly.Team != 0 {
		t.Fatalf("friendly team = %v", friendly.Team)
	}
	if drone := byName["drone"]; len(drone.Targets) != 1 || drone.Targets[0].Surface != "drone_hitbox" || drone.Position.Z != 150 {
		t.Fatalf("drone = %+v", drone)
	}
	if byName["drone_hitbox"].Owner != "drone" {
		t.Fatalf("hitbox owner = %q", byName["drone_hitbox"].Owner)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{"minimal", "name: x\nentities:\n  - prefab: dummy.yaml\n", false},
		{"local_override", "name: x\nentities:\n  - {prefab: player.yaml, local: false}\n", false},
		{"missing_prefab", "name: x\nentities:\n  - name: nothing\n", true},
		{"bad_yaml", "name: [x\n", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLevel([]byte(tc.src))
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
