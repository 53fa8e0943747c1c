package component

// AimTargetRef names the sockets of one surface usable as aim points.
type AimTargetRef struct {
	// Surface is the collider entity. Zero means the entity itself.
	Surface uint64
	Sockets []string
}

// AimTargets marks an entity as able to report aim-assist targets.
type AimTargets struct {
	Targets []AimTargetRef
}

var AimTargetsComponent = NewComponent[AimTargets]()
