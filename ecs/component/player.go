package component

// Player holds look tuning for a locally controlled pawn.
type Player struct {
	// LookSpeed is degrees per second at full stick deflection.
	LookSpeed float64
	// MouseSensitivity is degrees per pixel of mouse travel.
	MouseSensitivity float64
	MaxPitch         float64
}

var PlayerComponent = NewComponent[Player]()
