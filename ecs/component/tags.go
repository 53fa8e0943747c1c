package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type TargetTag struct{}

var TargetTagComponent = NewComponent[TargetTag]()

// Name is a scene-unique entity name used for references between entities.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
