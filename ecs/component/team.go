package component

import "github.com/milk9111/aimassist/assist"

// TeamIdentity is the companion affiliation component.
type TeamIdentity struct {
	Identity *assist.TeamIdentity
}

var TeamIdentityComponent = NewComponent[TeamIdentity]()

// NativeTeam is a team reported by the actor itself.
type NativeTeam struct {
	ID assist.TeamID
}

func (n NativeTeam) Team() assist.TeamID {
	return n.ID
}

var NativeTeamComponent = NewComponent[NativeTeam]()
