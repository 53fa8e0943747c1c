package assist

// admits returns the actor's target provider when the actor exposes the
// capability and, with team filtering on, belongs to an accepted team.
func admits(dir Directory, actor ActorID, teams TeamFilter) (TargetProvider, bool) {
	if dir == nil || actor == 0 {
		return nil, false
	}
	provider, ok := dir.TargetProvider(actor)
	if !ok || provider == nil {
		return nil, false
	}
	if !teams.Enabled {
		return provider, true
	}

	team, ok := actorTeam(dir, actor, teams.Source)
	if !ok || !teams.Accepts(team) {
		return nil, false
	}
	return provider, true
}

func actorTeam(dir Directory, actor ActorID, source TeamSource) (TeamID, bool) {
	switch source {
	case TeamFromNative:
		agent, ok := dir.TeamAgent(actor)
		if !ok || agent == nil {
			return NoTeam, false
		}
		return agent.Team(), true
	case TeamFromComponent:
		identity, ok := dir.TeamIdentity(actor)
		if !ok || identity == nil {
			return NoTeam, false
		}
		return identity.Team(), true
	}
	return NoTeam, false
}
