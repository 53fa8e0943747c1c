package component

import "github.com/milk9111/aimassist/common"

type Socket struct {
	Name   string
	Offset common.Vec3
}

// Sockets are named aim points on a surface, relative to its transform.
type Sockets struct {
	Points []Socket
}

func (s *Sockets) Find(name string) (common.Vec3, bool) {
	if s == nil {
		return common.Vec3{}, false
	}
	for _, p := range s.Points {
		if p.Name == name {
			return p.Offset, true
		}
	}
	return common.Vec3{}, false
}

var SocketsComponent = NewComponent[Sockets]()
