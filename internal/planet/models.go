package planet

import (
	"starmap-server/internal/shared/identity"
)

// Planet is a leaf of the hierarchy. It has no coordinate of its own and
// only exists inside a system's planet list.
type Planet struct {
	id identity.Identity
}

func New(id identity.Identity) Planet {
	return Planet{id: id}
}

func (p Planet) Identity() identity.Identity {
	return p.id
}

func (p Planet) Name() string {
	return p.id.Name()
}
