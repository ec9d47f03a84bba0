package universe

import (
	"time"

	"github.com/google/uuid"

	"starmap-server/internal/galaxy"
	"starmap-server/internal/spatial"
	"starmap-server/internal/world"
)

// WorldRecord is the stored metadata of a generated world
type WorldRecord struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Key                string    `json:"key"`
	GalaxyName         string    `json:"galaxy_name"`
	Seed               uint64    `json:"seed,string"`
	ConstellationCount int       `json:"constellation_count"`
	SystemCount        int       `json:"system_count"`
	PlanetCount        int       `json:"planet_count"`
	ConnectionCount    int       `json:"connection_count"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// NewWorldRecord derives the record of w; timestamps are set by the store
func NewWorldRecord(w *world.World) *WorldRecord {
	stats := w.Galaxy().Stats()
	return &WorldRecord{
		ID:                 w.Identity().ID(),
		Name:               w.Name(),
		Key:                w.Identity().Key(),
		GalaxyName:         w.Galaxy().Name(),
		Seed:               w.Seed(),
		ConstellationCount: stats.Constellations,
		SystemCount:        stats.Systems,
		PlanetCount:        stats.Planets,
		ConnectionCount:    stats.Connections,
	}
}

// GenerateRequest is the body of a world generation call. Nil fields fall
// back to a fresh random seed and the configured params.
type GenerateRequest struct {
	Seed   *uint64       `json:"seed,omitempty"`
	Name   string        `json:"name,omitempty"`
	Params *world.Params `json:"params,omitempty"`
}

// MapView is the flat view a map renderer needs: constellation positions,
// their system counts and the connection pairs
type MapView struct {
	WorldID        uuid.UUID      `json:"world_id"`
	Galaxy         string         `json:"galaxy"`
	Constellations []MapNode      `json:"constellations"`
	Connections    []spatial.Edge `json:"connections"`
}

type MapNode struct {
	Coordinate spatial.Coordinate `json:"coordinate"`
	Name       string             `json:"name"`
	Systems    int                `json:"systems"`
}

func NewMapView(w *world.World) MapView {
	g := w.Galaxy()
	view := MapView{
		WorldID:        w.Identity().ID(),
		Galaxy:         g.Name(),
		Constellations: make([]MapNode, 0, g.ConstellationCount()),
		Connections:    g.Connections().Edges(),
	}
	for _, pc := range g.Constellations() {
		view.Constellations = append(view.Constellations, MapNode{
			Coordinate: pc.Coordinate,
			Name:       pc.Constellation.Name(),
			Systems:    pc.Constellation.SystemCount(),
		})
	}
	return view
}

// WorldView is the full tree of a world
type WorldView struct {
	Record *WorldRecord `json:"record"`
	Galaxy GalaxyView   `json:"galaxy"`
}

type IdentityView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Key  string    `json:"key"`
}

type GalaxyView struct {
	IdentityView
	Stats          galaxy.Stats        `json:"stats"`
	Constellations []ConstellationView `json:"constellations"`
	Connections    []spatial.Edge      `json:"connections"`
}

type ConstellationView struct {
	IdentityView
	Coordinate spatial.Coordinate `json:"coordinate"`
	Systems    []SystemView       `json:"systems"`
}

type SystemView struct {
	IdentityView
	Coordinate spatial.Coordinate `json:"coordinate"`
	Planets    []IdentityView     `json:"planets"`
}

func NewWorldView(rec *WorldRecord, w *world.World) WorldView {
	g := w.Galaxy()
	gv := GalaxyView{
		IdentityView:   IdentityView{ID: g.Identity().ID(), Name: g.Name(), Key: g.Identity().Key()},
		Stats:          g.Stats(),
		Constellations: make([]ConstellationView, 0, g.ConstellationCount()),
		Connections:    g.Connections().Edges(),
	}
	for _, pc := range g.Constellations() {
		c := pc.Constellation
		cv := ConstellationView{
			IdentityView: IdentityView{ID: c.Identity().ID(), Name: c.Name(), Key: c.Identity().Key()},
			Coordinate:   pc.Coordinate,
			Systems:      make([]SystemView, 0, c.SystemCount()),
		}
		for _, ps := range c.Systems() {
			s := ps.System
			sv := SystemView{
				IdentityView: IdentityView{ID: s.Identity().ID(), Name: s.Name(), Key: s.Identity().Key()},
				Coordinate:   ps.Coordinate,
				Planets:      make([]IdentityView, 0, s.PlanetCount()),
			}
			for _, p := range s.Planets() {
				sv.Planets = append(sv.Planets, IdentityView{ID: p.Identity().ID(), Name: p.Name(), Key: p.Identity().Key()})
			}
			cv.Systems = append(cv.Systems, sv)
		}
		gv.Constellations = append(gv.Constellations, cv)
	}
	return WorldView{Record: rec, Galaxy: gv}
}
