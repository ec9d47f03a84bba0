// Package savegame serializes generated worlds to YAML and back.
//
// Maps keyed by coordinate are written as lists sorted by coordinate, so
// encoding the same world always yields the same bytes and
// Encode(Decode(Encode(w))) equals Encode(w).
package savegame

import (
	"github.com/google/uuid"

	"starmap-server/internal/constellation"
	"starmap-server/internal/galaxy"
	"starmap-server/internal/planet"
	"starmap-server/internal/shared/errors"
	"starmap-server/internal/shared/identity"
	"starmap-server/internal/spatial"
	"starmap-server/internal/system"
	"starmap-server/internal/world"
)

// FormatVersion is bumped whenever the document layout changes
const FormatVersion = 1

type Document struct {
	Version int         `yaml:"version"`
	Seed    uint64      `yaml:"seed"`
	World   IdentityDoc `yaml:"world"`
	Galaxy  GalaxyDoc   `yaml:"galaxy"`
}

type IdentityDoc struct {
	Name string `yaml:"name"`
	Key  string `yaml:"key"`
	ID   string `yaml:"id"`
}

type GalaxyDoc struct {
	Identity       IdentityDoc        `yaml:"identity"`
	Constellations []ConstellationDoc `yaml:"constellations"`
	Connections    []spatial.Edge     `yaml:"connections"`
}

type ConstellationDoc struct {
	Coordinate spatial.Coordinate `yaml:"coordinate"`
	Identity   IdentityDoc        `yaml:"identity"`
	Systems    []SystemDoc        `yaml:"systems"`
}

type SystemDoc struct {
	Coordinate spatial.Coordinate `yaml:"coordinate"`
	Identity   IdentityDoc        `yaml:"identity"`
	Planets    []IdentityDoc      `yaml:"planets"`
}

func identityDoc(id identity.Identity) IdentityDoc {
	return IdentityDoc{Name: id.Name(), Key: id.Key(), ID: id.ID().String()}
}

func (d IdentityDoc) restore() (identity.Identity, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return identity.Identity{}, errors.WrapValidation("invalid id for "+d.Name, err)
	}
	return identity.Restore(d.Name, id), nil
}

// NewDocument flattens w into its save form
func NewDocument(w *world.World) Document {
	g := w.Galaxy()
	doc := Document{
		Version: FormatVersion,
		Seed:    w.Seed(),
		World:   identityDoc(w.Identity()),
		Galaxy: GalaxyDoc{
			Identity:       identityDoc(g.Identity()),
			Constellations: []ConstellationDoc{},
			Connections:    g.Connections().Edges(),
		},
	}

	for _, pc := range g.Constellations() {
		cd := ConstellationDoc{
			Coordinate: pc.Coordinate,
			Identity:   identityDoc(pc.Constellation.Identity()),
			Systems:    []SystemDoc{},
		}
		for _, ps := range pc.Constellation.Systems() {
			sd := SystemDoc{
				Coordinate: ps.Coordinate,
				Identity:   identityDoc(ps.System.Identity()),
				Planets:    []IdentityDoc{},
			}
			for _, p := range ps.System.Planets() {
				sd.Planets = append(sd.Planets, identityDoc(p.Identity()))
			}
			cd.Systems = append(cd.Systems, sd)
		}
		doc.Galaxy.Constellations = append(doc.Galaxy.Constellations, cd)
	}
	return doc
}

// Restore rebuilds the immutable world described by the document
func (d Document) Restore() (*world.World, error) {
	if d.Version != FormatVersion {
		return nil, errors.Validationf("unsupported save version %d", d.Version)
	}

	constellations := make(map[spatial.Coordinate]constellation.Constellation, len(d.Galaxy.Constellations))
	for _, cd := range d.Galaxy.Constellations {
		if _, exists := constellations[cd.Coordinate]; exists {
			return nil, errors.Validationf("duplicate constellation coordinate %s", cd.Coordinate)
		}
		c, err := cd.restore()
		if err != nil {
			return nil, err
		}
		constellations[cd.Coordinate] = c
	}

	galaxyID, err := d.Galaxy.Identity.restore()
	if err != nil {
		return nil, err
	}
	worldID, err := d.World.restore()
	if err != nil {
		return nil, err
	}

	g := galaxy.New(galaxyID, constellations, spatial.NewConnections(d.Galaxy.Connections...))
	return world.New(worldID, g, d.Seed), nil
}

func (cd ConstellationDoc) restore() (constellation.Constellation, error) {
	systems := make(map[spatial.Coordinate]system.System, len(cd.Systems))
	for _, sd := range cd.Systems {
		if _, exists := systems[sd.Coordinate]; exists {
			return constellation.Constellation{}, errors.Validationf("duplicate system coordinate %s in %s", sd.Coordinate, cd.Identity.Name)
		}
		planets := make([]planet.Planet, 0, len(sd.Planets))
		for _, pd := range sd.Planets {
			id, err := pd.restore()
			if err != nil {
				return constellation.Constellation{}, err
			}
			planets = append(planets, planet.New(id))
		}
		id, err := sd.Identity.restore()
		if err != nil {
			return constellation.Constellation{}, err
		}
		systems[sd.Coordinate] = system.New(id, planets)
	}

	id, err := cd.Identity.restore()
	if err != nil {
		return constellation.Constellation{}, err
	}
	return constellation.New(id, systems), nil
}
