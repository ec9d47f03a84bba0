package identity

import (
	"io"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Identity is the label attached to every generated entity.
// Key is always Normalize(Name); ID never changes after creation.
type Identity struct {
	name string
	key  string
	id   uuid.UUID
}

// New creates an identity with a fresh UUIDv4 drawn from entropy.
// A nil entropy reader falls back to the process-wide uuid generator.
func New(name string, entropy io.Reader) Identity {
	id := uuid.New()
	if entropy != nil {
		if drawn, err := uuid.NewRandomFromReader(entropy); err == nil {
			id = drawn
		}
	}
	return Identity{name: name, key: Normalize(name), id: id}
}

// Restore rebuilds a persisted identity
func Restore(name string, id uuid.UUID) Identity {
	return Identity{name: name, key: Normalize(name), id: id}
}

// Update replaces the display name and recomputes the key
func (i *Identity) Update(name string) {
	i.name = name
	i.key = Normalize(name)
}

func (i Identity) Name() string {
	return i.name
}

func (i Identity) Key() string {
	return i.key
}

func (i Identity) ID() uuid.UUID {
	return i.id
}

func (i Identity) String() string {
	return i.name
}

// Normalize lowercases name and strips every whitespace rune
func Normalize(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToLower(name))
}
