package galaxy

import "starmap-server/internal/shared/random"

var galaxyNames = []string{"Andromeda", "Milky Way", "Centaurus", "Pegasus", "Cygnus", "Draco"}

// RandomName draws a galaxy name from src
func RandomName(src *random.Source) string {
	return galaxyNames[src.Pick(len(galaxyNames))]
}
