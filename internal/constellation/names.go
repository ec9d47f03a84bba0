package constellation

import "starmap-server/internal/shared/random"

var constellationNames = []string{
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta",
	"Iota", "Kappa", "Lambda", "Mu", "Nu", "Xi", "Omicron", "Pi",
	"Rho", "Sigma", "Tau", "Upsilon", "Phi", "Chi", "Psi", "Omega",
	"Prime", "Core", "Frontier", "Outer", "Inner", "Central", "Remote",
	"Azure", "Crimson", "Golden", "Silver", "Emerald", "Violet", "Amber",
}

// RandomName draws a constellation name from src
func RandomName(src *random.Source) string {
	return constellationNames[src.Pick(len(constellationNames))]
}
