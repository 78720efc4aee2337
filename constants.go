package galscale

// Physical constants, SI units (CODATA 2018 exact values).
// Defined once at package level; every formula references these rather
// than redefining its own copy.
const (
	// PlanckConst is the Planck constant h, in J·s.
	PlanckConst = 6.62607015e-34

	// BoltzmannConst is the Boltzmann constant k_B, in J/K.
	BoltzmannConst = 1.380649e-23

	// GHz converts the library's GHz frequency arguments to Hz.
	// Required whenever a frequency meets an SI constant, e.g. the
	// free-free exponential cutoff exp(-hν/k_B·T) needs ν in Hz.
	GHz = 1e9
)

// Model defaults from Bonaldi et al. 2019 (arXiv:1805.05222).
const (
	// DefaultBeta is the spectral index of the high-SFR saturation
	// correction in Eq. 10. Default: 3.
	DefaultBeta = 3.0

	// DefaultPlasmaTemp is the HII-region plasma temperature assumed by
	// the free-free relation (Eq. 8), in K. Default: 1e4.
	DefaultPlasmaTemp = 1e4
)
