package galscale

import "fmt"

// FreeFreeLuminosity is the free-free (thermal bremsstrahlung)
// luminosity relation of Bonaldi et al. Eq. 8:
//
//	L = 3.75e19 · SFR · (T/1e4)^0.3 · g(ν, T) · exp(-hν / k_B·T)
//
// sfr is the star-formation rate in Msun/yr (>= 0), nu the frequency in
// GHz (> 0), temp the plasma temperature in K (> 0; use
// DefaultPlasmaTemp for the published fit).
//
// The relation is NOT currently computable and this function never
// returns a value. Two defects in the governing reference block it:
//
//  1. The Gaunt factor g(ν, T) is left unset. It is a slowly-varying
//     quantum-mechanical correction, not a free parameter; a corrected
//     implementation must supply the low-frequency thermal free-free
//     approximation used by the reference.
//  2. The exponential cutoff applies GHz frequency against SI
//     PlanckConst and BoltzmannConst without converting by GHz,
//     understating the cutoff by nine orders of magnitude.
//
// Until both are fixed, every call returns an error wrapping
// ErrFreeFreeIncomplete rather than a silently wrong number. Domain
// validation still runs first, so invalid inputs report a *DomainError
// exactly as the other relations do.
func FreeFreeLuminosity(sfr, nu, temp float64) (float64, error) {
	if err := checkNonNegative("sfr", sfr, "Msun/yr"); err != nil {
		return 0, err
	}
	if err := checkPositive("nu", nu, "GHz"); err != nil {
		return 0, err
	}
	if err := checkPositive("temp", temp, "K"); err != nil {
		return 0, err
	}

	return 0, fmt.Errorf(
		"galscale: %w: Gaunt factor g(ν, T) is unset and exp(-hν/k_B·T) needs ν in Hz, not GHz",
		ErrFreeFreeIncomplete)
}
