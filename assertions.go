package galscale

import (
	"math"
	"testing"
)

// RelTolerance is the relative floating-point tolerance used by the
// assertion helpers. The fitted coefficients carry 2-4 significant
// digits, so anything tighter than 1e-12 is testing the FPU, not the
// relations.
const RelTolerance = 1e-12

// relClose compares a and b under RelTolerance.
func relClose(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= RelTolerance*scale
}

// AssertPositiveLuminosity verifies L(sfr, ν) > 0 for sfr > 0, ν > 0.
func AssertPositiveLuminosity(t *testing.T, sfr, nu float64) {
	t.Helper()

	l, err := SynchrotronLuminosityBase(sfr, nu)
	if err != nil {
		t.Fatalf("SynchrotronLuminosityBase(%g, %g) failed: %v", sfr, nu, err)
	}
	if !(l > 0) {
		t.Errorf("L(%g, %g) = %g, want > 0", sfr, nu, l)
		return
	}
	t.Logf("✓ L(sfr=%g, ν=%g) = %.4e W/Hz > 0", sfr, nu, l)
}

// AssertRedshiftIdentity verifies the z = 0 boundary: the
// redshift-dependent relation must equal the saturated relation exactly
// (within floating-point tolerance), because the evolution factor is 1
// at z = 0.
func AssertRedshiftIdentity(t *testing.T, sfr, nu, beta float64) {
	t.Helper()

	sat, err := SynchrotronLuminositySaturated(sfr, nu, beta)
	if err != nil {
		t.Fatalf("SynchrotronLuminositySaturated failed: %v", err)
	}
	zdep, err := SynchrotronLuminosityRedshiftDependent(sfr, nu, 0, beta)
	if err != nil {
		t.Fatalf("SynchrotronLuminosityRedshiftDependent failed: %v", err)
	}

	if !relClose(sat, zdep) {
		t.Errorf("z=0 boundary violated: saturated %.17g != redshift-dependent %.17g", sat, zdep)
		return
	}
	t.Logf("✓ z=0 identity: %.4e W/Hz (sfr=%g, ν=%g, β=%g)", sat, sfr, nu, beta)
}

// AssertMonotonicInSFR verifies the saturated relation is non-decreasing
// in SFR at fixed ν and β, across six decades of star formation.
func AssertMonotonicInSFR(t *testing.T, nu, beta float64) {
	t.Helper()

	prev := math.Inf(-1)
	prevSFR := 0.0
	for sfr := 1e-3; sfr <= 1e3; sfr *= 2 {
		l, err := SynchrotronLuminositySaturated(sfr, nu, beta)
		if err != nil {
			t.Fatalf("SynchrotronLuminositySaturated(%g, %g, %g) failed: %v", sfr, nu, beta, err)
		}
		if l < prev {
			t.Errorf("saturation not monotonic: L(sfr=%g) = %.6e < L(sfr=%g) = %.6e",
				sfr, l, prevSFR, prev)
			return
		}
		prev, prevSFR = l, sfr
	}
	t.Logf("✓ saturated luminosity non-decreasing in SFR over [1e-3, 1e3] (ν=%g, β=%g)", nu, beta)
}

// AssertMonotonicInMass verifies the half-light radius is strictly
// increasing in stellar mass for the given parameters.
func AssertMonotonicInMass(t *testing.T, p HalfLightParams) {
	t.Helper()

	prev := 0.0
	prevM := 0.0
	for mstar := 1e7; mstar <= 1e13; mstar *= 2 {
		r, err := HalfLightRadius(mstar, p)
		if err != nil {
			t.Fatalf("HalfLightRadius(%g) failed: %v", mstar, err)
		}
		if r <= prev {
			t.Errorf("radius not increasing: R(M*=%g) = %.6f <= R(M*=%g) = %.6f",
				mstar, r, prevM, prev)
			return
		}
		prev, prevM = r, mstar
	}
	t.Logf("✓ half-light radius strictly increasing over M* in [1e7, 1e13]")
}

// AssertBroadcastConsistent verifies element-wise evaluation matches
// scalar evaluation index by index for the base synchrotron relation.
func AssertBroadcastConsistent(t *testing.T, sfr, nu []float64) {
	t.Helper()

	got, err := SynchrotronLuminosityBaseOver(sfr, nu)
	if err != nil {
		t.Fatalf("SynchrotronLuminosityBaseOver failed: %v", err)
	}
	for i := range got {
		want, err := SynchrotronLuminosityBase(at(sfr, i), at(nu, i))
		if err != nil {
			t.Fatalf("scalar evaluation at %d failed: %v", i, err)
		}
		if got[i] != want {
			t.Errorf("element %d: broadcast %.17g != scalar %.17g", i, got[i], want)
			return
		}
	}
	t.Logf("✓ broadcast matches scalar evaluation at all %d elements", len(got))
}
