package galscale

import (
	"errors"
	"strings"
	"testing"
)

// TestBroadcast_MatchesScalar verifies element-wise evaluation equals
// scalar evaluation index by index, for both equal-length and
// scalar-expanded inputs.
func TestBroadcast_MatchesScalar(t *testing.T) {
	sfr := []float64{0.5, 5, 50, 500}

	t.Run("equal lengths", func(t *testing.T) {
		AssertBroadcastConsistent(t, sfr, []float64{0.15, 1.4, 20, 100})
	})

	t.Run("frequency broadcasts", func(t *testing.T) {
		AssertBroadcastConsistent(t, sfr, []float64{1.4})
	})

	t.Run("sfr broadcasts", func(t *testing.T) {
		AssertBroadcastConsistent(t, []float64{10}, []float64{0.15, 1.4, 20})
	})
}

// TestBroadcast_ShapeMismatch verifies incompatible lengths are
// rejected before any evaluation.
func TestBroadcast_ShapeMismatch(t *testing.T) {
	_, err := SynchrotronLuminosityBaseOver(
		[]float64{1, 2, 3},
		[]float64{1.4, 5, 20, 100},
	)
	if err == nil {
		t.Fatal("length 3 vs 4 should not broadcast")
	}
	if !strings.Contains(err.Error(), "shape mismatch") {
		t.Errorf("error should name the shape mismatch: %v", err)
	}

	t.Logf("✓ rejected: %v", err)
}

// TestBroadcast_ElementErrorIndexed verifies an element failure carries
// its index and the underlying domain error.
func TestBroadcast_ElementErrorIndexed(t *testing.T) {
	_, err := SynchrotronLuminosityBaseOver(
		[]float64{1, 2, -3, 4},
		[]float64{1.4},
	)

	var derr *DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("expected wrapped *DomainError, got %v", err)
	}
	if derr.Quantity != "sfr" {
		t.Errorf("blamed %q, expected \"sfr\"", derr.Quantity)
	}
	if !strings.Contains(err.Error(), "element 2") {
		t.Errorf("error should carry the failing index: %v", err)
	}

	t.Logf("✓ element failure located: %v", err)
}

// TestBroadcast3_RedshiftDependent verifies three-argument broadcasting
// against scalar evaluation, with one full-length and two scalar inputs.
func TestBroadcast3_RedshiftDependent(t *testing.T) {
	z := []float64{0, 0.5, 1, 2}

	got, err := SynchrotronLuminosityRedshiftDependentOver(
		[]float64{10}, []float64{1.4}, z, DefaultBeta)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(z) {
		t.Fatalf("got %d elements, want %d", len(got), len(z))
	}

	for i, zz := range z {
		want, err := SynchrotronLuminosityRedshiftDependent(10, 1.4, zz, DefaultBeta)
		if err != nil {
			t.Fatal(err)
		}
		if got[i] != want {
			t.Errorf("z=%g: broadcast %.17g != scalar %.17g", zz, got[i], want)
		}
	}

	t.Logf("✓ redshift-dependent broadcast matches scalar at %d redshifts", len(z))
}

// TestBroadcast_HalfLightRadius verifies the unary element-wise form.
func TestBroadcast_HalfLightRadius(t *testing.T) {
	p := DefaultHalfLightParams()
	mstar := []float64{1e8, 1e9, 1e10, 1e11}

	got, err := HalfLightRadiusOver(mstar, p)
	if err != nil {
		t.Fatal(err)
	}

	for i, m := range mstar {
		want, err := HalfLightRadius(m, p)
		if err != nil {
			t.Fatal(err)
		}
		if got[i] != want {
			t.Errorf("M*=%g: broadcast %.17g != scalar %.17g", m, got[i], want)
		}
	}

	t.Logf("✓ half-light broadcast matches scalar at %d masses", len(mstar))
}

// TestBroadcast_SaturatedOver verifies the saturated element-wise form,
// including the sfr = 0 clamp inside an array.
func TestBroadcast_SaturatedOver(t *testing.T) {
	got, err := SynchrotronLuminositySaturatedOver(
		[]float64{0, 0.086, 10}, []float64{1.4}, DefaultBeta)
	if err != nil {
		t.Fatal(err)
	}

	if got[0] != 0 {
		t.Errorf("sfr=0 element: got %g, want clamped 0", got[0])
	}
	if !(got[1] > 0 && got[2] > got[1]) {
		t.Errorf("expected increasing positive tail, got %v", got)
	}

	t.Logf("✓ saturated broadcast honors the sfr=0 clamp: %v", got)
}
