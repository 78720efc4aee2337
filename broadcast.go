package galscale

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Broadcasting follows the usual element-wise rule restricted to one
// dimension: all slice arguments must share a common length, or have
// length 1, in which case the single element is repeated across the
// other arguments. The result always has the common (longest) length.

// broadcastLen resolves the common output length, rejecting any pair of
// lengths that is neither equal nor broadcastable via length 1.
func broadcastLen(lens ...int) (int, error) {
	n := 1
	for _, l := range lens {
		if l == n || l == 1 {
			continue
		}
		if n == 1 {
			n = l
			continue
		}
		return 0, fmt.Errorf("galscale: shape mismatch: cannot broadcast length %d against length %d", l, n)
	}
	return n, nil
}

// at indexes a slice under the broadcast rule: length-1 slices repeat.
func at[F constraints.Float](s []F, i int) F {
	if len(s) == 1 {
		return s[0]
	}
	return s[i]
}

// Broadcast applies f element-wise over a.
func Broadcast[F constraints.Float](f func(F) (F, error), a []F) ([]F, error) {
	out := make([]F, len(a))
	for i, v := range a {
		r, err := f(v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}

// Broadcast2 applies f element-wise over a and b under the broadcast rule.
func Broadcast2[F constraints.Float](f func(a, b F) (F, error), a, b []F) ([]F, error) {
	n, err := broadcastLen(len(a), len(b))
	if err != nil {
		return nil, err
	}
	out := make([]F, n)
	for i := 0; i < n; i++ {
		r, err := f(at(a, i), at(b, i))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}

// Broadcast3 applies f element-wise over a, b and c under the broadcast rule.
func Broadcast3[F constraints.Float](f func(a, b, c F) (F, error), a, b, c []F) ([]F, error) {
	n, err := broadcastLen(len(a), len(b), len(c))
	if err != nil {
		return nil, err
	}
	out := make([]F, n)
	for i := 0; i < n; i++ {
		r, err := f(at(a, i), at(b, i), at(c, i))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}

// SynchrotronLuminosityBaseOver is the element-wise form of
// SynchrotronLuminosityBase.
func SynchrotronLuminosityBaseOver(sfr, nu []float64) ([]float64, error) {
	return Broadcast2(SynchrotronLuminosityBase, sfr, nu)
}

// SynchrotronLuminositySaturatedOver is the element-wise form of
// SynchrotronLuminositySaturated. beta is shared across all elements.
func SynchrotronLuminositySaturatedOver(sfr, nu []float64, beta float64) ([]float64, error) {
	return Broadcast2(func(s, n float64) (float64, error) {
		return SynchrotronLuminositySaturated(s, n, beta)
	}, sfr, nu)
}

// SynchrotronLuminosityRedshiftDependentOver is the element-wise form of
// SynchrotronLuminosityRedshiftDependent. beta is shared across all
// elements.
func SynchrotronLuminosityRedshiftDependentOver(sfr, nu, z []float64, beta float64) ([]float64, error) {
	return Broadcast3(func(s, n, zz float64) (float64, error) {
		return SynchrotronLuminosityRedshiftDependent(s, n, zz, beta)
	}, sfr, nu, z)
}

// HalfLightRadiusOver is the element-wise form of HalfLightRadius.
func HalfLightRadiusOver(mstar []float64, p HalfLightParams) ([]float64, error) {
	return Broadcast(func(m float64) (float64, error) {
		return HalfLightRadius(m, p)
	}, mstar)
}
