package galscale

import (
	"fmt"
	"math"
)

// SpectrumPoint is one frequency sample of a luminosity relation.
type SpectrumPoint struct {
	Nu float64 // frequency, GHz
	L  float64 // luminosity, W/Hz
}

// SpectrumConfig controls frequency-grid evaluation.
type SpectrumConfig struct {
	MinNu     float64 // grid start, GHz (> 0)
	MaxNu     float64 // grid end, GHz (>= MinNu)
	Points    int     // number of samples (>= 2)
	LogSpaced bool    // log-spaced grid instead of linear
}

// DefaultSpectrumConfig covers the radio continuum window of the
// governing fits, log-spaced: 0.1-100 GHz, 64 points.
func DefaultSpectrumConfig() SpectrumConfig {
	return SpectrumConfig{
		MinNu:     0.1,
		MaxNu:     100,
		Points:    64,
		LogSpaced: true,
	}
}

// FrequencyGrid materializes the sample frequencies of cfg, in GHz.
func FrequencyGrid(cfg SpectrumConfig) ([]float64, error) {
	if err := checkPositive("MinNu", cfg.MinNu, "GHz"); err != nil {
		return nil, err
	}
	if cfg.MaxNu < cfg.MinNu {
		return nil, fmt.Errorf("galscale: MaxNu %g below MinNu %g", cfg.MaxNu, cfg.MinNu)
	}
	if cfg.Points < 2 {
		return nil, fmt.Errorf("galscale: spectrum needs at least 2 points, got %d", cfg.Points)
	}

	grid := make([]float64, cfg.Points)
	if cfg.LogSpaced {
		lo, hi := math.Log(cfg.MinNu), math.Log(cfg.MaxNu)
		step := (hi - lo) / float64(cfg.Points-1)
		for i := range grid {
			grid[i] = math.Exp(lo + float64(i)*step)
		}
	} else {
		step := (cfg.MaxNu - cfg.MinNu) / float64(cfg.Points-1)
		for i := range grid {
			grid[i] = cfg.MinNu + float64(i)*step
		}
	}
	// pin the endpoints against accumulated rounding
	grid[0] = cfg.MinNu
	grid[cfg.Points-1] = cfg.MaxNu
	return grid, nil
}

// ComputeSpectrum evaluates the redshift-dependent synchrotron relation
// across the frequency grid of cfg for a single galaxy. Each sample is
// independent of the others, so this is the batched, element-wise mode
// of use rather than anything stateful.
func ComputeSpectrum(sfr, z, beta float64, cfg SpectrumConfig) ([]SpectrumPoint, error) {
	grid, err := FrequencyGrid(cfg)
	if err != nil {
		return nil, err
	}

	pts := make([]SpectrumPoint, len(grid))
	for i, nu := range grid {
		l, err := SynchrotronLuminosityRedshiftDependent(sfr, nu, z, beta)
		if err != nil {
			return nil, fmt.Errorf("at ν = %g GHz: %w", nu, err)
		}
		pts[i] = SpectrumPoint{Nu: nu, L: l}
	}
	return pts, nil
}
