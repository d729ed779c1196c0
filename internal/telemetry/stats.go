// Package telemetry samples per-step field statistics and streams them to
// CSV for offline analysis.
package telemetry

import (
	"gonum.org/v1/gonum/stat"

	"grayscott/internal/core"
	"grayscott/internal/sim"
)

// Record is one sampled row of the telemetry stream.
type Record struct {
	Step     uint64  `csv:"step"`
	Preset   string  `csv:"preset"`
	FeedRate float64 `csv:"feed_rate"`
	KillRate float64 `csv:"kill_rate"`
	Pattern  string  `csv:"pattern"`
	Reversed bool    `csv:"reversed"`
	UMean    float64 `csv:"u_mean"`
	UStdDev  float64 `csv:"u_stddev"`
	VMean    float64 `csv:"v_mean"`
	VStdDev  float64 `csv:"v_stddev"`
	VMin     float64 `csv:"v_min"`
	VMax     float64 `csv:"v_max"`
}

// Collect computes one record from the committed cell buffer. The scratch
// slices are reused between calls when non-nil.
func Collect(cells []core.Cell, status sim.Status, scratchU, scratchV []float64) Record {
	if cap(scratchU) < len(cells) {
		scratchU = make([]float64, len(cells))
	}
	if cap(scratchV) < len(cells) {
		scratchV = make([]float64, len(cells))
	}
	us := scratchU[:len(cells)]
	vs := scratchV[:len(cells)]

	vMin, vMax := 1.0, 0.0
	for i, c := range cells {
		us[i] = float64(c.U)
		vs[i] = float64(c.V)
		if vs[i] < vMin {
			vMin = vs[i]
		}
		if vs[i] > vMax {
			vMax = vs[i]
		}
	}
	if len(cells) == 0 {
		vMin, vMax = 0, 0
	}

	return Record{
		Step:     status.Steps,
		Preset:   status.Preset,
		FeedRate: float64(status.FeedRate),
		KillRate: float64(status.KillRate),
		Pattern:  status.Pattern,
		Reversed: status.Reversed,
		UMean:    stat.Mean(us, nil),
		UStdDev:  stat.StdDev(us, nil),
		VMean:    stat.Mean(vs, nil),
		VStdDev:  stat.StdDev(vs, nil),
		VMin:     vMin,
		VMax:     vMax,
	}
}
