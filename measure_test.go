package wpinq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasure_ObserveReturnsTruthPlusNoise(t *testing.T) {
	h := NewDatasetHandle[string]()
	probe := &fakeProbe{}
	var errTotal int64
	m := h.Enter().Measure(&errTotal, probe, WithNoiseSource(FixedNoiseSource(7)))

	h.TruthFrom(1, []Update[string]{{"d", 100}})

	assert.Equal(t, int64(107), m.Observe("d"))
	// A fresh entry's baseline contribution to errTotal is |noise|=7; the
	// truth update then moves errTotal by (|107|-|7|) = 100.
	assert.Equal(t, int64(100), errTotal)
}

func TestMeasure_SynthRoundTripRestoresErrTotal(t *testing.T) {
	h := NewDatasetHandle[string]()
	probe := &fakeProbe{}
	var errTotal int64
	m := h.Enter().Measure(&errTotal, probe, WithNoiseSource(FixedNoiseSource(7)))

	h.TruthFrom(1, []Update[string]{{"d", 100}})
	assert.Equal(t, int64(100), errTotal)

	h.SynthFrom(2, []Update[string]{{"d", 107}})
	// synth now matches truth+noise exactly: errTotal drops by |107|-|0| net.
	assert.Equal(t, int64(-7), errTotal)

	h.SynthFrom(3, []Update[string]{{"d", -107}})
	// undoing the synth push restores errTotal to its prior value.
	assert.Equal(t, int64(100), errTotal)

	assert.Equal(t, int64(107), m.Observe("d"))
}

func TestMeasure_ObserveBeforeQuiescenceIsFatal(t *testing.T) {
	h := NewDatasetHandle[string]()
	probe := &fakeProbe{neverSeal: true}
	var errTotal int64
	m := h.Enter().Measure(&errTotal, probe)

	h.TruthFrom(1, []Update[string]{{"d", 1}})

	assert.PanicsWithValue(t, &ContractViolation{Op: `Measurement.Observe`, Cause: ErrPrematureObservation},
		func() { m.Observe("d") })
}

func TestMeasure_NilErrTotalOrProbeIsFatal(t *testing.T) {
	h := NewDatasetHandle[string]()
	probe := &fakeProbe{}
	var errTotal int64

	assert.PanicsWithValue(t, &ContractViolation{Op: `Dataset.Measure`, Cause: ErrNilErrorAccumulator},
		func() { h.Enter().Measure(nil, probe) })
	assert.PanicsWithValue(t, &ContractViolation{Op: `Dataset.Measure`, Cause: ErrNilProbe},
		func() { h.Enter().Measure(&errTotal, nil) })
}

func TestMeasure_ObserveIsStableWithoutFurtherTruthUpdates(t *testing.T) {
	h := NewDatasetHandle[string]()
	probe := &fakeProbe{}
	var errTotal int64
	m := h.Enter().Measure(&errTotal, probe, WithNoiseSource(FixedNoiseSource(3)))

	h.TruthFrom(1, []Update[string]{{"d", 10}})
	first := m.Observe("d")
	second := m.Observe("d")
	assert.Equal(t, first, second)
	assert.Equal(t, int64(13), first)
}
