package wpinq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectTruth attaches a sink to a Dataset's truth port and returns a
// function retrieving everything emitted on it so far.
func collectTruth[D comparable](ds *Dataset[D]) func() []Update[D] {
	var got []Update[D]
	ds.truth.Attach(func(_ Epoch, updates []Update[D]) {
		got = append(got, updates...)
	})
	return func() []Update[D] { return got }
}

func TestDataset_Filter(t *testing.T) {
	h := NewDatasetHandle[int]()
	ds := h.Enter()
	evens := ds.Filter(func(d int) bool { return d%2 == 0 })
	get := collectTruth(evens)

	h.TruthFrom(1, []Update[int]{{1, 1}, {2, 1}, {3, 1}, {4, 1}})

	assert.Equal(t, []Update[int]{{2, 1}, {4, 1}}, get())
}

func TestDataset_Concat(t *testing.T) {
	ha := NewDatasetHandle[string]()
	hb := NewDatasetHandle[string]()
	combined := ha.Enter().Concat(hb.Enter())
	get := collectTruth(combined)

	ha.TruthFrom(1, []Update[string]{{"x", 3}})
	assert.Equal(t, []Update[string]{{"x", 3}}, get())

	hb.TruthFrom(1, []Update[string]{{"x", 2}, {"y", 1}})
	// second push arrives as its own batch; Concat passes each side's
	// updates through independently, without merging across pushes.
	got := get()
	require.Len(t, got, 3)
	assert.Equal(t, Update[string]{"x", 2}, got[1])
	assert.Equal(t, Update[string]{"y", 1}, got[2])
}

func TestDataset_Except(t *testing.T) {
	ha := NewDatasetHandle[string]()
	hb := NewDatasetHandle[string]()
	diff := ha.Enter().Except(hb.Enter())
	get := collectTruth(diff)

	ha.TruthFrom(1, []Update[string]{{"x", 5}})
	hb.TruthFrom(2, []Update[string]{{"x", 2}})

	got := get()
	require.Len(t, got, 2)
	assert.Equal(t, Update[string]{"x", 5}, got[0])
	assert.Equal(t, Update[string]{"x", -2}, got[1])
}

func TestDatasetHandle_ClosedPanics(t *testing.T) {
	h := NewDatasetHandle[int]()
	h.Close()
	assert.PanicsWithValue(t, &ContractViolation{Op: `DatasetHandle.TruthFrom`, Cause: ErrHandleClosed},
		func() { h.TruthFrom(1, []Update[int]{{1, 1}}) })
}

func TestDatasetHandle_PushBudgetOverload(t *testing.T) {
	var dropped int
	h := NewDatasetHandle[int](WithPushBudget(2, func(n int) { dropped = n }))
	h.TruthFrom(1, []Update[int]{{1, 1}, {2, 1}, {3, 1}, {4, 1}})
	assert.Equal(t, 2, dropped)
}
