package wpinq

import (
	"github.com/joeycumines/go-wpinq/internal/fingerprint"
	"github.com/joeycumines/go-wpinq/internal/mergesort"
)

// Indexed pairs a datum with an integer slice index, the element type
// Shave produces.
type Indexed[D comparable] struct {
	Datum D
	Index int64
}

// Shave decomposes each key's running weight into fixed-width slices:
// for weight w accumulated so far and width, it emits one update per
// width-sized (or smaller, final) band the weight passes through as it
// moves from its old value to its new value. Panics if width is not
// positive.
//
// State (the per-key running weight) persists for the lifetime of the
// returned Dataset. Within each batch, updates are first pushed through
// the sorted-run merge engine (§4.10) to consolidate same-key entries
// into one net delta before applying the per-key slicing logic, so that
// application order within a key never depends on incidental batch
// order.
func (ds *Dataset[D]) Shave(width int64) *Dataset[Indexed[D]] {
	if width <= 0 {
		Violate(`Dataset.Shave`, ErrNonPositiveWidth)
	}
	out := newDataset[Indexed[D]]()
	wireShave(ds.truth, out.truth, width)
	wireShave(ds.synth, out.synth, width)
	return out
}

func wireShave[D comparable](src *Port[D], dst *Port[Indexed[D]], width int64) {
	state := make(map[D]int64)
	src.Attach(func(epoch Epoch, updates []Update[D]) {
		sorter := mergesort.New(fingerprint.Of[D])
		batch := make([]mergesort.Entry[D], len(updates))
		for i, u := range updates {
			batch[i] = mergesort.Entry[D]{Datum: u.Datum, Weight: u.Weight}
		}
		sorter.Push(batch)
		consolidated := sorter.FinishInto()

		var emitted []Update[Indexed[D]]
		for _, e := range consolidated {
			w := state[e.Datum]
			delta := e.Weight

			for delta > 0 {
				i := floorDiv(w, width)
				c := min((i+1)*width-w, delta)
				emitted = append(emitted, Update[Indexed[D]]{Datum: Indexed[D]{Datum: e.Datum, Index: i}, Weight: c})
				w += c
				delta -= c
			}
			for delta < 0 {
				i := floorDiv(w-1, width)
				c := max(i*width-w, delta)
				emitted = append(emitted, Update[Indexed[D]]{Datum: Indexed[D]{Datum: e.Datum, Index: i}, Weight: c})
				w += c
				delta -= c
			}

			state[e.Datum] = w
		}
		dst.Emit(epoch, emitted)
	})
}
