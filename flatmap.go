package wpinq

// FlatMap applies f to each datum, producing a list of output data, and
// divides the input weight evenly across them: each (d, w) with
// L = f(d) of length n emits (L[i], w/n) truncated toward zero, for
// each i. If n = 0, the input contributes nothing — the weight is
// silently dropped, an acknowledged affine loss (§4.3); callers
// supplying weights not evenly divisible by len(f(d)) accept a loss
// bounded by n-1 in absolute value per input record.
//
// Like Map, FlatMap is a free function since it changes the element
// type.
func FlatMap[D, E comparable](ds *Dataset[D], f func(D) []E) *Dataset[E] {
	out := newDataset[E]()
	wire := func(src *Port[D], dst *Port[E]) {
		src.Attach(func(epoch Epoch, updates []Update[D]) {
			var emitted []Update[E]
			for _, u := range updates {
				list := f(u.Datum)
				n := int64(len(list))
				if n == 0 {
					continue
				}
				share := u.Weight / n
				for _, e := range list {
					emitted = append(emitted, Update[E]{Datum: e, Weight: share})
				}
			}
			dst.Emit(epoch, consolidate(emitted))
		})
	}
	wire(ds.truth, out.truth)
	wire(ds.synth, out.synth)
	return out
}
