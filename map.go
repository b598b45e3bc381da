package wpinq

// Map applies f pointwise to every datum on both sides of ds, leaving
// weights unchanged. f must be pure — its result may depend only on its
// argument, never on hidden mutable state shared between the truth and
// synth invocations, or affineness breaks (§9).
//
// Map is a free function, not a method on *Dataset[D], because Go
// methods cannot introduce new type parameters beyond their receiver's;
// every operator whose output type needs such a parameter follows this
// shape.
func Map[D, R comparable](ds *Dataset[D], f func(D) R) *Dataset[R] {
	out := newDataset[R]()
	wire := func(src *Port[D], dst *Port[R]) {
		src.Attach(func(epoch Epoch, updates []Update[D]) {
			mapped := make([]Update[R], len(updates))
			for i, u := range updates {
				mapped[i] = Update[R]{Datum: f(u.Datum), Weight: u.Weight}
			}
			dst.Emit(epoch, consolidate(mapped))
		})
	}
	wire(ds.truth, out.truth)
	wire(ds.synth, out.synth)
	return out
}
