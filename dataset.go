package wpinq

// DatasetHandle is a twin-stream input: the one place updates enter the
// system, on either the truth or synth side. It corresponds to the
// runtime contract's "per-scope input handle" (§6).
type DatasetHandle[D comparable] struct {
	truth, synth Port[D]
	cfg          *config
	closed       bool
}

// NewDatasetHandle creates an empty twin-stream handle.
func NewDatasetHandle[D comparable](opts ...Option) *DatasetHandle[D] {
	return &DatasetHandle[D]{cfg: newConfig(opts...)}
}

func (h *DatasetHandle[D]) checkOpen(op string) {
	if h.closed {
		Violate(op, ErrHandleClosed)
	}
}

func (h *DatasetHandle[D]) checkBudget(n int) {
	if h.cfg.pushBudget >= 0 && n > h.cfg.pushBudget && h.cfg.onOverload != nil {
		h.cfg.onOverload(n - h.cfg.pushBudget)
	}
}

// TruthFrom pushes updates onto the truth side, tagged with epoch.
func (h *DatasetHandle[D]) TruthFrom(epoch Epoch, updates []Update[D]) {
	h.checkOpen(`DatasetHandle.TruthFrom`)
	h.checkBudget(len(updates))
	h.truth.Emit(epoch, updates)
}

// SynthFrom pushes updates onto the synth side, tagged with epoch.
func (h *DatasetHandle[D]) SynthFrom(epoch Epoch, updates []Update[D]) {
	h.checkOpen(`DatasetHandle.SynthFrom`)
	h.checkBudget(len(updates))
	h.synth.Emit(epoch, updates)
}

// Close signals that no more input will arrive on either side. Further
// pushes are a fatal contract violation.
func (h *DatasetHandle[D]) Close() {
	h.closed = true
}

// Enter materialises a Dataset bound to this handle's two streams, on
// which transformations may be built. Multiple calls to Enter return
// independent façades sharing the same underlying ports.
func (h *DatasetHandle[D]) Enter() *Dataset[D] {
	return &Dataset[D]{truth: &h.truth, synth: &h.synth}
}

// Dataset is a pair of weighted collections, truth and synth, carried
// in parallel. Every non-terminal operator is applied identically and
// independently to both sides; the two sides interact only inside
// Measure. Dataset owns no state beyond the two port references.
type Dataset[D comparable] struct {
	truth, synth *Port[D]
}

func newDataset[D comparable]() *Dataset[D] {
	return &Dataset[D]{truth: new(Port[D]), synth: new(Port[D])}
}

// Filter drops elements for which keep returns false, identically on
// both sides. keep must be pure: its result may depend only on its
// argument, never on hidden mutable state, or affineness breaks.
func (ds *Dataset[D]) Filter(keep func(D) bool) *Dataset[D] {
	out := newDataset[D]()
	wire := func(src, dst *Port[D]) {
		src.Attach(func(epoch Epoch, updates []Update[D]) {
			var kept []Update[D]
			for _, u := range updates {
				if keep(u.Datum) {
					kept = append(kept, u)
				}
			}
			dst.Emit(epoch, kept)
		})
	}
	wire(ds.truth, out.truth)
	wire(ds.synth, out.synth)
	return out
}

// Concat unions ds with other, adding weights on shared data, on both
// sides independently.
func (ds *Dataset[D]) Concat(other *Dataset[D]) *Dataset[D] {
	out := newDataset[D]()
	pass := func(src, dst *Port[D]) {
		src.Attach(func(epoch Epoch, updates []Update[D]) { dst.Emit(epoch, updates) })
	}
	pass(ds.truth, out.truth)
	pass(other.truth, out.truth)
	pass(ds.synth, out.synth)
	pass(other.synth, out.synth)
	return out
}

// negated mirrors ds with every weight sign-flipped, on both sides;
// used to build Except without a separate stateful operator.
func (ds *Dataset[D]) negated() *Dataset[D] {
	out := newDataset[D]()
	wire := func(src, dst *Port[D]) {
		src.Attach(func(epoch Epoch, updates []Update[D]) {
			negated := make([]Update[D], len(updates))
			for i, u := range updates {
				negated[i] = Update[D]{Datum: u.Datum, Weight: -u.Weight}
			}
			dst.Emit(epoch, negated)
		})
	}
	wire(ds.truth, out.truth)
	wire(ds.synth, out.synth)
	return out
}

// Except is concat(ds, negate(other)): the multiset difference, per
// §4.2.
func (ds *Dataset[D]) Except(other *Dataset[D]) *Dataset[D] {
	return ds.Concat(other.negated())
}
