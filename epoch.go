package wpinq

// Epoch is an opaque, totally ordered logical timestamp supplied by the
// external runtime. wpinq never interprets an Epoch's value beyond
// comparing it with others; it exists only to group a batch of updates
// and to ask a Prober whether that batch, and everything before it,
// has been fully observed.
type Epoch uint64

// Prober reports whether a runtime has finished propagating every
// update up to and including a given Epoch: the quiescence contract
// described alongside the runtime interface. Measure registers against
// a Prober and seals it as truth/synth batches are drained; Observe
// consults it to detect a premature read. Package scheduler provides a
// concrete implementation; tests may supply their own to exercise the
// premature-observation contract violation directly.
type Prober interface {
	Seal(epoch Epoch)
	Reached(epoch Epoch) bool
}
