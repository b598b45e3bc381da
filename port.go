package wpinq

// Port is a synchronous fan-out point for a stream of
// weighted updates. It has no internal threading or buffering: Emit
// calls every attached sink in turn and returns only once all of them
// have returned, which is what lets every operator "run to completion
// when invoked" (§5) without a scheduler stepping it — propagation
// through an entire pipeline happens inside a single Emit call.
//
// This is the Go rendition of the dataflow Stream the external runtime
// contract (§6) describes; grounded on the module's EventTarget-style
// listener fan-out, simplified to direct function calls since no event
// object or cancellation is needed here.
type Port[D comparable] struct {
	sinks []func(epoch Epoch, updates []Update[D])
}

// Attach registers sink to receive every future Emit on this port.
// Sinks are invoked in attachment order. Ports have no detach operation:
// the pipelines built from them are static once constructed.
func (p *Port[D]) Attach(sink func(epoch Epoch, updates []Update[D])) {
	if sink == nil {
		panic(`wpinq: nil port sink`)
	}
	p.sinks = append(p.sinks, sink)
}

// Emit synchronously delivers updates, tagged with epoch, to every
// attached sink. A nil or empty updates slice is a no-op.
func (p *Port[D]) Emit(epoch Epoch, updates []Update[D]) {
	if len(updates) == 0 {
		return
	}
	for _, sink := range p.sinks {
		sink(epoch, updates)
	}
}
