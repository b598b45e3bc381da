// Package scheduler provides a minimal, concrete realisation of the
// dataflow runtime contract wpinq's operators are built against (§6 of
// the design): a cooperative, single-threaded scheduler exposing
// quiescence probes and a bounded-ingress overload hook, modelled on
// the shape of this module's event-loop component (state tracking,
// overload callback) but scoped down to
// exactly what a synchronous, single-process dataflow graph needs —
// there is no I/O polling, no timers, and no microtasks, because a
// wpinq pipeline has no asynchronous boundary: propagation through an
// entire pipeline completes inside a single Port.Emit call.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	wpinq "github.com/joeycumines/go-wpinq"
)

// Probe tracks the highest Epoch an attached measurement group has
// fully drained, mirroring timely dataflow's progress-tracking probes.
// Because this runtime propagates updates synchronously, Seal is
// typically called — and Reached becomes true — before the call that
// produced the update even returns. Probe still exists as a
// first-class type so a multi-worker runtime could implement
// wpinq.Prober independently, and so tests can substitute a fake that
// never seals to exercise the premature-observation contract
// violation.
type Probe struct {
	mu     sync.Mutex
	sealed wpinq.Epoch
}

var _ wpinq.Prober = (*Probe)(nil)

// Seal records that epoch, and everything before it, has been fully
// drained. Monotonic: sealing an epoch earlier than one already sealed
// is a no-op.
func (p *Probe) Seal(epoch wpinq.Epoch) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if epoch > p.sealed {
		p.sealed = epoch
	}
}

// Reached reports whether epoch has been sealed.
func (p *Probe) Reached(epoch wpinq.Epoch) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sealed >= epoch
}

// Runtime owns a registry of probes and the "step until quiescent"
// primitive the runtime contract names (§6). In this single-process,
// synchronous realisation, Step is a deliberate no-op: every attached
// operator has already run to completion by the time a push call
// returns, so there is never pending work to step through. The method
// exists so callers coded against the contract, rather than against
// this package's internals, have something to call; a future
// multi-worker exchange runtime would give it real work to do.
type Runtime struct {
	mu         sync.Mutex
	probes     []*Probe
	pushBudget int
	onOverload func(dropped int)
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithOverloadHandler installs a callback invoked whenever a single
// push (see CheckBudget) exceeds budget elements, mirroring
// eventloop.Loop's OnOverload hook for its bounded ingress queue.
func WithOverloadHandler(budget int, onOverload func(dropped int)) Option {
	return func(r *Runtime) {
		r.pushBudget = budget
		r.onOverload = onOverload
	}
}

// New constructs a Runtime with no push budget by default.
func New(opts ...Option) *Runtime {
	r := &Runtime{pushBudget: -1}
	for _, o := range opts {
		o(r)
	}
	return r
}

// NewProbe allocates a Probe and records it in the runtime's probe
// list. Close does not consult that list.
func (r *Runtime) NewProbe() *Probe {
	p := &Probe{}
	r.mu.Lock()
	r.probes = append(r.probes, p)
	r.mu.Unlock()
	return p
}

// CheckBudget reports the configured overload callback if n exceeds the
// runtime's push budget. Callers embed this in their own bulk-push path
// (wpinq.WithPushBudget wires the equivalent check directly into
// DatasetHandle; this method exists for runtimes that want to police
// budget centrally instead).
func (r *Runtime) CheckBudget(n int) {
	if r.pushBudget >= 0 && n > r.pushBudget && r.onOverload != nil {
		r.onOverload(n - r.pushBudget)
	}
}

// Step advances scheduled work until every attached probe is quiescent.
// See the type doc: in this synchronous realisation there is never
// anything to do, beyond honouring ctx cancellation.
func (r *Runtime) Step(ctx context.Context) error {
	return ctx.Err()
}

// Close runs a final round of finalize callbacks — typically one per
// attached measurement group, flushing any caller-side bookkeeping —
// concurrently, collecting the first error. errgroup is used here
// purely for its "collect first error, wait for all" semantics over a
// small, fixed fan-out; this runtime's own work is single-threaded.
func (r *Runtime) Close(ctx context.Context, finalize ...func(context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, fn := range finalize {
		g.Go(func() error { return fn(gctx) })
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf(`wpinq/scheduler: close: %w`, err)
	}
	return nil
}
