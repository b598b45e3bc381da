// Package wpinq implements weighted Privacy Integrated Queries: a
// dataflow query engine over weighted multisets whose transformations
// preserve a bound on how much a single input change can move the
// output (affineness), together with a noisy measurement operator and
// shared error bookkeeping suitable for scoring a synthetic dataset
// against a private one.
//
// A Dataset pairs two weighted collections, truth and synth, and lifts
// every non-terminal operator (Map, Filter, Concat, Except, FlatMap,
// Shave, MinMax, Join) across both sides identically; the two sides
// only interact inside Measure. Because Go methods cannot introduce new
// type parameters beyond their receiver's, operators that need one (Map,
// FlatMap, Join) are ordinary generic functions taking a *Dataset[D]
// rather than generic methods, as is MinMax, which takes two datasets;
// Filter, Concat, Except, Shave and Measure are methods.
//
// wpinq does not implement a distributed dataflow runtime; it specifies
// the contract such a runtime must satisfy (see Prober and Epoch) and
// ships a minimal single-process scheduler, in package scheduler,
// sufficient to drive it deterministically.
package wpinq
