// Package degrees supplements the distilled specification with the two
// concrete measurement combinators the original analysis code actually
// builds on top of shave and measure — cdf and seq — so that
// FitCDFSeq has real producers to reconcile rather than remaining a
// freestanding numerical routine. Grounded directly on
// original_source/src/analyses/degrees.rs.
package degrees

import wpinq "github.com/joeycumines/go-wpinq"

func shaveIndex[D comparable](ds *wpinq.Dataset[D], width int64) *wpinq.Dataset[int64] {
	return wpinq.Map(ds.Shave(width), func(i wpinq.Indexed[D]) int64 { return i.Index })
}

// CDF reports, for each index, the total weight, summed over keys, that
// falls in that width-wide band (with width 1, the number of keys whose
// weight exceeds the index) — a cumulative-distribution measurement of
// ds's per-key weight. It shaves ds into width-wide
// slices, discards the original key (keeping only the slice index), and
// measures the resulting stream directly.
func CDF[D comparable](ds *wpinq.Dataset[D], width int64, errTotal *int64, probe wpinq.Prober, opts ...wpinq.Option) *wpinq.Measurement[int64] {
	return shaveIndex(ds, width).Measure(errTotal, probe, opts...)
}

// Seq reports, for each rank, the rank-th largest degree in the
// collection: the degree sequence, largest to smallest, obtained by
// shaving twice at the same width (once to bucket each key's weight,
// once more to rank within each bucket), discarding the original key
// both times, before measuring. The double shave-and-discard has the
// effect of transposing and re-ordering the degrees from largest to
// smallest — the original's own comment describes it as "the
// double-transposition" trick, since we could equally have measured
// using the original node identifiers had we known what they ranged
// over, but generally we do not.
func Seq[D comparable](ds *wpinq.Dataset[D], width int64, errTotal *int64, probe wpinq.Prober, opts ...wpinq.Option) *wpinq.Measurement[int64] {
	return shaveIndex(shaveIndex(ds, width), width).Measure(errTotal, probe, opts...)
}
