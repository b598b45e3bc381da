package wpinq

// MinMax compares the weight of the same datum across two datasets of
// the same element type, independently on truth and on synth, and
// returns a (min, max) pair of Datasets carrying the delta-stream of
// min(a, b) and max(a, b) respectively.
//
// State (the last-seen weight pair per datum) persists for the lifetime
// of the returned Datasets, independently for the truth-side comparison
// and the synth-side comparison.
func MinMax[D comparable](a, b *Dataset[D]) (minDS, maxDS *Dataset[D]) {
	minDS, maxDS = newDataset[D](), newDataset[D]()
	wireMinMax(a.truth, b.truth, minDS.truth, maxDS.truth)
	wireMinMax(a.synth, b.synth, minDS.synth, maxDS.synth)
	return minDS, maxDS
}

type minMaxWeights struct {
	w1, w2 int64
}

func wireMinMax[D comparable](p1, p2 *Port[D], minOut, maxOut *Port[D]) {
	state := make(map[D]minMaxWeights)

	apply := func(onSide1 bool) func(Epoch, []Update[D]) {
		return func(epoch Epoch, updates []Update[D]) {
			var minUpdates, maxUpdates []Update[D]
			for _, u := range updates {
				st := state[u.Datum]
				minBefore, maxBefore := min(st.w1, st.w2), max(st.w1, st.w2)
				if onSide1 {
					st.w1 += u.Weight
				} else {
					st.w2 += u.Weight
				}
				minAfter, maxAfter := min(st.w1, st.w2), max(st.w1, st.w2)
				state[u.Datum] = st

				if d := minAfter - minBefore; d != 0 {
					minUpdates = append(minUpdates, Update[D]{Datum: u.Datum, Weight: d})
				}
				if d := maxAfter - maxBefore; d != 0 {
					maxUpdates = append(maxUpdates, Update[D]{Datum: u.Datum, Weight: d})
				}
			}
			minOut.Emit(epoch, minUpdates)
			maxOut.Emit(epoch, maxUpdates)
		}
	}

	p1.Attach(apply(true))
	p2.Attach(apply(false))
}
