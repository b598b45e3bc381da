package wpinq

// KV pairs a key with a value; Join's two input Datasets must have this
// element type, sharing K but not necessarily V.
type KV[K comparable, V comparable] struct {
	Key K
	Val V
}

// Pair holds the two values Join matches under a shared key.
type Pair[A comparable, B comparable] struct {
	First  A
	Second B
}

type joinState[V1, V2 comparable] struct {
	l1 []Update[V1]
	l2 []Update[V2]
}

// Join performs an incremental, affine-preserving keyed pairing of two
// datasets sharing a key type. Per key, every pair of values is emitted
// with weight w1*w2/T truncated toward zero (Go integer division), where
// T is the sum of absolute weights across both per-key lists; a key
// with no values on either side produces no output. Because every single-record change perturbs T by
// at most its own weight, any one input change moves the output by at
// most one unit per side (§4.5).
//
// Like Map and FlatMap, Join is a free function since it changes the
// element type.
func Join[K, V1, V2 comparable](a *Dataset[KV[K, V1]], b *Dataset[KV[K, V2]]) *Dataset[KV[K, Pair[V1, V2]]] {
	out := newDataset[KV[K, Pair[V1, V2]]]()
	wireJoin(a.truth, b.truth, out.truth)
	wireJoin(a.synth, b.synth, out.synth)
	return out
}

func wireJoin[K, V1, V2 comparable](p1 *Port[KV[K, V1]], p2 *Port[KV[K, V2]], out *Port[KV[K, Pair[V1, V2]]]) {
	states := make(map[K]*joinState[V1, V2])

	stateFor := func(k K) *joinState[V1, V2] {
		st, ok := states[k]
		if !ok {
			st = &joinState[V1, V2]{}
			states[k] = st
		}
		return st
	}

	// pairs computes pairs(L1, L2) per §4.5: every (v1,v2) combination,
	// weighted by w1*w2/T truncated toward zero, empty if the combined
	// total is zero.
	pairs := func(st *joinState[V1, V2]) []Update[Pair[V1, V2]] {
		var total int64
		for _, u := range st.l1 {
			total += absInt64(u.Weight)
		}
		for _, u := range st.l2 {
			total += absInt64(u.Weight)
		}
		if total == 0 {
			return nil
		}
		var produced []Update[Pair[V1, V2]]
		for _, u1 := range st.l1 {
			for _, u2 := range st.l2 {
				if w := (u1.Weight * u2.Weight) / total; w != 0 {
					produced = append(produced, Update[Pair[V1, V2]]{Datum: Pair[V1, V2]{First: u1.Datum, Second: u2.Datum}, Weight: w})
				}
			}
		}
		return produced
	}

	emit := func(k K, epoch Epoch, oldPairs, newPairs []Update[Pair[V1, V2]]) {
		acc := make(map[Pair[V1, V2]]int64, len(oldPairs)+len(newPairs))
		order := make([]Pair[V1, V2], 0, len(oldPairs)+len(newPairs))
		add := func(p Pair[V1, V2], w int64) {
			if _, ok := acc[p]; !ok {
				order = append(order, p)
			}
			acc[p] += w
		}
		for _, u := range oldPairs {
			add(u.Datum, -u.Weight)
		}
		for _, u := range newPairs {
			add(u.Datum, u.Weight)
		}
		var result []Update[KV[K, Pair[V1, V2]]]
		for _, p := range order {
			if w := acc[p]; w != 0 {
				result = append(result, Update[KV[K, Pair[V1, V2]]]{Datum: KV[K, Pair[V1, V2]]{Key: k, Val: p}, Weight: w})
			}
		}
		out.Emit(epoch, result)
	}

	p1.Attach(func(epoch Epoch, updates []Update[KV[K, V1]]) {
		for _, u := range updates {
			st := stateFor(u.Datum.Key)
			old := pairs(st)
			st.l1 = consolidate(append(st.l1, Update[V1]{Datum: u.Datum.Val, Weight: u.Weight}))
			emit(u.Datum.Key, epoch, old, pairs(st))
		}
	})

	p2.Attach(func(epoch Epoch, updates []Update[KV[K, V2]]) {
		for _, u := range updates {
			st := stateFor(u.Datum.Key)
			old := pairs(st)
			st.l2 = consolidate(append(st.l2, Update[V2]{Datum: u.Datum.Val, Weight: u.Weight}))
			emit(u.Datum.Key, epoch, old, pairs(st))
		}
	})
}
