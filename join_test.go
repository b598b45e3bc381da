package wpinq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin_SingleKeyBothSides(t *testing.T) {
	ha := NewDatasetHandle[KV[string, string]]()
	hb := NewDatasetHandle[KV[string, int]]()
	joined := Join(ha.Enter(), hb.Enter())
	get := collectTruth(joined)

	// L1 gets one value "u" weight 4 under key "k".
	ha.TruthFrom(1, []Update[KV[string, string]]{{KV[string, string]{"k", "u"}, 4}})
	assert.Nil(t, get()) // T=4, but L2 is empty so pairs() returns nil.

	// L2 gets one value 7 weight 4 under key "k": T = 4+4 = 8, pair weight = floor(4*4/8) = 2.
	hb.TruthFrom(2, []Update[KV[string, int]]{{KV[string, int]{"k", 7}, 4}})
	got := get()
	assert.Equal(t, []Update[KV[string, Pair[string, int]]]{
		{KV[string, Pair[string, int]]{"k", Pair[string, int]{"u", 7}}, 2},
	}, got)
}

func TestJoin_OneSidedKeyProducesNothing(t *testing.T) {
	ha := NewDatasetHandle[KV[string, string]]()
	hb := NewDatasetHandle[KV[string, int]]()
	joined := Join(ha.Enter(), hb.Enter())
	get := collectTruth(joined)

	// Repeated pushes to one side of a key never pair with anything
	// while the other side's per-key list stays empty.
	ha.TruthFrom(1, []Update[KV[string, string]]{{KV[string, string]{"k", "u"}, 3}})
	ha.TruthFrom(2, []Update[KV[string, string]]{{KV[string, string]{"k", "v"}, -1}})

	assert.Nil(t, get())
}

func TestJoin_RetractionCancelsPair(t *testing.T) {
	ha := NewDatasetHandle[KV[string, string]]()
	hb := NewDatasetHandle[KV[string, int]]()
	joined := Join(ha.Enter(), hb.Enter())
	get := collectTruth(joined)

	ha.TruthFrom(1, []Update[KV[string, string]]{{KV[string, string]{"k", "u"}, 4}})
	hb.TruthFrom(2, []Update[KV[string, int]]{{KV[string, int]{"k", 7}, 4}})
	ha.TruthFrom(3, []Update[KV[string, string]]{{KV[string, string]{"k", "u"}, -4}})

	got := get()
	assert.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].Weight)
	assert.Equal(t, int64(-2), got[1].Weight)
}
