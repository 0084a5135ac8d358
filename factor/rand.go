package factor

import (
	"math/big"
	mrand "math/rand"
	"sync/atomic"
	"time"
)

// RandSource supplies the random bases for the attempt loop. The search only
// needs uniformity, not cryptographic strength, and tests substitute a
// deterministic source through Config.Rand.
type RandSource interface {
	// IntRange returns a uniformly distributed integer in [lo, hi], inclusive.
	IntRange(lo, hi *big.Int) *big.Int
}

type mathSource struct {
	rnd *mrand.Rand
}

var seedSalt atomic.Int64

// NewSource returns a math/rand backed source. A zero seed picks a fresh
// time-derived seed; the salt keeps sources created in the same nanosecond
// from sharing a stream.
func NewSource(seed int64) RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano() + seedSalt.Add(1)
	}
	return &mathSource{rnd: mrand.New(mrand.NewSource(seed))}
}

func (s *mathSource) IntRange(lo, hi *big.Int) *big.Int {
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, one)
	n := new(big.Int).Rand(s.rnd, span)
	return n.Add(n, lo)
}
