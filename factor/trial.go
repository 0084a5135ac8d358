package factor

import (
	"math/big"
	"time"

	"github.com/pfactor/PFactor-core/sieve"
)

// TrialFactorizer divides num by every prime up to Bound. Deterministic and
// cheap for small factors; Attempts and Seed are irrelevant to it.
type TrialFactorizer struct {
	Config
	num *big.Int
}

func (t *TrialFactorizer) Execute() (*Result, error) {
	start := time.Now()
	res := Result{Num: t.num, Method: TrialMethod, AttemptsUsed: 1}

	if t.num.Cmp(two) < 0 {
		res.Elapsed = time.Since(start)
		return &res, nil
	}

	ctx := t.context()
	prime := new(big.Int)
	rem := new(big.Int)
	primes := sieve.New(t.Bound)
	for {
		p, ok := primes.Next()
		if !ok {
			break
		}
		if ctx.Err() != nil {
			break
		}
		prime.SetInt64(p)
		// A prime divisor equal to num itself is not a nontrivial factor.
		if prime.Cmp(t.num) >= 0 {
			break
		}
		if rem.Mod(t.num, prime).Sign() == 0 {
			res.Divisor = big.NewInt(p)
			res.Cofactor = new(big.Int).Quo(t.num, res.Divisor)
			break
		}
	}

	res.Elapsed = time.Since(start)
	return &res, nil
}
