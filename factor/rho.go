package factor

import (
	"context"
	"math/big"
	"time"
)

// RhoFactorizer implements Pollard's rho with Floyd cycle detection over the
// map f(x) = x^2 + c mod num. Unlike the p-1 method the perturbation constant
// c genuinely exists here, and every restart draws a fresh one.
type RhoFactorizer struct {
	Config
	num *big.Int
	res Result
}

func (t *RhoFactorizer) Execute() (*Result, error) {
	start := time.Now()
	t.res = Result{Num: t.num, Method: RhoMethod}

	if t.num.Cmp(two) < 0 {
		t.res.Elapsed = time.Since(start)
		return &t.res, nil
	}

	// The quadratic map cycles uselessly on even num; peel off 2 directly.
	if t.num.Bit(0) == 0 {
		if t.num.Cmp(two) != 0 {
			t.res.Divisor = big.NewInt(2)
		}
	} else {
		t.search()
	}

	if t.res.Divisor != nil {
		t.res.Cofactor = new(big.Int).Quo(t.num, t.res.Divisor)
	}
	t.res.Elapsed = time.Since(start)
	return &t.res, nil
}

func (t *RhoFactorizer) search() {
	ctx := t.context()
	for i := 0; i < t.Attempts; i++ {
		if ctx.Err() != nil {
			return
		}
		rnd := t.Rand
		if rnd == nil {
			rnd = NewSource(t.attemptSeed(i))
		}
		t.progress(Event{Attempt: i + 1, Stage: StageStart})
		divisor := t.attempt(ctx, rnd)
		t.res.AttemptsUsed = i + 1
		if divisor != nil {
			t.res.Divisor = divisor
			t.progress(Event{Attempt: i + 1, Stage: StageHit, Divisor: divisor.String()})
			return
		}
		t.progress(Event{Attempt: i + 1, Stage: StageMiss})
	}
}

func (t *RhoFactorizer) attemptSeed(n int) int64 {
	if t.Seed == 0 {
		return 0
	}
	return t.Seed + int64(n)
}

func (t *RhoFactorizer) attempt(ctx context.Context, rnd RandSource) *big.Int {
	x := rnd.IntRange(two, t.num)
	y := new(big.Int).Set(x)
	c := rnd.IntRange(one, t.num)

	step := func(v *big.Int) {
		v.Mul(v, v)
		v.Add(v, c)
		v.Mod(v, t.num)
	}

	diff := new(big.Int)
	divisor := new(big.Int)
	for {
		if ctx.Err() != nil {
			return nil
		}
		step(x)
		step(y)
		step(y)
		if x.Cmp(y) == 0 {
			// The tortoise caught the hare without exposing a factor.
			return nil
		}
		diff.Sub(x, y)
		diff.Abs(diff)
		divisor.GCD(nil, nil, diff, t.num)
		if divisor.Cmp(one) != 0 && divisor.Cmp(t.num) != 0 {
			return new(big.Int).Set(divisor)
		}
	}
}
