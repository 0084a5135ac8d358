package factor

import (
	"context"
	"math/big"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/pfactor/PFactor-core/sieve"
)

// PMinus1Factorizer implements Pollard's p-1 method. It succeeds when num has
// a prime factor p such that p-1 is Bound-smooth: raising a random base to
// lcm(1..B) then makes the result congruent to 1 mod p, and gcd(guess-1, num)
// exposes p (or a multiple of it).
type PMinus1Factorizer struct {
	Config
	num *big.Int
	res Result
}

func (t *PMinus1Factorizer) Execute() (*Result, error) {
	start := time.Now()
	t.res = Result{Num: t.num, Method: PMinus1Method}

	// 0 and 1 have no nontrivial factor; no randomness is drawn for them.
	if t.num.Cmp(two) < 0 {
		t.res.Elapsed = time.Since(start)
		return &t.res, nil
	}

	if t.Rand != nil || t.Parallel <= 1 {
		t.sequential()
	} else {
		t.parallel()
	}

	if t.res.Divisor != nil {
		t.res.Cofactor = new(big.Int).Quo(t.num, t.res.Divisor)
	}
	t.res.Elapsed = time.Since(start)
	return &t.res, nil
}

func (t *PMinus1Factorizer) sequential() {
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

func (t *PMinus1Factorizer) parallel() {
	ctx, cancel := context.WithCancel(t.context())
	defer cancel()

	sem := semaphore.NewWeighted(int64(t.Parallel))
	found := make(chan *big.Int, 1)
	var wg sync.WaitGroup

	for i := 0; i < t.Attempts; i++ {
		// Acquire fails once a hit cancelled the context.
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		t.res.AttemptsUsed++
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			defer sem.Release(1)
			t.progress(Event{Attempt: n + 1, Stage: StageStart})
			divisor := t.attempt(ctx, NewSource(t.attemptSeed(n)))
			if divisor == nil {
				t.progress(Event{Attempt: n + 1, Stage: StageMiss})
				return
			}
			select {
			case found <- divisor:
				t.progress(Event{Attempt: n + 1, Stage: StageHit, Divisor: divisor.String()})
				cancel()
			default:
			}
		}(i)
	}
	wg.Wait()

	select {
	case divisor := <-found:
		t.res.Divisor = divisor
	default:
	}
}

func (t *PMinus1Factorizer) attemptSeed(n int) int64 {
	if t.Seed == 0 {
		return 0
	}
	return t.Seed + int64(n)
}

// attempt runs one randomized restart: a fresh base in [2, num] raised to the
// largest power of every prime p <= Bound that stays below Bound, checking
// gcd(guess-1, num) after each fold.
func (t *PMinus1Factorizer) attempt(ctx context.Context, rnd RandSource) *big.Int {
	guess := rnd.IntRange(two, t.num)

	exponent := new(big.Int)
	delta := new(big.Int)
	divisor := new(big.Int)

	primes := sieve.New(t.Bound)
	for {
		p, ok := primes.Next()
		if !ok {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}

		_, pow := sieve.MaxPowerBelow(p, t.Bound)
		exponent.SetInt64(pow)
		guess.Exp(guess, exponent, t.num)

		// gcd(guess-1, num) is invariant mod num, so reduce the operand into
		// [0, num) first; GCD then never sees a negative argument.
		delta.Sub(guess, one)
		delta.Mod(delta, t.num)
		divisor.GCD(nil, nil, delta, t.num)
		if divisor.Cmp(one) != 0 && divisor.Cmp(t.num) != 0 {
			return new(big.Int).Set(divisor)
		}
	}
}
