package factor

import (
	"context"
	"errors"
	"math/big"
	"time"
)

var (
	ErrInvalidMethod = errors.New("invalid method")
	ErrInvalidInput  = errors.New("the input value must be a natural number")
)

const (
	DefaultBound    = 100000
	DefaultAttempts = 3
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

type Config struct {
	// Bound is the smoothness bound B. Primes up to and including Bound are
	// folded into the exponent.
	Bound int64
	// Attempts is the number of independent randomized restarts.
	Attempts int
	// Parallel bounds how many attempts run concurrently.
	Parallel int
	// Seed fixes the random streams when nonzero. Attempt i derives its own
	// stream from Seed+i, so results stay reproducible even in parallel runs.
	Seed int64
	// Rand overrides Seed with a caller-supplied source. A single injected
	// stream cannot be split between workers, so it forces sequential attempts.
	Rand RandSource
	// OnProgress, when set, receives one event per attempt boundary. It may be
	// called from multiple goroutines when Parallel > 1.
	OnProgress func(Event)
	// Context, when non-nil, bounds the whole search. The algorithm has no
	// internal deadline; cancellation takes effect at the next per-prime
	// checkpoint and the search reports no factor.
	Context context.Context
}

func (c *Config) context() context.Context {
	if c.Context != nil {
		return c.Context
	}
	return context.Background()
}

func (c *Config) progress(ev Event) {
	if c.OnProgress != nil {
		c.OnProgress(ev)
	}
}

type Method string

const (
	PMinus1Method Method = "pminus1"
	RhoMethod     Method = "rho"
	TrialMethod   Method = "trial"
)

func Methods() []string {
	return []string{string(PMinus1Method), string(RhoMethod), string(TrialMethod)}
}

type Stage string

const (
	StageStart Stage = "start"
	StageMiss  Stage = "miss"
	StageHit   Stage = "hit"
)

// Event reports the lifecycle of a single randomized attempt.
type Event struct {
	Attempt int    `json:"attempt"`
	Stage   Stage  `json:"stage"`
	Divisor string `json:"divisor,omitempty"`
}

type Result struct {
	Num *big.Int
	// Divisor is a proper divisor of Num, possibly composite, or nil when the
	// search failed. nil is never a primality certificate.
	Divisor      *big.Int
	Cofactor     *big.Int
	Method       Method
	AttemptsUsed int
	Elapsed      time.Duration
}

func (r *Result) Found() bool {
	return r.Divisor != nil
}

type Factorizer interface {
	Execute() (*Result, error)
}

// Find searches for a nontrivial factor of num with the given method.
// A nil result Divisor means no factor was found within the attempt budget,
// which covers num < 2, num prime, and plain bad luck alike.
func Find(method Method, num *big.Int, config Config) (*Result, error) {
	if num == nil || num.Sign() < 0 {
		return nil, ErrInvalidInput
	}

	if config.Bound == 0 {
		config.Bound = DefaultBound
	}
	if config.Attempts == 0 {
		config.Attempts = DefaultAttempts
	}
	if config.Parallel == 0 {
		config.Parallel = 1
	}

	var factorizer Factorizer

	switch method {
	case PMinus1Method, "":
		factorizer = &PMinus1Factorizer{Config: config, num: num}
	case RhoMethod:
		factorizer = &RhoFactorizer{Config: config, num: num}
	case TrialMethod:
		factorizer = &TrialFactorizer{Config: config, num: num}
	default:
		return &Result{}, ErrInvalidMethod
	}
	return factorizer.Execute()
}
