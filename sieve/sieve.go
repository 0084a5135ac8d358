package sieve

// Stream lazily yields every prime in [2, limit] in ascending order.
// Candidates are tested by trial division against the primes discovered so
// far, which keeps memory proportional to π(limit) instead of limit.
type Stream struct {
	limit  int64
	cursor int64
	primes []int64
}

func New(limit int64) *Stream {
	return &Stream{
		limit:  limit,
		cursor: 2,
		primes: []int64{},
	}
}

// Next returns the next prime in the stream, or ok=false once every prime up
// to the limit has been yielded. A limit below 2 yields nothing.
func (s *Stream) Next() (int64, bool) {
	for n := s.cursor; n <= s.limit; n++ {
		if s.isComposite(n) {
			continue
		}
		s.primes = append(s.primes, n)
		s.cursor = n + 1
		return n, true
	}
	s.cursor = s.limit + 1
	return 0, false
}

func (s *Stream) isComposite(n int64) bool {
	for _, p := range s.primes {
		if p*p > n {
			break
		}
		if n%p == 0 {
			return true
		}
	}
	return false
}

// Primes collects the whole stream at once.
func Primes(limit int64) []int64 {
	s := New(limit)
	primes := make([]int64, 0)
	for {
		p, ok := s.Next()
		if !ok {
			return primes
		}
		primes = append(primes, p)
	}
}

// MaxPowerBelow returns the largest exponent s with p^s <= limit, together
// with p^s itself. Computed by repeated multiplication so the boundary cases
// a floating-point logarithm would get wrong come out exact.
func MaxPowerBelow(p, limit int64) (exp, pow int64) {
	if p < 2 || limit < p {
		return 0, 1
	}
	exp, pow = 1, p
	for pow <= limit/p {
		pow *= p
		exp++
	}
	return exp, pow
}
