package oracle

import (
	"context"
	"math/big"

	"golang.org/x/time/rate"
)

// RateLimited wraps a Tester with a token-bucket limiter, for the case
// the oracle is a remote or otherwise costly collaborator (spec's
// "arithmetic collaborator" is explicitly external) rather than the
// in-process math/big default.
type RateLimited struct {
	inner   Tester
	limiter *rate.Limiter
}

// NewRateLimited wraps inner with a limiter allowing up to burst
// immediate calls and refilling at r per second thereafter.
func NewRateLimited(inner Tester, r rate.Limit, burst int) *RateLimited {
	return &RateLimited{inner: inner, limiter: rate.NewLimiter(r, burst)}
}

func (t *RateLimited) IsProbablePrime(n uint64, rounds int) bool {
	_ = t.limiter.Wait(context.Background())
	return t.inner.IsProbablePrime(n, rounds)
}

func (t *RateLimited) IsProbablePrimeBig(n *big.Int, rounds int) bool {
	_ = t.limiter.Wait(context.Background())
	return t.inner.IsProbablePrimeBig(n, rounds)
}
