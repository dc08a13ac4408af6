package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/crawldex/crawldex/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("FirstRequestImmediate", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(1)
		start := time.Now()
		err := limiter.Wait(context.Background(), "example.test")
		require.NoError(t, err)
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("SecondRequestPaced", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(10)
		require.NoError(t, limiter.Wait(context.Background(), "example.test"))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "example.test"))
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("DomainsIndependent", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(1)
		require.NoError(t, limiter.Wait(context.Background(), "a.test"))

		// A different domain has its own bucket and is not delayed by
		// the first domain's spent token.
		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "b.test"))
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("ContextCancellation", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(0.001)
		require.NoError(t, limiter.Wait(context.Background(), "example.test"))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		err := limiter.Wait(ctx, "example.test")
		assert.Error(t, err)
	})
}
