// Package ratelimiter implements token bucket rate limiting with an
// in-memory store and net/http middleware.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       60,
//		RefillRate:     20,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	r.Use(ratelimiter.Middleware(bucket, func(r *http.Request) string {
//		return clientip.FromContext(r.Context())
//	}))
//
// Each key starts with a full bucket of Capacity tokens. Every RefillInterval
// adds RefillRate tokens up to Capacity. A request that finds too few tokens
// is denied without consuming any.
package ratelimiter
