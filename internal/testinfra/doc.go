// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package testinfra starts Redis and MongoDB containers for integration tests.
//
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./internal/cache/... ./internal/auth/...
//
// Tests call SkipIfNoDocker first so the suite degrades gracefully on hosts
// without a Docker daemon.
//
//	func TestRedisStore(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    redisC, err := testinfra.NewRedisContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    testinfra.CleanupContainer(t, redisC)
//
//	    store, err := cache.NewRedisStore(ctx, cache.RedisConfig{Addr: redisC.Addr})
//	    // ...
//	}
package testinfra
