// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package cache provides response caching and title lookup structures.

# Response caching

Store is the interface the TMDB client caches through. Two backends:

  - MemoryStore: wraps Cache, an in-process map with per-entry TTL and a
    background sweeper. Default backend.
  - RedisStore: go-redis/v9 client storing JSON strings with SET EX.
    Selected with CACHE_BACKEND=redis.

Both record marquee_cache_hits_total and marquee_cache_misses_total under
the store's name. A miss is (false, nil); only backend failures return an
error, so callers can treat errors as "skip the cache".

	store := cache.NewMemoryStore("tmdb", time.Hour)
	defer store.Close()

	var movies []tmdb.Movie
	if ok, _ := store.GetJSON(ctx, key, &movies); !ok {
	    movies = fetch()
	    _ = store.SetJSON(ctx, key, movies, time.Hour)
	}

GenerateKey hashes arbitrary parameters into a short key.

# Title autocomplete

PrefixIndex is a read-only, case-insensitive prefix tree built from the
catalog titles at startup. Suggest ranks titles shared by several catalog
rows first, then alphabetically.
*/
package cache
