// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package services provides suture.Service wrappers for Marquee components.

Each wrapper translates a component's lifecycle into suture's
Serve(ctx) error contract and implements fmt.Stringer so supervisor events
name it.

HTTPServerService:
  - Runs *http.Server.ListenAndServe in a goroutine
  - On cancellation calls Shutdown with a bounded timeout
  - Returns listen errors so the api-layer supervisor restarts it

MetricsRefreshService:
  - Refreshes the uptime gauge on an interval
  - Publishes entry counts of in-process caches (marquee_cache_entries)
*/
package services
