// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/tomtom215/marquee/internal/testinfra"
)

func TestRedisStoreIntegration(t *testing.T) {
	testinfra.SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	redisC, err := testinfra.NewRedisContainer(ctx)
	if err != nil {
		t.Fatalf("NewRedisContainer() error = %v", err)
	}
	testinfra.CleanupContainer(t, redisC)

	store, err := NewRedisStore(ctx, RedisConfig{Addr: redisC.Addr, KeyPrefix: "marquee:test:", Name: "redis_integration"})
	if err != nil {
		t.Fatalf("NewRedisStore() error = %v", err)
	}
	defer store.Close()

	var got storedMovie
	ok, err := store.GetJSON(ctx, "movie:155", &got)
	if err != nil || ok {
		t.Fatalf("GetJSON(empty) = %v, %v; want false, nil", ok, err)
	}

	want := storedMovie{ID: 155, Title: "The Dark Knight", Cast: []string{"Christian Bale"}}
	if err := store.SetJSON(ctx, "movie:155", want, time.Minute); err != nil {
		t.Fatalf("SetJSON() error = %v", err)
	}

	ok, err = store.GetJSON(ctx, "movie:155", &got)
	if err != nil || !ok {
		t.Fatalf("GetJSON() = %v, %v; want true, nil", ok, err)
	}
	if got.ID != want.ID || got.Title != want.Title {
		t.Errorf("GetJSON() = %+v, want %+v", got, want)
	}

	if err := store.SetJSON(ctx, "short", 1, time.Second); err != nil {
		t.Fatal(err)
	}
	time.Sleep(1500 * time.Millisecond)
	if ok, _ := store.GetJSON(ctx, "short", new(int)); ok {
		t.Error("key survived its TTL")
	}

	if err := store.Delete(ctx, "movie:155"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if ok, _ := store.GetJSON(ctx, "movie:155", &got); ok {
		t.Error("key present after Delete")
	}
}

func TestNewRedisStoreUnreachable(t *testing.T) {
	ctx := context.Background()
	if _, err := NewRedisStore(ctx, RedisConfig{Addr: "127.0.0.1:1"}); err == nil {
		t.Error("NewRedisStore(unreachable) error = nil, want error")
	}
}
