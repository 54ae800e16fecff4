// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package auth

import (
	"context"
	"fmt"

	"github.com/tomtom215/marquee/internal/config"
)

// UserStoreType names a user storage backend.
type UserStoreType string

const (
	// UserStoreBadger keeps users in an embedded BadgerDB (default).
	UserStoreBadger UserStoreType = "badger"

	// UserStoreMongo keeps users in a MongoDB collection.
	UserStoreMongo UserStoreType = "mongo"
)

// NewUserStore opens the backend selected by cfg.Backend.
func NewUserStore(ctx context.Context, cfg *config.UsersConfig) (UserStore, error) {
	switch UserStoreType(cfg.Backend) {
	case UserStoreBadger, "":
		return NewBadgerUserStore(cfg.BadgerPath)
	case UserStoreMongo:
		return NewMongoUserStore(ctx, MongoConfig{
			URI:        cfg.MongoURI,
			Database:   cfg.MongoDatabase,
			Collection: cfg.MongoCollection,
		})
	default:
		return nil, fmt.Errorf("unknown user store backend %q", cfg.Backend)
	}
}

var (
	_ UserStore = (*BadgerUserStore)(nil)
	_ UserStore = (*MongoUserStore)(nil)
)
