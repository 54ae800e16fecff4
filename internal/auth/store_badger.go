// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// Key prefixes for BadgerDB storage
const (
	userKeyPrefix      = "user:name:"
	userEmailKeyPrefix = "user:email:"
)

// maxConflictRetries bounds retries when concurrent registrations collide.
const maxConflictRetries = 3

// BadgerUserStore implements UserStore on BadgerDB. Users are stored as JSON
// under their username, with a second key mapping email to username.
type BadgerUserStore struct {
	db     *badger.DB
	ownsDB bool
}

// NewBadgerUserStore opens a BadgerDB at path. An empty path opens an
// in-memory database, which is what the tests use.
func NewBadgerUserStore(path string) (*BadgerUserStore, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for users: %w", err)
	}
	return &BadgerUserStore{db: db, ownsDB: true}, nil
}

// NewBadgerUserStoreFromDB wraps an already open database. Close leaves it
// open.
func NewBadgerUserStoreFromDB(db *badger.DB) *BadgerUserStore {
	return &BadgerUserStore{db: db}
}

// Create stores a new user.
func (s *BadgerUserStore) Create(ctx context.Context, user *User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	nameKey := []byte(userKeyPrefix + user.Username)
	emailKey := []byte(userEmailKeyPrefix + user.Email)

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err = s.db.Update(func(txn *badger.Txn) error {
			for _, key := range [][]byte{nameKey, emailKey} {
				_, err := txn.Get(key)
				if err == nil {
					return ErrUserExists
				}
				if !errors.Is(err, badger.ErrKeyNotFound) {
					return fmt.Errorf("check user key: %w", err)
				}
			}
			if err := txn.Set(nameKey, data); err != nil {
				return fmt.Errorf("set user: %w", err)
			}
			if err := txn.Set(emailKey, []byte(user.Username)); err != nil {
				return fmt.Errorf("set email mapping: %w", err)
			}
			return nil
		})

		// a concurrent commit touched the same keys; re-read and decide again
		if errors.Is(err, badger.ErrConflict) && attempt < maxConflictRetries {
			continue
		}
		return err
	}
}

// GetByUsername retrieves a user by exact username.
func (s *BadgerUserStore) GetByUsername(_ context.Context, username string) (*User, error) {
	var user User
	err := s.db.View(func(txn *badger.Txn) error {
		return getUser(txn, username, &user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email.
func (s *BadgerUserStore) GetByEmail(_ context.Context, email string) (*User, error) {
	var user User
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userEmailKeyPrefix + email))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return fmt.Errorf("get email mapping: %w", err)
		}
		username, err := item.ValueCopy(nil)
		if err != nil {
			return fmt.Errorf("read email mapping: %w", err)
		}
		return getUser(txn, string(username), &user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func getUser(txn *badger.Txn, username string, user *User) error {
	item, err := txn.Get([]byte(userKeyPrefix + username))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, user)
	})
}

// Close closes the database if this store opened it.
func (s *BadgerUserStore) Close() error {
	if s.ownsDB && s.db != nil {
		return s.db.Close()
	}
	return nil
}
