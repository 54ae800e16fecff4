// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package auth provides user accounts and bearer token authentication.

Components:

  - Service: Register (bcrypt hashing, duplicate checks), Authenticate,
    Login and CheckToken
  - JWTManager: HS256 tokens carrying username and user_id claims
  - UserStore: persistence interface with two backends
  - BadgerUserStore: embedded BadgerDB, default, in-memory when the path
    is empty
  - MongoUserStore: MongoDB collection with unique username and email
    indexes

Unknown usernames and wrong passwords both return ErrInvalidCredentials,
and the unknown-user path still runs a bcrypt comparison.

Usage:

	store, err := auth.NewUserStore(ctx, &cfg.Users)
	if err != nil {
	    return err
	}
	defer store.Close()

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
	    return err
	}
	svc := auth.NewService(store, jwtManager, cfg.Security.BcryptCost)

	token, expires, user, err := svc.Login(ctx, "alice", "s3cret-pass")
*/
package auth
