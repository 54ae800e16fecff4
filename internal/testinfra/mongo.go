// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

//go:build integration

package testinfra

import (
	"context"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// DefaultMongoImage is the MongoDB image used by integration tests.
const DefaultMongoImage = "mongo:7"

const mongoPort = "27017"

// MongoContainer is a running standalone MongoDB.
type MongoContainer struct {
	testcontainers.Container

	// URI is a mongodb:// connection string for the container.
	URI string
}

// NewMongoContainer starts MongoDB without authentication.
func NewMongoContainer(ctx context.Context) (*MongoContainer, error) {
	container, addr, err := startContainer(ctx, DefaultMongoImage, mongoPort, nil,
		wait.ForAll(
			wait.ForListeningPort(mongoPort+"/tcp"),
			wait.ForLog("Waiting for connections"),
		).WithStartupTimeout(90*time.Second),
	)
	if err != nil {
		return nil, err
	}
	return &MongoContainer{Container: container, URI: "mongodb://" + addr}, nil
}
