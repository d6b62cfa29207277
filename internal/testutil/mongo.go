//go:build integration

// Package testutil provides shared testcontainers setup for integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// MongoContainer wraps a running MongoDB testcontainer.
type MongoContainer struct {
	Container testcontainers.Container
	URI       string
}

// StartMongo creates and starts a MongoDB testcontainer.
// Prefer SharedMongo with TestMain so a package's tests reuse one container.
func StartMongo(ctx context.Context) (*MongoContainer, error) {
	container, err := mongodb.Run(ctx, "mongo:7.0")
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &MongoContainer{Container: container, URI: uri}, nil
}

// Terminate stops the container.
func (m *MongoContainer) Terminate(ctx context.Context) error {
	if m.Container == nil {
		return nil
	}
	if err := m.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("failed to terminate container: %w", err)
	}
	return nil
}

var (
	sharedMongo     *MongoContainer
	sharedMongoErr  error
	sharedMongoOnce sync.Once
)

// SharedMongo returns a MongoDB container shared by all tests in a package.
// Pair with RunWithSharedMongo in TestMain for cleanup.
func SharedMongo(ctx context.Context) (*MongoContainer, error) {
	sharedMongoOnce.Do(func() {
		sharedMongo, sharedMongoErr = StartMongo(ctx)
	})
	return sharedMongo, sharedMongoErr
}

// RunWithSharedMongo starts the shared container, runs the package's tests
// and tears the container down afterwards.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunWithSharedMongo(context.Background(), m))
//	}
func RunWithSharedMongo(ctx context.Context, m *testing.M) int {
	if _, err := SharedMongo(ctx); err != nil {
		panic(err)
	}

	code := m.Run()

	if sharedMongo != nil {
		if err := sharedMongo.Terminate(ctx); err != nil {
			// Docker reaps leaked containers, so a failed teardown is not fatal.
			_, _ = os.Stderr.WriteString("warning: failed to terminate MongoDB container: " + err.Error() + "\n")
		}
	}
	return code
}

// SharedMongoURI returns the connection URI of the shared container.
// Panics when the container was never started.
func SharedMongoURI() string {
	if sharedMongo == nil {
		panic("shared MongoDB container not initialized, call SharedMongo first")
	}
	return sharedMongo.URI
}

// TestDatabaseName turns a test name into a valid, unique MongoDB database
// name, so parallel tests against the shared container do not collide.
func TestDatabaseName(testName string) string {
	sanitized := strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(testName)
	if len(sanitized) > 50 {
		sanitized = sanitized[:50]
	}
	return fmt.Sprintf("%s_%d", sanitized, time.Now().UnixNano()%1000000)
}
