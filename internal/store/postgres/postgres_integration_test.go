package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/whiskyhouse/whisky-service/internal/store"
	"github.com/whiskyhouse/whisky-service/internal/store/storetest"
)

func makePGStore(t *testing.T, dsn string) store.Store {
	t.Helper()
	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("postgres open: %v", err)
	}
	if err := Bootstrap(context.Background(), db); err != nil {
		t.Fatalf("postgres bootstrap: %v", err)
	}
	// Each suite run expects a clean table.
	if _, err := db.Exec(`TRUNCATE whiskys RESTART IDENTITY`); err != nil {
		t.Fatalf("postgres truncate: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return New(db)
}

// TestPostgresStore_Compliance runs against an externally provisioned
// database named by WHISKY_SERVICE_POSTGRES_TEST_DSN.
func TestPostgresStore_Compliance(t *testing.T) {
	dsn := os.Getenv("WHISKY_SERVICE_POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("WHISKY_SERVICE_POSTGRES_TEST_DSN not set; skipping postgres store integration test")
	}
	storetest.Run(t, func(t *testing.T) store.Store { return makePGStore(t, dsn) })
}

// TestPostgresStore_Compliance_Container provisions its own postgres through
// testcontainers. Opt in with WHISKY_SERVICE_POSTGRES_CONTAINER_TEST=1 so a
// plain `go test ./...` never needs Docker.
func TestPostgresStore_Compliance_Container(t *testing.T) {
	if os.Getenv("WHISKY_SERVICE_POSTGRES_CONTAINER_TEST") != "1" {
		t.Skip("WHISKY_SERVICE_POSTGRES_CONTAINER_TEST not set; skipping dockerized postgres test")
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "whisky",
			"POSTGRES_PASSWORD": "whisky",
			"POSTGRES_DB":       "whiskys",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://whisky:whisky@%s:%s/whiskys?sslmode=disable", host, port.Port())

	storetest.Run(t, func(t *testing.T) store.Store { return makePGStore(t, dsn) })
}
