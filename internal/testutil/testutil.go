package testutil

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BlakeDanielson/celeb-draft/internal/api"
	"github.com/BlakeDanielson/celeb-draft/internal/config"
	"github.com/BlakeDanielson/celeb-draft/internal/lock"
	"github.com/BlakeDanielson/celeb-draft/internal/repository"
	"github.com/BlakeDanielson/celeb-draft/internal/repository/memory"
	repoPostgres "github.com/BlakeDanielson/celeb-draft/internal/repository/postgres"
	"github.com/BlakeDanielson/celeb-draft/internal/service"
	"github.com/jonboulle/clockwork"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestConfig returns a config suitable for tests.
func TestConfig() *config.Config {
	return &config.Config{
		Port:                "0",
		Environment:         "test",
		SessionSecret:       "test-secret",
		SessionTTL:          time.Hour,
		DefaultPicksPerTeam: 5,
	}
}

// TestDB manages a testcontainers PostgreSQL instance
type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// NewTestDB creates a new PostgreSQL testcontainer and returns a connection
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:15-alpine",
		tcPostgres.WithDatabase("test_celeb_draft"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := repoPostgres.Migrate(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	testDB := &TestDB{
		Container: container,
		DB:        db,
		DSN:       dsn,
	}

	t.Cleanup(func() {
		container.Terminate(context.Background())
	})

	return testDB
}

// Env bundles the memory-backed wiring used by service and handler tests.
// It avoids a database so the concurrency-heavy tests stay fast and
// deterministic.
type Env struct {
	Repos    *repository.Repositories
	Locks    *lock.Keyed
	Clock    *clockwork.FakeClock
	Services *service.Services
	Config   *config.Config
}

func NewEnv(t *testing.T) *Env {
	t.Helper()

	cfg := TestConfig()
	repos := memory.NewRepositories(memory.NewStore())
	locks := lock.NewKeyed()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	services := service.NewServices(repos, locks, clock, zap.NewNop(), cfg)

	return &Env{
		Repos:    repos,
		Locks:    locks,
		Clock:    clock,
		Services: services,
		Config:   cfg,
	}
}

// TestServer runs the full router over memory repositories.
type TestServer struct {
	*Env
	Server *httptest.Server
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	env := NewEnv(t)
	server := httptest.NewServer(api.NewRouter(env.Services, zap.NewNop()))

	t.Cleanup(func() {
		server.Close()
	})

	return &TestServer{Env: env, Server: server}
}

// BaseURL returns the test server's base URL
func (ts *TestServer) BaseURL() string {
	return ts.Server.URL
}

// APIURL returns the full API URL for a given path
func (ts *TestServer) APIURL(path string) string {
	return fmt.Sprintf("%s/api/v1%s", ts.Server.URL, path)
}
