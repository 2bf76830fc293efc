//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/cmd/bootstrap"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/cmd/bootstrap/components"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra/db"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/infra/outbox"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/config"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")
)

// pgServer is one PostgreSQL container shared by every suite in the process.
// Each suite gets its own database on it.
type pgServer struct {
	container testcontainers.Container
	host      string
	port      string
}

var (
	serverOnce sync.Once
	server     *pgServer
	serverErr  error
)

func (p *pgServer) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, p.host, p.port, database)
}

func sharedServer(t *testing.T) *pgServer {
	serverOnce.Do(func() {
		server, serverErr = startServer()
	})
	require.NoError(t, serverErr, "failed to start PostgreSQL container")
	return server
}

func startServer() (*pgServer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	// Durability is irrelevant for throwaway data.
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			Name:         "postgres-settlement-e2e",
			Labels:       map[string]string{"purpose": "e2e-tests"},
			ExposedPorts: []string{string(pgPort)},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=200",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
				return (&pgServer{host: host, port: port.Port()}).dsn("postgres")
			}).WithStartupTimeout(time.Minute),
		},
		Started: true,
		Reuse:   true,
	})
	if err != nil {
		return nil, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, err
	}
	mapped, err := container.MappedPort(ctx, pgPort)
	if err != nil {
		return nil, err
	}
	return &pgServer{container: container, host: host, port: mapped.Port()}, nil
}

// createDatabase provisions a migrated, seeded database dropped on cleanup.
// CREATE DATABASE can race with template locks when suites start together,
// hence the retry.
func (p *pgServer) createDatabase(t *testing.T) config.DBConfig {
	name := "settlement_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, p.dsn("postgres"))
	require.NoError(t, err, "admin connection failed")
	defer admin.Close()

	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("retrying CREATE DATABASE", "database", name, "attempt", attempt, "error", err.Error())
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, p.dsn("postgres"))
		if err != nil {
			slog.Warn("skip dropping test database", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     p.host,
		Port:     p.port,
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "America/Caracas",
		MaxConns: 10,
	}
}

// SharedSuite boots the full fx graph against a fresh database. The outbox
// loop and the expiry sweeper stay idle; tests call Drain so asynchronous
// effects land deterministically.
type SharedSuite struct {
	suite.Suite
	Router     *gin.Engine
	DB         *pgxpool.Pool
	Config     config.Config
	Dispatcher *outbox.Dispatcher
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	dbCfg := sharedServer(t).createDatabase(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, closePool, err := db.Connect(ctx, dbCfg)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(closePool)
	require.NoError(t, db.Migrate(ctx, pool), "database migration failed")
	require.NoError(t, dbtest.SeedReferenceData(pool), "failed to seed reference data")
	s.DB = pool

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	cfg.Outbox.Enabled = false
	cfg.Settlement.ExpirySweepInterval = time.Hour

	app := fx.New(
		fx.Supply(cfg, pool),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.WorkerModule,
		components.HandlerModule,
		fx.Populate(&s.Router, &s.Config, &s.Dispatcher),
		fx.NopLogger,
	)
	require.NoError(t, app.Start(ctx), "fx app failed to start")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fx app stop failed", "error", err.Error())
		}
	})

	require.NotNil(t, s.Router, "router not populated")
	require.NotNil(t, s.Dispatcher, "outbox dispatcher not populated")
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
}

// Drain runs the outbox until no due events remain.
func (s *SharedSuite) Drain() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for range 10 {
		n, err := s.Dispatcher.DispatchOnce(ctx)
		require.NoError(s.T(), err, "outbox dispatch failed")
		if n == 0 {
			return
		}
	}
}
