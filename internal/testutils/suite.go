package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"nexodus-admin-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "nexodus"
	pgPassword = "nexodus"
	pgDatabase = "admin_test"
)

// feedTables are truncated between tests
var feedTables = []string{"notifications"}

// postgresContainer is started once per test binary and shared by every suite
type postgresContainer struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
}

var shared postgresContainer

// BaseTestSuite gives repository suites a migrated database that is emptied around each test
type BaseTestSuite struct {
	suite.Suite
	DB *gorm.DB
}

// SetupTestSuite starts the shared Postgres container on first use
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	shared.once.Do(func() { shared.err = shared.start() })
	if shared.err != nil {
		t.Fatalf("postgres container unavailable: %v", shared.err)
	}
	return &BaseTestSuite{DB: shared.db}
}

// CleanupSharedContainer closes the shared database and removes its container.
// TestMain calls it once the whole package has run.
func CleanupSharedContainer() {
	if shared.db != nil {
		if sqlDB, err := shared.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		shared.db = nil
	}
	if shared.pool == nil || shared.resource == nil {
		return
	}
	if err := shared.pool.Purge(shared.resource); err != nil {
		log.Printf("could not remove postgres container %s: %v", shared.resource.Container.Name, err)
	}
	shared.pool, shared.resource = nil, nil
}

func (s *BaseTestSuite) SetupTest()         { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest()      { s.CleanTestDB() }
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties the notification feed
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	for _, table := range feedTables {
		if s.DB.Migrator().HasTable(table) {
			s.DB.Exec(fmt.Sprintf(`TRUNCATE TABLE %q`, table))
		}
	}
}

func (c *postgresContainer) start() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	c.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	c.resource = resource

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	if err := pool.Retry(func() error { return ping(dsn) }); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return fmt.Errorf("could not migrate test database: %w", err)
	}
	c.db = db

	log.Printf("test postgres listening on %s", resource.GetHostPort("5432/tcp"))
	return nil
}

// ping opens a plain pgx connection so Retry can poll readiness without gorm logging every failure
func ping(dsn string) error {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer conn.Close()
	return conn.Ping()
}
