//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "hotel"
	pgPassword = "hotel-e2e"
	pgPort     = nat.Port("5432/tcp")
)

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgEndpoint  postgresEndpoint
)

// postgresEndpoint is where the shared container listens on the host.
type postgresEndpoint struct {
	Host string
	Port string
}

func (e postgresEndpoint) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, e.Host, e.Port, database)
}

// sharedPostgres starts one Postgres container per test binary; every suite
// gets its own database inside it.
func sharedPostgres(t *testing.T) postgresEndpoint {
	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: postgresRequest(),
			Started:          true,
		})
		require.NoError(t, err, "PostgreSQLコンテナの起動に失敗")
		pgContainer = c

		mapped, err := c.MappedPort(ctx, pgPort)
		require.NoError(t, err, "ポートの取得に失敗")
		host, err := c.Host(ctx)
		require.NoError(t, err, "ホストの取得に失敗")
		pgEndpoint = postgresEndpoint{Host: host, Port: mapped.Port()}

		t.Cleanup(func() {
			stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer stopCancel()
			if err := pgContainer.Terminate(stopCtx); err != nil {
				slog.Warn("PostgreSQLコンテナの終了に失敗しました", "error", err.Error())
			}
		})
	})
	require.NotEmpty(t, pgEndpoint.Port, "PostgreSQLコンテナが起動していません")
	return pgEndpoint
}

func postgresRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{string(pgPort)},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		// データはRAM上に置き、耐久性より速度を優先
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
			return postgresEndpoint{Host: host, Port: port.Port()}.dsn("postgres")
		}).WithStartupTimeout(time.Minute),
		Labels: map[string]string{"purpose": "hotel-core-e2e"},
	}
}
