//go:build e2e

package e2e

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"hotel-core/cmd/bootstrap"
	"hotel-core/cmd/bootstrap/components"
	"hotel-core/internal/pkg/config"
	"hotel-core/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// createDatabase gives the calling suite an empty database and drops it afterwards.
func createDatabase(t *testing.T, ep postgresEndpoint) string {
	name := "hotel_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, ep.dsn("postgres"))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// 並列に起動したスイートが同時に CREATE DATABASE すると競合することがある
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("データベース作成を再試行中", "attempt", attempt, "error", err.Error())
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer dropCancel()

		pool, err := pgxpool.New(dropCtx, ep.dsn("postgres"))
		if err != nil {
			slog.Warn("クリーンアップ用の接続に失敗しました", "database", name, "error", err.Error())
			return
		}
		defer pool.Close()
		if _, err := pool.Exec(dropCtx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", name, "error", err.Error())
		}
	})
	return name
}

func e2eConfig(ep postgresEndpoint, database string) config.Config {
	cfg := config.NewTestConfig()
	cfg.DB.Host = ep.Host
	cfg.DB.Port = ep.Port
	cfg.DB.User = pgUser
	cfg.DB.Password = pgPassword
	cfg.DB.DBName = database
	// 本番と同じ起動経路でマイグレーションと参照データ投入を行う
	cfg.DB.AutoMigrate = true
	// 見積もりが部屋の基本料金のままになるよう料金ルールは投入しない
	cfg.Seed = config.SeedConfig{PricingRules: false}
	return cfg
}

// startApp wires the same fx modules as cmd/main, minus the HTTP listener.
func startApp(t *testing.T, cfg config.Config) (*gin.Engine, *pgxpool.Pool) {
	var (
		router *gin.Engine
		pool   *pgxpool.Pool
	)

	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(
			func(c config.Config) config.HotelConfig { return c.Hotel },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		bootstrap.SeedModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router, &pool),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
	return router, pool
}

// SharedSuite gives each e2e suite its own database and a fully wired router.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	ep := sharedPostgres(t)
	s.Config = e2eConfig(ep, createDatabase(t, ep))
	s.Router, s.DB = startApp(t, s.Config)

	require.NotNil(t, s.Router, "Routerのセットアップに失敗")
	require.NotNil(t, s.DB, "DBのセットアップに失敗")
}

// SetupSubTest truncates every table and reloads the reference inventory.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
}
