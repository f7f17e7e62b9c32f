package main

import (
	"context"
	"log/slog"
	"os"

	"hotel-core/cmd/bootstrap"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// 設定ミスでもデバッグ情報を公開しない（フェイルセーフ）
	gin.SetMode(gin.ReleaseMode)
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           hotel-core
// @version         1.0
// @description     Hotel operations backend: bookings, pricing, payments, cancellations and housekeeping.

// @BasePath  /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := fx.New(bootstrap.Module, bootstrap.ServerModule)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("アプリケーションの起動に失敗しました", "error", err)
		os.Exit(1)
	}

	sig := <-app.Wait()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("アプリケーションの停止に失敗しました", "error", err)
	}
	slog.Info("アプリケーションが停止しました", "exit_code", sig.ExitCode)
	os.Exit(sig.ExitCode)
}
