package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"employees/docs"
	"employees/inner/common"
	"employees/inner/database"
	"employees/inner/employee"
	"employees/inner/info"
	"employees/inner/validator"
	"employees/inner/web"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// читаем конфиги
	var cfg = common.GetConfig(".env")
	var logger = common.NewLogger(cfg)
	// Отложенный вызов записи сообщений из буфера в лог
	defer func() { _ = logger.Sync() }()

	db, err := database.ConnectDbWithCfg(cfg, logger)
	if err != nil {
		logger.Fatal("database connection error", zap.Error(err))
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("error closing db", zap.Error(closeErr))
		}
	}()

	if err = database.ApplySchema(context.Background(), db, logger); err != nil {
		logger.Fatal("database schema error", zap.Error(err))
	}

	var server = build(cfg, db, logger)

	go func() {
		logger.Info("http server started", zap.String("addr", cfg.ListenAddr()))
		if listenErr := server.App.Listen(cfg.ListenAddr()); listenErr != nil {
			logger.Error("http server error", zap.Error(listenErr))
		}
	}()

	// ждём сигнал завершения и даём запросам доработать
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down http server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = server.App.ShutdownWithContext(ctx); err != nil {
		logger.Error("http server shutdown error", zap.Error(err))
	}
	logger.Info("graceful shutdown complete")
}

// build собирает все слои приложения
func build(cfg common.Config, db *sqlx.DB, logger *common.Logger) *web.Server {
	var server = web.NewServer(cfg, logger)

	docs.SwaggerInfo.Title = cfg.AppName
	docs.SwaggerInfo.Version = cfg.AppVersion
	server.InitSwagger(cfg.AppName)

	var vld = validator.New()

	var employeeRepo = employee.NewRepository(db)
	var employeeService = employee.NewService(employeeRepo, vld, logger)
	var employeeController = employee.NewController(server, employeeService, logger)
	employeeController.RegisterRoutes()

	var infoController = info.NewController(server, cfg, db, logger)
	infoController.RegisterRoutes()

	return server
}
