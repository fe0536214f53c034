package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lk2023060901/fileshare-backend/internal/conf"
	"github.com/lk2023060901/fileshare-backend/internal/data"
	"github.com/lk2023060901/fileshare-backend/internal/pkg/logger"
	"github.com/lk2023060901/fileshare-backend/internal/pkg/qrsvg"
	"github.com/lk2023060901/fileshare-backend/internal/pkg/shortlink"
	"github.com/lk2023060901/fileshare-backend/internal/server"
	"github.com/lk2023060901/fileshare-backend/internal/share/biz"
	sharedata "github.com/lk2023060901/fileshare-backend/internal/share/data"
	shareservice "github.com/lk2023060901/fileshare-backend/internal/share/service"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("config", "config.yaml", "config file path")
)

func main() {
	flag.Parse()

	// Load configuration
	config, err := conf.LoadConfig(*configFile)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger with config
	log, err := logger.New(&logger.Config{
		Level:            config.Log.Level,
		Format:           config.Log.Format,
		Output:           config.Log.Output,
		EnableCaller:     config.Log.EnableCaller,
		EnableStacktrace: config.Log.EnableStacktrace,
		File: logger.FileConfig{
			Filename:   config.Log.File.Filename,
			MaxSize:    config.Log.File.MaxSize,
			MaxAge:     config.Log.File.MaxAge,
			MaxBackups: config.Log.File.MaxBackups,
			Compress:   config.Log.File.Compress,
		},
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	log.Info("config loaded successfully")

	// Initialize data layer
	d, cleanup, err := data.NewData(config, log.Logger)
	if err != nil {
		log.Fatal("failed to initialize data layer", zap.Error(err))
	}
	defer cleanup()

	// Initialize pipeline collaborators
	recordRepo := sharedata.NewShareRecordRepo(d.DB, d.RedisClient, config.Database.Table, config.Share.CacheTTL, log.Logger)
	objectStore := sharedata.NewMinIOObjectStore(d.StorageClient, config.Storage.Bucket)

	var shortener sharedata.Shortener
	if config.Share.Shortener.Enabled {
		shortener = shortlink.NewClient(shortlink.Config{
			BaseURL: config.Share.Shortener.BaseURL,
			APIKey:  config.Share.Shortener.APIKey,
			Timeout: config.Share.Shortener.Timeout,
		}, log.Logger)
	}
	grantIssuer := sharedata.NewAccessGrantIssuer(d.StorageClient, config.Storage.Bucket, shortener, log.Logger)
	renderer := qrsvg.NewRenderer(config.Share.QRModuleSize)

	// Initialize use case and service
	shareUseCase := biz.NewShareUseCase(
		objectStore,
		grantIssuer,
		renderer,
		recordRepo,
		config.Share.MaxUploadSize,
		log.Logger,
	)
	shareService := shareservice.NewShareService(shareUseCase, log.Logger)

	// Initialize server
	httpServer := server.NewHTTPServer(config, log.Logger, shareService)

	go func() {
		if err := httpServer.Start(); err != nil {
			log.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	log.Info("server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Stop(ctx); err != nil {
		log.Error("HTTP server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}
