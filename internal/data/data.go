package data

import (
	"context"
	"fmt"
	"time"

	"github.com/lk2023060901/fileshare-backend/internal/conf"
	pkgminio "github.com/lk2023060901/fileshare-backend/internal/pkg/minio"
	sharedata "github.com/lk2023060901/fileshare-backend/internal/share/data"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Data struct {
	DB            *gorm.DB
	RedisClient   *redis.Client
	StorageClient *pkgminio.Client
	Logger        *zap.Logger
}

func NewData(config *conf.Config, log *zap.Logger) (*Data, func(), error) {
	// Initialize PostgreSQL
	db, err := initDB(config, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init database: %w", err)
	}

	// Initialize Redis
	redisClient := initRedis(config)
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	// Initialize object storage
	storageClient, err := initStorage(config, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init object storage: %w", err)
	}

	d := &Data{
		DB:            db,
		RedisClient:   redisClient,
		StorageClient: storageClient,
		Logger:        log,
	}

	cleanup := func() {
		log.Info("cleaning up data resources")

		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}

		if redisClient != nil {
			redisClient.Close()
		}
	}

	return d, cleanup, nil
}

func initDB(config *conf.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Auto migrate the record table under its configured name
	if err := db.Table(config.Database.Table).AutoMigrate(&sharedata.ShareRecordPO{}); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}

	log.Info("database initialized", zap.String("table", config.Database.Table))
	return db, nil
}

func initRedis(config *conf.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Redis.Host, config.Redis.Port),
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})
}

func initStorage(config *conf.Config, log *zap.Logger) (*pkgminio.Client, error) {
	client, err := pkgminio.NewClient(&pkgminio.Config{
		Endpoint:        config.Storage.Endpoint,
		AccessKeyID:     config.Storage.AccessKey,
		SecretAccessKey: config.Storage.SecretKey,
		Region:          config.Storage.Region,
		UseSSL:          config.Storage.UseSSL,
		PartSize:        config.Storage.PartSize,
		UploadWorkers:   config.Storage.UploadWorkers,
	}, log)
	if err != nil {
		return nil, err
	}

	if err := client.EnsureBucket(context.Background(), config.Storage.Bucket); err != nil {
		return nil, err
	}

	return client, nil
}
