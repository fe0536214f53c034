package data

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lk2023060901/fileshare-backend/internal/share/biz"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ShareRecordPO is the database model for one persisted upload.
type ShareRecordPO struct {
	ID              string    `gorm:"type:uuid;primarykey"`
	BaseName        string    `gorm:"size:255;not null"`
	Extension       string    `gorm:"size:32"`
	CreatedAt       time.Time `gorm:"not null"`
	TimestampToken  string    `gorm:"size:14;not null"`
	StorageKey      string    `gorm:"size:600;not null;uniqueIndex"`
	SizeBytes       int64     `gorm:"not null"`
	DurationMinutes int       `gorm:"not null"`
	URL             string    `gorm:"type:text"`
	CodeImage       string    `gorm:"type:text"`
}

// ShareRecordRepo implements biz.ShareRecordRepo over Postgres, with a
// read-through redis cache for lookups. Write-once: there is no update path.
type ShareRecordRepo struct {
	db       *gorm.DB
	cache    *redis.Client
	table    string
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewShareRecordRepo creates the repo. cache may be nil to disable caching.
func NewShareRecordRepo(db *gorm.DB, cache *redis.Client, table string, cacheTTL time.Duration, logger *zap.Logger) biz.ShareRecordRepo {
	return &ShareRecordRepo{
		db:       db,
		cache:    cache,
		table:    table,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func (r *ShareRecordRepo) Create(ctx context.Context, record *biz.ShareRecord) error {
	po := toPO(record)

	if err := r.db.WithContext(ctx).Table(r.table).Create(po).Error; err != nil {
		return fmt.Errorf("failed to persist share record: %w", err)
	}

	r.cacheSet(ctx, record)
	return nil
}

func (r *ShareRecordRepo) GetByID(ctx context.Context, id string) (*biz.ShareRecord, error) {
	if record := r.cacheGet(ctx, id); record != nil {
		return record, nil
	}

	var po ShareRecordPO
	if err := r.db.WithContext(ctx).Table(r.table).Where("id = ?", id).First(&po).Error; err != nil {
		return nil, fmt.Errorf("failed to load share record: %w", err)
	}

	record := toRecord(&po)
	r.cacheSet(ctx, record)
	return record, nil
}

func (r *ShareRecordRepo) cacheKey(id string) string {
	return "share:record:" + id
}

func (r *ShareRecordRepo) cacheGet(ctx context.Context, id string) *biz.ShareRecord {
	if r.cache == nil {
		return nil
	}

	data, err := r.cache.Get(ctx, r.cacheKey(id)).Bytes()
	if err != nil {
		return nil
	}

	var record biz.ShareRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil
	}
	return &record
}

func (r *ShareRecordRepo) cacheSet(ctx context.Context, record *biz.ShareRecord) {
	if r.cache == nil {
		return
	}

	data, err := json.Marshal(record)
	if err != nil {
		return
	}

	// Cache misses on failure are harmless; the database stays authoritative.
	if err := r.cache.Set(ctx, r.cacheKey(record.ID), data, r.cacheTTL).Err(); err != nil {
		r.logger.Warn("failed to cache share record", zap.String("record_id", record.ID), zap.Error(err))
	}
}

func toPO(record *biz.ShareRecord) *ShareRecordPO {
	return &ShareRecordPO{
		ID:              record.ID,
		BaseName:        record.BaseName,
		Extension:       record.Extension,
		CreatedAt:       record.CreatedAt,
		TimestampToken:  record.TimestampToken,
		StorageKey:      record.StorageKey,
		SizeBytes:       record.SizeBytes,
		DurationMinutes: record.DurationMinutes,
		URL:             record.URL,
		CodeImage:       record.CodeImage,
	}
}

func toRecord(po *ShareRecordPO) *biz.ShareRecord {
	return &biz.ShareRecord{
		ID:              po.ID,
		BaseName:        po.BaseName,
		Extension:       po.Extension,
		CreatedAt:       po.CreatedAt,
		TimestampToken:  po.TimestampToken,
		StorageKey:      po.StorageKey,
		SizeBytes:       po.SizeBytes,
		DurationMinutes: po.DurationMinutes,
		URL:             po.URL,
		CodeImage:       po.CodeImage,
	}
}
