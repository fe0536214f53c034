package conf

import (
	"testing"
	"time"
)

func TestSetDefaults(t *testing.T) {
	var c Config
	c.SetDefaults()

	if c.Storage.PartSize != 5*1024*1024 {
		t.Errorf("expected default part size 5 MiB, got %d", c.Storage.PartSize)
	}
	if c.Storage.UploadWorkers != 10 {
		t.Errorf("expected default upload workers 10, got %d", c.Storage.UploadWorkers)
	}
	if c.Share.MaxUploadSize != 100*1024*1024 {
		t.Errorf("expected default max upload size 100 MiB, got %d", c.Share.MaxUploadSize)
	}
	if c.Share.QRModuleSize != 4 {
		t.Errorf("expected default QR module size 4, got %d", c.Share.QRModuleSize)
	}
	if c.Share.Shortener.Timeout != 3*time.Second {
		t.Errorf("expected default shortener timeout 3s, got %s", c.Share.Shortener.Timeout)
	}
	if c.Database.Table != "file_records" {
		t.Errorf("expected default table file_records, got %q", c.Database.Table)
	}
}

func TestSetDefaultsKeepsExplicitValues(t *testing.T) {
	c := Config{}
	c.Storage.PartSize = 16 * 1024 * 1024
	c.Storage.UploadWorkers = 4
	c.Share.MaxUploadSize = 1000
	c.SetDefaults()

	if c.Storage.PartSize != 16*1024*1024 {
		t.Errorf("explicit part size overwritten: %d", c.Storage.PartSize)
	}
	if c.Storage.UploadWorkers != 4 {
		t.Errorf("explicit worker count overwritten: %d", c.Storage.UploadWorkers)
	}
	if c.Share.MaxUploadSize != 1000 {
		t.Errorf("explicit max upload size overwritten: %d", c.Share.MaxUploadSize)
	}
}

func TestDatabaseDSN(t *testing.T) {
	c := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "fileshare",
		Password: "secret",
		DBName:   "fileshare",
		SSLMode:  "disable",
	}

	want := "host=localhost port=5432 user=fileshare password=secret dbname=fileshare sslmode=disable"
	if got := c.DSN(); got != want {
		t.Errorf("DSN mismatch:\n got %s\nwant %s", got, want)
	}
}
