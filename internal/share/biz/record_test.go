package biz

import (
	"strings"
	"testing"
	"time"
)

func TestNewShareRecord(t *testing.T) {
	record := NewShareRecord("report.pdf", 2048, 10)

	if record.BaseName != "report" {
		t.Errorf("expected base name %q, got %q", "report", record.BaseName)
	}
	if record.Extension != ".pdf" {
		t.Errorf("expected extension %q, got %q", ".pdf", record.Extension)
	}
	if record.SizeBytes != 2048 {
		t.Errorf("expected size 2048, got %d", record.SizeBytes)
	}
	if record.DurationMinutes != 10 {
		t.Errorf("expected duration 10, got %d", record.DurationMinutes)
	}
	if record.ID == "" {
		t.Error("id must be assigned at creation")
	}
	if record.URL != "" || record.CodeImage != "" {
		t.Error("url and code image must be empty before a grant is issued")
	}
}

func TestNewShareRecordStorageKey(t *testing.T) {
	record := NewShareRecord("report.pdf", 2048, 10)

	want := record.BaseName + "_" + record.ID + "_" + record.TimestampToken + record.Extension
	if record.StorageKey != want {
		t.Errorf("storage key mismatch:\n got %s\nwant %s", record.StorageKey, want)
	}
}

func TestNewShareRecordWithoutExtension(t *testing.T) {
	record := NewShareRecord("README", 10, 5)

	if record.Extension != "" {
		t.Errorf("expected empty extension, got %q", record.Extension)
	}
	if record.BaseName != "README" {
		t.Errorf("expected base name README, got %q", record.BaseName)
	}
	if !strings.HasSuffix(record.StorageKey, record.TimestampToken) {
		t.Errorf("key without extension must end with the timestamp token: %s", record.StorageKey)
	}
}

func TestNewShareRecordMultipleDots(t *testing.T) {
	record := NewShareRecord("archive.tar.gz", 10, 5)

	if record.Extension != ".gz" {
		t.Errorf("expected extension .gz, got %q", record.Extension)
	}
	if record.BaseName != "archive.tar" {
		t.Errorf("expected base name archive.tar, got %q", record.BaseName)
	}
}

func TestNewShareRecordKeysNeverCollide(t *testing.T) {
	// Identical inputs at (possibly) the same instant must still produce
	// distinct keys, distinguished by id.
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		record := NewShareRecord("report.pdf", 2048, 10)
		if seen[record.StorageKey] {
			t.Fatalf("duplicate storage key: %s", record.StorageKey)
		}
		seen[record.StorageKey] = true
	}
}

func TestTimestampToken(t *testing.T) {
	record := NewShareRecord("a.txt", 1, 1)

	if len(record.TimestampToken) != 14 {
		t.Errorf("timestamp token must be fixed-width yyyymmddhhmmss, got %q", record.TimestampToken)
	}

	parsed, err := time.Parse(timestampTokenLayout, record.TimestampToken)
	if err != nil {
		t.Fatalf("token does not parse back: %v", err)
	}
	if parsed.Unix() != record.CreatedAt.Truncate(time.Second).Unix() {
		t.Errorf("token %s does not encode createdAt %s", record.TimestampToken, record.CreatedAt)
	}
	if record.CreatedAt.Location() != time.UTC {
		t.Error("createdAt must be captured in UTC")
	}
}

func TestApplyGrant(t *testing.T) {
	record := NewShareRecord("a.txt", 1, 1)
	record.ApplyGrant("https://signed.example.com/a", "<svg/>")

	if record.URL != "https://signed.example.com/a" || record.CodeImage != "<svg/>" {
		t.Error("ApplyGrant must set url and code image together")
	}
}
