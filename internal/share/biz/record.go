package biz

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// timestampTokenLayout is a fixed-width, sortable encoding of the capture
// instant, so storage keys sort lexicographically by creation order.
const timestampTokenLayout = "20060102150405"

// ShareRecord is the unit of work of the upload pipeline and the persisted
// artifact describing one completed upload. Identity fields are assigned once
// at creation and never change; URL and CodeImage are set together when the
// access grant is issued and rendered, and are empty before that.
type ShareRecord struct {
	ID              string
	BaseName        string
	Extension       string
	CreatedAt       time.Time
	TimestampToken  string
	StorageKey      string
	SizeBytes       int64
	DurationMinutes int
	URL             string
	CodeImage       string
}

// NewShareRecord builds a record with all identity fields populated from the
// declared file name and byte length. Pure computation: name/size validation
// is the caller's responsibility.
func NewShareRecord(fileName string, sizeBytes int64, durationMinutes int) *ShareRecord {
	ext := filepath.Ext(fileName)
	base := strings.TrimSuffix(filepath.Base(fileName), ext)

	id := uuid.NewString()
	now := time.Now().UTC()
	token := now.Format(timestampTokenLayout)

	return &ShareRecord{
		ID:              id,
		BaseName:        base,
		Extension:       ext,
		CreatedAt:       now,
		TimestampToken:  token,
		StorageKey:      fmt.Sprintf("%s_%s_%s%s", base, id, token, ext),
		SizeBytes:       sizeBytes,
		DurationMinutes: durationMinutes,
	}
}

// ApplyGrant sets the issued URL and its rendered code image. The two fields
// transition together, never independently.
func (r *ShareRecord) ApplyGrant(url, codeImage string) {
	r.URL = url
	r.CodeImage = codeImage
}

func (r *ShareRecord) String() string {
	return fmt.Sprintf("id:%s name:%s%s size:%d duration:%dm",
		r.ID, r.BaseName, r.Extension, r.SizeBytes, r.DurationMinutes)
}
