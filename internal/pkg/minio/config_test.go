package minio

import (
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				Endpoint:        "localhost:9000",
				AccessKeyID:     "access",
				SecretAccessKey: "secret",
			},
			wantErr: false,
		},
		{
			name:    "missing endpoint",
			cfg:     Config{AccessKeyID: "access", SecretAccessKey: "secret"},
			wantErr: true,
		},
		{
			name:    "missing access key",
			cfg:     Config{Endpoint: "localhost:9000", SecretAccessKey: "secret"},
			wantErr: true,
		},
		{
			name:    "missing secret key",
			cfg:     Config{Endpoint: "localhost:9000", AccessKeyID: "access"},
			wantErr: true,
		},
		{
			name: "part size below S3 minimum",
			cfg: Config{
				Endpoint:        "localhost:9000",
				AccessKeyID:     "access",
				SecretAccessKey: "secret",
				PartSize:        1024,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigSetDefaults(t *testing.T) {
	cfg := &Config{
		Endpoint:        "localhost:9000",
		AccessKeyID:     "access",
		SecretAccessKey: "secret",
	}
	cfg.SetDefaults()

	if cfg.PartSize != DefaultPartSize {
		t.Errorf("expected default part size %d, got %d", DefaultPartSize, cfg.PartSize)
	}
	if cfg.UploadWorkers != DefaultUploadWorkers {
		t.Errorf("expected default upload workers %d, got %d", DefaultUploadWorkers, cfg.UploadWorkers)
	}
}

func TestConfigSetDefaultsKeepsExplicitPolicy(t *testing.T) {
	cfg := &Config{
		Endpoint:        "localhost:9000",
		AccessKeyID:     "access",
		SecretAccessKey: "secret",
		PartSize:        16 * 1024 * 1024,
		UploadWorkers:   4,
	}
	cfg.SetDefaults()

	if cfg.PartSize != 16*1024*1024 {
		t.Errorf("explicit part size overwritten: %d", cfg.PartSize)
	}
	if cfg.UploadWorkers != 4 {
		t.Errorf("explicit worker count overwritten: %d", cfg.UploadWorkers)
	}
}
