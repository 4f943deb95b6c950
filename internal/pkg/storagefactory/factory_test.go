package storagefactory

import (
	"context"
	"io"
	"strings"
	"testing"

	"gother/internal/config"
)

func TestNewStorage_Local(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		cfg     *config.StorageConfig
		wantErr bool
	}{
		{
			name: "valid local storage config",
			cfg: &config.StorageConfig{
				Type: "local",
				Local: &config.LocalConfig{
					BasePath: tmpDir,
					BaseURL:  "http://localhost:8080/media",
				},
			},
			wantErr: false,
		},
		{
			name:    "missing local config",
			cfg:     &config.StorageConfig{Type: "local"},
			wantErr: true,
		},
		{
			name:    "unsupported type",
			cfg:     &config.StorageConfig{Type: "ftp"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStorage(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewStorage() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if s.GetStorageType() != "local" {
				t.Errorf("GetStorageType() = %s, want local", s.GetStorageType())
			}
		})
	}
}

func TestLocalStorage_RoundTrip(t *testing.T) {
	cfg := &config.StorageConfig{
		Type: "local",
		Local: &config.LocalConfig{
			BasePath: t.TempDir(),
			BaseURL:  "http://localhost:8080/media",
		},
	}

	s, err := NewStorage(cfg)
	if err != nil {
		t.Fatalf("NewStorage() error = %v", err)
	}

	ctx := context.Background()
	key := "banners/test.png"
	content := "fake png bytes"

	url, err := s.Upload(ctx, key, strings.NewReader(content), "image/png")
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if !strings.HasSuffix(url, key) {
		t.Errorf("Upload() url = %s, want suffix %s", url, key)
	}

	exists, err := s.Exists(ctx, key)
	if err != nil || !exists {
		t.Fatalf("Exists() = %v, %v, want true", exists, err)
	}

	rc, err := s.Download(ctx, key)
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != content {
		t.Errorf("Download() = %q, want %q", data, content)
	}

	if err := s.Delete(ctx, key); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	exists, _ = s.Exists(ctx, key)
	if exists {
		t.Error("object still exists after Delete()")
	}
	// deleting a missing object is fine
	if err := s.Delete(ctx, key); err != nil {
		t.Errorf("Delete() on missing object error = %v", err)
	}
}
