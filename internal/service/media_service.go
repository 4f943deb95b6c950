package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"gother/internal/pkg/id"
	"gother/internal/pkg/storage"
)

var ErrUnsupportedMedia = errors.New("unsupported media type")

// mediaKinds maps an upload kind to its key prefix. Keys are always
// server-generated so client filenames never reach the backend.
var mediaKinds = map[string]string{
	"banner":  "banners",
	"preview": "previews",
	"asset":   "assets",
}

// allowedMediaExts is the closed set of extensions the store accepts
var allowedMediaExts = map[string]bool{
	".svga": true, ".pag": true, ".vap": true, ".json": true,
	".mp4": true, ".webm": true,
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// MediaService stores uploaded gift media and hands out download URLs.
type MediaService struct {
	storage storage.Storage
}

// NewMediaService creates the media service
func NewMediaService(st storage.Storage) *MediaService {
	return &MediaService{storage: st}
}

// Enabled reports whether a storage backend is configured
func (s *MediaService) Enabled() bool {
	return s.storage != nil
}

// Upload stores a media file and returns its public URL
func (s *MediaService) Upload(ctx context.Context, kind, filename string, data io.Reader) (string, error) {
	if s.storage == nil {
		return "", errors.New("media storage not configured")
	}

	prefix, ok := mediaKinds[kind]
	if !ok {
		return "", fmt.Errorf("unknown media kind: %s", kind)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedMediaExts[ext] {
		return "", ErrUnsupportedMedia
	}

	key := fmt.Sprintf("%s/%s%s", prefix, id.New(), ext)
	url, err := s.storage.Upload(ctx, key, data, storage.ContentTypeByExt(ext))
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("media upload failed")
		return "", err
	}

	log.Info().Str("key", key).Str("kind", kind).Msg("media uploaded")
	return url, nil
}

// DownloadURL returns a time-limited URL for a stored asset
func (s *MediaService) DownloadURL(ctx context.Context, key string) (string, error) {
	if s.storage == nil {
		return "", errors.New("media storage not configured")
	}
	return s.storage.GetPresignedDownloadURL(ctx, key, storage.DefaultPresignExpiry)
}
