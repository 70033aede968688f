package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/avolkov/photovault/internal/config"
)

// Store abstracts where photo bytes live. Keys are namespaced as
// "{user_id}/{filename}" by the service layer.
type Store interface {
	Type() string
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// PresignedURL returns a time-limited URL granting read access to key.
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	// Open reads the object back; only the local store supports it, the S3
	// store hands out presigned URLs instead.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// SignedURLVerifier is implemented by stores whose presigned URLs are
// checked by our own serving route instead of by the object store. The S3
// store never serves through us, so it does not implement it.
type SignedURLVerifier interface {
	VerifySignedURL(key, exp, sig string) error
}

type Factory func(args interface{}) (Store, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

func Register(name string, factory Factory) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || factory == nil {
		return
	}
	registryMu.Lock()
	registry[key] = factory
	registryMu.Unlock()
}

func New(cfg config.FileStoreConfig) (Store, error) {
	key := strings.ToLower(strings.TrimSpace(cfg.Type))
	if key == "" {
		return nil, fmt.Errorf("file_store.type is required")
	}
	registryMu.RLock()
	factory := registry[key]
	registryMu.RUnlock()
	if factory == nil {
		return nil, fmt.Errorf("unsupported file store type: %s", cfg.Type)
	}
	return factory(cfg.Data)
}

func decodeConfig(args interface{}, dst interface{}) error {
	if args == nil {
		return fmt.Errorf("store config is required")
	}
	data, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode store config: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode store config: %w", err)
	}
	return nil
}

// ValidateKey accepts exactly "{user_id}/{filename}" shaped keys and rejects
// anything that could escape the namespace.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("file key is required")
	}
	parts := strings.Split(key, "/")
	if len(parts) != 2 {
		return fmt.Errorf("invalid file key")
	}
	for _, part := range parts {
		if part == "" || part == "." || part == ".." || strings.Contains(part, "\\") {
			return fmt.Errorf("invalid file key")
		}
	}
	return nil
}
