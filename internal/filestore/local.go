package filestore

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type localConfig struct {
	Dir       string `json:"dir"`
	PublicURL string `json:"public_url"`
	// SignSecret keys the URL signatures; when empty a random one is
	// generated, invalidating outstanding URLs on restart.
	SignSecret string `json:"sign_secret"`
}

type localStore struct {
	dir        string
	publicURL  string
	signSecret []byte
}

func init() {
	Register("local", createLocalStore)
}

func createLocalStore(args interface{}) (Store, error) {
	config := &localConfig{}
	if err := decodeConfig(args, config); err != nil {
		return nil, err
	}
	if config.Dir == "" {
		return nil, fmt.Errorf("local store dir is required")
	}
	secret := []byte(config.SignSecret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, err
		}
	}
	return &localStore{dir: config.Dir, publicURL: config.PublicURL, signSecret: secret}, nil
}

func (s *localStore) Type() string {
	return "local"
}

func (s *localStore) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_ = ctx
	_ = size
	_ = contentType
	if err := ValidateKey(key); err != nil {
		return err
	}
	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, r)
	return err
}

func (s *localStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	_ = ctx
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	return os.Open(filepath.Join(s.dir, filepath.FromSlash(key)))
}

// PresignedURL points at the serving route with an expiry and an HMAC over
// key+expiry; the route rejects anything unsigned, tampered or expired, so
// keys stay private to whoever the gallery handed the URL to.
func (s *localStore) PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	_ = ctx
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	exp := strconv.FormatInt(time.Now().Add(ttl).Unix(), 10)
	base := "/api/v1/files/"
	if s.publicURL != "" {
		base = strings.TrimSuffix(s.publicURL, "/") + "/"
	}
	return base + escapeKey(key) + "?exp=" + exp + "&sig=" + s.sign(key, exp), nil
}

// VerifySignedURL checks the signature and expiry minted by PresignedURL.
func (s *localStore) VerifySignedURL(key, exp, sig string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	expiry, err := strconv.ParseInt(exp, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid url signature")
	}
	if time.Now().Unix() > expiry {
		return fmt.Errorf("url expired")
	}
	expected := s.sign(key, exp)
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return fmt.Errorf("invalid url signature")
	}
	return nil
}

func (s *localStore) sign(key, exp string) string {
	mac := hmac.New(sha256.New, s.signSecret)
	_, _ = io.WriteString(mac, key)
	_, _ = io.WriteString(mac, "\n")
	_, _ = io.WriteString(mac, exp)
	return hex.EncodeToString(mac.Sum(nil))
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
