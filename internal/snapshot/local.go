package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
)

// Local stores one <key>.json file per tracked key under BaseDir. Writes are
// serialized by the single-threaded dispatch model, so no locking is needed.
type Local struct {
	BaseDir string
}

func NewLocal(baseDir string) *Local {
	return &Local{BaseDir: baseDir}
}

func (l *Local) Write(ctx context.Context, key string, v any) error {
	_ = ctx

	if err := os.MkdirAll(l.BaseDir, 0o755); err != nil {
		return err
	}

	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(l.path(key), b, 0o644)
}

func (l *Local) Read(ctx context.Context, key string, dst any) error {
	_ = ctx

	b, err := os.ReadFile(l.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal(b, dst)
}

func (l *Local) Delete(ctx context.Context, key string) error {
	_ = ctx

	err := os.Remove(l.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (l *Local) path(key string) string {
	return filepath.Join(l.BaseDir, safeKey(key)+".json")
}

// safeKey keeps keys from escaping BaseDir.
func safeKey(key string) string {
	key = filepath.Base(key)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, key)
}

func (l *Local) String() string { return fmt.Sprintf("local(%s)", l.BaseDir) }
