package store

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"

	"tableflip.dev/xisnul/pkg/browser"
	"tableflip.dev/xisnul/pkg/logging"
)

// ErrDisabled is returned by commands that need the preference store when
// persistence is turned off.
var ErrDisabled = errors.New("store: persistence disabled (set persist: true)")

// Config locates the store on disk.
type Config interface {
	BasePath() string
}

// Persistence stores reading preferences per dataset.
type Persistence interface {
	Load(ctx context.Context) (browser.Prefs, error)
	Save(ctx context.Context, p browser.Prefs) error
	Update(ctx context.Context, fn func(*browser.Prefs) error) (browser.Prefs, error)
	Watch(ctx context.Context) (<-chan Event, error)
}

// Open returns a diskv-backed Persistence for the dataset identified by
// dataset ("" for the bundled one).
func Open(cfg Config, dataset string, logger *zap.Logger) (Persistence, error) {
	if cfg == nil {
		return nil, errors.New("store: config required")
	}
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			// CacheSizeMax stays 0: other processes may rewrite the file.
		}),
		basePath: basePath,
		key:      toKey(dataset),
		log:      logging.OrNop(logger),
	}, nil
}

type persistence struct {
	mu       sync.Mutex
	d        *diskv.Diskv
	basePath string
	key      string
	log      *zap.Logger
}

func (p *persistence) Load(ctx context.Context) (browser.Prefs, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.read()
}

func (p *persistence) read() (browser.Prefs, error) {
	prefs := browser.Prefs{}
	if !p.d.Has(p.key) {
		return prefs, nil
	}
	val, err := p.d.Read(p.key)
	if err != nil {
		return prefs, fmt.Errorf("store: read %s: %w", p.key, err)
	}
	if len(val) == 0 {
		return prefs, nil
	}
	if err := json.Unmarshal(val, &prefs); err != nil {
		return prefs, fmt.Errorf("store: decode %s: %w", p.key, err)
	}
	return prefs, nil
}

func (p *persistence) Save(ctx context.Context, prefs browser.Prefs) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.write(prefs)
}

func (p *persistence) write(prefs browser.Prefs) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	if err := p.d.Write(p.key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", p.key, err)
	}
	p.log.Debug("prefs saved",
		zap.String("key", p.key),
		zap.Int("favorites", len(prefs.Favorites)),
		zap.Int("bookmarks", len(prefs.Bookmarks)))
	return nil
}

// Update applies fn to the stored prefs under the store lock and saves the
// result.
func (p *persistence) Update(ctx context.Context, fn func(*browser.Prefs) error) (browser.Prefs, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	prefs, err := p.read()
	if err != nil {
		return prefs, err
	}
	if err := fn(&prefs); err != nil {
		return prefs, err
	}
	return prefs, p.write(prefs)
}

const prefsBucket = "prefs"

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `prefs-<dataset>`.
func toKey(dataset string) string {
	return fmt.Sprintf("%s-%s", prefsBucket, toDataset(dataset))
}

func toDataset(s string) string {
	if s == "" {
		return "bundled"
	}
	sum := md5.Sum([]byte(s))
	return fmt.Sprintf("%x", sum[:8])
}
