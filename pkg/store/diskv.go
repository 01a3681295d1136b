package store

import (
	"context"

	"github.com/peterbourgon/diskv/v3"
)

// Logical persistence keys. The planner serializes whole collections
// through these, never individual items.
const (
	KeyDays   = "days"
	KeyPool   = "pool"
	KeyScroll = "scroll"
)

// Persistence is the synchronous key-value contract the planner persists
// through. Get reports whether the key existed; Set overwrites.
type Persistence interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// flatTransform keeps every key as a file directly under the base path.
func flatTransform(string) []string {
	return []string{}
}

func (p *persistence) Get(key string) (string, bool) {
	val, err := p.d.Read(key)
	if err != nil {
		return "", false
	}
	return string(val), true
}

func (p *persistence) Set(key, value string) error {
	return p.d.Write(key, []byte(value))
}
