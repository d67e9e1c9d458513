package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

// Limits applied to every image before it is decoded.
const (
	MaxImageBytes  = 32 << 20
	MaxImagePixels = 4096 * 4096
)

// Set is the decoded asset set of one render.
type Set struct {
	images map[Key]image.Image
}

func NewSet(images map[Key]image.Image) *Set {
	return &Set{images: images}
}

// Get returns the image for k, nil when it was not planned.
func (s *Set) Get(k Key) image.Image {
	return s.images[k]
}

func (s *Set) Len() int { return len(s.images) }

// Cache keeps decoded images across renders, keyed by asset path. A cache
// must only be shared between loads against the same asset store.
type Cache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

func NewCache() *Cache {
	return &Cache{images: map[string]image.Image{}}
}

func (c *Cache) Get(path string) (image.Image, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	img, ok := c.images[path]
	return img, ok
}

// Add stores img unless another load got there first, and returns the
// image that is cached.
func (c *Cache) Add(path string, img image.Image) image.Image {
	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.images[path]; ok {
		return prev
	}
	c.images[path] = img
	return img
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Loader fetches and decodes asset sets.
type Loader struct {
	Cache *Cache
}

// Load resolves every request concurrently. Either all assets load or the
// first failure is returned as an *AssetNotFoundError.
func (l *Loader) Load(ctx context.Context, res Resolver, reqs []Request) (*Set, error) {
	g, ctx := errgroup.WithContext(ctx)
	var mu sync.Mutex
	images := make(map[Key]image.Image, len(reqs))
	for _, req := range reqs {
		g.Go(func() error {
			img, err := l.fetch(ctx, res, req)
			if err != nil {
				return &AssetNotFoundError{Key: req.Key, Path: req.Path, Err: err}
			}
			mu.Lock()
			images[req.Key] = img
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return NewSet(images), nil
}

func (l *Loader) fetch(ctx context.Context, res Resolver, req Request) (image.Image, error) {
	if req.Data != nil {
		return decode(req.Data)
	}
	if l.Cache != nil {
		if img, ok := l.Cache.Get(req.Path); ok {
			return img, nil
		}
	}
	b, err := read(ctx, res, req.Path)
	if err != nil {
		return nil, err
	}
	img, err := decode(b)
	if err != nil {
		return nil, err
	}
	if l.Cache != nil {
		img = l.Cache.Add(req.Path, img)
	}
	return img, nil
}

func read(ctx context.Context, res Resolver, path string) ([]byte, error) {
	rc, err := res.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	b, err := io.ReadAll(io.LimitReader(rc, MaxImageBytes+1))
	if err != nil {
		return nil, err
	}
	if len(b) > MaxImageBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrAssetTooLarge, MaxImageBytes)
	}
	return b, nil
}

// decode checks the declared dimensions before allocating the image.
func decode(b []byte) (image.Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrAssetTooLarge, cfg.Width, cfg.Height)
	}
	img, err := imaging.Decode(bytes.NewReader(b), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}
