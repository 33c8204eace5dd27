// Package assets loads the sprite images before a session starts and
// records, per asset, whether the image is usable or the renderer must fall
// back to drawn shapes.
package assets

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"path"
	"slices"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/plus3/roadrush/effect"
	"github.com/plus3/roadrush/vehicle"
)

// Status is the outcome of loading one asset.
type Status uint8

const (
	StatusFallback Status = iota
	StatusReady
)

func (s Status) String() string {
	if s == StatusReady {
		return "ready"
	}
	return "fallback"
}

// SteeringWheel is the image of the on-screen wheel.
const SteeringWheel = "steering-wheel"

// Asset is one loaded (or not) image.
type Asset struct {
	Name   string
	Path   string
	Status Status
	Image  image.Image
	// Reason explains a fallback.
	Reason string
}

// DefaultNames lists every image the game can use.
func DefaultNames() []string {
	names := []string{string(vehicle.ModelPlayer)}
	for _, m := range vehicle.EnemyModels {
		names = append(names, string(m))
	}
	return append(names, effect.ExplosionSprite, SteeringWheel)
}

// Set is the result of a load. It is read-only once Load returns.
type Set struct {
	assets map[string]*Asset
}

// Get returns the asset registered under name.
func (s *Set) Get(name string) (*Asset, bool) {
	if s == nil {
		return nil, false
	}
	a, ok := s.assets[name]
	return a, ok
}

// Ready reports whether name has a usable image.
func (s *Set) Ready(name string) bool {
	a, ok := s.Get(name)
	return ok && a.Status == StatusReady
}

// All returns the assets sorted by name.
func (s *Set) All() []*Asset {
	if s == nil {
		return nil
	}
	out := make([]*Asset, 0, len(s.assets))
	for _, a := range s.assets {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b *Asset) int {
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})
	return out
}

// Counts returns how many assets are ready and how many fell back.
func (s *Set) Counts() (ready, fallback int) {
	for _, a := range s.All() {
		if a.Status == StatusReady {
			ready++
		} else {
			fallback++
		}
	}
	return ready, fallback
}

// Options tune Load.
type Options struct {
	// Concurrency bounds parallel decodes. Zero means 4.
	Concurrency int
	Logger      zerolog.Logger
}

// Load decodes <name>.png for every name from fsys concurrently. A missing
// or undecodable image never fails the load; it is recorded as a fallback.
// Load only returns an error when ctx ends first. A nil fsys marks every
// asset as a fallback.
func Load(ctx context.Context, fsys fs.FS, names []string, opts Options) (*Set, error) {
	limit := opts.Concurrency
	if limit <= 0 {
		limit = 4
	}

	set := &Set{assets: make(map[string]*Asset, len(names))}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a := loadOne(fsys, name)

			mu.Lock()
			set.assets[name] = a
			mu.Unlock()

			ev := opts.Logger.Debug()
			if a.Status == StatusFallback {
				ev = opts.Logger.Warn().Str("reason", a.Reason)
			}
			ev.Str("asset", name).Stringer("status", a.Status).Msg("asset loaded")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading assets: %w", err)
	}
	return set, nil
}

func loadOne(fsys fs.FS, name string) *Asset {
	a := &Asset{Name: name, Path: path.Join(".", name+".png")}
	if fsys == nil {
		a.Reason = "no asset directory"
		return a
	}

	f, err := fsys.Open(a.Path)
	if err != nil {
		a.Reason = err.Error()
		return a
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		a.Reason = fmt.Sprintf("decode %s: %v", a.Path, err)
		return a
	}

	a.Image = img
	a.Status = StatusReady
	return a
}
