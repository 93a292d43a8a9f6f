package catalog

import (
	"fmt"
	"io/fs"
	"path"
	"sync"

	"github.com/patrickmn/go-cache"
)

// Provider loads tables from a file system and memoizes them by path.
// Dataset files are build artifacts, so entries never expire.
// It is safe for concurrent use.
type Provider struct {
	fsys  fs.FS
	memo  *cache.Cache
	mu    sync.Mutex // serializes cache misses so a file is read once
	loads int
}

// NewProvider creates a provider reading from fsys, typically os.DirFS(dataDir).
func NewProvider(fsys fs.FS) *Provider {
	return &Provider{
		fsys: fsys,
		memo: cache.New(cache.NoExpiration, 0),
	}
}

// Main loads a main (categorized) table.
func (p *Provider) Main(name string) (*Table, error) {
	return p.load(name, MainTable)
}

// Trending loads the trending table.
func (p *Provider) Trending(name string) (*Table, error) {
	return p.load(name, TrendingTable)
}

// Preload reads the trending table and every variant up front so that a
// broken dataset fails at startup instead of on first selection.
func (p *Provider) Preload(trending string, variants []Variant) error {
	if _, err := p.Trending(trending); err != nil {
		return err
	}
	for _, v := range variants {
		if _, err := p.Main(v.File); err != nil {
			return fmt.Errorf("variant %q: %w", v.Description, err)
		}
	}
	return nil
}

// Loads returns how many files have been read from storage.
func (p *Provider) Loads() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loads
}

func (p *Provider) load(name string, kind TableKind) (*Table, error) {
	name = path.Clean(name)
	key := kind.String() + ":" + name

	if t, ok := p.memo.Get(key); ok {
		return t.(*Table), nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if t, ok := p.memo.Get(key); ok {
		return t.(*Table), nil
	}

	f, err := p.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s table: %w", kind, err)
	}
	defer f.Close()

	p.loads++
	t, err := ReadTable(f, name, kind)
	if err != nil {
		return nil, err
	}

	p.memo.Set(key, t, cache.NoExpiration)
	return t, nil
}
