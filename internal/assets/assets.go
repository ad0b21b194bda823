// Package assets fetches static assets (models) from the local asset root
// or over HTTP, and optionally watches local files for changes.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

// Asset errors.
var (
	ErrUnsupportedScheme = errors.New("unsupported asset scheme")
	ErrHTTPStatus        = errors.New("unexpected HTTP status")
)

// Fetcher returns the raw bytes of an asset.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, path string) ([]byte, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, path string) ([]byte, error) {
	return f(ctx, path)
}

// FileFetcher serves paths like "/model.stl" from a root directory, the way
// a web server serves its public folder.
type FileFetcher struct {
	fs   afero.Fs
	root string
}

// NewFileFetcher creates a fetcher rooted at root on fs.
func NewFileFetcher(fs afero.Fs, root string) *FileFetcher {
	return &FileFetcher{fs: fs, root: root}
}

// Resolve maps an asset path to its location on the filesystem. Paths cannot
// climb above the root.
func (f *FileFetcher) Resolve(path string) string {
	clean := filepath.Clean("/" + filepath.FromSlash(path))
	return filepath.Join(f.root, clean)
}

// Fetch reads the whole file.
func (f *FileFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(f.fs, f.Resolve(path))
	if err != nil {
		return nil, fmt.Errorf("reading asset %s: %w", path, err)
	}
	return data, nil
}

// HTTPFetcher downloads absolute http(s) URLs. The zero client has no
// timeout; cancellation comes from the context.
type HTTPFetcher struct {
	Client *http.Client
}

// Fetch performs a GET and returns the body of a 2xx response.
func (h *HTTPFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %d", ErrHTTPStatus, path, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// Manager routes asset paths to fetchers by URL scheme. Paths without a
// scheme go to the local fetcher. Manager keeps no cache: every call is a
// real fetch, so reloads always see fresh bytes.
type Manager struct {
	local   Fetcher
	schemes map[string]Fetcher
	mu      sync.RWMutex

	// Stats
	fetches  int
	failures int
}

// NewManager creates a manager that serves scheme-less paths from local and
// http/https URLs with a default HTTPFetcher.
func NewManager(local Fetcher) *Manager {
	web := &HTTPFetcher{}
	return &Manager{
		local: local,
		schemes: map[string]Fetcher{
			"http":  web,
			"https": web,
		},
	}
}

// Register sets the fetcher for a URL scheme, replacing any existing one.
func (m *Manager) Register(scheme string, f Fetcher) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schemes[strings.ToLower(scheme)] = f
}

// Fetch resolves the fetcher for path and fetches it.
func (m *Manager) Fetch(ctx context.Context, path string) ([]byte, error) {
	f, err := m.route(path)
	if err == nil {
		var data []byte
		data, err = f.Fetch(ctx, path)
		if err == nil {
			m.record(false)
			return data, nil
		}
	}
	m.record(true)
	return nil, err
}

func (m *Manager) route(path string) (Fetcher, error) {
	u, err := url.Parse(path)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 { // "C:\..." parses as scheme "c"
		return m.local, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.schemes[strings.ToLower(u.Scheme)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, u.Scheme)
	}
	return f, nil
}

func (m *Manager) record(failed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetches++
	if failed {
		m.failures++
	}
}

// Stats returns how many fetches ran and how many of them failed.
func (m *Manager) Stats() (fetches, failures int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fetches, m.failures
}

// IsRemote reports whether path is fetched over the network.
func IsRemote(path string) bool {
	u, err := url.Parse(path)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}
