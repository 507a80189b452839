package usuarios

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"inprout_docs/internal/domain/entities"
	"inprout_docs/internal/usecase/interfaces"
)

var (
	ErrMissingUsuarioServiceURL = errors.New("missing USUARIO_SERVICE_URL")
	ErrUsuarioNaoEncontrado     = errors.New("usuario not found")
)

// Client resolves usuarios from the user directory, caching each id for TTL
// with a bounded entry count. Lookups are enrichment only, so stale data
// within the TTL window is acceptable.
type Client struct {
	baseURL string
	httpc   *http.Client
	cache   *usuarioCache
}

var _ interfaces.IUsuarioLookup = (*Client)(nil)

func NewClient(baseURL string, timeout, cacheTTL time.Duration, cacheSize int) (*Client, error) {
	if baseURL == "" {
		return nil, ErrMissingUsuarioServiceURL
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		cache:   newUsuarioCache(cacheTTL, cacheSize),
	}, nil
}

func (c *Client) BuscarUsuario(ctx context.Context, id int64) (entities.Usuario, error) {
	if u, ok := c.cache.get(id); ok {
		return u, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/usuarios/%d", c.baseURL, id), nil)
	if err != nil {
		return entities.Usuario{}, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return entities.Usuario{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		io.Copy(io.Discard, resp.Body)
		return entities.Usuario{}, ErrUsuarioNaoEncontrado
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return entities.Usuario{}, fmt.Errorf("usuario service returned %d", resp.StatusCode)
	}

	var u entities.Usuario
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return entities.Usuario{}, err
	}

	c.cache.put(id, u)
	return u, nil
}

type cacheEntry struct {
	usuario   entities.Usuario
	expiresAt time.Time
}

// usuarioCache is a plain TTL map with a size cap. When full it drops expired
// entries first, then the entry closest to expiry.
type usuarioCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	maxSize int
	entries map[int64]cacheEntry
}

func newUsuarioCache(ttl time.Duration, maxSize int) *usuarioCache {
	if maxSize <= 0 {
		maxSize = 1
	}
	return &usuarioCache{
		ttl:     ttl,
		maxSize: maxSize,
		entries: make(map[int64]cacheEntry),
	}
}

func (c *usuarioCache) get(id int64) (entities.Usuario, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[id]
	if !ok {
		return entities.Usuario{}, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, id)
		return entities.Usuario{}, false
	}
	return entry.usuario, true
}

func (c *usuarioCache) put(id int64, u entities.Usuario) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxSize {
		c.evictLocked()
	}
	c.entries[id] = cacheEntry{usuario: u, expiresAt: time.Now().Add(c.ttl)}
}

func (c *usuarioCache) evictLocked() {
	now := time.Now()
	for id, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, id)
		}
	}
	if len(c.entries) < c.maxSize {
		return
	}

	var oldest int64
	var oldestAt time.Time
	first := true
	for id, entry := range c.entries {
		if first || entry.expiresAt.Before(oldestAt) {
			oldest, oldestAt, first = id, entry.expiresAt, false
		}
	}
	if !first {
		delete(c.entries, oldest)
	}
}
