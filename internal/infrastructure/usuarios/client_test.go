package usuarios

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"inprout_docs/internal/domain/entities"
)

func TestNewClient_MissingURL(t *testing.T) {
	if _, err := NewClient("", time.Second, time.Minute, 10); !errors.Is(err, ErrMissingUsuarioServiceURL) {
		t.Fatalf("expected ErrMissingUsuarioServiceURL, got %v", err)
	}
}

func TestClient_BuscarUsuario(t *testing.T) {
	t.Run("resolves and caches", func(t *testing.T) {
		var hits int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			if r.URL.Path != "/usuarios/7" {
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
			_ = json.NewEncoder(w).Encode(entities.Usuario{ID: 7, Nome: "Maria"})
		}))
		defer srv.Close()

		c, err := NewClient(srv.URL, time.Second, time.Minute, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for i := 0; i < 3; i++ {
			u, err := c.BuscarUsuario(context.Background(), 7)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if u.Nome != "Maria" {
				t.Fatalf("unexpected usuario %+v", u)
			}
		}
		if atomic.LoadInt32(&hits) != 1 {
			t.Fatalf("expected a single upstream hit, got %d", hits)
		}
	})

	t.Run("ttl expiry refetches", func(t *testing.T) {
		var hits int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			_ = json.NewEncoder(w).Encode(entities.Usuario{ID: 7, Nome: "Maria"})
		}))
		defer srv.Close()

		c, _ := NewClient(srv.URL, time.Second, 10*time.Millisecond, 10)

		if _, err := c.BuscarUsuario(context.Background(), 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
		if _, err := c.BuscarUsuario(context.Background(), 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if atomic.LoadInt32(&hits) != 2 {
			t.Fatalf("expected refetch after ttl, got %d hits", hits)
		}
	})

	t.Run("size bound evicts", func(t *testing.T) {
		var hits int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			_ = json.NewEncoder(w).Encode(entities.Usuario{ID: 1, Nome: "X"})
		}))
		defer srv.Close()

		c, _ := NewClient(srv.URL, time.Second, time.Minute, 1)

		_, _ = c.BuscarUsuario(context.Background(), 1)
		_, _ = c.BuscarUsuario(context.Background(), 2) // evicts 1
		_, _ = c.BuscarUsuario(context.Background(), 1)

		if atomic.LoadInt32(&hits) != 3 {
			t.Fatalf("expected 3 upstream hits with cache size 1, got %d", hits)
		}
	})

	t.Run("not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c, _ := NewClient(srv.URL, time.Second, time.Minute, 10)
		if _, err := c.BuscarUsuario(context.Background(), 7); !errors.Is(err, ErrUsuarioNaoEncontrado) {
			t.Fatalf("expected ErrUsuarioNaoEncontrado, got %v", err)
		}
	})
}
