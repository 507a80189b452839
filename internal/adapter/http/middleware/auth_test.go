package middleware

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuth(base64.StdEncoding.EncodeToString(testSecret)))
	r.GET("/protegido", RequireAuthenticated(), func(c *gin.Context) {
		id, _ := CurrentUsuarioID(c)
		c.JSON(http.StatusOK, gin.H{"usuarioId": id, "roles": CurrentRoles(c)})
	})
	r.GET("/gestao", RequireRoles(RoleManager, RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func signedToken(t *testing.T, claims jwt.MapClaims, key []byte) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return s
}

func TestJWTAuth(t *testing.T) {
	r := newAuthRouter()

	t.Run("missing token is anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong signature is anonymous", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"sub": "7"}, []byte("another-key-another-key-12345678"))
		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("non-numeric subject is anonymous", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"sub": "maria"}, testSecret)
		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token loads identity", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"sub": "7", "roles": []any{"documentista"}}, testSecret)
		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRequireRoles(t *testing.T) {
	r := newAuthRouter()

	t.Run("role claim variants are normalized", func(t *testing.T) {
		for _, claims := range []jwt.MapClaims{
			{"sub": "7", "roles": []any{"MANAGER"}},
			{"sub": "7", "roles": []any{"ROLE_MANAGER"}},
			{"sub": "7", "authorities": []any{"manager"}},
			{"sub": "7", "role": "admin"},
		} {
			token := signedToken(t, claims, testSecret)
			req := httptest.NewRequest(http.MethodGet, "/gestao", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 for claims %v, got %d", claims, w.Code)
			}
		}
	})

	t.Run("authenticated without role is forbidden", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"sub": "7", "roles": []any{"DOCUMENTISTA"}}, testSecret)
		req := httptest.NewRequest(http.MethodGet, "/gestao", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("anonymous is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/gestao", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
