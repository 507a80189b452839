package middleware

import (
	"encoding/base64"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	contextUsuarioIDKey = "auth.usuario_id"
	contextRolesKey     = "auth.roles"

	RoleAdmin   = "ROLE_ADMIN"
	RoleManager = "ROLE_MANAGER"
)

// JWTAuth verifies the bearer token and loads identity into the gin context.
//
// A missing or invalid token does NOT abort the request: it just leaves the
// context anonymous, and the role middleware decides whether that is
// acceptable for the route. The secret is base64-encoded HMAC256 key material
// shared with the token issuer.
func JWTAuth(base64Secret string) gin.HandlerFunc {
	secret, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil || len(secret) == 0 {
		if base64Secret != "" && err != nil {
			log.Printf("[auth][middleware] invalid JWT_SECRET (not base64): %v", err)
		}
		// Without a secret every request stays anonymous.
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			log.Printf("[auth][middleware] token rejected err=%v", err)
			c.Next()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Next()
			return
		}
		sub, _ := claims.GetSubject()
		usuarioID, err := strconv.ParseInt(strings.TrimSpace(sub), 10, 64)
		if err != nil || usuarioID <= 0 {
			c.Next()
			return
		}

		c.Set(contextUsuarioIDKey, usuarioID)
		c.Set(contextRolesKey, extrairRoles(claims))
		c.Next()
	}
}

// extrairRoles reads the role claim in the formats the token issuer has used
// over time: "roles" list, "authorities" list, or a single "role" string.
// Every value is normalized to ROLE_<UPPER>.
func extrairRoles(claims jwt.MapClaims) []string {
	var raw []string

	appendList := func(v interface{}) {
		list, ok := v.([]interface{})
		if !ok {
			return
		}
		for _, item := range list {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	}

	appendList(claims["roles"])
	if len(raw) == 0 {
		appendList(claims["authorities"])
	}
	if len(raw) == 0 {
		if s, ok := claims["role"].(string); ok {
			raw = append(raw, s)
		}
	}

	seen := map[string]bool{}
	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if !strings.HasPrefix(r, "ROLE_") {
			r = "ROLE_" + strings.ToUpper(r)
		}
		if !seen[r] {
			seen[r] = true
			roles = append(roles, r)
		}
	}
	return roles
}

// CurrentUsuarioID returns the authenticated usuario id, when there is one.
func CurrentUsuarioID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(contextUsuarioIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// CurrentRoles returns the normalized roles of the authenticated caller.
func CurrentRoles(c *gin.Context) []string {
	v, ok := c.Get(contextRolesKey)
	if !ok {
		return nil
	}
	roles, _ := v.([]string)
	return roles
}

func HasRole(c *gin.Context, role string) bool {
	for _, r := range CurrentRoles(c) {
		if r == role {
			return true
		}
	}
	return false
}

func IsAdmin(c *gin.Context) bool {
	return HasRole(c, RoleAdmin)
}
