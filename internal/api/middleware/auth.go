package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/anonimax/anonimax-server/internal/pkg/jwt"
	"github.com/anonimax/anonimax-server/internal/pkg/response"
)

const (
	UserIDKey  = "userID"
	IsAdminKey = "isAdmin"
)

// Auth middleware de autenticação JWT
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.AuthError(c, "Forneça suas credenciais")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			response.AuthError(c, "Formato de autenticação inválido")
			c.Abort()
			return
		}

		claims, err := jwt.ParseToken(tokenString, jwtSecret)
		if err != nil {
			response.AuthError(c, "Sessão inválida ou expirada")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(IsAdminKey, claims.IsAdmin)
		c.Next()
	}
}

// OptionalAuth autenticação opcional (não exige login)
func OptionalAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.Next()
			return
		}

		claims, err := jwt.ParseToken(tokenString, jwtSecret)
		if err == nil {
			c.Set(UserIDKey, claims.UserID)
			c.Set(IsAdminKey, claims.IsAdmin)
		}

		c.Next()
	}
}

// AdminAuth exige o claim de operador no token. O papel vem do banco na
// emissão do token, nunca de um segredo fixo.
func AdminAuth(jwtSecret string) gin.HandlerFunc {
	auth := Auth(jwtSecret)
	return func(c *gin.Context) {
		auth(c)
		if c.IsAborted() {
			return
		}

		isAdmin, _ := c.Get(IsAdminKey)
		if admin, ok := isAdmin.(bool); !ok || !admin {
			response.PermissionError(c, "Acesso restrito a operadores")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID lê o ID do usuário autenticado do contexto
func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := userID.(int64)
	return id, ok
}
