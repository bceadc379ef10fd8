package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUnitID   = "unitID"
	ContextUserName = "userName"
)

// AuthMiddleware exige um Bearer HS256 com sub e unidadeId; o nome é opcional e
// vai para as anotações de cancelamento.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid_authorization_header")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid_token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "invalid_token_claims")
			return
		}

		userID, ok1 := claims["sub"].(string)
		unitID, ok2 := claims["unidadeId"].(string)
		if !ok1 || !ok2 || userID == "" || unitID == "" {
			abortUnauthorized(c, "invalid_token_payload")
			return
		}
		name, _ := claims["nome"].(string)

		c.Set(ContextUserID, userID)
		c.Set(ContextUnitID, unitID)
		c.Set(ContextUserName, name)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code string) {
	httperr.Unauthorized(c, code, "Não autorizado")
	c.Abort()
}
