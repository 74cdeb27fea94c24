package auth

import (
	"net/http"
	"strings"

	"gametrack.gg/stats-api/app/interfaces/http/responses"
	"gametrack.gg/stats-api/config/environment_variables"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ContextAdminClaim = "adminClaim"

// AdminClaim is the token payload for administrative endpoints.
type AdminClaim struct {
	jwt.RegisteredClaims
}

type AuthService struct{}

func NewAuthService() *AuthService {
	return &AuthService{}
}

// AdminAuthMiddleware guards the administrative routes with a bearer JWT
// signed by the deployment's admin secret.
func (s *AuthService) AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code: "1f8a4c2e-6b3d-4e9a-8c5f-aa0b54ee6001",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code: "3d9b5e1a-7c4f-4f2b-9d6a-aa0b54ee6002",
			})
			return
		}

		token, err := jwt.ParseWithClaims(parts[1], &AdminClaim{}, func(token *jwt.Token) (interface{}, error) {
			return environment_variables.EnvironmentVariables.ADMIN_JWT_SECRET, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code: "5b2d7f3c-8e1a-4a6d-b0c9-aa0b54ee6003",
			})
			return
		}

		claims, ok := token.Claims.(*AdminClaim)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code: "7e4f9a5d-0c2b-4b8e-a1d3-aa0b54ee6004",
			})
			return
		}

		c.Set(ContextAdminClaim, claims)
		c.Next()
	}
}
