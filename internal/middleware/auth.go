package middleware

import (
	"net/http"
	"strings"

	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/apierror"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/policy"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/security"

	"github.com/gin-gonic/gin"
)

const ClaimsKey = "claims"

// JWTAuth validates the Bearer token on every protected route.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Authentication required"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims, err := security.VerifyToken(secret, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalid or expired"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireRole rejects requests whose token role is not in the allowed list.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims, ok := c.MustGet(ClaimsKey).(*security.Claims)
		if !ok || !allowed[claims.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Insufficient permissions"))
			return
		}
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *security.Claims {
	claims, _ := c.MustGet(ClaimsKey).(*security.Claims)
	return claims
}

// GetActor converts the verified claims into a policy actor.
func GetActor(c *gin.Context) policy.Actor {
	claims := GetClaims(c)
	if claims == nil {
		return policy.Actor{}
	}
	return policy.Actor{
		ID:       claims.EmployeeID,
		Username: claims.Username,
		Role:     claims.Role,
	}
}
