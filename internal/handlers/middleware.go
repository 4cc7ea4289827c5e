package handlers

import (
	"net/http"
	"strings"

	"github.com/casdoor/casdoor-go-sdk/casdoorsdk"
	"github.com/gin-gonic/gin"
	"github.com/nederlandse-workbook/learning-service/internal/config"
	"github.com/nederlandse-workbook/learning-service/internal/utils"
)

const contextUserID = "user_id"

// NewAuthMiddleware validates the bearer token against the identity provider
// and stores the subject id on the request context. Every route behind it can
// assume currentUserID is non-empty.
func NewAuthMiddleware(cfg config.AuthConfig, logger utils.Logger) gin.HandlerFunc {
	client := casdoorsdk.NewClient(
		cfg.CasdoorEndpoint,
		cfg.CasdoorClientID,
		cfg.CasdoorClientSecret,
		cfg.CasdoorCertificate,
		cfg.CasdoorOrganization,
		cfg.CasdoorApplication,
	)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "missing bearer token",
				Code:    "UNAUTHORIZED",
			})
			return
		}

		claims, err := client.ParseJwtToken(token)
		if err != nil {
			logger.Warn("Rejected invalid token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "invalid token",
				Code:    "UNAUTHORIZED",
			})
			return
		}

		c.Set(contextUserID, claims.User.Id)
		c.Next()
	}
}
