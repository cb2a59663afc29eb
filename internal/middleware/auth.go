package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hasinthainduwara/ClarityHub-Backend/internal/apierror"
	"github.com/hasinthainduwara/ClarityHub-Backend/internal/logger"
	"github.com/hasinthainduwara/ClarityHub-Backend/pkg/supabase"
)

// Auth middleware verifies bearer tokens and attaches the resolved
// identity to the request. Token issuance is out of scope; tokens are only
// verified against the auth backend.
func Auth(client *supabase.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromContext(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Debug("authentication failed: missing authorization header")
			apierror.Write(c, apierror.NewUnauthenticatedError(apierror.GetRequestID(c)))
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Debug("authentication failed: invalid authorization format")
			apierror.Write(c, apierror.NewUnauthenticatedError(apierror.GetRequestID(c)))
			c.Abort()
			return
		}

		user, err := client.VerifyToken(parts[1])
		if err != nil {
			log.Warn("authentication failed: token verification error",
				logger.Err(err),
			)
			apierror.Write(c, apierror.NewUnauthenticatedError(apierror.GetRequestID(c)))
			c.Abort()
			return
		}

		// Set user in gin context and in the request context for logging
		c.Set("user_id", user.ID)
		c.Set("user_email", user.Email)

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)

		log.Debug("authentication successful",
			logger.String("user_id", user.ID),
		)

		c.Next()
	}
}
