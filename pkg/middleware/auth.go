package middleware

import (
	"net/http"
	"strings"

	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

// AuthJWT validates the Bearer access token and puts the user ID into the
// request context. Handlers behind this middleware can rely on
// utils.GetUserIDFromContext succeeding.
func AuthJWT(jwtConfig utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			userID, err := utils.ParseAccessToken(parts[1], jwtConfig.Secret)
			if err != nil {
				logger.Warn("Invalid or expired access token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
