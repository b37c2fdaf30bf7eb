// Package middleware contain utilities middleware code
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/auth"
	"jobportal-backend/internal/model"
	"jobportal-backend/internal/store"
	"jobportal-backend/internal/utilities"
)

// RequireAuth validates the Bearer token in the Authorization header,
// loads the user behind the token and puts it in the request context.
// The role claim must still match the stored role, so a role change
// invalidates old tokens.
func RequireAuth(s *store.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := utilities.ExtractBearerToken(ctx)
		if err != nil {
			ctx.Header("WWW-Authenticate", "Bearer")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Detail: "Not authenticated",
			})
			return
		}

		claims, err := auth.ValidatedToken(tokenString)
		if err != nil {
			abortUnauthorized(ctx)
			return
		}

		if claims.Email == "" ||
			(claims.Role != model.RoleJobSeeker && claims.Role != model.RoleEmployer) {
			abortUnauthorized(ctx)
			return
		}

		foundUser, ok := s.GetUser(claims.Email)
		if !ok || foundUser.Role != claims.Role {
			abortUnauthorized(ctx)
			return
		}

		ctx.Set("user", foundUser)
		ctx.Next()
	}
}

func abortUnauthorized(ctx *gin.Context) {
	ctx.Header("WWW-Authenticate", "Bearer")
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
		Detail: "Could not validate credentials",
	})
}
