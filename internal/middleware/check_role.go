package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/utilities"
)

// CheckRole will protect an endpoint from users that are not the
// required role. Each operation passes its own refusal message.
func CheckRole(role string, detail string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, err := utilities.ExtractUser(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Detail: err.Error(),
			})
			return
		}

		if user.Role != role {
			ctx.AbortWithStatusJSON(http.StatusForbidden, utilities.ErrorResponse{
				Detail: detail,
			})
		}
	}
}
