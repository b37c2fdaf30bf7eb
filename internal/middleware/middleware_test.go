package middleware

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"

	"jobportal-backend/internal/auth"
	"jobportal-backend/internal/model"
	"jobportal-backend/internal/store"
	"jobportal-backend/internal/testutil"
	"jobportal-backend/internal/utilities"
)

func protectedRouter(s *store.Storage, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{RequireAuth(s)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		user, err := utilities.ExtractUser(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Detail: err.Error()})
			return
		}
		c.JSON(http.StatusOK, user.Info())
	})
	r.GET("/protected", handlers...)
	return r
}

func TestRequireAuth_missingHeader(t *testing.T) {
	r := protectedRouter(store.New())

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/protected", http.MethodGet)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Not authenticated", resp["detail"])
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
}

func TestRequireAuth_garbageToken(t *testing.T) {
	r := protectedRouter(store.New())

	rec, resp := testutil.MakeJSONRequest(nil, "garbage.token.value", r, "/protected", http.MethodGet)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Could not validate credentials", resp["detail"])
}

func TestRequireAuth_validToken(t *testing.T) {
	s := store.New()
	testutil.SeedJobSeeker(t, s, "seeker@example.com", "Sam Seeker")
	token, err := auth.GetAccessToken(t, s, "seeker@example.com", testutil.SeedPassword, model.RoleJobSeeker)
	assert.NoError(t, err)

	r := protectedRouter(s)
	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/protected", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "seeker@example.com", resp["email"])
	assert.Equal(t, model.RoleJobSeeker, resp["role"])
}

func TestRequireAuth_expiredToken(t *testing.T) {
	s := store.New()
	testutil.SeedJobSeeker(t, s, "seeker@example.com", "Sam Seeker")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		Email: "seeker@example.com",
		Role:  model.RoleJobSeeker,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte("SECRET_FOR_DEV"))
	assert.NoError(t, err)

	r := protectedRouter(s)
	rec, resp := testutil.MakeJSONRequest(nil, signed, r, "/protected", http.MethodGet)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Could not validate credentials", resp["detail"])
}

func TestRequireAuth_userRemoved(t *testing.T) {
	seeded := store.New()
	testutil.SeedJobSeeker(t, seeded, "seeker@example.com", "Sam Seeker")
	token, err := auth.GetAccessToken(t, seeded, "seeker@example.com", testutil.SeedPassword, model.RoleJobSeeker)
	assert.NoError(t, err)

	// Same token presented against storage that never saw the user.
	r := protectedRouter(store.New())
	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/protected", http.MethodGet)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Could not validate credentials", resp["detail"])
}

func TestRequireAuth_roleChangedSinceIssue(t *testing.T) {
	seeded := store.New()
	testutil.SeedJobSeeker(t, seeded, "turncoat@example.com", "Flip Flop")
	token, err := auth.GetAccessToken(t, seeded, "turncoat@example.com", testutil.SeedPassword, model.RoleJobSeeker)
	assert.NoError(t, err)

	// Rebuild the account under the other role; the old token's role
	// claim no longer matches the stored role.
	current := store.New()
	testutil.SeedEmployer(t, current, "turncoat@example.com", "Flip Flop", "Acme Corp")

	r := protectedRouter(current)
	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/protected", http.MethodGet)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Could not validate credentials", resp["detail"])
}

func TestCheckRole_forbiddenWithOperationMessage(t *testing.T) {
	s := store.New()
	testutil.SeedJobSeeker(t, s, "seeker@example.com", "Sam Seeker")
	token, err := auth.GetAccessToken(t, s, "seeker@example.com", testutil.SeedPassword, model.RoleJobSeeker)
	assert.NoError(t, err)

	r := protectedRouter(s, CheckRole(model.RoleEmployer, "Only employers can post jobs"))
	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/protected", http.MethodGet)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Only employers can post jobs", resp["detail"])
}

func TestCheckRole_matchingRolePasses(t *testing.T) {
	s := store.New()
	testutil.SeedEmployer(t, s, "boss@example.com", "Bess Boss", "Acme Corp")
	token, err := auth.GetAccessToken(t, s, "boss@example.com", testutil.SeedPassword, model.RoleEmployer)
	assert.NoError(t, err)

	r := protectedRouter(s, CheckRole(model.RoleEmployer, "Only employers can post jobs"))
	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/protected", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
}
