package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"
)

// accessTokenLifetime is the default expiry window for access tokens.
const accessTokenLifetime = 60 * time.Minute

var jwtSecret = os.Getenv("JWT_SECRET")

func init() {
	if jwtSecret == "" {
		jwtSecret = "SECRET_FOR_DEV"
	}
}

// Claims is the token payload: the acting identity, its role and the
// standard expiry fields.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateAccessToken mints an HS256 token for the given identity,
// expiring after the default lifetime.
func GenerateAccessToken(email string, role string) (string, error) {

	generatedAccessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})

	signedToken, err := generatedAccessToken.SignedString([]byte(jwtSecret))
	if err != nil {
		return "", fmt.Errorf("Failed to sign token: %s", err)
	}

	return signedToken, nil
}

// ValidatedToken parses and verifies an encoded token, rejecting
// anything not signed with the shared HMAC secret.
func ValidatedToken(encodedToken string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(encodedToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, isvalid := token.Method.(*jwt.SigningMethodHMAC); !isvalid {
			return nil, fmt.Errorf("Invalid token")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("Invalid access token")
	}
	return claims, nil
}
