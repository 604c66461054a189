package tokens

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"

	"github.com/openmarket/markethub/lib/responses"
)

// Claims carried by an access token. Tokens are minted by the identity
// provider that shares our JWT secret; this service only verifies them and
// trusts the account id inside.
type Claims struct {
	AccountID string `json:"account_id"`
	jwt.StandardClaims
}

func GenerateAccessToken(secret []byte, expiryInSeconds int, accountID string) (string, error) {
	claims := Claims{
		AccountID: accountID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Duration(expiryInSeconds) * time.Second).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Middleware authenticates the request from the Authorization header and puts
// the caller's account id on the echo context as "AccountID".
func Middleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := bearerToken(c.Request())
			if err != nil {
				return c.JSON(http.StatusUnauthorized, responses.BadAuthError)
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid || claims.AccountID == "" {
				return c.JSON(http.StatusUnauthorized, responses.BadAuthError)
			}

			c.Set("AccountID", claims.AccountID)
			return next(c)
		}
	}
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return "", fmt.Errorf("no bearer token in authorization header")
	}
	return strings.TrimPrefix(header, "Bearer "), nil
}
