package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/generated/servers"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	actorKey    = "actor"
	authCookie  = "Authorization"
	bearer      = "Bearer "
	roleAdmin   = "admin"
	claimRole   = "role"
	claimSub    = "sub"
	claimUserID = "user_id"
)

var (
	ErrTokenMissing = errors.New("bearer token is missing")
	ErrTokenInvalid = errors.New("bearer token is invalid")
)

// Actor is the authenticated caller of a request.
type Actor struct {
	UserID kernel.ID
	Admin  bool
}

// JWTAuth authenticates requests with an HS256 token taken from the
// Authorization header or, failing that, the Authorization cookie. The user id
// is read from "sub" or "user_id"; role "admin" grants administrative scope.
func JWTAuth(secret []byte, skipper middleware.Skipper) echo.MiddlewareFunc {
	if skipper == nil {
		skipper = middleware.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}

			raw, err := tokenFrom(c.Request())
			if err != nil {
				return unauthorized(c, err)
			}

			actor, err := parseActor(raw, secret)
			if err != nil {
				return unauthorized(c, err)
			}

			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

// NewToken signs a token for userID. It is used by tooling and tests; issuing
// tokens to end users belongs to the identity service.
func NewToken(secret []byte, userID kernel.ID, admin bool) (string, error) {
	claims := jwt.MapClaims{claimSub: userID.String()}
	if admin {
		claims[claimRole] = roleAdmin
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func actorOf(c echo.Context) (Actor, bool) {
	actor, ok := c.Get(actorKey).(Actor)
	return actor, ok
}

func tokenFrom(r *http.Request) (string, error) {
	if header := r.Header.Get(echo.HeaderAuthorization); header != "" {
		if !strings.HasPrefix(header, bearer) {
			return "", ErrTokenMissing
		}
		return strings.TrimSpace(strings.TrimPrefix(header, bearer)), nil
	}

	cookie, err := r.Cookie(authCookie)
	if err != nil || cookie.Value == "" {
		return "", ErrTokenMissing
	}
	return strings.TrimPrefix(cookie.Value, bearer), nil
}

func parseActor(raw string, secret []byte) (Actor, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return Actor{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Actor{}, ErrTokenInvalid
	}

	userID, err := userIDFrom(claims)
	if err != nil {
		return Actor{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	role, _ := claims[claimRole].(string)
	return Actor{UserID: userID, Admin: role == roleAdmin}, nil
}

func userIDFrom(claims jwt.MapClaims) (kernel.ID, error) {
	for _, key := range []string{claimSub, claimUserID} {
		switch v := claims[key].(type) {
		case string:
			return kernel.ParseID(v)
		case float64:
			if v != float64(int64(v)) {
				return 0, fmt.Errorf("%s %s is not an integer", key, strconv.FormatFloat(v, 'f', -1, 64))
			}
			return kernel.NewID(int64(v))
		}
	}
	return 0, errors.New("token carries no user id")
}

func unauthorized(c echo.Context, err error) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return c.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: err.Error(),
	})
}
