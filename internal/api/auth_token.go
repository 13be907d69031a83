package api

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/daithanwa/dsi202-2025/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
	authTokenIssuer      = "fitplan"
)

var errInvalidAuthToken = errors.New("invalid token")

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

func (handler *Handler) setAuthCookie(c *fiber.Ctx, user *models.User, rememberMe bool) error {
	tokenTTL := defaultAuthTokenTTL
	if rememberMe {
		tokenTTL = rememberAuthTokenTTL
	}

	token, err := handler.buildToken(user, tokenTTL)
	if err != nil {
		return err
	}
	sealed, err := handler.cookies.seal(authCookiePurpose, []byte(token))
	if err != nil {
		return err
	}

	cookie := &fiber.Cookie{
		Name:     authCookieName,
		Value:    sealed,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
	}
	if rememberMe {
		cookie.Expires = handler.now().Add(tokenTTL)
	}
	c.Cookie(cookie)
	return nil
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  handler.now().Add(-1 * time.Hour),
	})
}

func (handler *Handler) buildToken(user *models.User, ttl time.Duration) (string, error) {
	now := handler.now()
	claims := authClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    authTokenIssuer,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.User, error) {
	rawCookie := strings.TrimSpace(c.Cookies(authCookieName))
	if rawCookie == "" {
		return nil, errors.New("missing auth cookie")
	}
	tokenValue, err := handler.cookies.open(authCookiePurpose, rawCookie)
	if err != nil {
		return nil, errInvalidAuthToken
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(authTokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(handler.now),
	)
	claims := &authClaims{}
	if _, err := parser.ParseWithClaims(string(tokenValue), claims, func(*jwt.Token) (any, error) {
		return handler.secretKey, nil
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidAuthToken, err)
	}

	user, err := handler.auth.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
