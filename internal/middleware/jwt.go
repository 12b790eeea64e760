package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"STAYNEST_BACK-END/internal/config"
	"STAYNEST_BACK-END/internal/utils"
)

// JWTClaims represents the claims in the JWT token
type JWTClaims struct {
	UserID  uuid.UUID `json:"user_id"`
	Email   string    `json:"email"`
	IsStaff bool      `json:"is_staff"`
	jwt.RegisteredClaims
}

// GenerateToken generates a JWT token for the given user
func GenerateToken(userID uuid.UUID, email string, isStaff bool, cfg *config.JWTConfig) (string, error) {
	claims := JWTClaims{
		UserID:  userID,
		Email:   email,
		IsStaff: isStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string, cfg *config.JWTConfig) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenMalformed
}

func bearerClaims(r *http.Request, cfg *config.JWTConfig) (*JWTClaims, string) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, "Authorization header required"
	}

	// Extract token from "Bearer <token>"
	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return nil, "Invalid authorization header format"
	}

	claims, err := ValidateToken(tokenParts[1], cfg)
	if err != nil {
		return nil, "Invalid token"
	}
	return claims, ""
}

// RequireAuth validates JWT tokens in the Authorization header and
// rejects requests without a valid one.
func RequireAuth(cfg *config.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, reason := bearerClaims(r, cfg)
			if claims == nil {
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", reason)
				return
			}

			ctx := utils.WithCaller(r.Context(), claims.UserID, claims.Email, claims.IsStaff)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth populates the caller identity when a valid token is
// present but lets anonymous requests through. Used on publicly
// readable collections whose visible set still depends on identity.
func OptionalAuth(cfg *config.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, _ := bearerClaims(r, cfg); claims != nil {
				ctx := utils.WithCaller(r.Context(), claims.UserID, claims.Email, claims.IsStaff)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}
