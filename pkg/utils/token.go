package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenTTL = 24 * time.Hour

// Fallback kalau JWT_SECRET lupa diisi
var tokenSecret = []byte("rahasia_dapur_sarthi")

var ErrInvalidToken = errors.New("invalid token")

// SetTokenSecret dipanggil sekali saat startup dari config
func SetTokenSecret(secret string) {
	if secret != "" {
		tokenSecret = []byte(secret)
	}
}

// TokenClaims adalah isi token yang dipakai middleware
type TokenClaims struct {
	UserID string
	Role   string
}

// GenerateToken membuat JWT string yang berisi User ID dan Role
func GenerateToken(userID string, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(tokenTTL).Unix(), // Token berlaku 24 jam
		// login ulang di detik yang sama tetap dapat token baru
		"jti": uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tokenSecret)
}

// ValidateToken memverifikasi apakah token valid atau tidak
func ValidateToken(encodedToken string) (*jwt.Token, error) {
	return jwt.Parse(encodedToken, func(token *jwt.Token) (interface{}, error) {
		// Validasi algoritma enkripsi (harus HMAC)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return tokenSecret, nil
	})
}

// ParseToken memvalidasi token lalu mengambil user_id dan role
func ParseToken(encodedToken string) (TokenClaims, error) {
	token, err := ValidateToken(encodedToken)
	if err != nil || !token.Valid {
		return TokenClaims{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || role == "" {
		return TokenClaims{}, ErrInvalidToken
	}
	return TokenClaims{UserID: userID, Role: role}, nil
}
