package middleware

import (
	"net/http"
	"strings"

	"sarthi-backend/internal/models"
	"sarthi-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// ActiveSession memberi token session yang sedang aktif (kosong kalau belum login)
type ActiveSession interface {
	ActiveToken() string
}

func AuthMiddleware(active ActiveSession) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Ambil Header Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Token not found", nil)
			c.Abort()
			return
		}

		// 2. Format harus "Bearer <token>"
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Malformed token", nil)
			c.Abort()
			return
		}
		tokenString = strings.TrimSpace(tokenString)

		// 3. Validasi Token
		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid token", nil)
			c.Abort()
			return
		}

		// 4. Hanya satu session aktif; token lama ditolak setelah logout / login ulang
		if active != nil && active.ActiveToken() != tokenString {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Session has ended, please log in again", nil)
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, models.Role(claims.Role))

		c.Next()
	}
}

// RoleOnly: hanya role tertentu yang boleh lewat
func RoleOnly(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get(ContextRole)
		if !exists {
			utils.APIResponse(c, http.StatusForbidden, false, "Access denied", nil)
			c.Abort()
			return
		}

		if got, _ := val.(models.Role); got != role {
			utils.APIResponse(c, http.StatusForbidden, false, "Access denied: "+string(role)+" only", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
