package handlers

import (
	"net/http"

	"sarthi-backend/internal/models"
	"sarthi-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// LOGIN (kredensial demo)
func (h *Handler) Login(c *gin.Context) {
	var input models.LoginInput

	// 1. Validasi Input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIError(c, http.StatusBadRequest, "Invalid input", err)
		return
	}

	// 2. Cocokkan dengan akun demo; pesan error tampil apa adanya di form login
	sess, err := h.store.Login(c.Request.Context(), input.Email, input.Role)
	if err != nil {
		utils.APIResponse(c, statusFor(err), false, err.Error(), nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Login successful", sess)
}

// SIGNUP selalu berhasil, lanjut ke onboarding
func (h *Handler) Signup(c *gin.Context) {
	var input models.SignupInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIError(c, http.StatusBadRequest, "Invalid input", err)
		return
	}

	sess, err := h.store.Signup(c.Request.Context(), input.Name, input.Email, input.Role)
	if err != nil {
		fail(c, "Signup failed", err)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Account created", sess)
}

// GetSession dipakai app saat dibuka ulang. Endpoint publik, jadi token tidak ikut dikirim;
// client memakai token dari respons login.
func (h *Handler) GetSession(c *gin.Context) {
	sess := h.store.Session()
	if sess == nil {
		utils.APIResponse(c, http.StatusOK, true, "No active session", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Active session", sess.Public())
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.store.Logout(c.Request.Context()); err != nil {
		fail(c, "Logout failed", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Logged out", nil)
}
