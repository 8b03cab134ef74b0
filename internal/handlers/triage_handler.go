package handlers

import (
	"net/http"

	"sarthi-backend/internal/models"
	"sarthi-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetTriage(c *gin.Context) {
	utils.APIResponse(c, http.StatusOK, true, "Triage conversation", h.store.TriageSnapshot())
}

// SendTriageMessage: satu giliran pasien (teks dan/atau foto)
func (h *Handler) SendTriageMessage(c *gin.Context) {
	var input models.TriageMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIError(c, http.StatusBadRequest, "Invalid input", err)
		return
	}

	reply, err := h.store.SendTriage(c.Request.Context(), input)
	if err != nil {
		fail(c, "Message not sent", err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Reply received", gin.H{
		"reply":        reply,
		"conversation": h.store.TriageSnapshot(),
	})
}

func (h *Handler) ResetTriage(c *gin.Context) {
	var input models.TriageResetInput
	// Body opsional
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.APIError(c, http.StatusBadRequest, "Invalid input", err)
			return
		}
	}

	utils.APIResponse(c, http.StatusOK, true, "Triage restarted", h.store.ResetTriage(input.Language))
}

// FindSpecialists meneruskan hasil triage ke daftar dokter
func (h *Handler) FindSpecialists(c *gin.Context) {
	out, err := h.store.TriageSpecialists(queryBool(c, "videoOnly"))
	if err != nil {
		fail(c, "No recommendation yet", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Recommended specialists", out)
}
