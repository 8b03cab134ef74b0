package handlers

import (
	"net/http"
	"strconv"

	"sarthi-backend/internal/models"
	"sarthi-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetProfile(c *gin.Context) {
	utils.APIResponse(c, http.StatusOK, true, "Patient profile", h.store.Profile())
}

func (h *Handler) CompleteOnboarding(c *gin.Context) {
	var input models.OnboardingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIError(c, http.StatusBadRequest, "Invalid input", err)
		return
	}

	profile, err := h.store.CompleteOnboarding(c.Request.Context(), input)
	if err != nil {
		fail(c, "Failed to complete onboarding", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Onboarding complete", profile)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var input models.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIError(c, http.StatusBadRequest, "Invalid input", err)
		return
	}

	profile, err := h.store.UpdateBasicInfo(c.Request.Context(), input)
	if err != nil {
		fail(c, "Failed to update profile", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Profile updated", profile)
}

func (h *Handler) AddMedication(c *gin.Context) {
	var input models.AddMedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIError(c, http.StatusBadRequest, "Name and dosage are required", err)
		return
	}

	profile, err := h.store.AddMedication(c.Request.Context(), input)
	if err != nil {
		fail(c, "Failed to add medication", err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Medication added", profile)
}

func (h *Handler) RemoveMedication(c *gin.Context) {
	profile, err := h.store.RemoveMedication(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, "Failed to remove medication", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Medication removed", profile)
}

func (h *Handler) MarkMedicationTaken(c *gin.Context) {
	profile, err := h.store.MarkMedicationTaken(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, "Failed to update medication", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Medication marked as taken", profile)
}

func (h *Handler) AddAllergy(c *gin.Context) {
	var input models.AddAllergyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIError(c, http.StatusBadRequest, "Allergy name is required", err)
		return
	}

	profile, err := h.store.AddAllergy(c.Request.Context(), input.Name)
	if err != nil {
		fail(c, "Failed to add allergy", err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Allergy added", profile)
}

// RemoveAllergy pakai index karena alergi hanya berupa string
func (h *Handler) RemoveAllergy(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.APIError(c, http.StatusBadRequest, "Index must be a number", err)
		return
	}

	profile, err := h.store.RemoveAllergy(c.Request.Context(), index)
	if err != nil {
		fail(c, "Failed to remove allergy", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Allergy removed", profile)
}

func (h *Handler) AddMedicalEvent(c *gin.Context) {
	var input models.AddMedicalEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIError(c, http.StatusBadRequest, "Title and date are required", err)
		return
	}

	profile, err := h.store.AddMedicalEvent(c.Request.Context(), input)
	if err != nil {
		fail(c, "Failed to add event", err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Event added", profile)
}

func (h *Handler) RemoveMedicalEvent(c *gin.Context) {
	profile, err := h.store.RemoveMedicalEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, "Failed to remove event", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Event removed", profile)
}

// UploadReport: tanpa data file tetap membuat laporan mock
func (h *Handler) UploadReport(c *gin.Context) {
	var input models.AddReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIError(c, http.StatusBadRequest, "Invalid input", err)
		return
	}

	profile, err := h.store.AddReport(c.Request.Context(), input)
	if err != nil {
		fail(c, "Failed to upload report", err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Report uploaded", profile)
}

// HealthSummary dan HealthTip tidak pernah gagal karena AI; fallback sudah di Store
func (h *Handler) HealthSummary(c *gin.Context) {
	text, err := h.store.HealthSummary(c.Request.Context(), queryLanguage(c))
	if err != nil {
		fail(c, "Failed to generate summary", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Health summary", gin.H{"summary": text})
}

func (h *Handler) HealthTip(c *gin.Context) {
	text, err := h.store.HealthTip(c.Request.Context(), queryLanguage(c))
	if err != nil {
		fail(c, "Failed to generate tip", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Health tip", gin.H{"tip": text})
}

func (h *Handler) GetNotifications(c *gin.Context) {
	utils.APIResponse(c, http.StatusOK, true, "Notifications", gin.H{
		"notifications": h.store.Notifications(),
		"unread":        h.store.UnreadNotifications(),
	})
}
