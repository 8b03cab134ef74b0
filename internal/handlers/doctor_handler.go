package handlers

import (
	"net/http"

	"sarthi-backend/internal/models"
	"sarthi-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Request body scan resep
type ScanPrescriptionInput struct {
	Image string `json:"image" binding:"required"` // Data URL
}

// Dashboard: ?mine=true hanya appointment milik dokter yang login
func (h *Handler) Dashboard(c *gin.Context) {
	dash, err := h.store.DoctorDashboard(queryBool(c, "mine"))
	if err != nil {
		fail(c, "Dashboard unavailable", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Doctor dashboard", dash)
}

func (h *Handler) AcceptAppointment(c *gin.Context) {
	appt, err := h.store.Accept(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, "Failed to accept appointment", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Appointment status: "+string(appt.Status), appt)
}

func (h *Handler) DeclineAppointment(c *gin.Context) {
	appt, err := h.store.Decline(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, "Failed to decline appointment", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Appointment status: "+string(appt.Status), appt)
}

// CompleteConsultation: appointment selesai + rekam medis pasien diperbarui
func (h *Handler) CompleteConsultation(c *gin.Context) {
	var input models.PrescriptionData
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIError(c, http.StatusBadRequest, "Diagnosis is required", err)
		return
	}

	appt, profile, err := h.store.CompleteConsultation(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		fail(c, "Failed to complete consultation", err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Consultation completed", gin.H{
		"appointment": appt,
		"patient":     profile,
	})
}

// ScanPrescription: gagal baca resep dikembalikan ke dokter untuk isi manual
func (h *Handler) ScanPrescription(c *gin.Context) {
	var input ScanPrescriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIError(c, http.StatusBadRequest, "Image is required", err)
		return
	}

	data, err := h.store.ParsePrescription(c.Request.Context(), input.Image)
	if err != nil {
		fail(c, "Failed to read prescription. Please try again or enter manually.", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Prescription read", data)
}

func (h *Handler) GetDoctorProfile(c *gin.Context) {
	utils.APIResponse(c, http.StatusOK, true, "Doctor profile", h.store.CurrentDoctor())
}

func (h *Handler) UpdateDoctorProfile(c *gin.Context) {
	var input models.UpdateDoctorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIError(c, http.StatusBadRequest, "Invalid input", err)
		return
	}

	doctor, err := h.store.UpdateDoctor(c.Request.Context(), input)
	if err != nil {
		fail(c, "Failed to update profile", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Profile updated", doctor)
}
