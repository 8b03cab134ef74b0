package handlers

import (
	"net/http"

	"sarthi-backend/internal/models"
	"sarthi-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SearchDoctors: ?specialty=Cardio&videoOnly=true
func (h *Handler) SearchDoctors(c *gin.Context) {
	doctors := h.store.Doctors(c.Query("specialty"), queryBool(c, "videoOnly"))
	utils.APIResponse(c, http.StatusOK, true, "Doctors", doctors)
}

func (h *Handler) GetDoctor(c *gin.Context) {
	doctor, err := h.store.Doctor(c.Param("id"))
	if err != nil {
		fail(c, "Doctor not found", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Doctor", doctor)
}

// GetAppointments: ?status=upcoming (kosong = semua)
func (h *Handler) GetAppointments(c *gin.Context) {
	status := models.AppointmentStatus(c.Query("status"))
	utils.APIResponse(c, http.StatusOK, true, "Appointments", h.store.Appointments(status))
}

func (h *Handler) BookAppointment(c *gin.Context) {
	var input models.BookAppointmentInput

	// 1. Validasi Input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIError(c, http.StatusBadRequest, "Invalid input", err)
		return
	}

	// 2. Simpan request + notifikasi
	appt, err := h.store.Book(c.Request.Context(), input)
	if err != nil {
		fail(c, "Booking failed", err)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Appointment request sent", appt)
}

func (h *Handler) RateAppointment(c *gin.Context) {
	var input models.RateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIError(c, http.StatusBadRequest, "Rating must be between 1 and 5", err)
		return
	}

	appt, err := h.store.Rate(c.Request.Context(), c.Param("id"), input.Rating, input.Review)
	if err != nil {
		fail(c, "Rating not saved", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Thanks for your feedback", appt)
}

// Checkout membuat token Midtrans Snap untuk biaya konsultasi
func (h *Handler) Checkout(c *gin.Context) {
	out, err := h.store.Checkout(c.Param("id"))
	if err != nil {
		fail(c, "Checkout failed", err)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Checkout created", out)
}
