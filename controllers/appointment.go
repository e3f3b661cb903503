package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"haverststudio-backend/analytics"
	"haverststudio-backend/models"
	"haverststudio-backend/store"
	"haverststudio-backend/utils"
)

// CreateAppointmentInput defines the expected JSON structure for booking.
// Status defaults to pending when omitted.
type CreateAppointmentInput struct {
	ClientID   string                   `json:"clientId" binding:"required"`
	ClientName string                   `json:"clientName" binding:"required"`
	Date       string                   `json:"date" binding:"required"`
	Time       string                   `json:"time" binding:"required"`
	Services   []string                 `json:"services" binding:"required"`
	Duration   int                      `json:"duration" binding:"min=0"`
	Status     models.AppointmentStatus `json:"status"`
	Notes      string                   `json:"notes"`
	Reminder   bool                     `json:"reminder"`
}

type SetStatusInput struct {
	Status models.AppointmentStatus `json:"status" binding:"required"`
}

// CreateAppointment books a new appointment
func (ctrl *Controller) CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateDate(input.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected yyyy-MM-dd")
		return
	}
	if !utils.ValidateTime(input.Time) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid time format, expected HH:MM")
		return
	}

	status := input.Status
	if status == "" {
		status = models.StatusPending
	}
	if !status.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown appointment status")
		return
	}

	apt := models.Appointment{
		ClientID:   input.ClientID,
		ClientName: input.ClientName,
		Date:       input.Date,
		Time:       input.Time,
		Services:   input.Services,
		Duration:   input.Duration,
		Status:     status,
		Notes:      input.Notes,
		Reminder:   input.Reminder,
	}

	created, err := ctrl.Store.AddAppointment(apt)
	if err != nil {
		respondStoreError(c, err, "Appointment not found")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetAppointments retrieves appointments, filtered by date, client-name
// substring and status when the query parameters are present. Without a
// date it returns the whole collection in insertion order.
func (ctrl *Controller) GetAppointments(c *gin.Context) {
	date := c.Query("date")
	client := c.Query("client")
	status := models.AppointmentStatus(c.Query("status"))

	if status != "" && !status.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown appointment status")
		return
	}

	appointments := ctrl.Store.Appointments()
	if date == "" {
		c.JSON(http.StatusOK, appointments)
		return
	}
	if !utils.ValidateDate(date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected yyyy-MM-dd")
		return
	}

	c.JSON(http.StatusOK, analytics.AppointmentsOn(appointments, date, client, status))
}

// GetWeekSchedule returns the Monday-starting week containing the anchor
// date (today when omitted), one filtered day list per entry.
func (ctrl *Controller) GetWeekSchedule(c *gin.Context) {
	anchor := time.Now()
	if date := c.Query("date"); date != "" {
		parsed, err := time.Parse(utils.DateLayout, date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected yyyy-MM-dd")
			return
		}
		anchor = parsed
	}

	client := c.Query("client")
	status := models.AppointmentStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown appointment status")
		return
	}

	schedule := analytics.WeekSchedule(ctrl.Store.Appointments(), anchor, client, status)
	c.JSON(http.StatusOK, schedule)
}

// UpdateAppointment merges a partial update into an existing appointment
func (ctrl *Controller) UpdateAppointment(c *gin.Context) {
	var update store.AppointmentUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if update.Status != nil && !update.Status.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown appointment status")
		return
	}
	if update.Date != nil && !utils.ValidateDate(*update.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected yyyy-MM-dd")
		return
	}
	if update.Time != nil && !utils.ValidateTime(*update.Time) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid time format, expected HH:MM")
		return
	}

	updated, err := ctrl.Store.UpdateAppointment(c.Param("id"), update)
	if err != nil {
		respondStoreError(c, err, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// SetAppointmentStatus advances or cancels an appointment
func (ctrl *Controller) SetAppointmentStatus(c *gin.Context) {
	var input SetStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !input.Status.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown appointment status")
		return
	}

	updated, err := ctrl.Store.SetAppointmentStatus(c.Param("id"), input.Status)
	if err != nil {
		respondStoreError(c, err, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, updated)
}
