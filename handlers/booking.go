package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"odontocarol/clinicapi"
	"odontocarol/models"
	"odontocarol/services/wizard"
	"odontocarol/utils"
)

// BookingHandler exposes the booking wizard over HTTP.
type BookingHandler struct {
	Wizard wizard.BookingWizardService
}

func NewBookingHandler(svc wizard.BookingWizardService) *BookingHandler {
	return &BookingHandler{Wizard: svc}
}

// StartSession creates a fresh booking session at the identification step.
func (h *BookingHandler) StartSession(c *gin.Context) {
	session, err := h.Wizard.StartSession(c.Request.Context())
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// GetSession returns the current session state for resuming the wizard.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Wizard.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GoBack retreats the wizard one step.
func (h *BookingHandler) GoBack(c *gin.Context) {
	session, err := h.Wizard.Retreat(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// CancelSession discards a session before completion.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Wizard.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "sesión cancelada"})
}

// ListServices returns the clinic's service catalog.
func (h *BookingHandler) ListServices(c *gin.Context) {
	services, err := h.Wizard.GetServices(c.Request.Context())
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// SubmitIdentity completes the identification step.
func (h *BookingHandler) SubmitIdentity(c *gin.Context) {
	var input models.IdentityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	outcome, err := h.Wizard.SubmitIdentity(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	resp := gin.H{"session": outcome.Session}
	if outcome.Warning != "" {
		resp["warning"] = outcome.Warning
	}
	c.JSON(http.StatusOK, resp)
}

// LookupPatient matches the typed email against stored patient records.
func (h *BookingHandler) LookupPatient(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	result, session, err := h.Wizard.LookupPatient(c.Request.Context(), c.Param("sessionID"), input.Email)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": result.Exists, "session": session})
}

// AssignProvider completes the provider assignment step.
func (h *BookingHandler) AssignProvider(c *gin.Context) {
	session, err := h.Wizard.AssignProvider(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// MonthGrid returns the calendar grid for a displayed month.
func (h *BookingHandler) MonthGrid(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "year must be a number")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "month must be between 1 and 12")
		return
	}
	grid, err := h.Wizard.MonthGrid(c.Request.Context(), c.Param("sessionID"), year, time.Month(month))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"calendar": grid})
}

// SelectDate fetches availability for a clicked date.
func (h *BookingHandler) SelectDate(c *gin.Context) {
	var input models.DateSelectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	day, err := h.Wizard.SelectDate(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": day})
}

// SelectSlot commits a slot choice and completes the availability step.
func (h *BookingHandler) SelectSlot(c *gin.Context) {
	var input models.SlotSelectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Wizard.SelectSlot(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Confirm submits the booking to the clinic backend.
func (h *BookingHandler) Confirm(c *gin.Context) {
	confirmation, err := h.Wizard.Confirm(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"confirmation": confirmation})
}

// Health reports the latest dependency health snapshot.
func Health(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Redis {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status})
}

// respondWizardError maps service errors onto HTTP responses.
func respondWizardError(c *gin.Context, err error) {
	if verr, ok := wizard.AsValidation(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "datos inválidos",
			"fields":  verr.Fields,
		})
		return
	}

	var flowErr *wizard.FlowError
	if errors.As(err, &flowErr) {
		switch flowErr.Code {
		case wizard.CodeSessionNotFound:
			utils.JSONError(c, http.StatusNotFound, "sesión no encontrada o expirada", flowErr.Message)
		case wizard.CodeStepMismatch:
			utils.JSONError(c, http.StatusConflict, "paso incorrecto", flowErr.Message)
		case wizard.CodeSlotTaken:
			utils.JSONError(c, http.StatusConflict, "horario ocupado", flowErr.Message)
		case wizard.CodeNoProvider:
			utils.JSONError(c, http.StatusServiceUnavailable, "sin odontólogos disponibles", flowErr.Message)
		default:
			utils.JSONError(c, http.StatusBadRequest, "solicitud inválida", flowErr.Message)
		}
		return
	}

	var apiErr *clinicapi.APIError
	if errors.As(err, &apiErr) {
		utils.JSONError(c, http.StatusBadGateway, "el sistema de la clínica no respondió correctamente", apiErr.Message)
		return
	}

	utils.JSONError(c, http.StatusInternalServerError, "error interno", err.Error())
}
