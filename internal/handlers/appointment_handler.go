package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/v322/healthsync/internal/dto"
	"github.com/v322/healthsync/internal/httperr"
	"github.com/v322/healthsync/internal/httpresp"
	"github.com/v322/healthsync/internal/models"
	ucschedule "github.com/v322/healthsync/internal/usecase/schedule"
)

type AppointmentHandler struct {
	db *gorm.DB

	bookUC    *ucschedule.BookAppointment
	slotsUC   *ucschedule.GetAvailableSlots
	cancelUC  *ucschedule.CancelAppointment
	consultUC *ucschedule.ConductConsultation
	updateUC  *ucschedule.UpdateAppointment
	getUC     *ucschedule.GetAppointment
}

func NewAppointmentHandler(
	db *gorm.DB,
	bookUC *ucschedule.BookAppointment,
	slotsUC *ucschedule.GetAvailableSlots,
	cancelUC *ucschedule.CancelAppointment,
	consultUC *ucschedule.ConductConsultation,
	updateUC *ucschedule.UpdateAppointment,
	getUC *ucschedule.GetAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:        db,
		bookUC:    bookUC,
		slotsUC:   slotsUC,
		cancelUC:  cancelUC,
		consultUC: consultUC,
		updateUC:  updateUC,
		getUC:     getUC,
	}
}

type BookAppointmentRequest struct {
	PatientID string `json:"patient_id" binding:"required"`
	DoctorID  string `json:"doctor_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Type      string `json:"type"`
	Notes     string `json:"notes"`
}

type ConsultationRequest struct {
	Diagnosis     string `json:"diagnosis"`
	TreatmentPlan string `json:"treatment_plan"`
	Notes         string `json:"notes"`
}

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucschedule.BookAppointmentInput{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Type:      req.Type,
		Notes:     req.Notes,
	})
	if err != nil {
		switch httperr.BusinessCode(err) {
		case httperr.CodeInvalidTimeRange:
			httperr.BadRequest(c, httperr.CodeInvalidTimeRange, "Start time must be before end time.")
		case httperr.CodeInvalidDate:
			httperr.BadRequest(c, httperr.CodeInvalidDate, "Invalid date.")
		case httperr.CodeDoctorUnavailable:
			httperr.BadRequest(c, httperr.CodeDoctorUnavailable, "Doctor is not available at the requested time.")
		case httperr.CodeTimeConflict:
			httperr.Conflict(c, httperr.CodeTimeConflict, "Time slot conflicts with an existing appointment.")
		default:
			httperr.Internal(c, "failed_to_book_appointment", "Failed to book appointment.")
		}
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	doctorID := c.Query("doctor_id")
	date := c.Query("date")
	if doctorID == "" || date == "" {
		httperr.BadRequest(c, "missing_doctor_or_date", "doctor_id and date are required.")
		return
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), doctorID, date)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidDate) {
			httperr.BadRequest(c, httperr.CodeInvalidDate, "Invalid date.")
			return
		}
		httperr.Internal(c, "failed_to_get_slots", "Failed to compute available slots.")
		return
	}

	httpresp.List(c, slots)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.getUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeAppointmentNotFound) {
			httperr.NotFound(c, httperr.CodeAppointmentNotFound, "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Failed to load appointment.")
		return
	}

	out := dto.AppointmentDetailDTO{Appointment: *ap}

	var patient models.Patient
	if err := h.db.Where("id = ?", ap.PatientID).First(&patient).Error; err == nil {
		out.PatientName = patient.Name
	}
	var doctor models.Doctor
	if err := h.db.Where("id = ?", ap.DoctorID).First(&doctor).Error; err == nil {
		out.DoctorName = doctor.Name
	}

	httpresp.OK(c, out)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var patch ucschedule.AppointmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeAppointmentNotFound) {
			httperr.NotFound(c, httperr.CodeAppointmentNotFound, "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_update_appointment", "Failed to update appointment.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.cancelUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeAppointmentNotFound) {
			httperr.NotFound(c, httperr.CodeAppointmentNotFound, "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_cancel_appointment", "Failed to cancel appointment.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Consultation(c *gin.Context) {
	var req ConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.consultUC.Execute(c.Request.Context(), c.Param("id"), ucschedule.ConductConsultationInput{
		Diagnosis:     req.Diagnosis,
		TreatmentPlan: req.TreatmentPlan,
		Notes:         req.Notes,
	})
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeAppointmentNotFound) {
			httperr.NotFound(c, httperr.CodeAppointmentNotFound, "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_record_consultation", "Failed to record consultation.")
		return
	}

	httpresp.OK(c, ap)
}

// ----- simple list queries, db-backed -----

func (h *AppointmentHandler) ListByPatient(c *gin.Context) {
	h.list(c, "patient_id = ?", c.Param("patientId"))
}

func (h *AppointmentHandler) ListByDoctor(c *gin.Context) {
	h.list(c, "doctor_id = ?", c.Param("doctorId"))
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	h.list(c, "date = ?", c.Param("date"))
}

func (h *AppointmentHandler) ListByStatus(c *gin.Context) {
	h.list(c, "status = ?", c.Param("status"))
}

func (h *AppointmentHandler) list(c *gin.Context, query string, arg string) {
	var apps []models.Appointment
	if err := h.db.
		Where(query, arg).
		Order("date ASC, start_time ASC").
		Find(&apps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}

	httpresp.List(c, apps)
}
