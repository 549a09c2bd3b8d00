package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/v322/healthsync/internal/cache"
	domain "github.com/v322/healthsync/internal/domain/schedule"
	"github.com/v322/healthsync/internal/httperr"
	"github.com/v322/healthsync/internal/httpresp"
	"github.com/v322/healthsync/internal/ids"
	"github.com/v322/healthsync/internal/models"
)

type DoctorHandler struct {
	db    *gorm.DB
	cache *cache.SlotCache
}

func NewDoctorHandler(db *gorm.DB, slotCache *cache.SlotCache) *DoctorHandler {
	return &DoctorHandler{db: db, cache: slotCache}
}

type CreateDoctorRequest struct {
	Name            string  `json:"name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           string  `json:"phone"`
	Specialization  string  `json:"specialization"`
	Qualification   string  `json:"qualification"`
	ConsultationFee float64 `json:"consultation_fee"`
	DepartmentID    string  `json:"department_id"`
}

type UpdateDoctorRequest struct {
	Name            *string  `json:"name"`
	Phone           *string  `json:"phone"`
	Specialization  *string  `json:"specialization"`
	Qualification   *string  `json:"qualification"`
	ConsultationFee *float64 `json:"consultation_fee"`
	DepartmentID    *string  `json:"department_id"`
}

func (h *DoctorHandler) Create(c *gin.Context) {
	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	doctor := models.Doctor{
		ID:              ids.New(ids.PrefixDoctor),
		Name:            req.Name,
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:           req.Phone,
		Specialization:  req.Specialization,
		Qualification:   req.Qualification,
		ConsultationFee: req.ConsultationFee,
		DepartmentID:    req.DepartmentID,
	}

	if err := h.db.Create(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_create_doctor", "Failed to create doctor.")
		return
	}

	httpresp.Created(c, doctor)
}

func (h *DoctorHandler) Get(c *gin.Context) {
	var doctor models.Doctor
	if err := h.db.Where("id = ?", c.Param("id")).First(&doctor).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}
	httpresp.OK(c, doctor)
}

func (h *DoctorHandler) List(c *gin.Context) {
	var doctors []models.Doctor
	if err := h.db.Order("name ASC").Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Failed to list doctors.")
		return
	}
	httpresp.List(c, doctors)
}

func (h *DoctorHandler) ListBySpecialization(c *gin.Context) {
	var doctors []models.Doctor
	if err := h.db.
		Where("specialization = ?", c.Param("specialization")).
		Order("name ASC").
		Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Failed to list doctors.")
		return
	}
	httpresp.List(c, doctors)
}

func (h *DoctorHandler) ListByDepartment(c *gin.Context) {
	var doctors []models.Doctor
	if err := h.db.
		Where("department_id = ?", c.Param("departmentId")).
		Order("name ASC").
		Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Failed to list doctors.")
		return
	}
	httpresp.List(c, doctors)
}

func (h *DoctorHandler) Search(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		httperr.BadRequest(c, "missing_name", "name query parameter is required.")
		return
	}

	var doctors []models.Doctor
	if err := h.db.
		Where("name ILIKE ?", "%"+name+"%").
		Order("name ASC").
		Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_search_doctors", "Failed to search doctors.")
		return
	}
	httpresp.List(c, doctors)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	var doctor models.Doctor
	if err := h.db.Where("id = ?", c.Param("id")).First(&doctor).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	var req UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Phone != nil {
		doctor.Phone = *req.Phone
	}
	if req.Specialization != nil {
		doctor.Specialization = *req.Specialization
	}
	if req.Qualification != nil {
		doctor.Qualification = *req.Qualification
	}
	if req.ConsultationFee != nil {
		doctor.ConsultationFee = *req.ConsultationFee
	}
	if req.DepartmentID != nil {
		doctor.DepartmentID = *req.DepartmentID
	}

	if err := h.db.Save(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_update_doctor", "Failed to update doctor.")
		return
	}
	httpresp.OK(c, doctor)
}

func (h *DoctorHandler) UpdateConsultationFee(c *gin.Context) {
	feeStr := c.Query("fee")
	fee, err := strconv.ParseFloat(feeStr, 64)
	if err != nil || fee < 0 {
		httperr.BadRequest(c, "invalid_fee", "Invalid fee.")
		return
	}

	var doctor models.Doctor
	if err := h.db.Where("id = ?", c.Param("id")).First(&doctor).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	doctor.ConsultationFee = fee
	if err := h.db.Save(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_update_doctor", "Failed to update doctor.")
		return
	}
	httpresp.OK(c, doctor)
}

func (h *DoctorHandler) Delete(c *gin.Context) {
	res := h.db.Where("id = ?", c.Param("id")).Delete(&models.Doctor{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_doctor", "Failed to delete doctor.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}
	httpresp.OK(c, gin.H{"status": "deleted"})
}

// --------- Availability windows ---------

type AvailabilityRequest struct {
	DayOfWeek string `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

var validDays = map[string]bool{
	"MONDAY": true, "TUESDAY": true, "WEDNESDAY": true, "THURSDAY": true,
	"FRIDAY": true, "SATURDAY": true, "SUNDAY": true,
}

func (h *DoctorHandler) validateWindow(req *AvailabilityRequest) string {
	req.DayOfWeek = strings.ToUpper(strings.TrimSpace(req.DayOfWeek))
	if !validDays[req.DayOfWeek] {
		return "invalid_day_of_week"
	}

	start, err := domain.ParseClock(req.StartTime)
	if err != nil {
		return "invalid_time"
	}
	end, err := domain.ParseClock(req.EndTime)
	if err != nil {
		return "invalid_time"
	}
	if !start.Before(end) {
		return httperr.CodeInvalidTimeRange
	}
	return ""
}

func (h *DoctorHandler) AddAvailability(c *gin.Context) {
	doctorID := c.Param("id")

	var doctor models.Doctor
	if err := h.db.Where("id = ?", doctorID).First(&doctor).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}
	if code := h.validateWindow(&req); code != "" {
		httperr.BadRequest(c, code, "Invalid availability window.")
		return
	}

	window := models.AvailabilityWindow{
		ID:        ids.New(ids.PrefixAvailability),
		DoctorID:  doctorID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := h.db.Create(&window).Error; err != nil {
		httperr.Internal(c, "failed_to_create_availability", "Failed to create availability window.")
		return
	}

	// windows recur weekly; stale slot lists for any date must go
	h.cache.InvalidateDoctor(c.Request.Context(), doctorID)

	httpresp.Created(c, window)
}

func (h *DoctorHandler) UpdateAvailability(c *gin.Context) {
	var window models.AvailabilityWindow
	if err := h.db.Where("id = ?", c.Param("slotId")).First(&window).Error; err != nil {
		httperr.NotFound(c, "availability_not_found", "Availability window not found.")
		return
	}

	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}
	if code := h.validateWindow(&req); code != "" {
		httperr.BadRequest(c, code, "Invalid availability window.")
		return
	}

	window.DayOfWeek = req.DayOfWeek
	window.StartTime = req.StartTime
	window.EndTime = req.EndTime

	if err := h.db.Save(&window).Error; err != nil {
		httperr.Internal(c, "failed_to_update_availability", "Failed to update availability window.")
		return
	}

	h.cache.InvalidateDoctor(c.Request.Context(), window.DoctorID)

	httpresp.OK(c, window)
}

func (h *DoctorHandler) DeleteAvailability(c *gin.Context) {
	var window models.AvailabilityWindow
	if err := h.db.Where("id = ?", c.Param("slotId")).First(&window).Error; err != nil {
		httperr.NotFound(c, "availability_not_found", "Availability window not found.")
		return
	}

	if err := h.db.Delete(&window).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_availability", "Failed to delete availability window.")
		return
	}

	h.cache.InvalidateDoctor(c.Request.Context(), window.DoctorID)

	httpresp.OK(c, gin.H{"status": "deleted"})
}

func (h *DoctorHandler) ListAvailability(c *gin.Context) {
	var windows []models.AvailabilityWindow
	if err := h.db.
		Where("doctor_id = ?", c.Param("id")).
		Order("day_of_week ASC, start_time ASC").
		Find(&windows).Error; err != nil {
		httperr.Internal(c, "failed_to_list_availability", "Failed to list availability windows.")
		return
	}
	httpresp.List(c, windows)
}

func (h *DoctorHandler) ListAvailabilityByDay(c *gin.Context) {
	day := strings.ToUpper(c.Param("dayOfWeek"))

	var windows []models.AvailabilityWindow
	if err := h.db.
		Where("doctor_id = ? AND day_of_week = ?", c.Param("id"), day).
		Order("start_time ASC").
		Find(&windows).Error; err != nil {
		httperr.Internal(c, "failed_to_list_availability", "Failed to list availability windows.")
		return
	}
	httpresp.List(c, windows)
}
