package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	dbpkg "github.com/v322/healthsync/internal/db"
	"github.com/v322/healthsync/internal/httperr"
	"github.com/v322/healthsync/internal/httpresp"
	"github.com/v322/healthsync/internal/ids"
	"github.com/v322/healthsync/internal/models"
)

type PatientHandler struct {
	db *gorm.DB
}

func NewPatientHandler(db *gorm.DB) *PatientHandler {
	return &PatientHandler{db: db}
}

type CreatePatientRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
	DateOfBirth string `json:"date_of_birth"`
	Notes       string `json:"notes"`
}

type UpdatePatientRequest struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Gender      *string `json:"gender"`
	Address     *string `json:"address"`
	DateOfBirth *string `json:"date_of_birth"`
	Notes       *string `json:"notes"`
}

func (h *PatientHandler) Create(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	patient := models.Patient{
		ID:               ids.New(ids.PrefixPatient),
		Name:             req.Name,
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:            req.Phone,
		Gender:           req.Gender,
		Address:          req.Address,
		DateOfBirth:      req.DateOfBirth,
		RegistrationDate: time.Now().Format("2006-01-02"),
		Notes:            req.Notes,
	}

	if err := h.db.Create(&patient).Error; err != nil {
		if dbpkg.IsUniqueViolation(err) {
			httperr.BadRequest(c, "email_already_registered", "A patient with this email already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_patient", "Failed to create patient.")
		return
	}
	httpresp.Created(c, patient)
}

func (h *PatientHandler) Get(c *gin.Context) {
	var patient models.Patient
	if err := h.db.Where("id = ?", c.Param("id")).First(&patient).Error; err != nil {
		httperr.NotFound(c, "patient_not_found", "Patient not found.")
		return
	}
	httpresp.OK(c, patient)
}

func (h *PatientHandler) GetByEmail(c *gin.Context) {
	var patient models.Patient
	if err := h.db.
		Where("email = ?", strings.ToLower(c.Param("email"))).
		First(&patient).Error; err != nil {
		httperr.NotFound(c, "patient_not_found", "Patient not found.")
		return
	}
	httpresp.OK(c, patient)
}

func (h *PatientHandler) List(c *gin.Context) {
	var patients []models.Patient
	if err := h.db.Order("name ASC").Find(&patients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_patients", "Failed to list patients.")
		return
	}
	httpresp.List(c, patients)
}

func (h *PatientHandler) Search(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		httperr.BadRequest(c, "missing_name", "name query parameter is required.")
		return
	}

	var patients []models.Patient
	if err := h.db.
		Where("name ILIKE ?", "%"+name+"%").
		Order("name ASC").
		Find(&patients).Error; err != nil {
		httperr.Internal(c, "failed_to_search_patients", "Failed to search patients.")
		return
	}
	httpresp.List(c, patients)
}

func (h *PatientHandler) Update(c *gin.Context) {
	var patient models.Patient
	if err := h.db.Where("id = ?", c.Param("id")).First(&patient).Error; err != nil {
		httperr.NotFound(c, "patient_not_found", "Patient not found.")
		return
	}

	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.DateOfBirth != nil {
		patient.DateOfBirth = *req.DateOfBirth
	}
	if req.Notes != nil {
		patient.Notes = *req.Notes
	}

	if err := h.db.Save(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_update_patient", "Failed to update patient.")
		return
	}
	httpresp.OK(c, patient)
}

func (h *PatientHandler) Delete(c *gin.Context) {
	res := h.db.Where("id = ?", c.Param("id")).Delete(&models.Patient{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_patient", "Failed to delete patient.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "patient_not_found", "Patient not found.")
		return
	}
	httpresp.OK(c, gin.H{"status": "deleted"})
}
