package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/v322/healthsync/internal/httperr"
	"github.com/v322/healthsync/internal/httpresp"
	"github.com/v322/healthsync/internal/ids"
	"github.com/v322/healthsync/internal/models"
)

type MedicationHandler struct {
	db *gorm.DB
}

func NewMedicationHandler(db *gorm.DB) *MedicationHandler {
	return &MedicationHandler{db: db}
}

type MedicationRequest struct {
	Name         string  `json:"name" binding:"required"`
	GenericName  string  `json:"generic_name"`
	Manufacturer string  `json:"manufacturer"`
	Description  string  `json:"description"`
	UnitPrice    float64 `json:"unit_price"`
}

func (h *MedicationHandler) Create(c *gin.Context) {
	var req MedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	med := models.Medication{
		ID:           ids.New(ids.PrefixMedication),
		Name:         req.Name,
		GenericName:  req.GenericName,
		Manufacturer: req.Manufacturer,
		Description:  req.Description,
		UnitPrice:    req.UnitPrice,
	}

	if err := h.db.Create(&med).Error; err != nil {
		httperr.Internal(c, "failed_to_create_medication", "Failed to create medication.")
		return
	}
	httpresp.Created(c, med)
}

func (h *MedicationHandler) Get(c *gin.Context) {
	var med models.Medication
	if err := h.db.Where("id = ?", c.Param("id")).First(&med).Error; err != nil {
		httperr.NotFound(c, "medication_not_found", "Medication not found.")
		return
	}
	httpresp.OK(c, med)
}

func (h *MedicationHandler) List(c *gin.Context) {
	var meds []models.Medication
	if err := h.db.Order("name ASC").Find(&meds).Error; err != nil {
		httperr.Internal(c, "failed_to_list_medications", "Failed to list medications.")
		return
	}
	httpresp.List(c, meds)
}

func (h *MedicationHandler) Search(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		httperr.BadRequest(c, "missing_name", "name query parameter is required.")
		return
	}

	var meds []models.Medication
	if err := h.db.
		Where("name ILIKE ? OR generic_name ILIKE ?", "%"+name+"%", "%"+name+"%").
		Order("name ASC").
		Find(&meds).Error; err != nil {
		httperr.Internal(c, "failed_to_search_medications", "Failed to search medications.")
		return
	}
	httpresp.List(c, meds)
}

func (h *MedicationHandler) Update(c *gin.Context) {
	var med models.Medication
	if err := h.db.Where("id = ?", c.Param("id")).First(&med).Error; err != nil {
		httperr.NotFound(c, "medication_not_found", "Medication not found.")
		return
	}

	var req MedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	med.Name = req.Name
	med.GenericName = req.GenericName
	med.Manufacturer = req.Manufacturer
	med.Description = req.Description
	med.UnitPrice = req.UnitPrice

	if err := h.db.Save(&med).Error; err != nil {
		httperr.Internal(c, "failed_to_update_medication", "Failed to update medication.")
		return
	}
	httpresp.OK(c, med)
}

func (h *MedicationHandler) Delete(c *gin.Context) {
	res := h.db.Where("id = ?", c.Param("id")).Delete(&models.Medication{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_medication", "Failed to delete medication.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "medication_not_found", "Medication not found.")
		return
	}
	httpresp.OK(c, gin.H{"status": "deleted"})
}
