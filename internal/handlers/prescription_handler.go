package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/v322/healthsync/internal/httperr"
	"github.com/v322/healthsync/internal/httpresp"
	"github.com/v322/healthsync/internal/ids"
	"github.com/v322/healthsync/internal/models"
)

type PrescriptionHandler struct {
	db *gorm.DB
}

func NewPrescriptionHandler(db *gorm.DB) *PrescriptionHandler {
	return &PrescriptionHandler{db: db}
}

type PrescriptionItemRequest struct {
	MedicationID string `json:"medication_id" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required,min=1"`
}

type CreatePrescriptionRequest struct {
	PatientID    string                    `json:"patient_id" binding:"required"`
	DoctorID     string                    `json:"doctor_id" binding:"required"`
	Instructions string                    `json:"instructions"`
	Items        []PrescriptionItemRequest `json:"items"`
}

type UpdatePrescriptionRequest struct {
	Instructions *string `json:"instructions"`
	Status       *string `json:"status"`
}

type PrescriptionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func validPrescriptionStatus(status string) bool {
	switch status {
	case models.PrescriptionStatusPending,
		models.PrescriptionStatusDispensed,
		models.PrescriptionStatusCancelled,
		models.PrescriptionStatusExpired:
		return true
	}
	return false
}

func (h *PrescriptionHandler) Create(c *gin.Context) {
	var req CreatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	prescription := models.Prescription{
		ID:           ids.New(ids.PrefixPrescription),
		PatientID:    req.PatientID,
		DoctorID:     req.DoctorID,
		DateIssued:   time.Now().Format("2006-01-02"),
		Status:       models.PrescriptionStatusPending,
		Instructions: req.Instructions,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&prescription).Error; err != nil {
			return err
		}
		for _, it := range req.Items {
			item := models.PrescriptionItem{
				ID:             ids.New(ids.PrefixPrescriptionItem),
				PrescriptionID: prescription.ID,
				MedicationID:   it.MedicationID,
				Quantity:       it.Quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_prescription", "Failed to create prescription.")
		return
	}

	httpresp.Created(c, prescription)
}

func (h *PrescriptionHandler) AddItem(c *gin.Context) {
	var prescription models.Prescription
	if err := h.db.Where("id = ?", c.Param("id")).First(&prescription).Error; err != nil {
		httperr.NotFound(c, "prescription_not_found", "Prescription not found.")
		return
	}

	var req PrescriptionItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	item := models.PrescriptionItem{
		ID:             ids.New(ids.PrefixPrescriptionItem),
		PrescriptionID: prescription.ID,
		MedicationID:   req.MedicationID,
		Quantity:       req.Quantity,
	}

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_add_item", "Failed to add prescription item.")
		return
	}

	httpresp.Created(c, item)
}

func (h *PrescriptionHandler) Get(c *gin.Context) {
	var prescription models.Prescription
	if err := h.db.Where("id = ?", c.Param("id")).First(&prescription).Error; err != nil {
		httperr.NotFound(c, "prescription_not_found", "Prescription not found.")
		return
	}
	httpresp.OK(c, prescription)
}

func (h *PrescriptionHandler) Items(c *gin.Context) {
	var items []models.PrescriptionItem
	if err := h.db.
		Where("prescription_id = ?", c.Param("id")).
		Find(&items).Error; err != nil {
		httperr.Internal(c, "failed_to_list_items", "Failed to list prescription items.")
		return
	}
	httpresp.List(c, items)
}

func (h *PrescriptionHandler) ListByPatient(c *gin.Context) {
	h.list(c, "patient_id = ?", c.Param("patientId"))
}

func (h *PrescriptionHandler) ListByDoctor(c *gin.Context) {
	h.list(c, "doctor_id = ?", c.Param("doctorId"))
}

func (h *PrescriptionHandler) ListByStatus(c *gin.Context) {
	status := strings.ToUpper(c.Param("status"))
	if !validPrescriptionStatus(status) {
		httperr.BadRequest(c, "invalid_status", "Unknown prescription status.")
		return
	}
	h.list(c, "status = ?", status)
}

// ListByDateRange filters on date_issued; start and end are inclusive
// "2006-01-02" query parameters.
func (h *PrescriptionHandler) ListByDateRange(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		httperr.BadRequest(c, "missing_date_range", "start and end are required.")
		return
	}

	var prescriptions []models.Prescription
	if err := h.db.
		Where("date_issued >= ? AND date_issued <= ?", start, end).
		Order("date_issued DESC").
		Find(&prescriptions).Error; err != nil {
		httperr.Internal(c, "failed_to_list_prescriptions", "Failed to list prescriptions.")
		return
	}
	httpresp.List(c, prescriptions)
}

func (h *PrescriptionHandler) list(c *gin.Context, query string, arg string) {
	var prescriptions []models.Prescription
	if err := h.db.
		Where(query, arg).
		Order("date_issued DESC").
		Find(&prescriptions).Error; err != nil {
		httperr.Internal(c, "failed_to_list_prescriptions", "Failed to list prescriptions.")
		return
	}
	httpresp.List(c, prescriptions)
}

// UpdateStatus moves the prescription through its dispensing lifecycle
// (PENDING -> DISPENSED, or CANCELLED/EXPIRED).
func (h *PrescriptionHandler) UpdateStatus(c *gin.Context) {
	var req PrescriptionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	status := strings.ToUpper(req.Status)
	if !validPrescriptionStatus(status) {
		httperr.BadRequest(c, "invalid_status", "Unknown prescription status.")
		return
	}

	var prescription models.Prescription
	if err := h.db.Where("id = ?", c.Param("id")).First(&prescription).Error; err != nil {
		httperr.NotFound(c, "prescription_not_found", "Prescription not found.")
		return
	}

	prescription.Status = status
	if err := h.db.Save(&prescription).Error; err != nil {
		httperr.Internal(c, "failed_to_update_prescription", "Failed to update prescription.")
		return
	}
	httpresp.OK(c, prescription)
}

func (h *PrescriptionHandler) Update(c *gin.Context) {
	var prescription models.Prescription
	if err := h.db.Where("id = ?", c.Param("id")).First(&prescription).Error; err != nil {
		httperr.NotFound(c, "prescription_not_found", "Prescription not found.")
		return
	}

	var req UpdatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Instructions != nil {
		prescription.Instructions = *req.Instructions
	}
	if req.Status != nil {
		status := strings.ToUpper(*req.Status)
		if !validPrescriptionStatus(status) {
			httperr.BadRequest(c, "invalid_status", "Unknown prescription status.")
			return
		}
		prescription.Status = status
	}

	if err := h.db.Save(&prescription).Error; err != nil {
		httperr.Internal(c, "failed_to_update_prescription", "Failed to update prescription.")
		return
	}
	httpresp.OK(c, prescription)
}

func (h *PrescriptionHandler) Delete(c *gin.Context) {
	res := h.db.Where("id = ?", c.Param("id")).Delete(&models.Prescription{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_prescription", "Failed to delete prescription.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "prescription_not_found", "Prescription not found.")
		return
	}
	httpresp.OK(c, gin.H{"status": "deleted"})
}

func (h *PrescriptionHandler) DeleteItem(c *gin.Context) {
	res := h.db.Where("id = ?", c.Param("itemId")).Delete(&models.PrescriptionItem{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_item", "Failed to delete prescription item.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "item_not_found", "Prescription item not found.")
		return
	}
	httpresp.OK(c, gin.H{"status": "deleted"})
}
