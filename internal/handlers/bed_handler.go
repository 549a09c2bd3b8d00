package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/v322/healthsync/internal/audit"
	"github.com/v322/healthsync/internal/httperr"
	"github.com/v322/healthsync/internal/httpresp"
	"github.com/v322/healthsync/internal/ids"
	"github.com/v322/healthsync/internal/models"
)

type BedHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewBedHandler(db *gorm.DB, auditor *audit.Dispatcher) *BedHandler {
	return &BedHandler{db: db, audit: auditor}
}

type CreateBedRequest struct {
	DepartmentID string  `json:"department_id" binding:"required"`
	DailyRate    float64 `json:"daily_rate"`
}

type AssignBedRequest struct {
	PatientID string `json:"patient_id" binding:"required"`
}

func (h *BedHandler) Create(c *gin.Context) {
	var req CreateBedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	bed := models.Bed{
		ID:           ids.New(ids.PrefixBed),
		DepartmentID: req.DepartmentID,
		DailyRate:    req.DailyRate,
	}

	if err := h.db.Create(&bed).Error; err != nil {
		httperr.Internal(c, "failed_to_create_bed", "Failed to create bed.")
		return
	}
	httpresp.Created(c, bed)
}

// bedForUpdate scopes the bed row under SELECT ... FOR UPDATE. Must run
// inside a transaction.
func bedForUpdate(tx *gorm.DB, id string) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id)
}

// Assign puts a patient into a free bed. The occupancy read takes a row lock
// inside the transaction so two assignments cannot share a bed.
func (h *BedHandler) Assign(c *gin.Context) {
	bedID := c.Param("id")

	var req AssignBedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var assigned models.Bed

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var bed models.Bed
		if err := bedForUpdate(tx, bedID).First(&bed).Error; err != nil {
			return httperr.ErrBusiness("bed_not_found")
		}
		if bed.IsOccupied {
			return httperr.ErrBusiness("bed_occupied")
		}

		bed.PatientID = req.PatientID
		bed.IsOccupied = true
		if err := tx.Save(&bed).Error; err != nil {
			return err
		}

		assigned = bed
		return nil
	})
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "bed_not_found":
			httperr.NotFound(c, "bed_not_found", "Bed not found.")
		case "bed_occupied":
			httperr.Conflict(c, "bed_occupied", "Bed is already occupied.")
		default:
			httperr.Internal(c, "failed_to_assign_bed", "Failed to assign bed.")
		}
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "bed_assigned",
		Entity:   "bed",
		EntityID: &assigned.ID,
		Metadata: gin.H{"patient_id": req.PatientID},
	})

	httpresp.OK(c, assigned)
}

func (h *BedHandler) Release(c *gin.Context) {
	var bed models.Bed
	if err := h.db.Where("id = ?", c.Param("id")).First(&bed).Error; err != nil {
		httperr.NotFound(c, "bed_not_found", "Bed not found.")
		return
	}

	bed.PatientID = ""
	bed.IsOccupied = false

	if err := h.db.Save(&bed).Error; err != nil {
		httperr.Internal(c, "failed_to_release_bed", "Failed to release bed.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "bed_released",
		Entity:   "bed",
		EntityID: &bed.ID,
	})

	httpresp.OK(c, bed)
}

func (h *BedHandler) ReleaseByPatient(c *gin.Context) {
	var bed models.Bed
	if err := h.db.
		Where("patient_id = ? AND is_occupied = ?", c.Param("patientId"), true).
		First(&bed).Error; err != nil {
		httperr.NotFound(c, "bed_not_found", "No occupied bed for this patient.")
		return
	}

	bed.PatientID = ""
	bed.IsOccupied = false

	if err := h.db.Save(&bed).Error; err != nil {
		httperr.Internal(c, "failed_to_release_bed", "Failed to release bed.")
		return
	}
	httpresp.OK(c, bed)
}

func (h *BedHandler) Get(c *gin.Context) {
	var bed models.Bed
	if err := h.db.Where("id = ?", c.Param("id")).First(&bed).Error; err != nil {
		httperr.NotFound(c, "bed_not_found", "Bed not found.")
		return
	}
	httpresp.OK(c, bed)
}

func (h *BedHandler) List(c *gin.Context) {
	var beds []models.Bed
	if err := h.db.Find(&beds).Error; err != nil {
		httperr.Internal(c, "failed_to_list_beds", "Failed to list beds.")
		return
	}
	httpresp.List(c, beds)
}

func (h *BedHandler) ListAvailable(c *gin.Context) {
	var beds []models.Bed
	if err := h.db.Where("is_occupied = ?", false).Find(&beds).Error; err != nil {
		httperr.Internal(c, "failed_to_list_beds", "Failed to list beds.")
		return
	}
	httpresp.List(c, beds)
}

func (h *BedHandler) ListOccupied(c *gin.Context) {
	var beds []models.Bed
	if err := h.db.Where("is_occupied = ?", true).Find(&beds).Error; err != nil {
		httperr.Internal(c, "failed_to_list_beds", "Failed to list beds.")
		return
	}
	httpresp.List(c, beds)
}

func (h *BedHandler) ListByDepartment(c *gin.Context) {
	var beds []models.Bed
	if err := h.db.
		Where("department_id = ?", c.Param("departmentId")).
		Find(&beds).Error; err != nil {
		httperr.Internal(c, "failed_to_list_beds", "Failed to list beds.")
		return
	}
	httpresp.List(c, beds)
}

func (h *BedHandler) AvailableCountByDepartment(c *gin.Context) {
	var count int64
	if err := h.db.Model(&models.Bed{}).
		Where("department_id = ? AND is_occupied = ?", c.Param("departmentId"), false).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_count_beds", "Failed to count beds.")
		return
	}
	httpresp.OK(c, gin.H{"available": count})
}

func (h *BedHandler) GetByPatient(c *gin.Context) {
	var bed models.Bed
	if err := h.db.
		Where("patient_id = ? AND is_occupied = ?", c.Param("patientId"), true).
		First(&bed).Error; err != nil {
		httperr.NotFound(c, "bed_not_found", "No occupied bed for this patient.")
		return
	}
	httpresp.OK(c, bed)
}

func (h *BedHandler) Delete(c *gin.Context) {
	res := h.db.Where("id = ?", c.Param("id")).Delete(&models.Bed{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_bed", "Failed to delete bed.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "bed_not_found", "Bed not found.")
		return
	}
	httpresp.OK(c, gin.H{"status": "deleted"})
}
