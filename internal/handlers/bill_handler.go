package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/v322/healthsync/internal/httperr"
	"github.com/v322/healthsync/internal/httpresp"
	"github.com/v322/healthsync/internal/ids"
	"github.com/v322/healthsync/internal/models"
)

type BillHandler struct {
	db *gorm.DB
}

func NewBillHandler(db *gorm.DB) *BillHandler {
	return &BillHandler{db: db}
}

type BillItemRequest struct {
	Description string  `json:"description" binding:"required"`
	UnitPrice   float64 `json:"unit_price" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
}

type CreateBillRequest struct {
	PatientID string            `json:"patient_id" binding:"required"`
	Items     []BillItemRequest `json:"items"`
}

type PaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

func (h *BillHandler) Create(c *gin.Context) {
	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	bill := models.Bill{
		ID:        ids.New(ids.PrefixBill),
		PatientID: req.PatientID,
		BillDate:  time.Now().Format("2006-01-02"),
		Status:    models.BillStatusUnpaid,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for _, it := range req.Items {
			item := models.BillItem{
				ID:          ids.New(ids.PrefixBillItem),
				BillID:      bill.ID,
				Description: it.Description,
				UnitPrice:   it.UnitPrice,
				Quantity:    it.Quantity,
				TotalPrice:  it.UnitPrice * float64(it.Quantity),
			}
			bill.TotalAmount += item.TotalPrice

			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return tx.Create(&bill).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_bill", "Failed to create bill.")
		return
	}

	httpresp.Created(c, bill)
}

// billForUpdate scopes the bill row under SELECT ... FOR UPDATE. Must run
// inside a transaction.
func billForUpdate(tx *gorm.DB, id string) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id)
}

func (h *BillHandler) AddItem(c *gin.Context) {
	var req BillItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var item models.BillItem

	// the total_amount increment reads the bill under a row lock so
	// concurrent AddItem calls cannot lose each other's updates
	err := h.db.Transaction(func(tx *gorm.DB) error {
		var bill models.Bill
		if err := billForUpdate(tx, c.Param("id")).First(&bill).Error; err != nil {
			return httperr.ErrBusiness("bill_not_found")
		}

		item = models.BillItem{
			ID:          ids.New(ids.PrefixBillItem),
			BillID:      bill.ID,
			Description: req.Description,
			UnitPrice:   req.UnitPrice,
			Quantity:    req.Quantity,
			TotalPrice:  req.UnitPrice * float64(req.Quantity),
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}

		bill.TotalAmount += item.TotalPrice
		return tx.Save(&bill).Error
	})
	if err != nil {
		if httperr.BusinessCode(err) == "bill_not_found" {
			httperr.NotFound(c, "bill_not_found", "Bill not found.")
			return
		}
		httperr.Internal(c, "failed_to_add_item", "Failed to add bill item.")
		return
	}

	httpresp.Created(c, item)
}

// RecordPayment accumulates into paid_amount and derives the bill status:
// UNPAID -> PARTIAL -> PAID once paid_amount reaches total_amount.
func (h *BillHandler) RecordPayment(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var bill models.Bill

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := billForUpdate(tx, c.Param("id")).First(&bill).Error; err != nil {
			return httperr.ErrBusiness("bill_not_found")
		}

		bill.PaidAmount += req.Amount
		switch {
		case bill.PaidAmount >= bill.TotalAmount:
			bill.Status = models.BillStatusPaid
		case bill.PaidAmount > 0:
			bill.Status = models.BillStatusPartial
		}

		return tx.Save(&bill).Error
	})
	if err != nil {
		if httperr.BusinessCode(err) == "bill_not_found" {
			httperr.NotFound(c, "bill_not_found", "Bill not found.")
			return
		}
		httperr.Internal(c, "failed_to_record_payment", "Failed to record payment.")
		return
	}
	httpresp.OK(c, bill)
}

func (h *BillHandler) Get(c *gin.Context) {
	var bill models.Bill
	if err := h.db.Where("id = ?", c.Param("id")).First(&bill).Error; err != nil {
		httperr.NotFound(c, "bill_not_found", "Bill not found.")
		return
	}
	httpresp.OK(c, bill)
}

func (h *BillHandler) Items(c *gin.Context) {
	var items []models.BillItem
	if err := h.db.Where("bill_id = ?", c.Param("id")).Find(&items).Error; err != nil {
		httperr.Internal(c, "failed_to_list_items", "Failed to list bill items.")
		return
	}
	httpresp.List(c, items)
}

func (h *BillHandler) ListByPatient(c *gin.Context) {
	var bills []models.Bill
	if err := h.db.
		Where("patient_id = ?", c.Param("patientId")).
		Order("bill_date DESC").
		Find(&bills).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bills", "Failed to list bills.")
		return
	}
	httpresp.List(c, bills)
}

func (h *BillHandler) ListByStatus(c *gin.Context) {
	var bills []models.Bill
	if err := h.db.
		Where("status = ?", c.Param("status")).
		Order("bill_date DESC").
		Find(&bills).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bills", "Failed to list bills.")
		return
	}
	httpresp.List(c, bills)
}

func (h *BillHandler) ListUnpaid(c *gin.Context) {
	var bills []models.Bill
	if err := h.db.
		Where("status <> ?", models.BillStatusPaid).
		Order("bill_date DESC").
		Find(&bills).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bills", "Failed to list bills.")
		return
	}
	httpresp.List(c, bills)
}

func (h *BillHandler) PatientTotal(c *gin.Context) {
	var total float64
	if err := h.db.Model(&models.Bill{}).
		Where("patient_id = ?", c.Param("patientId")).
		Select("COALESCE(SUM(total_amount - paid_amount), 0)").
		Scan(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_total_bills", "Failed to compute outstanding total.")
		return
	}
	httpresp.OK(c, gin.H{"outstanding": total})
}
