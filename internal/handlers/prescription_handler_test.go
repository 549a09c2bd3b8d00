package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/v322/healthsync/internal/models"
)

func TestValidPrescriptionStatus(t *testing.T) {
	valid := []string{
		models.PrescriptionStatusPending,
		models.PrescriptionStatusDispensed,
		models.PrescriptionStatusCancelled,
		models.PrescriptionStatusExpired,
	}
	for _, s := range valid {
		if !validPrescriptionStatus(s) {
			t.Errorf("status %s should be valid", s)
		}
	}

	invalid := []string{"", "pending", "SHIPPED", "DONE"}
	for _, s := range invalid {
		if validPrescriptionStatus(s) {
			t.Errorf("status %q should be rejected", s)
		}
	}
}

func newPrescriptionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPrescriptionHandler(nil)

	r := gin.New()
	r.GET("/prescriptions/status/:status", h.ListByStatus)
	r.PUT("/prescriptions/:id/status", h.UpdateStatus)
	return r
}

func TestListByStatusRejectsUnknownStatus(t *testing.T) {
	r := newPrescriptionRouter()

	w := doJSON(t, r, http.MethodGet, "/prescriptions/status/SHIPPED", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	r := newPrescriptionRouter()

	w := doJSON(t, r, http.MethodPut, "/prescriptions/PRES-1/status", gin.H{"status": "SHIPPED"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, "/prescriptions/PRES-1/status", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing status: status = %d, want 400", w.Code)
	}
}
