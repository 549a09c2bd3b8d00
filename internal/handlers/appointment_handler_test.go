package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domain "github.com/v322/healthsync/internal/domain/schedule"
	"github.com/v322/healthsync/internal/infra/repository"
	"github.com/v322/healthsync/internal/models"
	ucschedule "github.com/v322/healthsync/internal/usecase/schedule"
)

func newScheduleRouter(t *testing.T) (*gin.Engine, *repository.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	store.AddAvailability(models.AvailabilityWindow{
		ID:        "SLOT-w1",
		DoctorID:  "DOC-1",
		DayOfWeek: "MONDAY",
		StartTime: "09:00",
		EndTime:   "17:00",
	})

	policy := domain.ConflictAllStatuses
	h := NewAppointmentHandler(
		nil,
		ucschedule.NewBookAppointment(store, policy, nil, nil),
		ucschedule.NewGetAvailableSlots(store, policy, nil),
		ucschedule.NewCancelAppointment(store, nil, nil),
		ucschedule.NewConductConsultation(store, nil, nil),
		ucschedule.NewUpdateAppointment(store, nil, nil),
		ucschedule.NewGetAppointment(store),
	)

	r := gin.New()
	r.POST("/appointments", h.Book)
	r.GET("/appointments/available-slots", h.AvailableSlots)
	r.PUT("/appointments/:id", h.Update)
	r.PUT("/appointments/:id/cancel", h.Cancel)
	r.PUT("/appointments/:id/consultation", h.Consultation)

	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bookBody(start, end string) gin.H {
	return gin.H{
		"patient_id": "PAT-1",
		"doctor_id":  "DOC-1",
		"date":       "2025-06-02",
		"start_time": start,
		"end_time":   end,
		"type":       "CONSULTATION",
	}
}

func TestBookEndpoint(t *testing.T) {
	r, _ := newScheduleRouter(t)

	w := doJSON(t, r, http.MethodPost, "/appointments", bookBody("10:00", "10:30"))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var ap models.Appointment
	if err := json.Unmarshal(w.Body.Bytes(), &ap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ap.Status != "SCHEDULED" {
		t.Errorf("status = %s, want SCHEDULED", ap.Status)
	}
}

func TestBookEndpointConflictIs409(t *testing.T) {
	r, _ := newScheduleRouter(t)

	if w := doJSON(t, r, http.MethodPost, "/appointments", bookBody("10:00", "10:30")); w.Code != http.StatusCreated {
		t.Fatalf("first booking: %d", w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/appointments", bookBody("10:00", "10:30"))
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}

	var resp struct {
		Code string `json:"error_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != "time_conflict" {
		t.Errorf("error_code = %q, want time_conflict", resp.Code)
	}
}

func TestBookEndpointValidation(t *testing.T) {
	r, _ := newScheduleRouter(t)

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing fields", gin.H{"doctor_id": "DOC-1"}},
		{"inverted range", bookBody("11:00", "10:00")},
		{"outside availability", bookBody("07:00", "07:30")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if w := doJSON(t, r, http.MethodPost, "/appointments", tc.body); w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestAvailableSlotsEndpoint(t *testing.T) {
	r, _ := newScheduleRouter(t)

	w := doJSON(t, r, http.MethodGet, "/appointments/available-slots?doctor_id=DOC-1&date=2025-06-02", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data  []domain.TimeSlot `json:"data"`
		Total int               `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 16 || len(resp.Data) != 16 {
		t.Errorf("total = %d, len = %d, want 16", resp.Total, len(resp.Data))
	}

	if w := doJSON(t, r, http.MethodGet, "/appointments/available-slots?doctor_id=DOC-1", nil); w.Code != http.StatusBadRequest {
		t.Errorf("missing date: status = %d, want 400", w.Code)
	}
}

func TestCancelEndpoint(t *testing.T) {
	r, _ := newScheduleRouter(t)

	w := doJSON(t, r, http.MethodPost, "/appointments", bookBody("10:00", "10:30"))
	var ap models.Appointment
	if err := json.Unmarshal(w.Body.Bytes(), &ap); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = doJSON(t, r, http.MethodPut, "/appointments/"+ap.ID+"/cancel", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var got models.Appointment
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Status != "CANCELLED" {
		t.Errorf("status = %s, want CANCELLED", got.Status)
	}

	if w := doJSON(t, r, http.MethodPut, "/appointments/APT-missing/cancel", nil); w.Code != http.StatusNotFound {
		t.Errorf("missing id: status = %d, want 404", w.Code)
	}
}

func TestConsultationEndpoint(t *testing.T) {
	r, _ := newScheduleRouter(t)

	w := doJSON(t, r, http.MethodPost, "/appointments", bookBody("10:00", "10:30"))
	var ap models.Appointment
	if err := json.Unmarshal(w.Body.Bytes(), &ap); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = doJSON(t, r, http.MethodPut, "/appointments/"+ap.ID+"/consultation", gin.H{
		"diagnosis":      "flu",
		"treatment_plan": "rest",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var got models.Appointment
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Status != "COMPLETED" || got.Diagnosis != "flu" {
		t.Errorf("status = %s diagnosis = %q, want COMPLETED/flu", got.Status, got.Diagnosis)
	}
}

func TestUpdateEndpoint(t *testing.T) {
	r, _ := newScheduleRouter(t)

	w := doJSON(t, r, http.MethodPost, "/appointments", bookBody("10:00", "10:30"))
	var ap models.Appointment
	if err := json.Unmarshal(w.Body.Bytes(), &ap); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = doJSON(t, r, http.MethodPut, "/appointments/"+ap.ID, gin.H{"status": "CONFIRMED"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var got models.Appointment
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Status != "CONFIRMED" {
		t.Errorf("status = %s, want CONFIRMED", got.Status)
	}
	if got.StartTime != "10:00" || got.EndTime != "10:30" {
		t.Error("times must survive a status-only patch")
	}
}
