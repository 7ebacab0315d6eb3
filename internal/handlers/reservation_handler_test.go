package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hostdesk/reservation-api/internal/config"
	domain "github.com/hostdesk/reservation-api/internal/domain/reservation"
	infraRepo "github.com/hostdesk/reservation-api/internal/infra/repository"
	"github.com/hostdesk/reservation-api/internal/logging"
	"github.com/hostdesk/reservation-api/internal/routes"
)

// envelope mirrors the shared response shape for decoding in tests.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestRouter(repo domain.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, repo, &config.Config{}, logging.New(io.Discard, "error", "text"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		blob, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(blob)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope from %q: %v", w.Body.String(), err)
	}
	return w, env
}

func createBody(date, clock string) map[string]any {
	return map[string]any{
		"customerName": "Ana Lima",
		"phoneNumber":  "+1 (555) 123-4567",
		"date":         date,
		"time":         clock,
		"partySize":    2,
		"source":       "Manual",
		"status":       "Pending",
		"notes":        "",
	}
}

func TestCreateReservationEndpoint(t *testing.T) {
	r := newTestRouter(infraRepo.NewReservationMemoryRepository(nil))

	w, env := doJSON(t, r, http.MethodPost, "/api/reservations", createBody("2025-03-15", "19:30:00"))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	if !env.Success {
		t.Fatalf("success = false: %s", env.Error)
	}

	var res domain.Reservation
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if res.ID == "" {
		t.Error("expected assigned id")
	}
	if !res.CreatedAt.Equal(res.UpdatedAt) {
		t.Errorf("createdAt %v != updatedAt %v", res.CreatedAt, res.UpdatedAt)
	}
	if res.CustomerName != "Ana Lima" || res.Date != "2025-03-15" || res.Time != "19:30:00" {
		t.Errorf("unexpected record: %+v", res)
	}
}

func TestCreateReservationRejectsBadBody(t *testing.T) {
	repo := infraRepo.NewReservationMemoryRepository(nil)
	r := newTestRouter(repo)

	body := createBody("2025-03-15", "19:30:00")
	body["partySize"] = -3

	w, env := doJSON(t, r, http.MethodPost, "/api/reservations", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if env.Success {
		t.Error("success should be false")
	}
	if env.Error == "" {
		t.Error("expected an error message in the envelope")
	}
}

func TestListSortedByDateTime(t *testing.T) {
	r := newTestRouter(infraRepo.NewReservationMemoryRepository(nil))

	if w, _ := doJSON(t, r, http.MethodPost, "/api/reservations", createBody("2025-01-02", "08:00:00")); w.Code != 201 {
		t.Fatalf("seed create failed: %d", w.Code)
	}
	if w, _ := doJSON(t, r, http.MethodPost, "/api/reservations", createBody("2025-01-01", "20:00:00")); w.Code != 201 {
		t.Fatalf("seed create failed: %d", w.Code)
	}

	w, env := doJSON(t, r, http.MethodGet, "/api/reservations", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var list []domain.Reservation
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 records, got %d", len(list))
	}
	if list[0].Date != "2025-01-01" || list[1].Date != "2025-01-02" {
		t.Errorf("list not sorted by date: %s, %s", list[0].Date, list[1].Date)
	}
}

func TestGetMissingReservation(t *testing.T) {
	r := newTestRouter(infraRepo.NewReservationMemoryRepository(nil))

	w, env := doJSON(t, r, http.MethodGet, "/api/reservations/does-not-exist", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if env.Success {
		t.Error("success should be false")
	}
}

func TestUpdateReservationEndpoint(t *testing.T) {
	r := newTestRouter(infraRepo.NewReservationMemoryRepository(nil))

	_, created := doJSON(t, r, http.MethodPost, "/api/reservations", createBody("2025-03-15", "19:30:00"))
	var res domain.Reservation
	if err := json.Unmarshal(created.Data, &res); err != nil {
		t.Fatal(err)
	}

	body := createBody("2025-03-16", "20:00:00")
	body["customerName"] = "Ana L. Ferreira"

	w, env := doJSON(t, r, http.MethodPut, "/api/reservations/"+res.ID, body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var updated domain.Reservation
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatal(err)
	}
	if updated.ID != res.ID {
		t.Errorf("id changed on update")
	}
	if updated.CustomerName != "Ana L. Ferreira" {
		t.Errorf("customerName = %q", updated.CustomerName)
	}
	if updated.UpdatedAt.Before(updated.CreatedAt) {
		t.Errorf("updatedAt before createdAt")
	}
}

func TestStatusPatchRejectsUnknownValue(t *testing.T) {
	repo := infraRepo.NewReservationMemoryRepository(nil)
	r := newTestRouter(repo)

	_, created := doJSON(t, r, http.MethodPost, "/api/reservations", createBody("2025-03-15", "19:30:00"))
	var res domain.Reservation
	if err := json.Unmarshal(created.Data, &res); err != nil {
		t.Fatal(err)
	}

	w, _ := doJSON(t, r, http.MethodPatch, "/api/reservations/"+res.ID+"/status", map[string]any{"status": "Approved"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	_, got := doJSON(t, r, http.MethodGet, "/api/reservations/"+res.ID, nil)
	var unchanged domain.Reservation
	if err := json.Unmarshal(got.Data, &unchanged); err != nil {
		t.Fatal(err)
	}
	if unchanged.Status != "Pending" {
		t.Errorf("record changed by rejected patch: %q", unchanged.Status)
	}
}

func TestStatusPatchConfirms(t *testing.T) {
	r := newTestRouter(infraRepo.NewReservationMemoryRepository(nil))

	_, created := doJSON(t, r, http.MethodPost, "/api/reservations", createBody("2025-03-15", "19:30:00"))
	var res domain.Reservation
	if err := json.Unmarshal(created.Data, &res); err != nil {
		t.Fatal(err)
	}

	w, env := doJSON(t, r, http.MethodPatch, "/api/reservations/"+res.ID+"/status", map[string]any{"status": "Confirmed"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var updated domain.Reservation
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatal(err)
	}
	if updated.Status != "Confirmed" {
		t.Errorf("status = %q, want Confirmed", updated.Status)
	}
}

func TestDeleteReservationEndpoint(t *testing.T) {
	r := newTestRouter(infraRepo.NewReservationMemoryRepository(nil))

	_, created := doJSON(t, r, http.MethodPost, "/api/reservations", createBody("2025-03-15", "19:30:00"))
	var res domain.Reservation
	if err := json.Unmarshal(created.Data, &res); err != nil {
		t.Fatal(err)
	}

	w, env := doJSON(t, r, http.MethodDelete, "/api/reservations/"+res.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !env.Success {
		t.Error("success should be true")
	}

	if w, _ := doJSON(t, r, http.MethodGet, "/api/reservations/"+res.ID, nil); w.Code != http.StatusNotFound {
		t.Errorf("deleted record still readable: %d", w.Code)
	}
}

func TestDeleteMissingLeavesStoreUntouched(t *testing.T) {
	repo := infraRepo.NewReservationMemoryRepository(domain.SampleFields())
	r := newTestRouter(repo)

	_, before := doJSON(t, r, http.MethodGet, "/api/reservations", nil)
	var beforeList []domain.Reservation
	if err := json.Unmarshal(before.Data, &beforeList); err != nil {
		t.Fatal(err)
	}

	w, _ := doJSON(t, r, http.MethodDelete, "/api/reservations/missing-id", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	_, after := doJSON(t, r, http.MethodGet, "/api/reservations", nil)
	var afterList []domain.Reservation
	if err := json.Unmarshal(after.Data, &afterList); err != nil {
		t.Fatal(err)
	}
	if len(beforeList) != len(afterList) {
		t.Errorf("store size changed: %d -> %d", len(beforeList), len(afterList))
	}
}

func TestCallFluentTestUnconfigured(t *testing.T) {
	r := newTestRouter(infraRepo.NewReservationMemoryRepository(nil))

	w, env := doJSON(t, r, http.MethodPost, "/api/callfluent/test", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 when unconfigured", w.Code)
	}
	if env.Success {
		t.Error("success should be false")
	}
}

func TestTriggerReminderMissingReservation(t *testing.T) {
	r := newTestRouter(infraRepo.NewReservationMemoryRepository(nil))

	w, _ := doJSON(t, r, http.MethodPost, "/api/callfluent/trigger-reminder/missing-id", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
