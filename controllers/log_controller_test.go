package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backend/models"
	"backend/services"
	"backend/storage"

	"github.com/gin-gonic/gin"
)

func newTestRouter() (*gin.Engine, *services.LedgerService) {
	gin.SetMode(gin.TestMode)
	ledger := services.NewLedgerService(storage.NewMemoryStore(), models.DefaultTargets)
	lc := NewLogController(ledger, nil)

	r := gin.New()
	r.POST("/api/log/items", lc.AddItem)
	r.DELETE("/api/log/items/:id", lc.RemoveItem)
	r.GET("/api/log/items", lc.ListItems)
	r.DELETE("/api/log/today", lc.ClearToday)
	r.GET("/api/log/today/summary", lc.TodaySummary)
	r.GET("/api/log/weekly", lc.Weekly)
	return r, ledger
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddAndListItems(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, "POST", "/api/log/items", `{"name":"Apple","calories":95,"protein":0.5,"carbs":25,"fat":0.3}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body)
	}
	var entry models.LogEntry
	if err := json.Unmarshal(w.Body.Bytes(), &entry); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	if entry.ID == "" || entry.Kind != models.KindMeal {
		t.Errorf("entry not defaulted: %+v", entry)
	}

	w = doJSON(t, r, "GET", "/api/log/items", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var items []models.LogEntry
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode items: %v", err)
	}
	if len(items) != 1 || items[0].ID != entry.ID {
		t.Errorf("items = %+v, want the added entry", items)
	}
}

func TestAddItemRejectsMissingName(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, "POST", "/api/log/items", `{"calories":100}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRemoveItemEndpoint(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, "POST", "/api/log/items", `{"name":"Apple"}`)
	var entry models.LogEntry
	_ = json.Unmarshal(w.Body.Bytes(), &entry)

	w = doJSON(t, r, "DELETE", "/api/log/items/"+entry.ID, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}

	// removing the same id again is still a 204 no-op
	w = doJSON(t, r, "DELETE", "/api/log/items/"+entry.ID, "")
	if w.Code != http.StatusNoContent {
		t.Errorf("repeat delete status = %d, want 204", w.Code)
	}

	w = doJSON(t, r, "DELETE", "/api/log/items/x?date=March-1st", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad date status = %d, want 400", w.Code)
	}
}

func TestTodaySummary(t *testing.T) {
	r, _ := newTestRouter()

	doJSON(t, r, "POST", "/api/log/items", `{"name":"Feast","calories":2200}`)

	w := doJSON(t, r, "GET", "/api/log/today/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var summary struct {
		Totals          models.Totals   `json:"totals"`
		Progress        models.Progress `json:"progress"`
		CalorieExceeded bool            `json:"calorie_exceeded"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.Totals.Calories != 2200 {
		t.Errorf("totals.calories = %v, want 2200", summary.Totals.Calories)
	}
	if summary.Progress.Calories != 100 {
		t.Errorf("progress.calories = %v, want clamped 100", summary.Progress.Calories)
	}
	if !summary.CalorieExceeded {
		t.Error("calorie_exceeded should be true at 2200/2000")
	}
}

func TestClearTodayEndpoint(t *testing.T) {
	r, ledger := newTestRouter()

	doJSON(t, r, "POST", "/api/log/items", `{"name":"Apple"}`)
	w := doJSON(t, r, "DELETE", "/api/log/today", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if got := ledger.TodayItems(); len(got) != 0 {
		t.Errorf("today should be empty, got %+v", got)
	}
}

func TestWeeklyEndpoint(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, "GET", "/api/log/weekly", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Days []models.WeeklyDay `json:"days"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode weekly: %v", err)
	}
	if len(resp.Days) != 7 {
		t.Fatalf("got %d days, want 7", len(resp.Days))
	}
	for _, d := range resp.Days {
		if (d.Totals != models.Totals{}) {
			t.Errorf("empty ledger should yield zero totals, got %+v", d)
		}
	}
}
