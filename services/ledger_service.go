package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"backend/models"
	"backend/storage"

	"github.com/google/uuid"
)

const dateKeyFormat = "2006-01-02"

// AddItemRequest is the partial descriptor callers supply when logging a
// food item. Only Name is required; everything else has a default.
type AddItemRequest struct {
	Name     string  `json:"name"`
	Kind     string  `json:"kind"`
	Image    string  `json:"image"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Quantity float64 `json:"quantity"`
}

// LedgerService owns the date-partitioned food log. The whole ledger is
// one JSON blob keyed by local calendar date ("2006-01-02"); every
// mutation is a read-modify-write of that blob. Read failures degrade to
// an empty ledger, write failures are returned to the caller.
type LedgerService struct {
	store   storage.Store
	targets models.DailyTargets
	now     func() time.Time
}

func NewLedgerService(store storage.Store, targets models.DailyTargets) *LedgerService {
	return &LedgerService{store: store, targets: targets, now: time.Now}
}

// AddItem fills in defaults, appends the entry to today's log and
// persists. The returned entry is valid even when persist fails; the
// error tells the caller durability was lost.
func (s *LedgerService) AddItem(req AddItemRequest) (*models.LogEntry, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	kind := req.Kind
	switch kind {
	case "":
		kind = models.KindMeal
	case models.KindMeal, models.KindProduct, models.KindCustom:
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	qty := req.Quantity
	if qty <= 0 {
		qty = 1
	}

	now := s.now()
	entry := models.LogEntry{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Kind:     kind,
		Image:    req.Image,
		Calories: nonNeg(req.Calories),
		Protein:  nonNeg(req.Protein),
		Carbs:    nonNeg(req.Carbs),
		Fat:      nonNeg(req.Fat),
		Quantity: qty,
		LoggedAt: now,
	}

	ledger := s.load()
	key := now.Format(dateKeyFormat)
	ledger[key] = append(ledger[key], entry)
	if err := s.persist(ledger); err != nil {
		return &entry, err
	}
	return &entry, nil
}

// RemoveItem deletes the entry with the given id from the log at dateKey
// (today when empty). Missing date or id is a no-op, not an error.
func (s *LedgerService) RemoveItem(id, dateKey string) error {
	if dateKey == "" {
		dateKey = s.now().Format(dateKeyFormat)
	}
	ledger := s.load()
	day, ok := ledger[dateKey]
	if !ok {
		return nil
	}
	kept := day[:0:0]
	for _, e := range day {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(day) {
		return nil
	}
	if len(kept) == 0 {
		// an empty day and an absent day are the same thing
		delete(ledger, dateKey)
	} else {
		ledger[dateKey] = kept
	}
	return s.persist(ledger)
}

// ItemsForDate returns the entries logged on the given date key, in
// insertion order. Unknown dates yield an empty slice.
func (s *LedgerService) ItemsForDate(dateKey string) []models.LogEntry {
	items := s.load()[dateKey]
	if items == nil {
		items = []models.LogEntry{}
	}
	return items
}

func (s *LedgerService) TodayItems() []models.LogEntry {
	return s.ItemsForDate(s.now().Format(dateKeyFormat))
}

// ClearToday drops today's entire log. Other dates are untouched.
func (s *LedgerService) ClearToday() error {
	key := s.now().Format(dateKeyFormat)
	ledger := s.load()
	if _, ok := ledger[key]; !ok {
		return nil
	}
	delete(ledger, key)
	return s.persist(ledger)
}

// ComputeTotals sums nutrient*quantity over the given entries.
func ComputeTotals(items []models.LogEntry) models.Totals {
	var t models.Totals
	for _, it := range items {
		t.Calories += it.Calories * it.Quantity
		t.Protein += it.Protein * it.Quantity
		t.Carbs += it.Carbs * it.Quantity
		t.Fat += it.Fat * it.Quantity
	}
	return t
}

func (s *LedgerService) TodayTotals() models.Totals {
	return ComputeTotals(s.TodayItems())
}

// Progress reports today's totals as percentages of the daily targets,
// clamped to 100 on the high side.
func (s *LedgerService) Progress() models.Progress {
	t := s.TodayTotals()
	return models.Progress{
		Calories: pctOfTarget(t.Calories, s.targets.Calories),
		Protein:  pctOfTarget(t.Protein, s.targets.Protein),
		Carbs:    pctOfTarget(t.Carbs, s.targets.Carbs),
		Fat:      pctOfTarget(t.Fat, s.targets.Fat),
	}
}

// CalorieExceeded is true when today's calories are strictly over target.
func (s *LedgerService) CalorieExceeded() bool {
	return s.TodayTotals().Calories > s.targets.Calories
}

// WeeklyData returns exactly 7 days ending today, oldest first. Days
// with no entries carry all-zero totals rather than being omitted.
func (s *LedgerService) WeeklyData() []models.WeeklyDay {
	ledger := s.load()
	today := dayStartLocal(s.now())
	out := make([]models.WeeklyDay, 0, 7)
	for i := 6; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		key := d.Format(dateKeyFormat)
		out = append(out, models.WeeklyDay{
			Date:   key,
			Label:  d.Format("Mon"),
			Totals: ComputeTotals(ledger[key]),
		})
	}
	return out
}

// Targets returns the configured daily targets.
func (s *LedgerService) Targets() models.DailyTargets { return s.targets }

// load reads the whole ledger blob. Anything unreadable or unparseable
// degrades to an empty ledger.
func (s *LedgerService) load() map[string][]models.LogEntry {
	data, err := s.store.Read()
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("ledger: read failed, treating as empty: %v", err)
		}
		return map[string][]models.LogEntry{}
	}
	var ledger map[string][]models.LogEntry
	if err := json.Unmarshal(data, &ledger); err != nil {
		log.Printf("ledger: malformed blob, treating as empty: %v", err)
		return map[string][]models.LogEntry{}
	}
	if ledger == nil {
		ledger = map[string][]models.LogEntry{}
	}
	return ledger
}

func (s *LedgerService) persist(ledger map[string][]models.LogEntry) error {
	data, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	if err := s.store.Write(data); err != nil {
		return fmt.Errorf("persist ledger: %w", err)
	}
	return nil
}

func pctOfTarget(consumed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := consumed / target * 100
	if p > 100 {
		return 100
	}
	return p
}

func nonNeg(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func dayStartLocal(t time.Time) time.Time {
	tt := t.In(time.Local)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}
