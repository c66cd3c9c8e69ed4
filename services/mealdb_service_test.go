package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const mealJSON = `{"meals":[{
	"idMeal":"52772",
	"strMeal":"Teriyaki Chicken Casserole",
	"strCategory":"Chicken",
	"strArea":"Japanese",
	"strInstructions":"Preheat oven to 350.",
	"strMealThumb":"https://www.themealdb.com/images/media/meals/wvpsxx1468256321.jpg",
	"strIngredient1":"soy sauce",
	"strMeasure1":"3/4 cup",
	"strIngredient2":"water",
	"strMeasure2":"1/2 cup",
	"strIngredient3":"",
	"strMeasure3":""
}]}`

func newMealDBTestServer(t *testing.T, body string) *MealDBService {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	s := NewMealDBService()
	s.baseURL = srv.URL
	s.client = srv.Client()
	return s
}

func TestSearchMealsNormalizes(t *testing.T) {
	s := newMealDBTestServer(t, mealJSON)

	recipes, err := s.SearchMeals("teriyaki")
	if err != nil {
		t.Fatalf("SearchMeals: %v", err)
	}
	if len(recipes) != 1 {
		t.Fatalf("got %d recipes, want 1", len(recipes))
	}
	r := recipes[0]
	if r.ID != "52772" || r.Name != "Teriyaki Chicken Casserole" || r.Category != "Chicken" {
		t.Errorf("recipe fields wrong: %+v", r)
	}
	if len(r.Ingredients) != 2 {
		t.Fatalf("got %d ingredients, want 2 (blanks skipped)", len(r.Ingredients))
	}
	if r.Ingredients[0].Name != "soy sauce" || r.Ingredients[0].Measure != "3/4 cup" {
		t.Errorf("first ingredient wrong: %+v", r.Ingredients[0])
	}
}

func TestSearchMealsEmptyResult(t *testing.T) {
	// TheMealDB returns a literal null meals list on no match
	s := newMealDBTestServer(t, `{"meals":null}`)

	recipes, err := s.SearchMeals("zzzz")
	if err != nil {
		t.Fatalf("SearchMeals: %v", err)
	}
	if len(recipes) != 0 {
		t.Errorf("got %d recipes, want 0", len(recipes))
	}
}

func TestLookupMealNotFound(t *testing.T) {
	s := newMealDBTestServer(t, `{"meals":null}`)

	if _, err := s.LookupMeal("0"); err == nil {
		t.Error("expected error for unknown meal id")
	}
}

func TestMealDBErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()
	s := NewMealDBService()
	s.baseURL = srv.URL
	s.client = srv.Client()

	if _, err := s.SearchMeals("x"); err == nil {
		t.Error("expected error on non-200 status")
	}
}
