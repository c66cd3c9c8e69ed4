package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"backend/models"
)

// MealDBService wraps TheMealDB recipe database.
type MealDBService struct {
	baseURL string
	client  *http.Client
}

func NewMealDBService() *MealDBService {
	return &MealDBService{
		baseURL: "https://www.themealdb.com/api/json/v1/1",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// TheMealDB flattens ingredients into strIngredient1..20 / strMeasure1..20,
// so the raw meal comes back as a loose map.
type mealListResponse struct {
	Meals []map[string]string `json:"meals"`
}

type categoryListResponse struct {
	Categories []struct {
		Name  string `json:"strCategory"`
		Thumb string `json:"strCategoryThumb"`
		Desc  string `json:"strCategoryDescription"`
	} `json:"categories"`
}

type Category struct {
	Name        string `json:"name"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
}

func (s *MealDBService) SearchMeals(query string) ([]models.Recipe, error) {
	return s.fetchMeals(fmt.Sprintf("%s/search.php?s=%s", s.baseURL, url.QueryEscape(query)))
}

func (s *MealDBService) LookupMeal(id string) (*models.Recipe, error) {
	meals, err := s.fetchMeals(fmt.Sprintf("%s/lookup.php?i=%s", s.baseURL, url.QueryEscape(id)))
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, fmt.Errorf("meal %s not found", id)
	}
	return &meals[0], nil
}

func (s *MealDBService) RandomMeal() (*models.Recipe, error) {
	meals, err := s.fetchMeals(s.baseURL + "/random.php")
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, fmt.Errorf("no random meal returned")
	}
	return &meals[0], nil
}

func (s *MealDBService) MealsByCategory(category string) ([]models.Recipe, error) {
	return s.fetchMeals(fmt.Sprintf("%s/filter.php?c=%s", s.baseURL, url.QueryEscape(category)))
}

func (s *MealDBService) ListCategories() ([]Category, error) {
	body, err := s.get(s.baseURL + "/categories.php")
	if err != nil {
		return nil, err
	}
	var cr categoryListResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("failed to parse categories JSON: %w", err)
	}
	out := make([]Category, 0, len(cr.Categories))
	for _, c := range cr.Categories {
		out = append(out, Category{Name: c.Name, Image: c.Thumb, Description: c.Desc})
	}
	return out, nil
}

func (s *MealDBService) fetchMeals(u string) ([]models.Recipe, error) {
	body, err := s.get(u)
	if err != nil {
		return nil, err
	}
	var mr mealListResponse
	if err := json.Unmarshal(body, &mr); err != nil {
		return nil, fmt.Errorf("failed to parse meal JSON: %w", err)
	}
	out := make([]models.Recipe, 0, len(mr.Meals))
	for _, m := range mr.Meals {
		out = append(out, normalizeMeal(m))
	}
	return out, nil
}

func (s *MealDBService) get(u string) ([]byte, error) {
	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call TheMealDB: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read TheMealDB response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TheMealDB API error %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

func normalizeMeal(m map[string]string) models.Recipe {
	r := models.Recipe{
		ID:           m["idMeal"],
		Name:         m["strMeal"],
		Category:     m["strCategory"],
		Area:         m["strArea"],
		Instructions: m["strInstructions"],
		Image:        m["strMealThumb"],
	}
	for i := 1; i <= 20; i++ {
		name := strings.TrimSpace(m[fmt.Sprintf("strIngredient%d", i)])
		if name == "" {
			continue
		}
		r.Ingredients = append(r.Ingredients, models.Ingredient{
			Name:    name,
			Measure: strings.TrimSpace(m[fmt.Sprintf("strMeasure%d", i)]),
		})
	}
	return r
}
