package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"backend/models"
)

// NutritionService analyzes free-text food descriptions ("1 cup rice")
// via the Edamam nutrition API, for custom items the recipe and product
// databases don't cover.
type NutritionService struct {
	appID, appKey string
	baseURL       string
	client        *http.Client
}

func NewNutritionService() *NutritionService {
	return &NutritionService{
		appID:   os.Getenv("EDAMAM_APP_ID"),
		appKey:  os.Getenv("EDAMAM_APP_KEY"),
		baseURL: "https://api.edamam.com",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type nutrientsResponse struct {
	Calories       float64 `json:"calories"`
	TotalNutrients map[string]struct {
		Quantity float64 `json:"quantity"`
	} `json:"totalNutrients"`
}

// Analyze returns the macro totals for a free-text ingredient line.
func (s *NutritionService) Analyze(text string) (*models.Totals, error) {
	payload := map[string]interface{}{
		"ingr": []string{text},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal nutrition payload: %w", err)
	}

	u := fmt.Sprintf(
		"%s/api/nutrition-details?app_id=%s&app_key=%s",
		s.baseURL, s.appID, s.appKey,
	)

	req, err := http.NewRequest("POST", u, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create nutrition request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call nutrition API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read nutrition response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nutrition API error %d: %s", resp.StatusCode, string(body))
	}

	var nr nutrientsResponse
	if err := json.Unmarshal(body, &nr); err != nil {
		return nil, fmt.Errorf("failed to parse nutrition JSON: %w", err)
	}

	return &models.Totals{
		Calories: nr.Calories,
		Protein:  nr.TotalNutrients["PROCNT"].Quantity,
		Carbs:    nr.TotalNutrients["CHOCDF"].Quantity,
		Fat:      nr.TotalNutrients["FAT"].Quantity,
	}, nil
}
