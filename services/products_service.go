package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"backend/models"
)

// ProductsService wraps the Open Food Facts packaged-product database
// (text search plus barcode lookup for the scanner flow).
type ProductsService struct {
	baseURL string
	client  *http.Client
}

func NewProductsService() *ProductsService {
	return &ProductsService{
		baseURL: "https://world.openfoodfacts.org",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type offProduct struct {
	Code       string `json:"code"`
	Name       string `json:"product_name"`
	Brands     string `json:"brands"`
	Image      string `json:"image_url"`
	Serving    string `json:"serving_size"`
	Nutriments struct {
		Calories float64 `json:"energy-kcal_100g"`
		Protein  float64 `json:"proteins_100g"`
		Carbs    float64 `json:"carbohydrates_100g"`
		Fat      float64 `json:"fat_100g"`
	} `json:"nutriments"`
}

type offSearchResponse struct {
	Products []offProduct `json:"products"`
}

type offLookupResponse struct {
	Status  int        `json:"status"`
	Product offProduct `json:"product"`
}

func (s *ProductsService) SearchProducts(query string) ([]models.Product, error) {
	u := fmt.Sprintf(
		"%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=24",
		s.baseURL, url.QueryEscape(query),
	)
	body, err := s.get(u)
	if err != nil {
		return nil, err
	}
	var sr offSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse product search JSON: %w", err)
	}
	out := make([]models.Product, 0, len(sr.Products))
	for _, p := range sr.Products {
		out = append(out, normalizeProduct(p))
	}
	return out, nil
}

// GetByBarcode resolves a scanned barcode to a product.
func (s *ProductsService) GetByBarcode(code string) (*models.Product, error) {
	u := fmt.Sprintf("%s/api/v2/product/%s.json", s.baseURL, url.PathEscape(code))
	body, err := s.get(u)
	if err != nil {
		return nil, err
	}
	var lr offLookupResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return nil, fmt.Errorf("failed to parse product JSON: %w", err)
	}
	if lr.Status != 1 {
		return nil, fmt.Errorf("product %s not found", code)
	}
	p := normalizeProduct(lr.Product)
	if p.Barcode == "" {
		p.Barcode = code
	}
	return &p, nil
}

func (s *ProductsService) get(u string) ([]byte, error) {
	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call Open Food Facts: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Open Food Facts response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Open Food Facts API error %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

func normalizeProduct(p offProduct) models.Product {
	return models.Product{
		Barcode: p.Code,
		Name:    p.Name,
		Brand:   p.Brands,
		Image:   p.Image,
		Serving: p.Serving,
		Nutrition: models.Totals{
			Calories: p.Nutriments.Calories,
			Protein:  p.Nutriments.Protein,
			Carbs:    p.Nutriments.Carbs,
			Fat:      p.Nutriments.Fat,
		},
	}
}
