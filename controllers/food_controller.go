package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Recipes   *services.MealDBService
	Products  *services.ProductsService
	Nutrition *services.NutritionService
}

func NewFoodController(r *services.MealDBService, p *services.ProductsService, n *services.NutritionService) *FoodController {
	return &FoodController{Recipes: r, Products: p, Nutrition: n}
}

func (fc *FoodController) SearchRecipes(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}
	recipes, err := fc.Recipes.SearchMeals(q)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (fc *FoodController) GetRecipe(c *gin.Context) {
	recipe, err := fc.Recipes.LookupMeal(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (fc *FoodController) RandomRecipe(c *gin.Context) {
	recipe, err := fc.Recipes.RandomMeal()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (fc *FoodController) ListCategories(c *gin.Context) {
	cats, err := fc.Recipes.ListCategories()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (fc *FoodController) RecipesByCategory(c *gin.Context) {
	recipes, err := fc.Recipes.MealsByCategory(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (fc *FoodController) SearchProducts(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}
	products, err := fc.Products.SearchProducts(q)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (fc *FoodController) GetProduct(c *gin.Context) {
	product, err := fc.Products.GetByBarcode(c.Param("barcode"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (fc *FoodController) AnalyzeFood(c *gin.Context) {
	var body struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	totals, err := fc.Nutrition.Analyze(body.Text)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, totals)
}
