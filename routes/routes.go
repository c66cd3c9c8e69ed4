package routes

import (
	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(ledger *services.LedgerService) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	hub := services.NewRealtimeHub()
	logCtl := controllers.NewLogController(ledger, hub)
	foodCtl := controllers.NewFoodController(
		services.NewMealDBService(),
		services.NewProductsService(),
		services.NewNutritionService(),
	)
	rtCtl := controllers.NewRealtimeController(hub)

	if config.AuthEnabled() {
		r.POST("/auth/login", controllers.Login)
	}

	api := r.Group("/api")
	if config.AuthEnabled() {
		api.Use(middlewares.AuthMiddleware())
	}
	{
		logGroup := api.Group("/log")
		logGroup.POST("/items", logCtl.AddItem)
		logGroup.DELETE("/items/:id", logCtl.RemoveItem)
		logGroup.GET("/items", logCtl.ListItems)
		logGroup.DELETE("/today", logCtl.ClearToday)
		logGroup.GET("/today/summary", logCtl.TodaySummary)
		logGroup.GET("/weekly", logCtl.Weekly)

		recipes := api.Group("/recipes")
		recipes.GET("/search", foodCtl.SearchRecipes)
		recipes.GET("/random", foodCtl.RandomRecipe)
		recipes.GET("/categories", foodCtl.ListCategories)
		recipes.GET("/category/:name", foodCtl.RecipesByCategory)
		recipes.GET("/:id", foodCtl.GetRecipe)

		products := api.Group("/products")
		products.GET("/search", foodCtl.SearchProducts)
		products.GET("/:barcode", foodCtl.GetProduct)

		api.POST("/foods/analyze", foodCtl.AnalyzeFood)
	}

	r.GET("/ws", rtCtl.UpdatesWS)

	return r
}
