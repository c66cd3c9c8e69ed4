package controllers

import (
	"log"
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	Ledger *services.LedgerService
	RT     *services.RealtimeHub
}

func NewLogController(ledger *services.LedgerService, rt *services.RealtimeHub) *LogController {
	return &LogController{Ledger: ledger, RT: rt}
}

func (lc *LogController) AddItem(c *gin.Context) {
	var body services.AddItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := lc.Ledger.AddItem(body)
	if err != nil {
		if entry == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// entry was built but the store write failed
		log.Printf("add item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist entry"})
		return
	}
	lc.notify()
	c.JSON(http.StatusCreated, entry)
}

func (lc *LogController) RemoveItem(c *gin.Context) {
	id := c.Param("id")
	dateKey := c.Query("date")
	if dateKey != "" && !validDateKey(dateKey) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	if err := lc.Ledger.RemoveItem(id, dateKey); err != nil {
		log.Printf("remove item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist removal"})
		return
	}
	lc.notify()
	c.Status(http.StatusNoContent)
}

func (lc *LogController) ListItems(c *gin.Context) {
	dateKey := c.Query("date")
	if dateKey == "" {
		c.JSON(http.StatusOK, lc.Ledger.TodayItems())
		return
	}
	if !validDateKey(dateKey) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	c.JSON(http.StatusOK, lc.Ledger.ItemsForDate(dateKey))
}

func (lc *LogController) ClearToday(c *gin.Context) {
	if err := lc.Ledger.ClearToday(); err != nil {
		log.Printf("clear today: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist clear"})
		return
	}
	lc.notify()
	c.Status(http.StatusNoContent)
}

// TodaySummary bundles everything the dashboard needs in one call.
func (lc *LogController) TodaySummary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items":            lc.Ledger.TodayItems(),
		"totals":           lc.Ledger.TodayTotals(),
		"targets":          lc.Ledger.Targets(),
		"progress":         lc.Ledger.Progress(),
		"calorie_exceeded": lc.Ledger.CalorieExceeded(),
	})
}

func (lc *LogController) Weekly(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"days": lc.Ledger.WeeklyData()})
}

func (lc *LogController) notify() {
	if lc.RT != nil {
		lc.RT.Broadcast("log.updated", gin.H{
			"totals":   lc.Ledger.TodayTotals(),
			"progress": lc.Ledger.Progress(),
		})
	}
}

func validDateKey(s string) bool {
	_, err := time.ParseInLocation("2006-01-02", s, time.Local)
	return err == nil
}
