package controllers

import (
	"crypto/subtle"
	"net/http"
	"os"

	"backend/utils"

	"github.com/gin-gonic/gin"
)

// Login exchanges the instance password (AUTH_PASSWORD) for a JWT.
// Only mounted when auth is enabled.
func Login(c *gin.Context) {
	var body struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	want := os.Getenv("AUTH_PASSWORD")
	if want == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured: AUTH_PASSWORD not set"})
		return
	}
	if subtle.ConstantTimeCompare([]byte(body.Password), []byte(want)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
		return
	}

	token, err := utils.GenerateJWT()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
