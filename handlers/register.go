package handlers

import (
	"net/http"

	"wedlock-backend/database"
	"wedlock-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Age      *int   `json:"age"`
	Gender   string `json:"gender"`
	Religion string `json:"religion"`
	Job      string `json:"job"`
	Income   string `json:"income"`
}

// Register creates or updates the profile for a phone number. Tier is always
// forced to FREE here; only verified payments may raise it.
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	profile := models.Profile{
		Phone:    input.Phone,
		Name:     input.Name,
		Gender:   input.Gender,
		Religion: input.Religion,
		Job:      input.Job,
		Income:   input.Income,
		Tier:     models.TierFree,
	}
	// Age arrives absent when the form held a non-numeric value; store zero.
	if input.Age != nil {
		profile.Age = *input.Age
	}

	// Re-registering the same phone overwrites the profile, like the old
	// document store did. An existing GOLD tier survives the rewrite.
	var existing models.Profile
	if err := database.DB.First(&existing, "phone = ?", input.Phone).Error; err == nil {
		profile.Tier = existing.Tier
		profile.CreatedAt = existing.CreatedAt
	}

	if err := database.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "msg": "Profile Created!"})
}
