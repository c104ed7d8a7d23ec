package handlers

import (
	"net/http"
	"sort"

	"wedlock-backend/ai"
	"wedlock-backend/database"
	"wedlock-backend/models"

	"github.com/gin-gonic/gin"
)

// Matcher scores candidate pairs. Set in main, swapped for a stub in tests.
var Matcher ai.Scorer

// MaskedPhone is what FREE members see instead of a contact number.
const MaskedPhone = "+91 9XXXX XXXXX (Upgrade to view)"

type MatchesInput struct {
	Phone string `json:"phone"`
}

// GetMatches returns scored opposite-gender candidates for the caller,
// best first. Contact numbers are masked unless the caller is GOLD.
func GetMatches(c *gin.Context) {
	var input MatchesInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Phone == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}

	var me models.Profile
	if err := database.DB.First(&me, "phone = ?", input.Phone).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	target := "Female"
	if me.Gender != "Male" {
		target = "Male"
	}

	var candidates []models.Profile
	if err := database.DB.Where("gender = ? AND phone <> ?", target, me.Phone).Find(&candidates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load candidates"})
		return
	}

	results := make([]models.MatchResult, 0, len(candidates))
	for _, cand := range candidates {
		score, reason := Matcher.Score(c.Request.Context(), me, cand)

		phone := cand.Phone
		if me.Tier != models.TierGold {
			phone = MaskedPhone
		}

		results = append(results, models.MatchResult{
			Name:     cand.Name,
			Age:      cand.Age,
			Gender:   cand.Gender,
			Religion: cand.Religion,
			Job:      cand.Job,
			Income:   cand.Income,
			Phone:    phone,
			Score:    score,
			AIReason: reason,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	c.JSON(http.StatusOK, results)
}
