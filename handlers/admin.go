package handlers

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"wedlock-backend/database"
	"wedlock-backend/models"
	"wedlock-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"
)

type AdminLoginInput struct {
	Password string `json:"password" binding:"required"`
}

// AdminLogin checks the password against ADMIN_PASSWORD_HASH (bcrypt) and
// answers with a short-lived admin token for the privileged endpoints.
func AdminLogin(c *gin.Context) {
	var input AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password required"})
		return
	}

	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin login disabled"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong Password"})
		return
	}

	token, err := utils.GenerateToken("admin")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// AdminStats lists every member plus headline counts.
func AdminStats(c *gin.Context) {
	var users []models.Profile
	if err := database.DB.Order("created_at desc").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load users"})
		return
	}

	gold := 0
	for _, u := range users {
		if u.Tier == models.TierGold {
			gold++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(users),
		"gold":  gold,
		"users": users,
	})
}

// ExportProfiles streams the member list as an xlsx download.
func ExportProfiles(c *gin.Context) {
	var users []models.Profile
	database.DB.Order("created_at asc").Find(&users)

	f := excelize.NewFile()
	sheet := "Members"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"No", "Name", "Phone", "Age", "Gender", "Religion", "Job", "Income", "Tier", "Joined"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	styleHeader, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DB2777"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetCellStyle(sheet, "A1", "J1", styleHeader)

	for i, u := range users {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), u.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), u.Phone)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), u.Age)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), u.Gender)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), u.Religion)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), u.Job)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), u.Income)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), u.Tier)
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), u.CreatedAt.Format("02-01-2006"))
	}

	f.SetColWidth(sheet, "A", "A", 5)
	f.SetColWidth(sheet, "B", "C", 18)
	f.SetColWidth(sheet, "D", "I", 12)
	f.SetColWidth(sheet, "J", "J", 14)

	fileName := fmt.Sprintf("WedLock_Members_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate export"})
	}
}
