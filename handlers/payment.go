package handlers

import (
	"fmt"
	"net/http"
	"time"

	"wedlock-backend/database"
	"wedlock-backend/models"
	"wedlock-backend/payments"

	"github.com/gin-gonic/gin"
)

// Gateway talks to Razorpay. Set in main, swapped for a fake in tests.
var Gateway payments.Gateway

// CreateOrder opens a fresh upgrade order. Each call gets its own receipt so
// duplicate clicks show up as distinct orders on the gateway dashboard.
func CreateOrder(c *gin.Context) {
	receipt := fmt.Sprintf("wedlock_%d", time.Now().UnixNano())

	order, err := Gateway.CreateOrder(receipt)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not create payment order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

type VerifyPaymentInput struct {
	Phone             string `json:"phone" binding:"required"`
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

// VerifyPayment checks the checkout signature and, only when it holds,
// upgrades the member to GOLD. Every attempt leaves an audit row.
func VerifyPayment(c *gin.Context) {
	var input VerifyPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "msg": "Missing payment fields"})
		return
	}

	ok := Gateway.VerifySignature(input.RazorpayOrderID, input.RazorpayPaymentID, input.RazorpaySignature)

	record := models.PaymentRecord{
		Phone:     input.Phone,
		OrderID:   input.RazorpayOrderID,
		PaymentID: input.RazorpayPaymentID,
		Status:    models.PaymentVerified,
	}

	if !ok {
		record.Status = models.PaymentRejected
		database.DB.Create(&record)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "msg": "Payment Verification Failed"})
		return
	}

	res := database.DB.Model(&models.Profile{}).
		Where("phone = ?", input.Phone).
		Update("tier", models.TierGold)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "msg": "Could not upgrade account"})
		return
	}
	if res.RowsAffected == 0 {
		// Valid signature but no such member. Nobody was upgraded, so the
		// caller must not hear success.
		record.Status = models.PaymentRejected
		database.DB.Create(&record)
		c.JSON(http.StatusNotFound, gin.H{"success": false, "msg": "No member found for this payment"})
		return
	}
	database.DB.Create(&record)

	c.JSON(http.StatusOK, gin.H{"success": true, "msg": "Upgraded to Gold!"})
}
