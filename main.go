package main

import (
	"log"
	"os"
	"strconv"

	"wedlock-backend/ai"
	"wedlock-backend/database"
	"wedlock-backend/handlers"
	"wedlock-backend/middleware"
	"wedlock-backend/payments"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	database.ConnectDatabase()

	handlers.Matcher = ai.NewGeminiScorer(os.Getenv("GEMINI_API_KEY"))
	handlers.Gateway = payments.NewRazorpayGateway(
		os.Getenv("RAZORPAY_KEY_ID"),
		os.Getenv("RAZORPAY_KEY_SECRET"),
		upgradeAmount(),
	)

	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	// Landing page + assets
	r.StaticFile("/", "./static/index.html")
	r.Static("/static", "./static")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "wedlock-backend"})
	})

	api := r.Group("/api")
	{
		api.POST("/register", handlers.Register)
		api.POST("/matches", handlers.GetMatches)
		api.POST("/create-order", handlers.CreateOrder)
		api.POST("/verify-payment", handlers.VerifyPayment)
		api.POST("/admin-login", handlers.AdminLogin)

		admin := api.Group("", middleware.AdminAuth())
		{
			admin.GET("/admin-stats", handlers.AdminStats)
			admin.GET("/admin-export", handlers.ExportProfiles)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

// upgradeAmount is the GOLD price in paise, default Rs 29.00.
func upgradeAmount() int64 {
	if v := os.Getenv("UPGRADE_AMOUNT_PAISE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return 2900
}
