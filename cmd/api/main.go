package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/auth"
	"github.com/Akhil-Sharma-26/sync-spoon/internal/consumption"
	"github.com/Akhil-Sharma-26/sync-spoon/internal/db"
	"github.com/Akhil-Sharma-26/sync-spoon/internal/holiday"
	"github.com/Akhil-Sharma-26/sync-spoon/internal/menu"
	"github.com/Akhil-Sharma-26/sync-spoon/internal/middleware"
	"github.com/Akhil-Sharma-26/sync-spoon/internal/report"
	"github.com/Akhil-Sharma-26/sync-spoon/internal/storage"
	"github.com/Akhil-Sharma-26/sync-spoon/internal/suggest"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	// R2 is optional; without it report PDFs are still returned
	// inline, just not archived.
	var artifactStore report.ArtifactStore
	if os.Getenv("R2_ENDPOINT") != "" {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		artifactStore = r2Client
	} else {
		log.Println("R2 not configured, report archiving disabled")
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	adminUsers := r.Group("/admin/users")
	adminUsers.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		adminUsers.GET("", authHandler.ListUsers)
		adminUsers.POST("", authHandler.CreateUser)
		adminUsers.PUT("/:id", authHandler.UpdateUser)
		adminUsers.DELETE("/:id", authHandler.DeleteUser)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	consumptionRepo := consumption.NewPostgresRepository(pgDB)
	holidayRepo := holiday.NewPostgresRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	suggestRepo := suggest.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	consumptionService := consumption.NewService(consumptionRepo)

	reportService := report.NewService(consumptionService, artifactStore)

	suggestService := suggest.NewService(
		reportService,
		holidayRepo,
		suggestRepo,
		suggest.DefaultConfig(),
	)

	menuService := menu.NewService(menuRepo, suggestService)

	// ───────────────────────── HANDLERS ─────────────────────────
	consumptionHandler := consumption.NewHandler(consumptionService)
	holidayHandler := holiday.NewHandler(holidayRepo)
	reportHandler := report.NewHandler(reportService)
	suggestHandler := suggest.NewHandler(suggestService)
	menuHandler := menu.NewHandler(menuService)

	// ───────────────────────── CONSUMPTION ROUTES ─────────────────────────
	consumptionGroup := r.Group("/consumption")
	consumptionGroup.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleStaff, auth.RoleAdmin),
	)
	{
		consumptionGroup.POST("", consumptionHandler.Record)
		consumptionGroup.POST("/upload", consumptionHandler.UploadCSV)
	}

	wasteGroup := r.Group("/waste")
	wasteGroup.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleStaff, auth.RoleAdmin),
	)
	{
		wasteGroup.POST("", consumptionHandler.RecordWaste)
		wasteGroup.GET("/report", consumptionHandler.WasteReport)
	}

	// ───────────────────────── HOLIDAY ROUTES ─────────────────────────
	holidays := r.Group("/holidays")
	holidays.Use(middleware.AuthMiddleware())
	{
		holidays.GET("", holidayHandler.List)

		holidays.POST("",
			middleware.RequireRole(auth.RoleAdmin),
			holidayHandler.Create,
		)
		holidays.POST("/upload",
			middleware.RequireRole(auth.RoleAdmin),
			holidayHandler.UploadCSV,
		)
	}

	// ───────────────────────── REPORT ROUTES ─────────────────────────
	reports := r.Group("/reports")
	reports.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		reports.POST("/generate", reportHandler.Generate)
		reports.GET("/export", reportHandler.Export)
		reports.GET("/consumption", reportHandler.ConsumptionReport)
	}

	// ───────────────────────── SUGGESTION ROUTES ─────────────────────────
	suggestGroup := r.Group("/menu")
	suggestGroup.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleStaff, auth.RoleAdmin),
	)
	{
		suggestGroup.POST("/suggest", suggestHandler.Suggest)
		suggestGroup.GET("/suggested", suggestHandler.Show)
		suggestGroup.POST("/accept", menuHandler.AcceptSuggestion)
		suggestGroup.POST("/entries", menuHandler.AddEntry)
	}

	// ───────────────────────── MENU ROUTES ─────────────────────────
	menus := r.Group("/menu")
	menus.Use(middleware.AuthMiddleware())
	{
		menus.GET("/today", menuHandler.Today)
		menus.GET("", menuHandler.Range)
	}

	// ───────────────────────── FEEDBACK ─────────────────────────
	feedback := r.Group("/feedback")
	feedback.Use(middleware.AuthMiddleware())
	{
		feedback.POST("", menuHandler.SubmitFeedback)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
