// main.go
package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"academy-admin/controllers"
	"academy-admin/logger"
	"academy-admin/middleware"
	"academy-admin/models"
	"academy-admin/services"
	"academy-admin/websocket"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		logger.Debug.Println("No .env file found, using process environment")
	}

	env := os.Getenv("APP_ENV")
	logger.SetLogLevel(env)
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.GET("/health", controllers.Health)

	applicationURL := os.Getenv("APPLICATION_URL")
	if applicationURL == "" {
		applicationURL = "http://localhost:8080"
	}
	websocketURL := os.Getenv("WEBSOCKET_URL")
	if websocketURL == "" {
		websocketURL = "ws://localhost:8080/activity-updates"
	}
	controllers.SetConfig(applicationURL, websocketURL)

	// Session store: the signed cookie is the only durable session state.
	// Both auth keys survive reloads for the cookie lifetime.
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "academy-dev-secret"
		logger.Warn.Println("SESSION_SECRET not set, using development default")
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   env == "production",
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("academysession", store))

	// Resolve the templates directory relative to this file.
	_, b, _, _ := runtime.Caller(0)
	basepath := filepath.Dir(b)
	router.LoadHTMLGlob(filepath.Join(basepath, "templates", "*.html"))
	router.Static("/static", "./static")

	// Services are constructed here and injected; the credential allow-list
	// may be overridden by a JSON file.
	auth := buildAuthService()
	controllers.Init(controllers.Deps{
		Auth:      auth,
		Profile:   services.NewProfileService(),
		Players:   services.NewPlayerService(),
		Training:  services.NewTrainingService(),
		Matches:   services.NewMatchService(),
		Medical:   services.NewMedicalService(),
		Payments:  services.NewPaymentService(),
		Staff:     services.NewStaffService(),
		Trials:    services.NewTrialService(),
		Media:     services.NewMediaService(),
		Analytics: services.NewAnalyticsService(),
		Dashboard: services.NewDashboardService(),
	})

	// Public routes.
	router.GET("/login", controllers.ShowLoginPage)
	router.POST("/login", controllers.PerformLogin)
	router.GET("/logout", controllers.Logout)

	// Protected routes: every page sits behind the session gate.
	protected := router.Group("/", middleware.AuthRequired)
	{
		protected.GET("/", controllers.Dashboard)
		protected.GET("/players", controllers.Players)
		protected.POST("/players", controllers.AddPlayer)
		protected.GET("/training", controllers.Training)
		protected.POST("/training", controllers.AddTrainingSession)
		protected.GET("/matches", controllers.Matches)
		protected.POST("/matches", controllers.AddMatch)
		protected.GET("/analytics", controllers.Analytics)
		protected.GET("/medical", controllers.Medical)
		protected.POST("/medical", controllers.AddMedicalRecord)
		protected.GET("/scouting", controllers.Scouting)
		protected.POST("/scouting/events", controllers.AddTrialEvent)
		protected.POST("/scouting/trialists", controllers.AddTrialist)
		protected.GET("/scouting/events/:id/qrcode", controllers.TrialEventQRCode)
		protected.GET("/media", controllers.Media)
		protected.POST("/profile", controllers.UpdateProfile)
		protected.GET("/activity-updates", func(c *gin.Context) {
			websocket.ServeWs(c.Writer, c.Request)
		})

		// Financial and staff records are admin-only.
		admin := protected.Group("/", middleware.RoleRequired(string(models.RoleAdmin)))
		{
			admin.GET("/fees", controllers.Fees)
			admin.POST("/fees", controllers.AddPayment)
			admin.GET("/staff", controllers.Staff)
			admin.POST("/staff", controllers.AddStaffMember)
		}
	}

	if os.Getenv("METRICS_ENABLED") == "true" {
		websocket.EnableMetrics()
	}
	go websocket.HandleMessages()

	if err := router.Run(":8080"); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

// buildAuthService loads the credential allow-list from ACADEMY_CREDS when
// set, falling back to the embedded defaults.
func buildAuthService() services.AuthServiceInterface {
	if path := os.Getenv("ACADEMY_CREDS"); path != "" {
		auth, err := services.NewAuthServiceFromFile(path)
		if err != nil {
			log.Fatalf("Failed to load credentials from %s: %v", path, err)
		}
		return auth
	}
	return services.NewAuthService()
}
