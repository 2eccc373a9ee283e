package route

import (
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"lms-analytics-dashboard/app/generator"
	repoMongo "lms-analytics-dashboard/app/repository/mongodb"
	mongoService "lms-analytics-dashboard/app/service/mongodb"
)

func SetupMongoRoutes(app *fiber.App, db *mongo.Database, log zerolog.Logger) {
	// Repositories
	analyticsRepo := repoMongo.NewAnalyticsRepository(db)
	seedRepo := repoMongo.NewSeedRepository(db)

	// Services
	gen := generator.New(rand.New(rand.NewSource(time.Now().UnixNano())))
	analyticsService := mongoService.NewAnalyticsService(analyticsRepo, log)
	seedService := mongoService.NewSeedService(seedRepo, gen, log)

	api := app.Group("/api")

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "LMS Analytics Dashboard API"})
	})

	// Seeding
	api.Post("/initialize-data", seedService.InitializeData)

	// Reports & Analytics
	api.Get("/dashboard-stats", analyticsService.GetDashboardStats)
	api.Get("/student-performance", analyticsService.GetStudentPerformance)
	api.Get("/course-analytics", analyticsService.GetCourseAnalytics)
	api.Get("/enrollment-trends", analyticsService.GetEnrollmentTrends)
	api.Get("/completion-by-category", analyticsService.GetCompletionByCategory)
}
