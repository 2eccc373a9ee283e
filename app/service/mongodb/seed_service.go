package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"lms-analytics-dashboard/app/generator"
	repository "lms-analytics-dashboard/app/repository/mongodb"
)

type SeedService struct {
	repo repository.SeedRepository
	gen  *generator.Generator
	log  zerolog.Logger
}

func NewSeedService(repo repository.SeedRepository, gen *generator.Generator, log zerolog.Logger) *SeedService {
	return &SeedService{repo: repo, gen: gen, log: log}
}

// === Endpoint Logic: INITIALIZE DATA ===
// Idempotent: a non-empty student collection means the dataset already
// exists and nothing is written.
func (s *SeedService) InitializeData(c *fiber.Ctx) error {
	ctx := c.Context()

	count, err := s.repo.CountStudents(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	if count > 0 {
		return c.JSON(fiber.Map{"message": "Sample data already initialized"})
	}

	dataset := s.gen.Generate()

	// Insert per collection, students first so a racing report sees a
	// consistent prefix of the dataset.
	if err := s.repo.InsertStudents(ctx, dataset.Students); err != nil {
		return s.seedError(c, err)
	}
	if err := s.repo.InsertCourses(ctx, dataset.Courses); err != nil {
		return s.seedError(c, err)
	}
	if err := s.repo.InsertEnrollments(ctx, dataset.Enrollments); err != nil {
		return s.seedError(c, err)
	}
	if err := s.repo.InsertAssessments(ctx, dataset.Assessments); err != nil {
		return s.seedError(c, err)
	}
	if err := s.repo.InsertLearningActivities(ctx, dataset.Activities); err != nil {
		return s.seedError(c, err)
	}

	s.log.Info().
		Int("students", len(dataset.Students)).
		Int("courses", len(dataset.Courses)).
		Int("enrollments", len(dataset.Enrollments)).
		Int("assessments", len(dataset.Assessments)).
		Int("activities", len(dataset.Activities)).
		Msg("sample data generated")

	return c.JSON(fiber.Map{"message": "Sample data generated successfully"})
}

func (s *SeedService) seedError(c *fiber.Ctx, err error) error {
	s.log.Error().Err(err).Msg("sample data insert failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate sample data"})
}
