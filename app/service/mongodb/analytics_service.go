package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	models "lms-analytics-dashboard/app/models/mongodb"
	repository "lms-analytics-dashboard/app/repository/mongodb"
	"lms-analytics-dashboard/utils"
)

// topStudentLimit caps the student performance report.
const topStudentLimit = 20

type AnalyticsService struct {
	repo repository.AnalyticsRepository
	log  zerolog.Logger
}

func NewAnalyticsService(repo repository.AnalyticsRepository, log zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{repo: repo, log: log}
}

// === Endpoint Logic: DASHBOARD STATS ===
func (s *AnalyticsService) GetDashboardStats(c *fiber.Ctx) error {
	ctx := c.Context()

	// 1. Collection totals
	totalStudents, err := s.repo.CountStudents(ctx)
	if err != nil {
		return s.internalError(c, "dashboard-stats", err)
	}
	totalCourses, err := s.repo.CountCourses(ctx)
	if err != nil {
		return s.internalError(c, "dashboard-stats", err)
	}
	totalEnrollments, err := s.repo.CountEnrollments(ctx)
	if err != nil {
		return s.internalError(c, "dashboard-stats", err)
	}
	activeStudents, err := s.repo.CountActiveStudents(ctx)
	if err != nil {
		return s.internalError(c, "dashboard-stats", err)
	}

	// 2. Completion rate over all enrollments
	completedEnrollments, err := s.repo.CountCompletedEnrollments(ctx)
	if err != nil {
		return s.internalError(c, "dashboard-stats", err)
	}

	// 3. Mean assessment percentage over every assessment
	assessments, err := s.repo.FindAssessments(ctx, bson.M{})
	if err != nil {
		return s.internalError(c, "dashboard-stats", err)
	}

	return c.JSON(models.DashboardStats{
		TotalStudents:    totalStudents,
		TotalCourses:     totalCourses,
		TotalEnrollments: totalEnrollments,
		ActiveStudents:   activeStudents,
		CompletionRate:   utils.Percent(completedEnrollments, totalEnrollments),
		AverageScore:     averageScore(assessments),
	})
}

// === Endpoint Logic: STUDENT PERFORMANCE (Top 20) ===
func (s *AnalyticsService) GetStudentPerformance(c *fiber.Ctx) error {
	ctx := c.Context()

	groups, err := s.repo.TopStudentsByCompletion(ctx, topStudentLimit)
	if err != nil {
		return s.internalError(c, "student-performance", err)
	}

	// Follow-up per student: assessments for the score, activities for the
	// study hours. Group order from the pipeline is preserved.
	performance := make([]models.StudentPerformance, 0, len(groups))
	for _, group := range groups {
		assessments, err := s.repo.FindAssessments(ctx, bson.M{"student_id": group.StudentID})
		if err != nil {
			return s.internalError(c, "student-performance", err)
		}
		activities, err := s.repo.FindLearningActivities(ctx, bson.M{"student_id": group.StudentID})
		if err != nil {
			return s.internalError(c, "student-performance", err)
		}

		performance = append(performance, models.StudentPerformance{
			StudentID:        group.StudentID,
			StudentName:      group.StudentName,
			CoursesEnrolled:  group.CoursesEnrolled,
			CoursesCompleted: group.CoursesCompleted,
			AverageScore:     averageScore(assessments),
			TotalStudyHours:  utils.Round2(float64(totalMinutes(activities)) / 60),
		})
	}

	return c.JSON(performance)
}

// === Endpoint Logic: COURSE ANALYTICS ===
func (s *AnalyticsService) GetCourseAnalytics(c *fiber.Ctx) error {
	ctx := c.Context()

	groups, err := s.repo.CourseEnrollmentStats(ctx)
	if err != nil {
		return s.internalError(c, "course-analytics", err)
	}

	analytics := make([]models.CourseAnalytics, 0, len(groups))
	for _, group := range groups {
		assessments, err := s.repo.FindAssessments(ctx, bson.M{"course_id": group.CourseID})
		if err != nil {
			return s.internalError(c, "course-analytics", err)
		}
		activities, err := s.repo.FindLearningActivities(ctx, bson.M{"course_id": group.CourseID})
		if err != nil {
			return s.internalError(c, "course-analytics", err)
		}

		// Average study duration is normalized per enrollment.
		divisor := group.TotalEnrollments
		if divisor < 1 {
			divisor = 1
		}
		avgDuration := float64(totalMinutes(activities)) / 60 / float64(divisor)

		analytics = append(analytics, models.CourseAnalytics{
			CourseID:             group.CourseID,
			CourseTitle:          group.CourseTitle,
			TotalEnrollments:     group.TotalEnrollments,
			CompletedEnrollments: group.CompletedEnrollments,
			CompletionRate:       utils.Percent(int64(group.CompletedEnrollments), int64(group.TotalEnrollments)),
			AverageScore:         averageScore(assessments),
			AverageDurationHours: utils.Round2(avgDuration),
		})
	}

	return c.JSON(analytics)
}

// === Endpoint Logic: ENROLLMENT TRENDS ===
func (s *AnalyticsService) GetEnrollmentTrends(c *fiber.Ctx) error {
	ctx := c.Context()

	buckets, err := s.repo.EnrollmentTrendBuckets(ctx)
	if err != nil {
		return s.internalError(c, "enrollment-trends", err)
	}

	trends := make([]models.EnrollmentTrend, 0, len(buckets))
	for _, bucket := range buckets {
		trends = append(trends, models.EnrollmentTrend{
			Month:       fmt.Sprintf("%d-%02d", bucket.Period.Year, bucket.Period.Month),
			Enrollments: bucket.Enrollments,
		})
	}

	return c.JSON(trends)
}

// === Endpoint Logic: COMPLETION BY CATEGORY ===
func (s *AnalyticsService) GetCompletionByCategory(c *fiber.Ctx) error {
	ctx := c.Context()

	groups, err := s.repo.CompletionByCategory(ctx)
	if err != nil {
		return s.internalError(c, "completion-by-category", err)
	}

	categories := make([]models.CategoryCompletion, 0, len(groups))
	for _, group := range groups {
		categories = append(categories, models.CategoryCompletion{
			Category:         group.Category,
			TotalEnrollments: group.TotalEnrollments,
			Completed:        group.Completed,
			CompletionRate:   utils.Percent(int64(group.Completed), int64(group.TotalEnrollments)),
		})
	}

	return c.JSON(categories)
}

// internalError surfaces any store failure as one opaque 500; no partial
// report is ever returned.
func (s *AnalyticsService) internalError(c *fiber.Ctx, report string, err error) error {
	s.log.Error().Err(err).Str("report", report).Msg("report query failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}

// averageScore is the mean per-assessment percentage (score/max_score*100),
// 0 when there are no assessments.
func averageScore(assessments []models.Assessment) float64 {
	if len(assessments) == 0 {
		return 0
	}

	var total float64
	for _, a := range assessments {
		total += a.Score / a.MaxScore * 100
	}
	return utils.Round2(total / float64(len(assessments)))
}

func totalMinutes(activities []models.LearningActivity) int {
	var total int
	for _, a := range activities {
		total += a.DurationMinutes
	}
	return total
}
