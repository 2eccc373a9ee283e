package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	models "lms-analytics-dashboard/app/models/mongodb"
)

const (
	CollStudents           = "students"
	CollCourses            = "courses"
	CollEnrollments        = "enrollments"
	CollAssessments        = "assessments"
	CollLearningActivities = "learning_activities"
)

type AnalyticsRepository interface {
	CountStudents(ctx context.Context) (int64, error)
	CountActiveStudents(ctx context.Context) (int64, error)
	CountCourses(ctx context.Context) (int64, error)
	CountEnrollments(ctx context.Context) (int64, error)
	CountCompletedEnrollments(ctx context.Context) (int64, error)
	FindAssessments(ctx context.Context, filter bson.M) ([]models.Assessment, error)
	FindLearningActivities(ctx context.Context, filter bson.M) ([]models.LearningActivity, error)
	TopStudentsByCompletion(ctx context.Context, limit int) ([]models.StudentEnrollmentGroup, error)
	CourseEnrollmentStats(ctx context.Context) ([]models.CourseEnrollmentGroup, error)
	EnrollmentTrendBuckets(ctx context.Context) ([]models.TrendBucket, error)
	CompletionByCategory(ctx context.Context) ([]models.CategoryGroup, error)
}

type analyticsRepository struct {
	db *mongo.Database
}

func NewAnalyticsRepository(db *mongo.Database) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CountStudents(ctx context.Context) (int64, error) {
	return r.db.Collection(CollStudents).CountDocuments(ctx, bson.M{})
}

func (r *analyticsRepository) CountActiveStudents(ctx context.Context) (int64, error) {
	return r.db.Collection(CollStudents).CountDocuments(ctx, bson.M{"status": models.StudentStatusActive})
}

func (r *analyticsRepository) CountCourses(ctx context.Context) (int64, error) {
	return r.db.Collection(CollCourses).CountDocuments(ctx, bson.M{})
}

func (r *analyticsRepository) CountEnrollments(ctx context.Context) (int64, error) {
	return r.db.Collection(CollEnrollments).CountDocuments(ctx, bson.M{})
}

func (r *analyticsRepository) CountCompletedEnrollments(ctx context.Context) (int64, error) {
	return r.db.Collection(CollEnrollments).CountDocuments(ctx, bson.M{"status": models.EnrollmentStatusCompleted})
}

func (r *analyticsRepository) FindAssessments(ctx context.Context, filter bson.M) ([]models.Assessment, error) {
	cur, err := r.db.Collection(CollAssessments).Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var out []models.Assessment
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *analyticsRepository) FindLearningActivities(ctx context.Context, filter bson.M) ([]models.LearningActivity, error) {
	cur, err := r.db.Collection(CollLearningActivities).Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var out []models.LearningActivity
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// completedCond counts an enrollment only when its status says completed.
// Status is authoritative here; progress_percentage is never consulted.
func completedCond() bson.M {
	return bson.M{"$sum": bson.M{"$cond": bson.A{
		bson.M{"$eq": bson.A{"$status", models.EnrollmentStatusCompleted}},
		1,
		0,
	}}}
}

// TopStudentsByCompletion groups enrollments per student, ordered by
// completed-course count. Enrollments whose student_id does not resolve
// are dropped by the $unwind after the lookup.
func (r *analyticsRepository) TopStudentsByCompletion(ctx context.Context, limit int) ([]models.StudentEnrollmentGroup, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         CollStudents,
			"localField":   "student_id",
			"foreignField": "id",
			"as":           "student",
		}}},
		{{Key: "$unwind", Value: "$student"}},
		{{Key: "$group", Value: bson.M{
			"_id":               "$student_id",
			"student_name":      bson.M{"$first": "$student.name"},
			"courses_enrolled":  bson.M{"$sum": 1},
			"courses_completed": completedCond(),
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "courses_completed", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cur, err := r.db.Collection(CollEnrollments).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var out []models.StudentEnrollmentGroup
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CourseEnrollmentStats groups enrollments per course. Every course with at
// least one resolvable enrollment appears; there is no limit.
func (r *analyticsRepository) CourseEnrollmentStats(ctx context.Context) ([]models.CourseEnrollmentGroup, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         CollCourses,
			"localField":   "course_id",
			"foreignField": "id",
			"as":           "course",
		}}},
		{{Key: "$unwind", Value: "$course"}},
		{{Key: "$group", Value: bson.M{
			"_id":                   "$course_id",
			"course_title":          bson.M{"$first": "$course.title"},
			"total_enrollments":     bson.M{"$sum": 1},
			"completed_enrollments": completedCond(),
		}}},
	}

	cur, err := r.db.Collection(CollEnrollments).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var out []models.CourseEnrollmentGroup
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EnrollmentTrendBuckets counts enrollments per calendar (year, month) of
// enrollment_date, sorted ascending.
func (r *analyticsRepository) EnrollmentTrendBuckets(ctx context.Context) ([]models.TrendBucket, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$enrollment_date"},
				"month": bson.M{"$month": "$enrollment_date"},
			},
			"enrollments": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "_id.year", Value: 1},
			{Key: "_id.month", Value: 1},
		}}},
	}

	cur, err := r.db.Collection(CollEnrollments).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var out []models.TrendBucket
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CompletionByCategory joins enrollments to courses and groups by the
// course category.
func (r *analyticsRepository) CompletionByCategory(ctx context.Context) ([]models.CategoryGroup, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         CollCourses,
			"localField":   "course_id",
			"foreignField": "id",
			"as":           "course",
		}}},
		{{Key: "$unwind", Value: "$course"}},
		{{Key: "$group", Value: bson.M{
			"_id":               "$course.category",
			"total_enrollments": bson.M{"$sum": 1},
			"completed":         completedCond(),
		}}},
	}

	cur, err := r.db.Collection(CollEnrollments).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var out []models.CategoryGroup
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
