package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	models "lms-analytics-dashboard/app/models/mongodb"
)

type SeedRepository interface {
	CountStudents(ctx context.Context) (int64, error)
	InsertStudents(ctx context.Context, students []models.Student) error
	InsertCourses(ctx context.Context, courses []models.Course) error
	InsertEnrollments(ctx context.Context, enrollments []models.Enrollment) error
	InsertAssessments(ctx context.Context, assessments []models.Assessment) error
	InsertLearningActivities(ctx context.Context, activities []models.LearningActivity) error
}

type seedRepository struct {
	db *mongo.Database
}

func NewSeedRepository(db *mongo.Database) SeedRepository {
	return &seedRepository{db: db}
}

func (r *seedRepository) CountStudents(ctx context.Context) (int64, error) {
	return r.db.Collection(CollStudents).CountDocuments(ctx, bson.M{})
}

func (r *seedRepository) InsertStudents(ctx context.Context, students []models.Student) error {
	docs := make([]interface{}, len(students))
	for i := range students {
		docs[i] = students[i]
	}
	_, err := r.db.Collection(CollStudents).InsertMany(ctx, docs)
	return err
}

func (r *seedRepository) InsertCourses(ctx context.Context, courses []models.Course) error {
	docs := make([]interface{}, len(courses))
	for i := range courses {
		docs[i] = courses[i]
	}
	_, err := r.db.Collection(CollCourses).InsertMany(ctx, docs)
	return err
}

func (r *seedRepository) InsertEnrollments(ctx context.Context, enrollments []models.Enrollment) error {
	docs := make([]interface{}, len(enrollments))
	for i := range enrollments {
		docs[i] = enrollments[i]
	}
	_, err := r.db.Collection(CollEnrollments).InsertMany(ctx, docs)
	return err
}

func (r *seedRepository) InsertAssessments(ctx context.Context, assessments []models.Assessment) error {
	docs := make([]interface{}, len(assessments))
	for i := range assessments {
		docs[i] = assessments[i]
	}
	_, err := r.db.Collection(CollAssessments).InsertMany(ctx, docs)
	return err
}

func (r *seedRepository) InsertLearningActivities(ctx context.Context, activities []models.LearningActivity) error {
	docs := make([]interface{}, len(activities))
	for i := range activities {
		docs[i] = activities[i]
	}
	_, err := r.db.Collection(CollLearningActivities).InsertMany(ctx, docs)
	return err
}
