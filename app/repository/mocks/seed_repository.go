package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	models "lms-analytics-dashboard/app/models/mongodb"
)

type MockSeedRepo struct {
	mock.Mock
}

func (m *MockSeedRepo) CountStudents(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSeedRepo) InsertStudents(ctx context.Context, students []models.Student) error {
	args := m.Called(ctx, students)
	return args.Error(0)
}

func (m *MockSeedRepo) InsertCourses(ctx context.Context, courses []models.Course) error {
	args := m.Called(ctx, courses)
	return args.Error(0)
}

func (m *MockSeedRepo) InsertEnrollments(ctx context.Context, enrollments []models.Enrollment) error {
	args := m.Called(ctx, enrollments)
	return args.Error(0)
}

func (m *MockSeedRepo) InsertAssessments(ctx context.Context, assessments []models.Assessment) error {
	args := m.Called(ctx, assessments)
	return args.Error(0)
}

func (m *MockSeedRepo) InsertLearningActivities(ctx context.Context, activities []models.LearningActivity) error {
	args := m.Called(ctx, activities)
	return args.Error(0)
}
