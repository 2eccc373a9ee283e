package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	models "lms-analytics-dashboard/app/models/mongodb"
)

type MockAnalyticsRepo struct {
	mock.Mock
}

func (m *MockAnalyticsRepo) CountStudents(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnalyticsRepo) CountActiveStudents(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnalyticsRepo) CountCourses(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnalyticsRepo) CountEnrollments(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnalyticsRepo) CountCompletedEnrollments(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnalyticsRepo) FindAssessments(ctx context.Context, filter bson.M) ([]models.Assessment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Assessment), args.Error(1)
}

func (m *MockAnalyticsRepo) FindLearningActivities(ctx context.Context, filter bson.M) ([]models.LearningActivity, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LearningActivity), args.Error(1)
}

func (m *MockAnalyticsRepo) TopStudentsByCompletion(ctx context.Context, limit int) ([]models.StudentEnrollmentGroup, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudentEnrollmentGroup), args.Error(1)
}

func (m *MockAnalyticsRepo) CourseEnrollmentStats(ctx context.Context) ([]models.CourseEnrollmentGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CourseEnrollmentGroup), args.Error(1)
}

func (m *MockAnalyticsRepo) EnrollmentTrendBuckets(ctx context.Context) ([]models.TrendBucket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TrendBucket), args.Error(1)
}

func (m *MockAnalyticsRepo) CompletionByCategory(ctx context.Context) ([]models.CategoryGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CategoryGroup), args.Error(1)
}
