package models

import "time"

// Collection entities. IDs are generated UUID strings stored in the "id"
// field, separate from Mongo's own _id; all cross-collection references
// (student_id, course_id) point at that field.

const (
	StudentStatusActive    = "active"
	StudentStatusInactive  = "inactive"
	StudentStatusGraduated = "graduated"
)

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

const (
	EnrollmentStatusEnrolled   = "enrolled"
	EnrollmentStatusInProgress = "in_progress"
	EnrollmentStatusCompleted  = "completed"
	EnrollmentStatusDropped    = "dropped"
)

type Student struct {
	ID             string    `json:"id" bson:"id"`
	Name           string    `json:"name" bson:"name"`
	Email          string    `json:"email" bson:"email"`
	Age            int       `json:"age" bson:"age"`
	Gender         string    `json:"gender" bson:"gender"`
	EnrollmentDate time.Time `json:"enrollment_date" bson:"enrollment_date"`
	Status         string    `json:"status" bson:"status"`
}

type Course struct {
	ID            string    `json:"id" bson:"id"`
	Title         string    `json:"title" bson:"title"`
	Description   string    `json:"description" bson:"description"`
	Category      string    `json:"category" bson:"category"`
	Difficulty    string    `json:"difficulty" bson:"difficulty"`
	DurationHours int       `json:"duration_hours" bson:"duration_hours"`
	CreatedDate   time.Time `json:"created_date" bson:"created_date"`
}

type Enrollment struct {
	ID                 string     `json:"id" bson:"id"`
	StudentID          string     `json:"student_id" bson:"student_id"`
	CourseID           string     `json:"course_id" bson:"course_id"`
	EnrollmentDate     time.Time  `json:"enrollment_date" bson:"enrollment_date"`
	CompletionDate     *time.Time `json:"completion_date,omitempty" bson:"completion_date,omitempty"`
	ProgressPercentage float64    `json:"progress_percentage" bson:"progress_percentage"`
	Status             string     `json:"status" bson:"status"`
}

type Assessment struct {
	ID             string    `json:"id" bson:"id"`
	StudentID      string    `json:"student_id" bson:"student_id"`
	CourseID       string    `json:"course_id" bson:"course_id"`
	AssessmentType string    `json:"assessment_type" bson:"assessment_type"`
	Score          float64   `json:"score" bson:"score"`
	MaxScore       float64   `json:"max_score" bson:"max_score"`
	CompletionDate time.Time `json:"completion_date" bson:"completion_date"`
}

type LearningActivity struct {
	ID              string    `json:"id" bson:"id"`
	StudentID       string    `json:"student_id" bson:"student_id"`
	CourseID        string    `json:"course_id" bson:"course_id"`
	ActivityType    string    `json:"activity_type" bson:"activity_type"`
	DurationMinutes int       `json:"duration_minutes" bson:"duration_minutes"`
	Date            time.Time `json:"date" bson:"date"`
}
