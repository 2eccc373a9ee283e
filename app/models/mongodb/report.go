package models

// Report records returned by the analytics endpoints. These are transient:
// computed per request and never stored.

type DashboardStats struct {
	TotalStudents    int64   `json:"total_students"`
	TotalCourses     int64   `json:"total_courses"`
	TotalEnrollments int64   `json:"total_enrollments"`
	ActiveStudents   int64   `json:"active_students"`
	CompletionRate   float64 `json:"completion_rate"`
	AverageScore     float64 `json:"average_score"`
}

type StudentPerformance struct {
	StudentID        string  `json:"student_id"`
	StudentName      string  `json:"student_name"`
	CoursesEnrolled  int     `json:"courses_enrolled"`
	CoursesCompleted int     `json:"courses_completed"`
	AverageScore     float64 `json:"average_score"`
	TotalStudyHours  float64 `json:"total_study_hours"`
}

type CourseAnalytics struct {
	CourseID             string  `json:"course_id"`
	CourseTitle          string  `json:"course_title"`
	TotalEnrollments     int     `json:"total_enrollments"`
	CompletedEnrollments int     `json:"completed_enrollments"`
	CompletionRate       float64 `json:"completion_rate"`
	AverageScore         float64 `json:"average_score"`
	AverageDurationHours float64 `json:"average_duration_hours"`
}

type EnrollmentTrend struct {
	Month       string `json:"month"`
	Enrollments int    `json:"enrollments"`
}

type CategoryCompletion struct {
	Category         string  `json:"category"`
	TotalEnrollments int     `json:"total_enrollments"`
	Completed        int     `json:"completed"`
	CompletionRate   float64 `json:"completion_rate"`
}

// Intermediate shapes produced by the enrollment aggregation pipelines,
// before the per-group follow-up queries fill in scores and durations.

type StudentEnrollmentGroup struct {
	StudentID        string `bson:"_id"`
	StudentName      string `bson:"student_name"`
	CoursesEnrolled  int    `bson:"courses_enrolled"`
	CoursesCompleted int    `bson:"courses_completed"`
}

type CourseEnrollmentGroup struct {
	CourseID             string `bson:"_id"`
	CourseTitle          string `bson:"course_title"`
	TotalEnrollments     int    `bson:"total_enrollments"`
	CompletedEnrollments int    `bson:"completed_enrollments"`
}

type TrendBucket struct {
	Period struct {
		Year  int `bson:"year"`
		Month int `bson:"month"`
	} `bson:"_id"`
	Enrollments int `bson:"enrollments"`
}

type CategoryGroup struct {
	Category         string `bson:"_id"`
	TotalEnrollments int    `bson:"total_enrollments"`
	Completed        int    `bson:"completed"`
}
