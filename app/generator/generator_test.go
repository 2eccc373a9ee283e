package generator_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lms-analytics-dashboard/app/generator"
	models "lms-analytics-dashboard/app/models/mongodb"
)

func newDataset(t *testing.T) generator.Dataset {
	t.Helper()
	gen := generator.New(rand.New(rand.NewSource(42)))
	return gen.Generate()
}

func TestGenerateSeededReproducibility(t *testing.T) {
	ds1 := generator.New(rand.New(rand.NewSource(7))).Generate()
	ds2 := generator.New(rand.New(rand.NewSource(7))).Generate()

	// The faker draws its seed from the injected source, so everything but
	// IDs and clock-relative dates repeats for a given seed.
	assert.Len(t, ds2.Students, len(ds1.Students))
	for i := range ds1.Students {
		assert.Equal(t, ds1.Students[i].Name, ds2.Students[i].Name)
		assert.Equal(t, ds1.Students[i].Email, ds2.Students[i].Email)
		assert.Equal(t, ds1.Students[i].Age, ds2.Students[i].Age)
		assert.Equal(t, ds1.Students[i].Status, ds2.Students[i].Status)
	}

	assert.Len(t, ds2.Courses, len(ds1.Courses))
	for i := range ds1.Courses {
		assert.Equal(t, ds1.Courses[i].Title, ds2.Courses[i].Title)
		assert.Equal(t, ds1.Courses[i].Category, ds2.Courses[i].Category)
	}

	assert.Len(t, ds2.Enrollments, len(ds1.Enrollments))
	for i := range ds1.Enrollments {
		assert.Equal(t, ds1.Enrollments[i].Status, ds2.Enrollments[i].Status)
	}
}

func TestGenerateCollectionSizes(t *testing.T) {
	ds := newDataset(t)

	assert.Len(t, ds.Students, generator.NumStudents)
	assert.Len(t, ds.Courses, generator.NumCourses)
	assert.NotEmpty(t, ds.Enrollments)
	assert.NotEmpty(t, ds.Assessments)
	assert.NotEmpty(t, ds.Activities)

	// 1-8 distinct courses per student
	perStudent := make(map[string]int)
	for _, e := range ds.Enrollments {
		perStudent[e.StudentID]++
	}
	assert.Len(t, perStudent, generator.NumStudents)
	for _, n := range perStudent {
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 8)
	}
}

func TestGenerateStudentFields(t *testing.T) {
	ds := newDataset(t)
	now := time.Now()

	statuses := map[string]int{}
	ids := map[string]bool{}
	for _, s := range ds.Students {
		assert.False(t, ids[s.ID], "duplicate student id")
		ids[s.ID] = true
		assert.NotEmpty(t, s.Name)
		assert.Contains(t, s.Email, "@")
		assert.GreaterOrEqual(t, s.Age, 18)
		assert.LessOrEqual(t, s.Age, 65)
		assert.True(t, s.EnrollmentDate.Before(now))
		assert.True(t, s.EnrollmentDate.After(now.AddDate(-2, 0, -1)))
		statuses[s.Status]++
	}

	// Only the three known statuses, with active dominant (70% weight).
	for status := range statuses {
		assert.Contains(t, []string{
			models.StudentStatusActive,
			models.StudentStatusInactive,
			models.StudentStatusGraduated,
		}, status)
	}
	assert.Greater(t, statuses[models.StudentStatusActive], statuses[models.StudentStatusInactive])
	assert.Greater(t, statuses[models.StudentStatusActive], statuses[models.StudentStatusGraduated])
}

func TestGenerateCourseFields(t *testing.T) {
	ds := newDataset(t)

	for _, c := range ds.Courses {
		assert.NotEmpty(t, c.Title)
		assert.Contains(t, generator.CourseCategories, c.Category)
		assert.GreaterOrEqual(t, c.DurationHours, 10)
		assert.LessOrEqual(t, c.DurationHours, 100)
	}
}

func TestGenerateEnrollmentConsistency(t *testing.T) {
	ds := newDataset(t)

	students := make(map[string]models.Student)
	for _, s := range ds.Students {
		students[s.ID] = s
	}
	courses := make(map[string]models.Course)
	for _, c := range ds.Courses {
		courses[c.ID] = c
	}

	seen := map[string]bool{}
	for _, e := range ds.Enrollments {
		student, ok := students[e.StudentID]
		assert.True(t, ok, "enrollment references unknown student")
		course, ok := courses[e.CourseID]
		assert.True(t, ok, "enrollment references unknown course")

		// Distinct courses per student
		key := e.StudentID + "/" + e.CourseID
		assert.False(t, seen[key], "duplicate enrollment pair")
		seen[key] = true

		// Enrollment happens after both the student joined and the course existed
		assert.False(t, e.EnrollmentDate.Before(student.EnrollmentDate))
		assert.False(t, e.EnrollmentDate.Before(course.CreatedDate))

		assert.GreaterOrEqual(t, e.ProgressPercentage, 0.0)
		assert.LessOrEqual(t, e.ProgressPercentage, 100.0)

		// Status derives from progress, completion date only when completed
		switch {
		case e.ProgressPercentage >= 95:
			assert.Equal(t, models.EnrollmentStatusCompleted, e.Status)
			if assert.NotNil(t, e.CompletionDate) {
				assert.False(t, e.CompletionDate.Before(e.EnrollmentDate))
			}
		case e.ProgressPercentage > 0:
			assert.Equal(t, models.EnrollmentStatusInProgress, e.Status)
			assert.Nil(t, e.CompletionDate)
		default:
			assert.Equal(t, models.EnrollmentStatusEnrolled, e.Status)
			assert.Nil(t, e.CompletionDate)
		}
	}
}

func TestGenerateAssessmentConsistency(t *testing.T) {
	ds := newDataset(t)

	enrollments := make(map[string]models.Enrollment)
	for _, e := range ds.Enrollments {
		enrollments[e.StudentID+"/"+e.CourseID] = e
	}

	for _, a := range ds.Assessments {
		e, ok := enrollments[a.StudentID+"/"+a.CourseID]
		assert.True(t, ok, "assessment references unknown enrollment pair")
		assert.Greater(t, e.ProgressPercentage, 20.0, "assessments only for progressed enrollments")

		assert.Contains(t, []float64{100, 50, 20, 10}, a.MaxScore)
		assert.GreaterOrEqual(t, a.Score, 0.4*a.MaxScore)
		assert.LessOrEqual(t, a.Score, a.MaxScore)

		assert.False(t, a.CompletionDate.Before(e.EnrollmentDate))
		if e.CompletionDate != nil {
			assert.False(t, a.CompletionDate.After(*e.CompletionDate))
		}
	}
}

func TestGenerateActivityConsistency(t *testing.T) {
	ds := newDataset(t)

	enrollments := make(map[string]models.Enrollment)
	perEnrollment := make(map[string]int)
	for _, e := range ds.Enrollments {
		enrollments[e.StudentID+"/"+e.CourseID] = e
	}

	for _, a := range ds.Activities {
		key := a.StudentID + "/" + a.CourseID
		e, ok := enrollments[key]
		assert.True(t, ok, "activity references unknown enrollment pair")
		assert.Greater(t, e.ProgressPercentage, 0.0)
		perEnrollment[key]++

		assert.GreaterOrEqual(t, a.DurationMinutes, 5)
		assert.LessOrEqual(t, a.DurationMinutes, 120)
		assert.False(t, a.Date.Before(e.EnrollmentDate))
	}

	for _, n := range perEnrollment {
		assert.GreaterOrEqual(t, n, 5)
		assert.LessOrEqual(t, n, 30)
	}
}
