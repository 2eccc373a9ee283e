package generator

import (
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	models "lms-analytics-dashboard/app/models/mongodb"
)

const (
	NumStudents = 150
	NumCourses  = 25
)

var CourseCategories = []string{"Programming", "Data Science", "Design", "Business", "Marketing", "Mathematics"}

var (
	difficulties    = []string{models.DifficultyBeginner, models.DifficultyIntermediate, models.DifficultyAdvanced}
	genders         = []string{"Male", "Female", "Other"}
	assessmentTypes = []string{"quiz", "assignment", "exam", "project"}
	activityTypes   = []string{"video_watch", "reading", "quiz_attempt", "discussion"}
	maxScores       = []float64{100, 50, 20, 10}
)

// Dataset is one internally consistent batch of sample records: every
// enrollment, assessment, and activity references a generated student and
// course, with all dates inside the enrollment window.
type Dataset struct {
	Students    []models.Student
	Courses     []models.Course
	Enrollments []models.Enrollment
	Assessments []models.Assessment
	Activities  []models.LearningActivity
}

// Generator produces randomized sample data from an explicit source, so
// tests can seed it and assert the structural invariants deterministically.
// The faker is seeded off the same source, so names, emails, and course
// titles are reproducible for a given seed as well.
type Generator struct {
	rng   *rand.Rand
	faker *gofakeit.Faker
}

func New(rng *rand.Rand) *Generator {
	return &Generator{
		rng:   rng,
		faker: gofakeit.New(uint64(rng.Int63())),
	}
}

// Generate builds a full dataset in memory. It performs no I/O.
func (g *Generator) Generate() Dataset {
	now := time.Now().UTC()

	students := g.generateStudents(now)
	courses := g.generateCourses(now)
	enrollments := g.generateEnrollments(students, courses, now)
	assessments := g.generateAssessments(enrollments, now)
	activities := g.generateActivities(enrollments, now)

	return Dataset{
		Students:    students,
		Courses:     courses,
		Enrollments: enrollments,
		Assessments: assessments,
		Activities:  activities,
	}
}

func (g *Generator) generateStudents(now time.Time) []models.Student {
	students := make([]models.Student, 0, NumStudents)
	for i := 0; i < NumStudents; i++ {
		students = append(students, models.Student{
			ID:             uuid.New().String(),
			Name:           g.faker.Name(),
			Email:          g.faker.Email(),
			Age:            g.intBetween(18, 65),
			Gender:         g.pick(genders),
			EnrollmentDate: g.dateBetween(now.AddDate(-2, 0, 0), now),
			Status:         g.studentStatus(),
		})
	}
	return students
}

// studentStatus draws active/inactive/graduated with 70/20/10 weights.
func (g *Generator) studentStatus() string {
	switch n := g.rng.Intn(100); {
	case n < 70:
		return models.StudentStatusActive
	case n < 90:
		return models.StudentStatusInactive
	default:
		return models.StudentStatusGraduated
	}
}

func (g *Generator) generateCourses(now time.Time) []models.Course {
	courses := make([]models.Course, 0, NumCourses)
	for i := 0; i < NumCourses; i++ {
		courses = append(courses, models.Course{
			ID:            uuid.New().String(),
			Title:         strings.TrimSuffix(g.faker.Sentence(4), "."),
			Description:   g.faker.Paragraph(1, 3, 12, " "),
			Category:      g.pick(CourseCategories),
			Difficulty:    g.pick(difficulties),
			DurationHours: g.intBetween(10, 100),
			CreatedDate:   g.dateBetween(now.AddDate(-1, 0, 0), now),
		})
	}
	return courses
}

func (g *Generator) generateEnrollments(students []models.Student, courses []models.Course, now time.Time) []models.Enrollment {
	var enrollments []models.Enrollment

	for _, student := range students {
		numCourses := g.intBetween(1, 8)
		if numCourses > len(courses) {
			numCourses = len(courses)
		}

		for _, idx := range g.rng.Perm(len(courses))[:numCourses] {
			course := courses[idx]

			start := student.EnrollmentDate
			if course.CreatedDate.After(start) {
				start = course.CreatedDate
			}
			enrollmentDate := g.dateBetween(start, now)

			progress := g.rng.Float64() * 100
			status := enrollmentStatus(progress)

			var completionDate *time.Time
			if status == models.EnrollmentStatusCompleted {
				d := g.dateBetween(enrollmentDate, now)
				completionDate = &d
			}

			enrollments = append(enrollments, models.Enrollment{
				ID:                 uuid.New().String(),
				StudentID:          student.ID,
				CourseID:           course.ID,
				EnrollmentDate:     enrollmentDate,
				CompletionDate:     completionDate,
				ProgressPercentage: progress,
				Status:             status,
			})
		}
	}
	return enrollments
}

// enrollmentStatus derives the seeded status from progress. Analytics never
// re-derives this; it trusts the stored status field.
func enrollmentStatus(progress float64) string {
	switch {
	case progress >= 95:
		return models.EnrollmentStatusCompleted
	case progress > 0:
		return models.EnrollmentStatusInProgress
	default:
		return models.EnrollmentStatusEnrolled
	}
}

func (g *Generator) generateAssessments(enrollments []models.Enrollment, now time.Time) []models.Assessment {
	var assessments []models.Assessment

	for _, e := range enrollments {
		// Only progressed enrollments have been assessed.
		if e.ProgressPercentage <= 20 {
			continue
		}

		end := now
		if e.CompletionDate != nil {
			end = *e.CompletionDate
		}

		num := g.intBetween(1, 5)
		for i := 0; i < num; i++ {
			maxScore := maxScores[g.rng.Intn(len(maxScores))]
			score := 0.4*maxScore + g.rng.Float64()*0.6*maxScore

			assessments = append(assessments, models.Assessment{
				ID:             uuid.New().String(),
				StudentID:      e.StudentID,
				CourseID:       e.CourseID,
				AssessmentType: g.pick(assessmentTypes),
				Score:          score,
				MaxScore:       maxScore,
				CompletionDate: g.dateBetween(e.EnrollmentDate, end),
			})
		}
	}
	return assessments
}

func (g *Generator) generateActivities(enrollments []models.Enrollment, now time.Time) []models.LearningActivity {
	var activities []models.LearningActivity

	for _, e := range enrollments {
		if e.ProgressPercentage <= 0 {
			continue
		}

		end := now
		if e.CompletionDate != nil {
			end = *e.CompletionDate
		}

		num := g.intBetween(5, 30)
		for i := 0; i < num; i++ {
			activities = append(activities, models.LearningActivity{
				ID:              uuid.New().String(),
				StudentID:       e.StudentID,
				CourseID:        e.CourseID,
				ActivityType:    g.pick(activityTypes),
				DurationMinutes: g.intBetween(5, 120),
				Date:            g.dateBetween(e.EnrollmentDate, end),
			})
		}
	}
	return activities
}

func (g *Generator) pick(options []string) string {
	return options[g.rng.Intn(len(options))]
}

// intBetween returns an int in [min, max] inclusive.
func (g *Generator) intBetween(min, max int) int {
	return min + g.rng.Intn(max-min+1)
}

// dateBetween returns a time in [start, end). A degenerate window collapses
// to its start.
func (g *Generator) dateBetween(start, end time.Time) time.Time {
	if !end.After(start) {
		return start
	}
	span := end.Sub(start)
	return start.Add(time.Duration(g.rng.Int63n(int64(span))))
}
