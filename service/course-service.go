package service

import (
	"fmt"

	"fairway/app_error"
	"fairway/repository"

	"gorm.io/gorm"
)

type CourseService struct {
	courseRepository *repository.CourseRepository
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{
		courseRepository: repository.NewCourseRepository(db),
	}
}

func (s *CourseService) GetAllCourses(preloads ...string) ([]*repository.Course, error) {
	return s.courseRepository.FindAll(preloads...)
}

func (s *CourseService) GetCourseById(courseId int, preloads ...string) (*repository.Course, error) {
	return s.courseRepository.GetCourseById(courseId, preloads...)
}

// CreateCourse persists a course with its full hole layout. Hole numbers
// must be unique within 1 to 18 and pars limited to 3, 4 and 5.
func (s *CourseService) CreateCourse(course *repository.Course) (*repository.Course, error) {
	if course.Name == "" {
		return nil, app_error.Validation(fmt.Errorf("course name must not be empty"))
	}
	seen := make(map[int]bool)
	for _, hole := range course.Holes {
		if hole.Number < 1 || hole.Number > 18 {
			return nil, app_error.Validation(fmt.Errorf("hole number %d is out of range", hole.Number))
		}
		if seen[hole.Number] {
			return nil, app_error.Validation(fmt.Errorf("hole number %d appears twice", hole.Number))
		}
		seen[hole.Number] = true
		if hole.Par < 3 || hole.Par > 5 {
			return nil, app_error.Validation(fmt.Errorf("hole %d has invalid par %d", hole.Number, hole.Par))
		}
	}
	return s.courseRepository.SaveCourse(course)
}

func (s *CourseService) DeleteCourse(courseId int) error {
	_, err := s.courseRepository.GetCourseById(courseId)
	if err != nil {
		return err
	}
	return s.courseRepository.DeleteCourse(courseId)
}

func (s *CourseService) GetHolesForCourse(courseId int) ([]*repository.Hole, error) {
	return s.courseRepository.GetHolesForCourse(courseId)
}
