package repository

import (
	"gorm.io/gorm"
)

type TeeColor string

const (
	TeeColorWhite TeeColor = "white"
	TeeColorBlue  TeeColor = "blue"
	TeeColorRed   TeeColor = "red"
	TeeColorGold  TeeColor = "gold"
)

type Course struct {
	Id       int     `gorm:"primaryKey"`
	Name     string  `gorm:"not null"`
	Location string  `gorm:"null"`
	Holes    []*Hole `gorm:"foreignKey:CourseId;constraint:OnDelete:CASCADE"`
}

// Hole layout data is immutable once created, only yardages differ per tee.
type Hole struct {
	Id           int  `gorm:"primaryKey"`
	CourseId     int  `gorm:"uniqueIndex:idx_course_hole_number;index;not null"`
	Number       int  `gorm:"uniqueIndex:idx_course_hole_number;not null"`
	Par          int  `gorm:"not null"`
	HandicapRank int  `gorm:"not null"`
	YardageWhite *int `gorm:"null"`
	YardageBlue  *int `gorm:"null"`
	YardageRed   *int `gorm:"null"`
	YardageGold  *int `gorm:"null"`
}

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) GetCourseById(courseId int, preloads ...string) (*Course, error) {
	var course Course
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&course, courseId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &course, nil
}

func (r *CourseRepository) FindAll(preloads ...string) ([]*Course, error) {
	courses := make([]*Course, 0)
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.Order("name ASC").Find(&courses)
	if result.Error != nil {
		return nil, result.Error
	}
	return courses, nil
}

func (r *CourseRepository) SaveCourse(course *Course) (*Course, error) {
	result := r.DB.Save(course)
	if result.Error != nil {
		return nil, result.Error
	}
	return course, nil
}

func (r *CourseRepository) DeleteCourse(courseId int) error {
	return r.DB.Delete(&Course{}, courseId).Error
}

func (r *CourseRepository) GetHolesForCourse(courseId int) ([]*Hole, error) {
	holes := make([]*Hole, 0)
	result := r.DB.Order("number ASC").Find(&holes, &Hole{CourseId: courseId})
	if result.Error != nil {
		return nil, result.Error
	}
	return holes, nil
}
