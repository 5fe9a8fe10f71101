package controller

import (
	"strconv"

	"fairway/app_error"
	"fairway/repository"
	"fairway/service"
	"fairway/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CourseController struct {
	courseService *service.CourseService
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{courseService: service.NewCourseService(db)}
}

func setupCourseController(db *gorm.DB) []RouteInfo {
	e := NewCourseController(db)
	basePath := "/courses"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getCoursesHandler()},
		{Method: "POST", Path: "", HandlerFunc: e.createCourseHandler(), Authenticated: true, RequiredRoles: []repository.Permission{repository.PermissionAdmin}},
		{Method: "GET", Path: "/:course_id", HandlerFunc: e.getCourseHandler()},
		{Method: "DELETE", Path: "/:course_id", HandlerFunc: e.deleteCourseHandler(), Authenticated: true, RequiredRoles: []repository.Permission{repository.PermissionAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetCourses
// @Description Fetches all courses
// @Tags course
// @Produce json
// @Success 200 {array} Course
// @Router /courses [get]
func (e *CourseController) getCoursesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		courses, err := e.courseService.GetAllCourses("Holes")
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(200, utils.Map(courses, toCourseResponse))
	}
}

// @id GetCourse
// @Description Fetches a course with its hole layout
// @Tags course
// @Produce json
// @Param course_id path int true "Course Id"
// @Success 200 {object} Course
// @Router /courses/{course_id} [get]
func (e *CourseController) getCourseHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		courseId, err := strconv.Atoi(c.Param("course_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		course, err := e.courseService.GetCourseById(courseId, "Holes")
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(200, toCourseResponse(course))
	}
}

// @id CreateCourse
// @Description Creates a course with its full hole layout
// @Tags course
// @Accept json
// @Produce json
// @Param course body CourseCreate true "Course to create"
// @Success 201 {object} Course
// @Security BearerAuth
// @Router /courses [post]
func (e *CourseController) createCourseHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var courseCreate CourseCreate
		if err := c.BindJSON(&courseCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		course, err := e.courseService.CreateCourse(courseCreate.toModel())
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(201, toCourseResponse(course))
	}
}

// @id DeleteCourse
// @Description Deletes a course and its holes
// @Tags course
// @Param course_id path int true "Course Id"
// @Success 204
// @Security BearerAuth
// @Router /courses/{course_id} [delete]
func (e *CourseController) deleteCourseHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		courseId, err := strconv.Atoi(c.Param("course_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.courseService.DeleteCourse(courseId); err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(204, nil)
	}
}

type HoleCreate struct {
	Number       int  `json:"number" binding:"required"`
	Par          int  `json:"par" binding:"required"`
	HandicapRank int  `json:"handicap_rank"`
	YardageWhite *int `json:"yardage_white"`
	YardageBlue  *int `json:"yardage_blue"`
	YardageRed   *int `json:"yardage_red"`
	YardageGold  *int `json:"yardage_gold"`
}

type CourseCreate struct {
	Name     string        `json:"name" binding:"required"`
	Location string        `json:"location"`
	Holes    []*HoleCreate `json:"holes" binding:"required"`
}

type Course struct {
	Id       int     `json:"id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Location string  `json:"location"`
	Holes    []*Hole `json:"holes"`
}

type Hole struct {
	Id           int  `json:"id" binding:"required"`
	Number       int  `json:"number" binding:"required"`
	Par          int  `json:"par" binding:"required"`
	HandicapRank int  `json:"handicap_rank"`
	YardageWhite *int `json:"yardage_white"`
	YardageBlue  *int `json:"yardage_blue"`
	YardageRed   *int `json:"yardage_red"`
	YardageGold  *int `json:"yardage_gold"`
}

func (courseCreate *CourseCreate) toModel() *repository.Course {
	return &repository.Course{
		Name:     courseCreate.Name,
		Location: courseCreate.Location,
		Holes: utils.Map(courseCreate.Holes, func(hole *HoleCreate) *repository.Hole {
			return &repository.Hole{
				Number:       hole.Number,
				Par:          hole.Par,
				HandicapRank: hole.HandicapRank,
				YardageWhite: hole.YardageWhite,
				YardageBlue:  hole.YardageBlue,
				YardageRed:   hole.YardageRed,
				YardageGold:  hole.YardageGold,
			}
		}),
	}
}

func toCourseResponse(course *repository.Course) *Course {
	return &Course{
		Id:       course.Id,
		Name:     course.Name,
		Location: course.Location,
		Holes:    utils.Map(course.Holes, toHoleResponse),
	}
}

func toHoleResponse(hole *repository.Hole) *Hole {
	return &Hole{
		Id:           hole.Id,
		Number:       hole.Number,
		Par:          hole.Par,
		HandicapRank: hole.HandicapRank,
		YardageWhite: hole.YardageWhite,
		YardageBlue:  hole.YardageBlue,
		YardageRed:   hole.YardageRed,
		YardageGold:  hole.YardageGold,
	}
}
