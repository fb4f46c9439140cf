package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-course-marketplace/internal/interface/http"
	"github.com/oksasatya/go-course-marketplace/internal/interface/middleware"
)

// CourseModule wires the catalog routes.
// Public: GET /course/preview
// Protected (user token): POST /course/purchase
type CourseModule struct {
	Courses   *handlers.CourseHandler
	Purchases *handlers.PurchaseHandler
	Tokens    middleware.TokenVerifier
}

func NewCourseModule(courses *handlers.CourseHandler, purchases *handlers.PurchaseHandler, tokens middleware.TokenVerifier) *CourseModule {
	return &CourseModule{Courses: courses, Purchases: purchases, Tokens: tokens}
}

func (m *CourseModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/course")
	g.GET("/preview", m.Courses.Preview)
	g.POST("/purchase", middleware.UserGate(m.Tokens), m.Purchases.Purchase)
}
