package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-course-marketplace/internal/interface/http"
	"github.com/oksasatya/go-course-marketplace/internal/interface/middleware"
)

// AdminModule wires the admin routes.
// Public: POST /admin/signup, POST /admin/signin
// Protected (admin token): POST /admin/course, POST /admin/course/image, GET /admin/courses
type AdminModule struct {
	Accounts *handlers.AccountHandler
	Courses  *handlers.CourseHandler
	Tokens   middleware.TokenVerifier
}

func NewAdminModule(accounts *handlers.AccountHandler, courses *handlers.CourseHandler, tokens middleware.TokenVerifier) *AdminModule {
	return &AdminModule{Accounts: accounts, Courses: courses, Tokens: tokens}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/admin")
	g.POST("/signup", m.Accounts.Signup)
	g.POST("/signin", m.Accounts.Signin)

	auth := g.Group("/")
	auth.Use(middleware.AdminGate(m.Tokens))
	{
		auth.POST("/course", m.Courses.Create)
		auth.POST("/course/image", m.Courses.UploadImage)
		auth.GET("/courses", m.Courses.ListMine)
	}
}
