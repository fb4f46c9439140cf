package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-course-marketplace/internal/application"
	"github.com/oksasatya/go-course-marketplace/internal/interface/middleware"
	"github.com/oksasatya/go-course-marketplace/pkg/response"
	"github.com/oksasatya/go-course-marketplace/pkg/validation"
)

type CourseHandler struct {
	Catalog *application.CatalogService
	Media   *application.MediaService
	Logger  *logrus.Logger
}

func NewCourseHandler(catalog *application.CatalogService, media *application.MediaService, logger *logrus.Logger) *CourseHandler {
	return &CourseHandler{Catalog: catalog, Media: media, Logger: logger}
}

type createCourseRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"gt=0"`
	Image       string  `json:"image" binding:"required,url"`
}

// Create handles POST /admin/course.
func (h *CourseHandler) Create(c *gin.Context) {
	var req createCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}

	course, err := h.Catalog.CreateCourse(c.Request.Context(), middleware.SubjectID(c), application.CourseInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	})
	if err != nil {
		response.FromError(c, err, "Error creating course")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Course Created", "courseId": course.ID})
}

// ListMine handles GET /admin/courses.
func (h *CourseHandler) ListMine(c *gin.Context) {
	courses, err := h.Catalog.ListByCreator(c.Request.Context(), middleware.SubjectID(c))
	if err != nil {
		response.FromError(c, err, "Error listing courses")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"courses": courses})
}

// Preview handles GET /course/preview.
func (h *CourseHandler) Preview(c *gin.Context) {
	courses, err := h.Catalog.ListAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "Error listing courses")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"courses": courses})
}

// UploadImage handles POST /admin/course/image (multipart field "image").
func (h *CourseHandler) UploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, application.MaxImageSize+(1<<20))
	fh, err := c.FormFile("image")
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.ValidationError(c, map[string]string{"image": "must be at most 5 MiB"})
		return
	}
	if err != nil {
		response.ValidationError(c, map[string]string{"image": "is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.ValidationError(c, map[string]string{"image": "cannot be read"})
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Media.UploadCourseImage(c.Request.Context(), middleware.SubjectID(c), application.ImageInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		response.FromError(c, err, "Error uploading image")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"url": url})
}
