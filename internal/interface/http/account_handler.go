package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-course-marketplace/internal/application"
	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	"github.com/oksasatya/go-course-marketplace/pkg/response"
	"github.com/oksasatya/go-course-marketplace/pkg/validation"
)

// AccountHandler serves signup and signin for one identity domain.
type AccountHandler struct {
	Svc    *application.AccountService
	Domain entity.Domain
	Logger *logrus.Logger
}

func NewAccountHandler(svc *application.AccountService, domain entity.Domain, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{Svc: svc, Domain: domain, Logger: logger}
}

type signupRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,pwd"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

type signinRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AccountHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}

	_, err := h.Svc.Register(c.Request.Context(), h.Domain, application.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		response.FromError(c, err, "Error creating "+string(h.Domain))
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "signed up"})
}

func (h *AccountHandler) Signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}

	token, err := h.Svc.Authenticate(c.Request.Context(), h.Domain, req.Email, req.Password)
	if err != nil {
		response.FromError(c, err, "Error during signin")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"token": token})
}
