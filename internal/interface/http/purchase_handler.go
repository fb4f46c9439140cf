package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-course-marketplace/internal/application"
	"github.com/oksasatya/go-course-marketplace/internal/interface/middleware"
	"github.com/oksasatya/go-course-marketplace/pkg/response"
	"github.com/oksasatya/go-course-marketplace/pkg/validation"
)

type PurchaseHandler struct {
	Ledger *application.LedgerService
	Logger *logrus.Logger
}

func NewPurchaseHandler(ledger *application.LedgerService, logger *logrus.Logger) *PurchaseHandler {
	return &PurchaseHandler{Ledger: ledger, Logger: logger}
}

type purchaseRequest struct {
	CourseID string `json:"courseId" binding:"required"`
}

// Purchase handles POST /course/purchase.
func (h *PurchaseHandler) Purchase(c *gin.Context) {
	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}

	p, err := h.Ledger.Purchase(c.Request.Context(), middleware.SubjectID(c), req.CourseID)
	if err != nil {
		response.FromError(c, err, "Error purchasing course")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Course purchased successfully", "purchaseId": p.ID})
}

// ListPurchases handles GET /user/purchases.
func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	out, err := h.Ledger.ListPurchased(c.Request.Context(), middleware.SubjectID(c))
	if err != nil {
		response.FromError(c, err, "Error listing purchases")
		return
	}
	response.JSON(c, http.StatusOK, out)
}
