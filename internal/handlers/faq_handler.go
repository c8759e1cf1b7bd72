package handlers

import (
	"unistay/internal/models"
	"unistay/internal/services"
	"unistay/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FAQHandler struct {
	faqService services.FAQService
}

func NewFAQHandler(faqService services.FAQService) *FAQHandler {
	return &FAQHandler{faqService: faqService}
}

// ListFAQs is public and returned in display order.
func (h *FAQHandler) ListFAQs(c *gin.Context) {
	faqs, err := h.faqService.ListFAQs(c.Request.Context())
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "FAQs retrieved successfully", faqs)
}

// CreateFAQ adds an entry. Admin only.
func (h *FAQHandler) CreateFAQ(c *gin.Context) {
	var faq models.FAQ
	if err := c.ShouldBindJSON(&faq); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	created, err := h.faqService.CreateFAQ(c.Request.Context(), &faq)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "FAQ created successfully", created)
}

// UpdateFAQ applies a partial update. Admin only.
func (h *FAQHandler) UpdateFAQ(c *gin.Context) {
	faqID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid FAQ ID")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	faq, err := h.faqService.UpdateFAQ(c.Request.Context(), faqID, updates)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "FAQ updated successfully", faq)
}

// DeleteFAQ removes an entry. Admin only.
func (h *FAQHandler) DeleteFAQ(c *gin.Context) {
	faqID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid FAQ ID")
		return
	}

	if err := h.faqService.DeleteFAQ(c.Request.Context(), faqID); err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "FAQ deleted successfully", nil)
}
