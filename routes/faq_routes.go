package routes

import (
	"unistay/internal/handlers"
	"unistay/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupFAQRoutes wires the public FAQ list and its admin management.
func SetupFAQRoutes(r *gin.RouterGroup, jwtSecret string, faqHandler *handlers.FAQHandler) {
	r.GET("/faqs", faqHandler.ListFAQs)

	admin := r.Group("/admin/faqs")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.POST("", faqHandler.CreateFAQ)
		admin.PUT("/:id", faqHandler.UpdateFAQ)
		admin.DELETE("/:id", faqHandler.DeleteFAQ)
	}
}
