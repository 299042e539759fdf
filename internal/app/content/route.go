package content

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	contentGroup := rg.Group("/content")
	{
		contentGroup.GET("", handler.GetContent)
		contentGroup.GET("/calendar", handler.GetCalendar)
		contentGroup.POST("", handler.CreateContent)
		contentGroup.PUT("/:id/status", handler.UpdateStatus)
		contentGroup.PUT("/:id/caption", handler.UpdateCaption)
		contentGroup.PUT("/:id/frameio", handler.UpdateFrameio)
	}
}
