package board

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	boardGroup := rg.Group("/board")
	{
		boardGroup.GET("", handler.GetBoard)
		boardGroup.PUT("/move", handler.MoveCard)
		boardGroup.POST("/card", handler.CreateCard)
	}
}
