package board

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ZenNoodz/Motioncookingcontent/internal/app/apperr"
	"github.com/ZenNoodz/Motioncookingcontent/internal/app/content"
	"github.com/ZenNoodz/Motioncookingcontent/internal/app/project"
)

type Handler interface {
	GetBoard(c *gin.Context)
	MoveCard(c *gin.Context)
	CreateCard(c *gin.Context)
}

type handler struct {
	service     Service
	projectSvc  project.Service
	coordinator content.Coordinator
}

func NewHandler(service Service, projectSvc project.Service, coordinator content.Coordinator) Handler {
	return &handler{
		service:     service,
		projectSvc:  projectSvc,
		coordinator: coordinator,
	}
}

// resolveProject defaults to the first project unless the request
// names one. The single-project shortcut lives at this boundary only.
func (h *handler) resolveProject(c *gin.Context) (*project.Project, error) {
	if id := c.Query("projectId"); id != "" {
		return h.projectSvc.GetByID(id)
	}
	return h.projectSvc.Default()
}

// @Summary Get board
// @Description Get the Kanban board: all columns with their cards and counts
// @Tags Board
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/board [get]
func (h *handler) GetBoard(c *gin.Context) {
	proj, err := h.resolveProject(c)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	views, err := h.service.BoardView(c.Request.Context(), proj.ID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: views})
}

// @Summary Move card
// @Description Move a card to another column and align the item status with it
// @Tags Board
// @Accept json
// @Produce json
// @Param request body MoveCardRequest true "Move request"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/board/move [put]
func (h *handler) MoveCard(c *gin.Context) {
	var req MoveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	proj, err := h.resolveProject(c)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.coordinator.MoveCard(c.Request.Context(), proj.ID, req.CardID, req.ToColumnID); err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// @Summary Create card
// @Description Create a content item directly in the given column
// @Tags Board
// @Accept json
// @Produce json
// @Param request body CreateCardRequest true "Card data"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/board/card [post]
func (h *handler) CreateCard(c *gin.Context) {
	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	proj, err := h.resolveProject(c)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid due date, expected YYYY-MM-DD"})
			return
		}
		dueDate = &parsed
	}

	item, err := h.coordinator.CreateCard(c.Request.Context(), proj.ID, content.CreateCardInput{
		Title:       req.Title,
		Description: req.Description,
		ColumnSlug:  req.ColumnID,
		DueDate:     dueDate,
	})
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Data: item})
}
