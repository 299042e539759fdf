package content

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ZenNoodz/Motioncookingcontent/internal/app/apperr"
	"github.com/ZenNoodz/Motioncookingcontent/internal/app/project"
	"github.com/ZenNoodz/Motioncookingcontent/internal/app/stage"
)

type Handler interface {
	GetContent(c *gin.Context)
	GetCalendar(c *gin.Context)
	CreateContent(c *gin.Context)
	UpdateStatus(c *gin.Context)
	UpdateCaption(c *gin.Context)
	UpdateFrameio(c *gin.Context)
}

type handler struct {
	service         Service
	projectSvc      project.Service
	coordinator     Coordinator
	defaultPageSize int
	maxPageSize     int
}

func NewHandler(service Service, projectSvc project.Service, coordinator Coordinator, defaultPageSize, maxPageSize int) Handler {
	return &handler{
		service:         service,
		projectSvc:      projectSvc,
		coordinator:     coordinator,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

func (h *handler) resolveProject(c *gin.Context) (*project.Project, error) {
	if id := c.Query("projectId"); id != "" {
		return h.projectSvc.GetByID(id)
	}
	return h.projectSvc.Default()
}

// @Summary List content items
// @Description Get the flat content list, newest first, paginated
// @Tags Content
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} SuccessResponse
// @Router /api/content [get]
func (h *handler) GetContent(c *gin.Context) {
	proj, err := h.resolveProject(c)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.defaultPageSize)))
	if err != nil || limit < 1 || limit > h.maxPageSize {
		limit = h.defaultPageSize
	}

	views, pagination, err := h.service.ListView(c.Request.Context(), proj.ID, page, limit)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       views,
		"pagination": pagination,
	})
}

// @Summary Content calendar
// @Description Get content items grouped by planned day within a month
// @Tags Content
// @Accept json
// @Produce json
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Success 200 {object} SuccessResponse
// @Router /api/content/calendar [get]
func (h *handler) GetCalendar(c *gin.Context) {
	proj, err := h.resolveProject(c)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	now := time.Now()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		year = now.Year()
	}
	monthNum, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || monthNum < 1 || monthNum > 12 {
		monthNum = int(now.Month())
	}

	byDay, err := h.service.Calendar(c.Request.Context(), proj.ID, year, time.Month(monthNum))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: byDay})
}

// @Summary Create content item
// @Description Create a content item; it starts in the first column with status NEW
// @Tags Content
// @Accept json
// @Produce json
// @Param request body CreateContentRequest true "Content data"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/content [post]
func (h *handler) CreateContent(c *gin.Context) {
	var req CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	proj, err := h.resolveProject(c)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	var plannedDate *time.Time
	if req.PlannedDate != "" {
		parsed, err := time.Parse("2006-01-02", req.PlannedDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid planned date, expected YYYY-MM-DD"})
			return
		}
		plannedDate = &parsed
	}

	platforms := strings.Split(req.Platform, ",")
	for i := range platforms {
		platforms[i] = strings.TrimSpace(platforms[i])
	}

	item, err := h.coordinator.CreateContentItem(c.Request.Context(), proj.ID, CreateItemInput{
		Title:       req.Title,
		Platforms:   platforms,
		Brief:       req.Brief,
		PlannedDate: plannedDate,
	})
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Data: item})
}

// @Summary Change content status
// @Description Set an item's status by column slug; the board card follows
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Content item ID"
// @Param request body UpdateStatusRequest true "New status (column slug)"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/content/{id}/status [put]
func (h *handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	// The wire carries column slugs; the mapping is the only place
	// slugs become statuses.
	status, ok := stage.StatusForSlug(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown status " + req.Status})
		return
	}

	proj, err := h.resolveProject(c)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	item, err := h.coordinator.ChangeStatus(c.Request.Context(), proj.ID, id, status)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: item})
}

// @Summary Update caption draft
// @Description Create or overwrite the caption draft for a platform
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Content item ID"
// @Param request body UpdateCaptionRequest true "Caption text"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/content/{id}/caption [put]
func (h *handler) UpdateCaption(c *gin.Context) {
	id := c.Param("id")

	var req UpdateCaptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	draft, err := h.service.UpsertCaption(c.Request.Context(), id, req.Platform, req.Caption, "")
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: draft})
}

// @Summary Update Frame.io link
// @Description Set the item's Frame.io review link
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Content item ID"
// @Param request body UpdateFrameioRequest true "Link URL"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/content/{id}/frameio [put]
func (h *handler) UpdateFrameio(c *gin.Context) {
	id := c.Param("id")

	var req UpdateFrameioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	link, err := h.service.UpsertLink(c.Request.Context(), id, FrameioLinkTitle, req.URL)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: link})
}
