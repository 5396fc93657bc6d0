package http

import (
	"net/http"

	"campushub/pkg/apperrors"
	"campushub/pkg/logger"
	"campushub/services/wiki/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WikiHandler struct {
	wikiUseCase usecase.WikiUseCase
	logger      *logger.Logger
}

func NewWikiHandler(wikiUseCase usecase.WikiUseCase, logger *logger.Logger) *WikiHandler {
	return &WikiHandler{
		wikiUseCase: wikiUseCase,
		logger:      logger,
	}
}

type entryRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

type editRequest struct {
	Content string `json:"content"`
}

// ListEntries godoc
// @Summary      List all entries
// @Tags         wiki
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /wiki/entries [get]
func (h *WikiHandler) ListEntries(c *gin.Context) {
	titles, err := h.wikiUseCase.ListEntries()
	if err != nil {
		h.logger.Error("Failed to list entries: %v", err)
		c.JSON(apperrors.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": titles, "count": len(titles)})
}

// GetEntry godoc
// @Summary      Get an entry
// @Description  Case-insensitive title lookup, returns markdown and rendered HTML
// @Tags         wiki
// @Produce      json
// @Param        title path string true "Entry title"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /wiki/entries/{title} [get]
func (h *WikiHandler) GetEntry(c *gin.Context) {
	title := c.Param("title")

	entry, err := h.wikiUseCase.GetEntry(title)
	if err != nil {
		c.JSON(apperrors.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// CreateEntry godoc
// @Summary      Create a new entry
// @Description  Fails if an entry with the same title already exists (case-insensitive)
// @Tags         wiki
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entryRequest true "Entry data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /wiki/entries [post]
func (h *WikiHandler) CreateEntry(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.wikiUseCase.CreateEntry(req.Title, req.Content)
	if err != nil {
		status := apperrors.StatusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Failed to create entry: %v", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// EditEntry godoc
// @Summary      Edit an entry
// @Tags         wiki
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        title path string true "Entry title"
// @Param        request body editRequest true "New content"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /wiki/entries/{title} [put]
func (h *WikiHandler) EditEntry(c *gin.Context) {
	title := c.Param("title")

	var req editRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.wikiUseCase.EditEntry(title, req.Content)
	if err != nil {
		status := apperrors.StatusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Failed to edit entry: %v", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// Search godoc
// @Summary      Search entries by title
// @Description  Exact match returns a redirect target; otherwise substring matches
// @Tags         wiki
// @Produce      json
// @Param        q query string true "Search query"
// @Success      200  {object}  map[string]interface{}
// @Router       /wiki/search [get]
func (h *WikiHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	result, err := h.wikiUseCase.Search(query)
	if err != nil {
		h.logger.Error("Search failed: %v", err)
		c.JSON(apperrors.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// RandomEntry godoc
// @Summary      Random entry
// @Tags         wiki
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /wiki/random [get]
func (h *WikiHandler) RandomEntry(c *gin.Context) {
	title, err := h.wikiUseCase.RandomEntry()
	if err != nil {
		c.JSON(apperrors.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"title": title})
}
