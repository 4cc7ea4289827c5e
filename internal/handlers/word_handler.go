package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nederlandse-workbook/learning-service/internal/repositories"
	"github.com/nederlandse-workbook/learning-service/internal/services"
	"github.com/nederlandse-workbook/learning-service/internal/utils"
)

type WordHandler struct {
	words    services.WordService
	imports  services.ImportService
	progress services.ProgressService
	logger   utils.Logger
}

func NewWordHandler(
	words services.WordService,
	imports services.ImportService,
	progress services.ProgressService,
	logger utils.Logger,
) *WordHandler {
	return &WordHandler{
		words:    words,
		imports:  imports,
		progress: progress,
		logger:   logger,
	}
}

// CreateWord handles POST /words. A duplicate (dutch, translation, source)
// returns the existing entry with 200 instead of 201.
func (h *WordHandler) CreateWord(c *gin.Context) {
	var req services.CreateWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body", Code: "BAD_REQUEST"})
		return
	}

	resp, err := h.words.Create(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		h.logger.LogError(err, "Failed to create word")
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}

// GetWord handles GET /words/:id.
func (h *WordHandler) GetWord(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return
	}

	word, err := h.words.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, word)
}

// UpdateWord handles PUT /words/:id with partial field edits.
func (h *WordHandler) UpdateWord(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return
	}

	var req services.UpdateWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body", Code: "BAD_REQUEST"})
		return
	}

	word, err := h.words.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, word)
}

// DeleteWord handles DELETE /words/:id.
func (h *WordHandler) DeleteWord(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return
	}

	if err := h.words.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "word deleted"})
}

// ListWords handles GET /words with optional search/source/pagination query params.
func (h *WordHandler) ListWords(c *gin.Context) {
	filters := repositories.WordFilters{
		Search:    c.Query("search"),
		SortBy:    c.DefaultQuery("sort_by", "dutch"),
		SortOrder: c.DefaultQuery("sort_order", "asc"),
	}
	if source := c.Query("source"); source != "" {
		filters.Source = &source
	}
	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			categoryID := uint(id)
			filters.CategoryID = &categoryID
		}
	}
	filters.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	filters.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	words, total, err := h.words.List(c.Request.Context(), filters)
	if err != nil {
		h.logger.LogError(err, "Failed to list words")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"words": words, "total": total})
}

// ImportWords handles POST /words/import with a multipart xlsx upload.
func (h *WordHandler) ImportWords(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "file is required", Code: "BAD_REQUEST"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "cannot read uploaded file", Code: "BAD_REQUEST"})
		return
	}
	defer f.Close()

	summary, err := h.imports.ImportWords(c.Request.Context(), currentUserID(c), f)
	if err != nil {
		h.logger.LogError(err, "Word import failed", "filename", file.Filename)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "import finished", Data: summary})
}

// AddFlashcard handles POST /words/:id/flashcard.
func (h *WordHandler) AddFlashcard(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return
	}

	card, err := h.words.AddFlashcard(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// RemoveFlashcard handles DELETE /words/:id/flashcard.
func (h *WordHandler) RemoveFlashcard(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return
	}

	if err := h.words.RemoveFlashcard(c.Request.Context(), currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "flashcard removed"})
}

// CreateCategory handles POST /categories.
func (h *WordHandler) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body", Code: "BAD_REQUEST"})
		return
	}

	category, err := h.words.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// ListCategories handles GET /categories.
func (h *WordHandler) ListCategories(c *gin.Context) {
	categories, err := h.words.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Categorize handles POST /words/:id/category/:category_id.
func (h *WordHandler) Categorize(c *gin.Context) {
	wordID, err := parseUintParam(c, "id")
	if err != nil {
		return
	}
	categoryID, err := parseUintParam(c, "category_id")
	if err != nil {
		return
	}

	if err := h.words.Categorize(c.Request.Context(), wordID, categoryID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "word categorized"})
}

// Uncategorize handles DELETE /words/:id/category/:category_id.
func (h *WordHandler) Uncategorize(c *gin.Context) {
	wordID, err := parseUintParam(c, "id")
	if err != nil {
		return
	}
	categoryID, err := parseUintParam(c, "category_id")
	if err != nil {
		return
	}

	if err := h.words.Uncategorize(c.Request.Context(), wordID, categoryID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "word uncategorized"})
}

// Dashboard handles GET /progress/dashboard.
func (h *WordHandler) Dashboard(c *gin.Context) {
	resp, err := h.progress.Dashboard(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.logger.LogError(err, "Failed to load dashboard")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func parseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid " + name, Code: "BAD_REQUEST"})
		return 0, err
	}
	return uint(id), nil
}
