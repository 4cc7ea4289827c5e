package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nederlandse-workbook/learning-service/internal/services"
	"github.com/nederlandse-workbook/learning-service/internal/utils"
)

type ReviewHandler struct {
	reviews services.ReviewService
	logger  utils.Logger
}

func NewReviewHandler(reviews services.ReviewService, logger utils.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviews: reviews,
		logger:  logger,
	}
}

// ListCards handles GET /flashcards, the user's whole learning set.
func (h *ReviewHandler) ListCards(c *gin.Context) {
	cards, err := h.reviews.Cards(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.logger.LogError(err, "Failed to list flashcards")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flashcards": cards})
}

// DueCards handles GET /flashcards/due. An empty queue is a 200 with a nil
// card, not an error.
func (h *ReviewHandler) DueCards(c *gin.Context) {
	queue, err := h.reviews.DueCards(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.logger.LogError(err, "Failed to load due cards")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, queue)
}

// RateCard handles POST /flashcards/:id/rate/:rating. The rating path
// segment is passed through verbatim; the scheduler decides what it means.
func (h *ReviewHandler) RateCard(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return
	}

	card, err := h.reviews.RateCard(c.Request.Context(), currentUserID(c), id, c.Param("rating"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}
