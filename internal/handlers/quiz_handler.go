package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nederlandse-workbook/learning-service/internal/models"
	"github.com/nederlandse-workbook/learning-service/internal/services"
	"github.com/nederlandse-workbook/learning-service/internal/utils"
)

type QuizHandler struct {
	quizzes services.QuizService
	logger  utils.Logger
}

func NewQuizHandler(quizzes services.QuizService, logger utils.Logger) *QuizHandler {
	return &QuizHandler{
		quizzes: quizzes,
		logger:  logger,
	}
}

// StartQuiz handles POST /quiz/start/:type. Starting with no flashcards is a
// 409 telling the client to send the user word-browsing first.
func (h *QuizHandler) StartQuiz(c *gin.Context) {
	quizType := models.QuizType(c.Param("type"))

	session, err := h.quizzes.Start(c.Request.Context(), currentUserID(c), quizType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// CurrentQuestion handles GET /quiz/question. Once the quiz is over it
// returns {"completed": true} so the client can move to results.
func (h *QuizHandler) CurrentQuestion(c *gin.Context) {
	resp, err := h.quizzes.CurrentQuestion(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitAnswer handles POST /quiz/answer.
func (h *QuizHandler) SubmitAnswer(c *gin.Context) {
	var req services.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body", Code: "BAD_REQUEST"})
		return
	}

	if err := h.quizzes.SubmitAnswer(c.Request.Context(), currentUserID(c), &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "answer recorded"})
}

// FinishQuiz handles POST /quiz/finish.
func (h *QuizHandler) FinishQuiz(c *gin.Context) {
	summary, err := h.quizzes.Finish(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SessionDetail handles GET /quiz/history/:id with the session's answers.
func (h *QuizHandler) SessionDetail(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return
	}

	session, err := h.quizzes.SessionDetail(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// History handles GET /quiz/history.
func (h *QuizHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	sessions, err := h.quizzes.History(c.Request.Context(), currentUserID(c), limit)
	if err != nil {
		h.logger.LogError(err, "Failed to load quiz history")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}
