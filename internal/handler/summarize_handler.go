package handler

import (
	"log/slog"
	"net/http"

	"github.com/amgu662/hindi-news-listener/pkg/llm"

	"github.com/gin-gonic/gin"
)

type Completer interface {
	Complete(prompt string) (string, error)
}

type SummarizeHandler struct {
	llm Completer
}

func NewSummarizeHandler(llm Completer) *SummarizeHandler {
	return &SummarizeHandler{llm: llm}
}

func (h *SummarizeHandler) Summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
		return
	}

	level := llm.NormalizeLevel(req.Level)
	prompt := llm.BuildSummaryPrompt(req.Text, level)

	content, err := h.llm.Complete(prompt)
	if err != nil {
		slog.Error("error generating summary", "level", level, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate summary", "details": err.Error()})
		return
	}

	// An empty result after filtering is still a success; the model
	// simply produced nothing usable.
	c.JSON(http.StatusOK, SummarizeResponse{Result: llm.FilterLessonLines(content)})
}
