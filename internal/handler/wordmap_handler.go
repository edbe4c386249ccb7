package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/amgu662/hindi-news-listener/pkg/llm"

	"github.com/gin-gonic/gin"
)

type WordMapHandler struct {
	llm Completer
}

func NewWordMapHandler(llm Completer) *WordMapHandler {
	return &WordMapHandler{llm: llm}
}

func (h *WordMapHandler) WordMap(c *gin.Context) {
	var req WordMapRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Sentence == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Sentence is required"})
		return
	}

	words := strings.Fields(req.Sentence)
	if len(words) == 0 {
		c.JSON(http.StatusOK, WordMapResponse{Words: []llm.WordGloss{}})
		return
	}

	prompt := llm.BuildWordMapPrompt(words)

	content, err := h.llm.Complete(prompt)
	if err != nil {
		slog.Error("error building word map", "word_count", len(words), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build word map", "details": err.Error()})
		return
	}

	glosses, err := llm.ParseWordGlosses(content, words)
	if err != nil {
		slog.Error("error parsing word map response", "word_count", len(words), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build word map", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, WordMapResponse{Words: glosses})
}
