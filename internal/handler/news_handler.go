package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/amgu662/hindi-news-listener/pkg/news"

	"github.com/gin-gonic/gin"
)

type NewsSource interface {
	Headlines(query string, count int) (*news.Headlines, error)
}

type NewsHandler struct {
	source NewsSource
}

func NewNewsHandler(source NewsSource) *NewsHandler {
	return &NewsHandler{source: source}
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	count := getQueryCount(c)
	query := c.DefaultQuery("q", "India")

	headlines, err := h.source.Headlines(query, count)
	if err != nil {
		slog.Error("error fetching news", "query", query, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, headlines)
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsedValue
}

func getQueryCount(c *gin.Context) int {
	const (
		defaultCount = 3
		minCount     = 1
		maxCount     = 20
	)

	count := getQueryInt("count", defaultCount, c)
	if count < minCount {
		slog.Warn("query parameter below min, clamping", "param", "count", "value", count, "min", minCount)
		return minCount
	}

	if count > maxCount {
		slog.Warn("query parameter exceeds max, clamping", "param", "count", "value", count, "max", maxCount)
		return maxCount
	}

	return count
}
