package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/amgu662/hindi-news-listener/pkg/speech"

	"github.com/gin-gonic/gin"
)

type Synthesizer interface {
	Synthesize(ssml string) ([]byte, error)
}

type SpeakHandler struct {
	tts Synthesizer
}

func NewSpeakHandler(tts Synthesizer) *SpeakHandler {
	return &SpeakHandler{tts: tts}
}

func (h *SpeakHandler) Speak(c *gin.Context) {
	var req SpeakRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
		return
	}

	rate := 100
	if req.Rate != nil {
		rate = clampInt(*req.Rate, 60, 140)
	}

	pauseMs := 0
	if req.PauseMs != nil {
		pauseMs = clampInt(*req.PauseMs, 0, 2000)
	}

	ssml := speech.BuildSSML(req.Text, rate, pauseMs)

	audio, err := h.tts.Synthesize(ssml)
	if err != nil {
		slog.Error("error synthesizing speech", "rate", rate, "pause_ms", pauseMs, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Speech synthesis failed", "details": err.Error()})
		return
	}

	c.Header("Content-Length", strconv.Itoa(len(audio)))
	c.Data(http.StatusOK, "audio/mpeg", audio)
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
