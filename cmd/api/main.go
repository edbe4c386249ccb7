package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/amgu662/hindi-news-listener/internal/config"
	"github.com/amgu662/hindi-news-listener/internal/handler"
	"github.com/amgu662/hindi-news-listener/pkg/llm"
	"github.com/amgu662/hindi-news-listener/pkg/news"
	"github.com/amgu662/hindi-news-listener/pkg/speech"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	newsClient := news.NewNewsAPIClient(cfg.NewsAPIKey)
	slog.Info("news source ready", "source", newsClient.Name())

	var completer handler.Completer
	switch cfg.LLMProvider {
	case "anthropic":
		completer = llm.NewAnthropicClient(cfg.AnthropicKey)
	default:
		completer = llm.NewOpenAIClient(cfg.OpenAIKey)
	}
	slog.Info("completion provider selected", "provider", cfg.LLMProvider)

	ttsClient := speech.NewAzureClient(cfg.SpeechKey, cfg.SpeechRegion)

	newsHandler := handler.NewNewsHandler(newsClient)
	summarizeHandler := handler.NewSummarizeHandler(completer)
	speakHandler := handler.NewSpeakHandler(ttsClient)
	wordMapHandler := handler.NewWordMapHandler(completer)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.Use(static.Serve("/", static.LocalFile("./public", true)))

	api := r.Group("/api")
	api.GET("/health", handler.GetHealth)
	api.GET("/news", newsHandler.GetNews)
	api.POST("/summarize", summarizeHandler.Summarize)
	api.POST("/speak", speakHandler.Speak)
	api.POST("/wordmap", wordMapHandler.WordMap)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
