package handler

import "github.com/amgu662/hindi-news-listener/pkg/llm"

type SummarizeRequest struct {
	Text  string `json:"text"`
	Level string `json:"level"`
}

type SummarizeResponse struct {
	Result string `json:"result"`
}

type SpeakRequest struct {
	Text    string `json:"text"`
	Rate    *int   `json:"rate"`
	PauseMs *int   `json:"pauseMs"`
}

type WordMapRequest struct {
	Sentence string `json:"sentence"`
}

type WordMapResponse struct {
	Words []llm.WordGloss `json:"words"`
}
