package grok

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"wallet-profiler/internal/llm"
	"wallet-profiler/internal/logger"
	"wallet-profiler/internal/store"
	"wallet-profiler/internal/trace"
	"wallet-profiler/internal/types"
)

// GrokJudge calls the xAI chat completions API and returns wallet scores.
type GrokJudge struct {
	cfg      *store.Config
	endpoint string
}

func NewGrokJudge(cfg *store.Config) *GrokJudge {
	// default public xAI endpoint
	endpoint := "https://api.x.ai/v1/chat/completions"
	// If you route through a proxy, set endpoint via GROK_API_ENDPOINT env var
	if ep := os.Getenv("GROK_API_ENDPOINT"); ep != "" {
		endpoint = ep
	}
	return &GrokJudge{cfg: cfg, endpoint: endpoint}
}

func (j *GrokJudge) Score(ctx context.Context, wallet string, titles []string) (types.WalletScores, error) {
	logger.Debug(ctx, "Grok judge called", "wallet", wallet, "model", j.cfg.LLM.Model, "titles", len(titles), "endpoint", j.endpoint)

	ctx, span := trace.StartSpan(ctx, "grok-score")
	defer span.End()

	apiKey := os.Getenv("XAI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GROK_API_KEY")
	}
	if apiKey == "" {
		err := errors.New("XAI_API_KEY missing")
		logger.ErrorWithErr(ctx, "Grok API key not configured", err)
		return types.NeutralScores(), err
	}

	prompt := llm.BuildUserPrompt(wallet, titles, j.cfg.LLM.TimeWindow)

	// One retry on an unusable response, then neutral scores.
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		content, err := j.complete(ctx, apiKey, prompt)
		if err != nil {
			lastErr = err
			logger.Warn(ctx, "Grok request failed", "wallet", wallet, "attempt", attempt+1, "error", err.Error())
			continue
		}
		if scores, ok := llm.ExtractScores(content); ok {
			return scores, nil
		}
		logger.Warn(ctx, "Grok response had no usable scores array", "wallet", wallet, "attempt", attempt+1, "content_length", len(content))
	}

	if lastErr != nil {
		return types.NeutralScores(), lastErr
	}
	logger.Warn(ctx, "Unable to parse Grok scores, defaulting to neutral", "wallet", wallet)
	return types.NeutralScores(), nil
}

func (j *GrokJudge) complete(ctx context.Context, apiKey, prompt string) (string, error) {
	reqBody := map[string]any{
		"model": j.cfg.LLM.Model,
		"messages": []map[string]string{
			{"role": "system", "content": llm.JudgeSystemPrompt},
			{"role": "user", "content": prompt},
		},
		"max_tokens":  j.cfg.LLM.MaxTokens,
		"temperature": j.cfg.LLM.Temperature,
	}
	bb, _ := json.Marshal(reqBody)

	start := time.Now()
	req, _ := http.NewRequestWithContext(ctx, "POST", j.endpoint, bytes.NewReader(bb))
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	latency := time.Since(start)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	logger.Debug(ctx, "Received response from Grok", "status_code", resp.StatusCode, "latency_ms", latency.Milliseconds())

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("grok http %d: %s", resp.StatusCode, string(body))
	}

	var r struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", err
	}
	if len(r.Choices) == 0 {
		return "", errors.New("no choices")
	}
	return strings.TrimSpace(r.Choices[0].Message.Content), nil
}
