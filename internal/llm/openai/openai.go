package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"wallet-profiler/internal/llm"
	"wallet-profiler/internal/store"
	"wallet-profiler/internal/trace"
	"wallet-profiler/internal/types"
)

type OpenAIJudge struct {
	cfg *store.Config
}

func NewOpenAIJudge(cfg *store.Config) *OpenAIJudge {
	return &OpenAIJudge{cfg: cfg}
}

func (j *OpenAIJudge) Score(ctx context.Context, wallet string, titles []string) (types.WalletScores, error) {
	ctx, span := trace.StartSpan(ctx, "openai-api-call")
	defer span.End()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return types.NeutralScores(), errors.New("OPENAI_API_KEY missing")
	}

	prompt := llm.BuildUserPrompt(wallet, titles, j.cfg.LLM.TimeWindow)

	body := map[string]any{
		"model":       j.cfg.LLM.Model,
		"messages":    []map[string]string{{"role": "system", "content": llm.JudgeSystemPrompt}, {"role": "user", "content": prompt}},
		"temperature": j.cfg.LLM.Temperature,
		"max_tokens":  j.cfg.LLM.MaxTokens,
	}
	bb, _ := json.Marshal(body)

	// One retry on an unusable response, then neutral scores with no error.
	for attempt := 0; attempt < 2; attempt++ {
		req, _ := http.NewRequestWithContext(ctx, "POST", "https://api.openai.com/v1/chat/completions", bytes.NewReader(bb))
		req.Header.Set("Authorization", "Bearer "+apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return types.NeutralScores(), err
		}

		if resp.StatusCode >= 300 {
			resp.Body.Close()
			return types.NeutralScores(), fmt.Errorf("openai http %d", resp.StatusCode)
		}

		var r struct {
			Choices []struct {
				Message struct {
					Content string `json:"content"`
				} `json:"message"`
			} `json:"choices"`
		}
		err = json.NewDecoder(resp.Body).Decode(&r)
		resp.Body.Close()
		if err != nil {
			return types.NeutralScores(), err
		}
		if len(r.Choices) == 0 {
			continue
		}

		out := strings.TrimSpace(r.Choices[0].Message.Content)
		if scores, ok := llm.ExtractScores(out); ok {
			return scores, nil
		}
	}

	return types.NeutralScores(), nil
}
