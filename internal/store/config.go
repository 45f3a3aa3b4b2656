package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DataAPI struct {
		BaseURL         string `yaml:"base_url"`
		TimeoutSeconds  int    `yaml:"timeout_seconds"`
		PageLimit       int    `yaml:"page_limit"`
		RequestDelayMs  int    `yaml:"request_delay_ms"`
		Burst           int    `yaml:"burst"`
		CacheDir        string `yaml:"cache_dir"`
		CacheTTLMinutes int    `yaml:"cache_ttl_minutes"`
		Positions       struct {
			SizeThreshold float64 `yaml:"size_threshold"`
			SortBy        string  `yaml:"sort_by"`
			SortDirection string  `yaml:"sort_direction"`
		} `yaml:"positions"`
	} `yaml:"data_api"`
	LLM struct {
		Provider    string  `yaml:"provider"`
		Model       string  `yaml:"model"`
		MaxTokens   int     `yaml:"max_tokens"`
		Temperature float32 `yaml:"temperature"`
		TimeWindow  string  `yaml:"time_window"`
	} `yaml:"llm"`
	Pipeline struct {
		InputCSV     string `yaml:"input_csv"`
		OutputCSV    string `yaml:"output_csv"`
		ScoreWallets bool   `yaml:"score_wallets"`
		ValidateRows bool   `yaml:"validate_rows"`
		RunLogDir    string `yaml:"run_log_dir"`
	} `yaml:"pipeline"`
}

func (c *Config) Validate() error {
	if c.DataAPI.BaseURL == "" {
		return fmt.Errorf("data_api.base_url cannot be empty")
	}
	if c.DataAPI.TimeoutSeconds <= 0 {
		return fmt.Errorf("data_api.timeout_seconds must be positive, got %d", c.DataAPI.TimeoutSeconds)
	}
	if c.DataAPI.PageLimit <= 0 || c.DataAPI.PageLimit > 1000 {
		return fmt.Errorf("data_api.page_limit must be in 1-1000, got %d", c.DataAPI.PageLimit)
	}
	switch c.LLM.Provider {
	case "OPENAI", "GROK", "NONE", "":
	default:
		return fmt.Errorf("llm.provider must be 'OPENAI', 'GROK', or 'NONE', got '%s'", c.LLM.Provider)
	}
	if c.Pipeline.InputCSV == "" {
		return fmt.Errorf("pipeline.input_csv cannot be empty")
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	if c.DataAPI.BaseURL == "" {
		c.DataAPI.BaseURL = "https://data-api.polymarket.com"
	}
	if c.DataAPI.TimeoutSeconds == 0 {
		c.DataAPI.TimeoutSeconds = 30
	}
	if c.DataAPI.PageLimit == 0 {
		c.DataAPI.PageLimit = 1000
	}
	if c.DataAPI.RequestDelayMs == 0 {
		c.DataAPI.RequestDelayMs = 300
	}
	if c.DataAPI.Burst == 0 {
		c.DataAPI.Burst = 1
	}
	if c.DataAPI.Positions.SizeThreshold == 0 {
		c.DataAPI.Positions.SizeThreshold = 1
	}
	if c.DataAPI.Positions.SortBy == "" {
		c.DataAPI.Positions.SortBy = "TOKENS"
	}
	if c.DataAPI.Positions.SortDirection == "" {
		c.DataAPI.Positions.SortDirection = "DESC"
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "NONE"
	}
	if c.LLM.Model == "" && c.LLM.Provider == "GROK" {
		c.LLM.Model = "grok-2-latest"
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 64
	}
	if c.LLM.TimeWindow == "" {
		c.LLM.TimeWindow = "Recent"
	}
	if c.Pipeline.OutputCSV == "" && c.Pipeline.InputCSV != "" {
		c.Pipeline.OutputCSV = "outputs/user_data_final.csv"
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
