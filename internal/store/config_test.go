package store

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "pipeline:\n  input_csv: users.csv\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DataAPI.BaseURL != "https://data-api.polymarket.com" {
		t.Errorf("base_url = %q", cfg.DataAPI.BaseURL)
	}
	if cfg.DataAPI.PageLimit != 1000 || cfg.DataAPI.TimeoutSeconds != 30 {
		t.Errorf("unexpected data_api defaults: %+v", cfg.DataAPI)
	}
	if cfg.DataAPI.Positions.SortBy != "TOKENS" || cfg.DataAPI.Positions.SortDirection != "DESC" {
		t.Errorf("unexpected positions defaults: %+v", cfg.DataAPI.Positions)
	}
	if cfg.LLM.Provider != "NONE" || cfg.LLM.MaxTokens != 64 {
		t.Errorf("unexpected llm defaults: %+v", cfg.LLM)
	}
	if cfg.Pipeline.OutputCSV != "outputs/user_data_final.csv" {
		t.Errorf("output_csv = %q", cfg.Pipeline.OutputCSV)
	}
}

func TestLoadConfigGrokModelDefault(t *testing.T) {
	path := writeConfig(t, "llm:\n  provider: GROK\npipeline:\n  input_csv: users.csv\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LLM.Model != "grok-2-latest" {
		t.Errorf("model = %q, want grok-2-latest", cfg.LLM.Model)
	}
}

func TestLoadConfigRejectsBadProvider(t *testing.T) {
	path := writeConfig(t, "llm:\n  provider: GEMINI\npipeline:\n  input_csv: users.csv\n")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected validation error for unknown provider")
	}
}

func TestLoadConfigRequiresInputCSV(t *testing.T) {
	path := writeConfig(t, "llm:\n  provider: NONE\n")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected validation error for missing input_csv")
	}
}

func TestValidateRejectsOversizedPageLimit(t *testing.T) {
	path := writeConfig(t, "data_api:\n  page_limit: 5000\npipeline:\n  input_csv: users.csv\n")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected validation error for page_limit above 1000")
	}
}
