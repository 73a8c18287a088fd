package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "generator.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "base_url: http://localhost:8080\nrealm_id: \"9130\"\ninvoice_ids: [\"130\", \"131\"]\n")
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Format != "legacy" || cfg.Interval != "30s" || len(cfg.InvoiceIDs) != 2 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"missing invoices": "base_url: http://localhost:8080\nrealm_id: \"9130\"\n",
		"bad format":       "base_url: http://localhost:8080\nrealm_id: \"9130\"\ninvoice_ids: [\"130\"]\nformat: xml\n",
		"bad interval":     "base_url: http://localhost:8080\nrealm_id: \"9130\"\ninvoice_ids: [\"130\"]\ninterval: soon\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := loadConfig(writeConfig(t, content)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
	if _, err := loadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
