package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZenusZhang/qwen-riscv-qemu-demo/pkg/types"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.MaxNewTokens != 64 {
		t.Errorf("max new tokens = %d, want 64", cfg.MaxNewTokens)
	}
	if cfg.StopToken != -1 {
		t.Errorf("stop token = %d, want -1", cfg.StopToken)
	}
	if cfg.TopN != 30 {
		t.Errorf("top n = %d, want 30", cfg.TopN)
	}
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	content := "model_path: m.pt\nmax_new_tokens: 8\nstop_token: 151645\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ModelPath != "m.pt" || cfg.MaxNewTokens != 8 || cfg.StopToken != 151645 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.TopN != 30 {
		t.Errorf("unset field lost its default: top n = %d", cfg.TopN)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("max_new_tokens: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("QWENPROF_MAX_NEW_TOKENS", "16")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxNewTokens != 16 {
		t.Errorf("max new tokens = %d, want 16", cfg.MaxNewTokens)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, types.ErrInput) {
		t.Errorf("missing file error %v is not an input error", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(bad, []byte("max_new_tokens: [not an int\n"), 0o644)
	if _, err := Load(bad); !errors.Is(err, types.ErrInput) {
		t.Errorf("parse error %v is not an input error", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.ModelPath, cfg.InputPath, cfg.OutputPath = "m.pt", "in.txt", "out.txt"
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	for _, mutate := range []func(*Config){
		func(c *Config) { c.ModelPath = "" },
		func(c *Config) { c.InputPath = "" },
		func(c *Config) { c.OutputPath = "" },
		func(c *Config) { c.MaxNewTokens = 0 },
	} {
		c := cfg
		mutate(&c)
		if err := c.Validate(); !errors.Is(err, types.ErrInput) {
			t.Errorf("invalid config %+v accepted", c)
		}
	}
}
