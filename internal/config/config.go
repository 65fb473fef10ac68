package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ZenusZhang/qwen-riscv-qemu-demo/pkg/types"
	"gopkg.in/yaml.v3"
)

// Config holds everything one qwenprof run needs. Precedence, lowest to
// highest: built-in defaults, YAML file, QWENPROF_* environment variables,
// command-line flags (applied by the caller).
type Config struct {
	ModelPath    string `yaml:"model_path"`
	InputPath    string `yaml:"input_path"`
	OutputPath   string `yaml:"output_path"`
	MaxNewTokens int    `yaml:"max_new_tokens"`
	StopToken    int64  `yaml:"stop_token"`
	TopN         int    `yaml:"top_n"`
}

func Default() Config {
	return Config{
		MaxNewTokens: 64,
		StopToken:    -1,
		TopN:         30,
	}
}

// Load builds a Config from defaults, an optional YAML file and the
// environment. An empty path skips the file layer.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("%w: read config %s: %v", types.ErrInput, path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: parse config %s: %v", types.ErrInput, path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("QWENPROF_MODEL"); v != "" {
		c.ModelPath = v
	}
	if v := os.Getenv("QWENPROF_MAX_NEW_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxNewTokens = n
		}
	}
	if v := os.Getenv("QWENPROF_STOP_TOKEN"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.StopToken = n
		}
	}
	if v := os.Getenv("QWENPROF_TOP_N"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TopN = n
		}
	}
}

// Validate checks the fields the run cannot proceed without.
func (c *Config) Validate() error {
	if c.ModelPath == "" {
		return fmt.Errorf("%w: model path is required", types.ErrInput)
	}
	if c.InputPath == "" {
		return fmt.Errorf("%w: input tokens path is required", types.ErrInput)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("%w: output tokens path is required", types.ErrInput)
	}
	if c.MaxNewTokens < 1 {
		return fmt.Errorf("%w: max new tokens must be at least 1", types.ErrInput)
	}
	return nil
}
