package cli

import (
	"fmt"

	"github.com/ppiankov/commentspell/internal/model"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// registerDefaults makes every config key known to viper so environment
// variables can override keys the config file does not mention
func registerDefaults() error {
	data, err := yaml.Marshal(model.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshal defaults: %w", err)
	}

	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("unmarshal defaults: %w", err)
	}

	setDefaults("", tree)
	return nil
}

func setDefaults(prefix string, tree map[string]any) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			setDefaults(key, sub)
			continue
		}
		viper.SetDefault(key, v)
	}
}

// loadConfig resolves the effective configuration: flags, then environment,
// then config file, then built-in defaults
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Concurrency.Workers <= 0 {
		cfg.Concurrency.Workers = 1
	}

	return cfg, nil
}
