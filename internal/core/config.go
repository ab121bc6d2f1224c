package core

import (
	"encoding/json"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ShodanAPIKey string `json:"shodan_api_key" yaml:"shodan_api_key"`
	CensysID     string `json:"censys_id" yaml:"censys_id"`
	CensysSecret string `json:"censys_secret" yaml:"censys_secret"`
	Provider     string `json:"provider" yaml:"provider"`
	InputFile    string `json:"input_file" yaml:"input_file"`
	OutputDir    string `json:"output_dir" yaml:"output_dir"`
	QueryTimeout string `json:"query_timeout" yaml:"query_timeout"`
}

func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var cfg Config
	if len(path) > 5 && path[len(path)-5:] == ".yaml" {
		err = yaml.NewDecoder(f).Decode(&cfg)
	} else {
		err = json.NewDecoder(f).Decode(&cfg)
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// QueryTimeoutDuration parses the configured per-query timeout, falling back
// to 30s when unset or unparseable.
func (c *Config) QueryTimeoutDuration() time.Duration {
	if c == nil || c.QueryTimeout == "" {
		return 30 * time.Second
	}
	d, err := time.ParseDuration(c.QueryTimeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}
