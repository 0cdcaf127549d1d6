// Copyright 2026 Mundap Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the engine configuration from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the full engine configuration.
type Config struct {
	AI    AIConfig    `yaml:"ai"`
	Data  DataConfig  `yaml:"data"`
	Watch WatchConfig `yaml:"watch,omitempty"`
}

// AIConfig configures the OpenAI-compatible endpoints.
type AIConfig struct {
	EmbeddingHost  string `yaml:"embedding_host"`
	ChatHost       string `yaml:"chat_host"`
	EmbeddingModel string `yaml:"embedding_model"`
	ChatModel      string `yaml:"chat_model"`
	Token          string `yaml:"token,omitempty"`
}

// DataConfig locates the corpus and persistence paths.
type DataConfig struct {
	// DocsDir holds the markdown guide documents.
	DocsDir string `yaml:"docs_dir"`
	// MetadataFile is the section metadata JSON.
	MetadataFile string `yaml:"metadata_file"`
	// FAQFile is an optional FAQ corpus JSON.
	FAQFile string `yaml:"faq_file,omitempty"`
	// DatabasePath is the BadgerDB directory for the persisted index and
	// answer cache.
	DatabasePath string `yaml:"database_path"`
}

// WatchConfig controls live rebuild on document changes.
type WatchConfig struct {
	Enabled        bool `yaml:"enabled,omitempty"`
	DebounceMillis int  `yaml:"debounce_ms,omitempty"`
}

// Debounce returns the configured debounce as a duration, or zero when
// unset.
func (w WatchConfig) Debounce() time.Duration {
	return time.Duration(w.DebounceMillis) * time.Millisecond
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		AI: AIConfig{
			EmbeddingHost:  "http://localhost:11434/v1",
			ChatHost:       "http://localhost:11434/v1",
			EmbeddingModel: "embeddinggemma",
			ChatModel:      "qwen2.5:3b",
		},
		Data: DataConfig{
			DocsDir:      "docs",
			MetadataFile: "data/documents_metadata.json",
			DatabasePath: "data/mundap.db",
		},
		Watch: WatchConfig{Enabled: false, DebounceMillis: 500},
	}
}

// Load reads and validates a YAML configuration file. Unset fields fall
// back to the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks for required fields.
func (c *Config) Validate() error {
	var problems []error
	if c.Data.DocsDir == "" {
		problems = append(problems, errors.New("data.docs_dir is required"))
	}
	if c.Data.MetadataFile == "" {
		problems = append(problems, errors.New("data.metadata_file is required"))
	}
	if c.Data.DatabasePath == "" {
		problems = append(problems, errors.New("data.database_path is required"))
	}
	if c.AI.EmbeddingModel == "" {
		problems = append(problems, errors.New("ai.embedding_model is required"))
	}
	if c.AI.ChatModel == "" {
		problems = append(problems, errors.New("ai.chat_model is required"))
	}
	return errors.Join(problems...)
}
