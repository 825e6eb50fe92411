package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SummarizerConfig selects and configures the summarizer.
type SummarizerConfig struct {
	Type      string `yaml:"type"`
	Sentences int    `yaml:"sentences"`
}

// IngestConfig controls how a folder is scanned and loaded.
type IngestConfig struct {
	Extension          string `yaml:"extension"`
	CaseInsensitiveExt bool   `yaml:"case_insensitive_ext"`
	// SkipUnreadable keeps going past files that fail to extract instead of
	// aborting the whole pass.
	SkipUnreadable bool `yaml:"skip_unreadable"`
}

// ExplainConfig configures the keyword explanation fan-out.
type ExplainConfig struct {
	MaxParallel int `yaml:"max_parallel"`
}

// BreakerConfig configures the circuit breaker wrapped around every adapter.
type BreakerConfig struct {
	ConsecutiveFailures uint32 `yaml:"consecutive_failures"`
	MaxRequests         uint32 `yaml:"max_requests"`
	IntervalSecs        int    `yaml:"interval_secs"`
	OpenSecs            int    `yaml:"open_secs"`
}

// DictionaryConfig configures the definition lookup service.
type DictionaryConfig struct {
	BaseURL     string `yaml:"base_url"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// TranslatorConfig configures the MyMemory translation service.
type TranslatorConfig struct {
	BaseURL     string `yaml:"base_url"`
	EmailEnv    string `yaml:"email_env"`
	SourceLang  string `yaml:"source_lang"`
	TargetLang  string `yaml:"target_lang"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// RephraserConfig configures the synonym paraphraser and its thesaurus.
type RephraserConfig struct {
	BaseURL     string  `yaml:"base_url"`
	Ratio       float64 `yaml:"ratio"`
	MaxWords    int     `yaml:"max_words"`
	MaxSynonyms int     `yaml:"max_synonyms"`
	TimeoutSecs int     `yaml:"timeout_secs"`
}

// ChatConfig contains connection details for the Rasa REST channel.
type ChatConfig struct {
	URL         string `yaml:"url"`
	Sender      string `yaml:"sender"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
	// Output is a file path, "stdout" or "stderr".
	Output string `yaml:"output"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Ingest     IngestConfig     `yaml:"ingest"`
	Explain    ExplainConfig    `yaml:"explain"`
	Breaker    BreakerConfig    `yaml:"breaker"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Translator TranslatorConfig `yaml:"translator"`
	Rephraser  RephraserConfig  `yaml:"rephraser"`
	Chat       ChatConfig       `yaml:"chat"`
	Log        LogConfig        `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/pdfmanager/config.yaml.
// If neither exists, it writes defaults to ~/.config/pdfmanager/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pdfmanager", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Summarizer.Type == "" {
		cfg.Summarizer.Type = "positional"
	}
	if cfg.Summarizer.Sentences == 0 {
		cfg.Summarizer.Sentences = 3
	}
	if cfg.Ingest.Extension == "" {
		cfg.Ingest.Extension = ".pdf"
	}
	if cfg.Explain.MaxParallel == 0 {
		cfg.Explain.MaxParallel = 4
	}
	if cfg.Breaker.ConsecutiveFailures == 0 {
		cfg.Breaker.ConsecutiveFailures = 3
	}
	if cfg.Breaker.MaxRequests == 0 {
		cfg.Breaker.MaxRequests = 1
	}
	if cfg.Breaker.IntervalSecs == 0 {
		cfg.Breaker.IntervalSecs = 60
	}
	if cfg.Breaker.OpenSecs == 0 {
		cfg.Breaker.OpenSecs = 30
	}
	if cfg.Dictionary.BaseURL == "" {
		cfg.Dictionary.BaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
	}
	if cfg.Dictionary.TimeoutSecs == 0 {
		cfg.Dictionary.TimeoutSecs = 15
	}
	if cfg.Translator.BaseURL == "" {
		cfg.Translator.BaseURL = "https://api.mymemory.translated.net"
	}
	if cfg.Translator.EmailEnv == "" {
		cfg.Translator.EmailEnv = "MYMEMORY_EMAIL"
	}
	if cfg.Translator.SourceLang == "" {
		cfg.Translator.SourceLang = "en"
	}
	if cfg.Translator.TargetLang == "" {
		cfg.Translator.TargetLang = "pt"
	}
	if cfg.Translator.TimeoutSecs == 0 {
		cfg.Translator.TimeoutSecs = 15
	}
	if cfg.Rephraser.BaseURL == "" {
		cfg.Rephraser.BaseURL = "https://api.datamuse.com"
	}
	if cfg.Rephraser.Ratio == 0 {
		cfg.Rephraser.Ratio = 0.3
	}
	if cfg.Rephraser.MaxWords == 0 {
		cfg.Rephraser.MaxWords = 10
	}
	if cfg.Rephraser.MaxSynonyms == 0 {
		cfg.Rephraser.MaxSynonyms = 10
	}
	if cfg.Rephraser.TimeoutSecs == 0 {
		cfg.Rephraser.TimeoutSecs = 15
	}
	if cfg.Chat.URL == "" {
		cfg.Chat.URL = "http://localhost:5005/webhooks/rest/webhook"
	}
	if cfg.Chat.TimeoutSecs == 0 {
		cfg.Chat.TimeoutSecs = 30
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "pdfmanager.log"
	}
}
