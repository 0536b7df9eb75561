// Package config provides the typed configuration consumed by every component.
// It is built once at startup and passed by injection; nothing reads viper
// after Load returns.
package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	ProviderGemini = "gemini"
	ProviderGroq   = "groq"

	defaultModel        = "llama-3.3-70b-versatile"
	defaultTemperature  = 0.7
	defaultMaxTokens    = 2048
	defaultMinQuestions = 5
	defaultMaxQuestions = 15
)

type Config struct {
	LLM       *LLM       `mapstructure:"llm"`
	Interview *Interview `mapstructure:"interview"`
}

type LLM struct {
	Provider    string  `mapstructure:"provider"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max-tokens"`
	APIKey      string  `mapstructure:"api-key"`
	APIKeyFile  string  `mapstructure:"api-key-file"`
}

// APIKeyEnv returns the environment variable consulted for the provider's API
// key when the config file does not carry one.
func (l *LLM) APIKeyEnv() string {
	switch l.Provider {
	case ProviderGemini:
		return "GEMINI_API_KEY"
	default:
		return "GROQ_API_KEY"
	}
}

type Interview struct {
	QuestionTypes    []string         `mapstructure:"question-types"`
	MinQuestions     int              `mapstructure:"min-questions"`
	MaxQuestions     int              `mapstructure:"max-questions"`
	DifficultyLevels map[string]Range `mapstructure:"difficulty-levels"`
}

// Range is a half-open [Min, Max) experience band, in years.
type Range struct {
	Min float64 `mapstructure:"min"`
	Max float64 `mapstructure:"max"`
}

// Contains reports whether years falls inside the band.
func (r Range) Contains(years float64) bool {
	return years >= r.Min && years < r.Max
}

// Load decodes the configuration read by viper into a Config, applies defaults
// and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       rangeHook,
		Result:           cfg,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return nil, err
	}

	if err := dec.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// rangeHook turns the compact `[min, max]` YAML form into a Range. The
// `{min: ..., max: ...}` form falls through to the normal struct decoding.
func rangeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(Range{}) || from.Kind() != reflect.Slice {
		return data, nil
	}

	items, ok := data.([]any)
	if !ok {
		return data, nil
	}
	if len(items) != 2 {
		return nil, fmt.Errorf("difficulty range must have exactly two elements, got %d", len(items))
	}

	min, err := toFloat(items[0])
	if err != nil {
		return nil, fmt.Errorf("difficulty range lower bound: %w", err)
	}
	max, err := toFloat(items[1])
	if err != nil {
		return nil, fmt.Errorf("difficulty range upper bound: %w", err)
	}

	return Range{Min: min, Max: max}, nil
}

func toFloat(v any) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case float32:
		return float64(val), nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(val), 64)
	default:
		return 0, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}

func (c *Config) applyDefaults() {
	if c.LLM == nil {
		c.LLM = &LLM{}
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = ProviderGroq
	}
	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	if c.LLM.Model == "" {
		c.LLM.Model = defaultModel
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = defaultTemperature
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = defaultMaxTokens
	}

	if c.Interview == nil {
		c.Interview = &Interview{}
	}
	if len(c.Interview.QuestionTypes) == 0 {
		c.Interview.QuestionTypes = []string{"experience_based", "technical", "behavioral", "situational"}
	}
	if c.Interview.MinQuestions == 0 {
		c.Interview.MinQuestions = defaultMinQuestions
	}
	if c.Interview.MaxQuestions == 0 {
		c.Interview.MaxQuestions = defaultMaxQuestions
	}
	if len(c.Interview.DifficultyLevels) == 0 {
		c.Interview.DifficultyLevels = map[string]Range{
			"entry":  {Min: 0, Max: 2},
			"mid":    {Min: 2, Max: 5},
			"senior": {Min: 5, Max: 50},
		}
	}
}

func (c *Config) validate() error {
	switch c.LLM.Provider {
	case ProviderGemini, ProviderGroq:
	default:
		return fmt.Errorf("unsupported llm provider: %s", c.LLM.Provider)
	}

	if c.Interview.MinQuestions < 1 {
		return fmt.Errorf("interview.min-questions must be at least 1, got %d", c.Interview.MinQuestions)
	}
	if c.Interview.MinQuestions > c.Interview.MaxQuestions {
		return fmt.Errorf("interview.min-questions (%d) exceeds interview.max-questions (%d)",
			c.Interview.MinQuestions, c.Interview.MaxQuestions)
	}

	for label, band := range c.Interview.DifficultyLevels {
		if band.Min >= band.Max {
			return fmt.Errorf("difficulty level %q has an empty range [%g, %g)", label, band.Min, band.Max)
		}
	}

	return nil
}
