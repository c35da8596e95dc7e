package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"
)

const (
	DefaultLanguage string = "en"
	DefaultActivity string = "Metadata harvesting"
)

//Settings holds the static configuration shared by all mappers
type Settings struct {
	Language   string     `yaml:"language"`
	Categories Categories `yaml:"categories"`
	Activity   string     `yaml:"activity"`
}

//Categories accepts either a list of names or a single space separated string
type Categories []string

func (c *Categories) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var names []string
	if err := unmarshal(&names); err == nil {
		*c = names
		return nil
	}

	var joined string
	if err := unmarshal(&joined); err != nil {
		return fmt.Errorf("categories must be a list or a space separated string: %w", err)
	}

	*c = strings.Fields(joined)
	return nil
}

func Default() *Settings {
	return &Settings{
		Language: DefaultLanguage,
		Activity: DefaultActivity,
	}
}

//Load reads settings from yaml, falling back to the defaults for omitted values
func Load(input io.Reader) (*Settings, error) {
	s := Default()

	buf, err := io.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err = yaml.Unmarshal(buf, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if s.Language == "" {
		s.Language = DefaultLanguage
	}
	if s.Activity == "" {
		s.Activity = DefaultActivity
	}

	return s, nil
}

//WithEnvironment returns a copy of the settings where any value set through
//the environment takes precedence
func (s Settings) WithEnvironment(log zerolog.Logger) *Settings {
	s.Language = env.GetVariableOrDefault(log, "DCAT_DEFAULT_LANGUAGE", s.Language)
	s.Activity = env.GetVariableOrDefault(log, "DCAT_ACTIVITY", s.Activity)

	categories := env.GetVariableOrDefault(log, "DCAT_CATEGORIES", strings.Join(s.Categories, " "))
	s.Categories = strings.Fields(categories)

	return &s
}
