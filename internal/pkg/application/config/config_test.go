package config

import (
	"bytes"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestLoad(t *testing.T) {
	is := is.New(t)

	s, err := Load(bytes.NewBufferString(settingsFile))
	is.NoErr(err)

	is.Equal(s.Language, "sv")
	is.Equal([]string(s.Categories), []string{"SCIE", "SOCI", "TECH"})
	is.Equal(s.Activity, DefaultActivity) // omitted values should get their defaults
}

func TestLoadCategoriesAsString(t *testing.T) {
	is := is.New(t)

	s, err := Load(bytes.NewBufferString("categories: EDUC  TECH\n"))
	is.NoErr(err)

	is.Equal([]string(s.Categories), []string{"EDUC", "TECH"})
	is.Equal(s.Language, DefaultLanguage)
}

func TestLoadFailsOnMalformedSettings(t *testing.T) {
	is := is.New(t)

	_, err := Load(bytes.NewBufferString("categories: {a: [b}\n"))
	is.True(err != nil) // malformed yaml should be reported
}

func TestEnvironmentOverridesSettings(t *testing.T) {
	is := is.New(t)
	t.Setenv("DCAT_CATEGORIES", "ENVI GOVE")
	t.Setenv("DCAT_ACTIVITY", "Nightly harvest")

	s := Default().WithEnvironment(zerolog.Logger{})

	is.Equal([]string(s.Categories), []string{"ENVI", "GOVE"})
	is.Equal(s.Activity, "Nightly harvest")
	is.Equal(s.Language, DefaultLanguage)
}

const settingsFile string = `
language: sv
categories:
  - SCIE
  - SOCI
  - TECH
`
