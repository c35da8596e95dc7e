package jupyterbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/diwise/dcat-mapper/internal/pkg/domain"
	"gopkg.in/yaml.v2"
)

//Input is the raw record handed to the mapper. Which of Book and Chapter are
//present decides the shape of the produced record.
type Input struct {
	Book    *Book    `json:"book,omitempty" yaml:"book,omitempty"`
	Chapter *Chapter `json:"chapter,omitempty" yaml:"chapter,omitempty"`
	Config  *Config  `json:"_config,omitempty" yaml:"_config,omitempty"`
}

type Book struct {
	Identifier       string      `json:"identifier" yaml:"identifier"`
	Title            string      `json:"title" yaml:"title"`
	Description      Description `json:"description" yaml:"description"`
	PublicationDate  Date        `json:"publication-date,omitempty" yaml:"publication-date,omitempty"`
	DateOfLastChange Date        `json:"date-of-last-change,omitempty" yaml:"date-of-last-change,omitempty"`
	Version          Scalar      `json:"book-version,omitempty" yaml:"book-version,omitempty"`
	Authors          []Author    `json:"authors,omitempty" yaml:"authors,omitempty"`
	Disciplines      Strings     `json:"discipline,omitempty" yaml:"discipline,omitempty"`
	Git              string      `json:"git,omitempty" yaml:"git,omitempty"`
	License          License     `json:"license,omitempty" yaml:"license,omitempty"`
	Chapters         []Chapter   `json:"chapters,omitempty" yaml:"chapters,omitempty"`
}

type Chapter struct {
	Title              string     `json:"title" yaml:"title"`
	Description        string     `json:"description,omitempty" yaml:"description,omitempty"`
	URL                string     `json:"url" yaml:"url"`
	LearningObjectives Objectives `json:"learning-objectives,omitempty" yaml:"learning-objectives,omitempty"`
}

type Author struct {
	GivenNames  string `json:"given-names" yaml:"given-names"`
	FamilyNames string `json:"family-names" yaml:"family-names"`
	Affiliation string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
	ORCID       string `json:"orcid,omitempty" yaml:"orcid,omitempty"`
}

//Config carries the parts of the book's _config.yml that are used for mapping
type Config struct {
	Identifier    string         `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	Title         string         `json:"title,omitempty" yaml:"title,omitempty"`
	LaunchButtons *LaunchButtons `json:"launch_buttons,omitempty" yaml:"launch_buttons,omitempty"`
}

type LaunchButtons struct {
	NotebookInterface Flag `json:"notebook_interface,omitempty" yaml:"notebook_interface,omitempty"`
	ColabURL          Flag `json:"colab_url,omitempty" yaml:"colab_url,omitempty"`
	BinderhubURL      Flag `json:"binderhub_url,omitempty" yaml:"binderhub_url,omitempty"`
	Thebe             Flag `json:"thebe,omitempty" yaml:"thebe,omitempty"`
}

//Description is either free text or an object with an introduction and a table of contents
type Description struct {
	Introduction    string `json:"introduction,omitempty" yaml:"introduction,omitempty"`
	TableOfContents string `json:"table-of-contents,omitempty" yaml:"table-of-contents,omitempty"`
}

type description Description

func (d *Description) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		*d = Description{Introduction: text}
		return nil
	}

	var structured description
	if err := json.Unmarshal(b, &structured); err == nil {
		*d = Description(structured)
	}

	return nil
}

func (d *Description) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var text string
	if err := unmarshal(&text); err == nil {
		*d = Description{Introduction: text}
		return nil
	}

	var structured description
	if err := unmarshal(&structured); err == nil {
		*d = Description(structured)
	}

	return nil
}

//Date keeps the raw date value. Numeric timestamps are rendered as calendar
//dates when the record is built.
type Date json.RawMessage

func (d Date) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	*d = append((*d)[0:0], b...)
	return nil
}

func (d *Date) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var value interface{}
	if err := unmarshal(&value); err != nil {
		return nil
	}

	if t, ok := value.(time.Time); ok {
		value = t.UTC().Format(domain.YearMonthDayISO8601)
	}

	b, err := json.Marshal(value)
	if err != nil {
		return nil
	}

	*d = b
	return nil
}

func (d Date) Formatted() json.RawMessage {
	return domain.FormatDate(json.RawMessage(d))
}

//Scalar accepts a string, number or boolean and keeps its textual form
type Scalar string

func (s *Scalar) UnmarshalJSON(b []byte) error {
	var value interface{}
	if err := json.Unmarshal(b, &value); err == nil && value != nil {
		*s = Scalar(stringify(value))
	}
	return nil
}

func (s *Scalar) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var value string
	if err := unmarshal(&value); err == nil {
		*s = Scalar(value)
	}
	return nil
}

//Strings accepts either a single string or a list of strings
type Strings []string

func (s *Strings) UnmarshalJSON(b []byte) error {
	var values []interface{}
	if err := json.Unmarshal(b, &values); err == nil {
		*s = stringifyAll(values)
		return nil
	}

	var value interface{}
	if err := json.Unmarshal(b, &value); err == nil && value != nil {
		*s = Strings{stringify(value)}
	}
	return nil
}

func (s *Strings) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var values []interface{}
	if err := unmarshal(&values); err == nil {
		*s = stringifyAll(values)
		return nil
	}

	var value interface{}
	if err := unmarshal(&value); err == nil && value != nil {
		*s = Strings{stringify(value)}
	}
	return nil
}

//License holds the optional content and code license scopes
type License struct {
	Content *LicenseScope `json:"content,omitempty" yaml:"content,omitempty"`
	Code    *LicenseScope `json:"code,omitempty" yaml:"code,omitempty"`
}

//LicenseScope is given either as a bare locator or as an object with url and name
type LicenseScope struct {
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

type licenseScope LicenseScope

func (l *LicenseScope) UnmarshalJSON(b []byte) error {
	var locator string
	if err := json.Unmarshal(b, &locator); err == nil {
		*l = LicenseScope{URL: locator}
		return nil
	}

	var scope licenseScope
	if err := json.Unmarshal(b, &scope); err == nil {
		*l = LicenseScope(scope)
	}
	return nil
}

func (l *LicenseScope) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var locator string
	if err := unmarshal(&locator); err == nil {
		*l = LicenseScope{URL: locator}
		return nil
	}

	var scope licenseScope
	if err := unmarshal(&scope); err == nil {
		*l = LicenseScope(scope)
	}
	return nil
}

func (l *LicenseScope) empty() bool {
	return l == nil || (l.URL == "" && l.Name == "")
}

//Flag is an execution configuration value. It is set when the raw value is
//truthy: not false, zero, empty, or null.
type Flag struct {
	Set   bool
	Value string
}

func (f Flag) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return []byte("false"), nil
	}
	if f.Value == "" {
		return []byte("true"), nil
	}
	return json.Marshal(f.Value)
}

func (f *Flag) UnmarshalJSON(b []byte) error {
	var value interface{}
	if err := json.Unmarshal(b, &value); err == nil {
		*f = newFlag(value)
	}
	return nil
}

func (f *Flag) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var value interface{}
	if err := unmarshal(&value); err == nil {
		*f = newFlag(value)
	}
	return nil
}

func newFlag(value interface{}) Flag {
	switch v := value.(type) {
	case nil:
		return Flag{}
	case bool:
		return Flag{Set: v, Value: stringify(v)}
	case string:
		return Flag{Set: v != "", Value: v}
	case float64:
		return Flag{Set: v != 0 && !math.IsNaN(v), Value: stringify(v)}
	case int:
		return Flag{Set: v != 0, Value: stringify(v)}
	default:
		return Flag{Set: true, Value: stringify(v)}
	}
}

//Objective is one learning objective entry: an ordered list of categories,
//each with one or more values
type Objective []ObjectiveEntry

type ObjectiveEntry struct {
	Key    string
	Values []string
}

func (o *Objective) UnmarshalJSON(b []byte) error {
	*o = nil

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil
	}

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil
		}
		key, _ := tok.(string)

		var value interface{}
		if err = dec.Decode(&value); err != nil {
			return nil
		}

		*o = append(*o, ObjectiveEntry{Key: key, Values: objectiveValues(value)})
	}

	return nil
}

func (o *Objective) UnmarshalYAML(unmarshal func(interface{}) error) error {
	*o = nil

	var entries yaml.MapSlice
	if err := unmarshal(&entries); err != nil {
		return nil
	}

	for _, item := range entries {
		*o = append(*o, ObjectiveEntry{Key: stringify(item.Key), Values: objectiveValues(item.Value)})
	}

	return nil
}

func objectiveValues(value interface{}) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case []interface{}:
		return stringifyAll(v)
	case map[string]interface{}, map[interface{}]interface{}, yaml.MapSlice:
		return nil
	default:
		return []string{stringify(v)}
	}
}

//Objectives degrades to an empty list when the raw value is not a list
type Objectives []Objective

func (o *Objectives) UnmarshalJSON(b []byte) error {
	var objectives []Objective
	if err := json.Unmarshal(b, &objectives); err == nil {
		*o = objectives
	}
	return nil
}

func (o *Objectives) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var objectives []Objective
	if err := unmarshal(&objectives); err == nil {
		*o = objectives
	}
	return nil
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func stringifyAll(values []interface{}) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		result = append(result, stringify(v))
	}
	return result
}
