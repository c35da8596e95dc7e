package jupyterbook

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v2"
)

//Parse decodes a json input envelope
func Parse(raw []byte) (Input, error) {
	var in Input

	if err := json.Unmarshal(raw, &in); err != nil {
		return Input{}, fmt.Errorf("failed to decode book input: %w", err)
	}

	return in, nil
}

//FromYAML builds an input envelope from the contents of a book's metadata.yml
//and _config.yml. Either of them may be empty.
func FromYAML(metadata, configuration []byte) (Input, error) {
	var in Input

	if len(bytes.TrimSpace(metadata)) > 0 {
		book := &Book{}
		if err := yaml.Unmarshal(metadata, book); err != nil {
			return Input{}, fmt.Errorf("failed to parse book metadata: %w", err)
		}
		in.Book = book
	}

	if len(bytes.TrimSpace(configuration)) > 0 {
		cfg := &Config{}
		if err := yaml.Unmarshal(configuration, cfg); err != nil {
			return Input{}, fmt.Errorf("failed to parse book configuration: %w", err)
		}
		in.Config = cfg
	}

	return in, nil
}
