package records

import (
	"bytes"
	"encoding/json"
)

//Embedded is a field that holds either a json value or a string with json
//encoded content
type Embedded json.RawMessage

func (e *Embedded) UnmarshalJSON(b []byte) error {
	*e = append((*e)[0:0], b...)
	return nil
}

//Decode returns the embedded content as a T. A field that is missing, empty
//or malformed yields the zero value and false.
func Decode[T any](e Embedded) (T, bool) {
	var value T

	raw := bytes.TrimSpace(e)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return value, false
	}

	if raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return value, false
		}
		raw = bytes.TrimSpace([]byte(text))
		if len(raw) == 0 {
			return value, false
		}
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		var zero T
		return zero, false
	}

	return value, true
}

//Values accepts a single string or a list of strings. Anything else is
//treated as empty.
type Values []string

func (v *Values) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*v = list
		return nil
	}

	var single string
	if err := json.Unmarshal(b, &single); err == nil && single != "" {
		*v = Values{single}
	}

	return nil
}

func (v Values) First() string {
	if len(v) == 0 {
		return ""
	}
	return v[0]
}
