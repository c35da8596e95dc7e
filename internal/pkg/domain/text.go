package domain

import (
	"encoding/json"
)

//Text is a literal that is serialized as a plain string, or as a
//language tagged value object when a language is set
type Text struct {
	Value    string
	Language string
}

func (t Text) MarshalJSON() ([]byte, error) {
	if t.Language == "" {
		return json.Marshal(t.Value)
	}

	return json.Marshal(struct {
		Value    string `json:"@value"`
		Language string `json:"@language"`
	}{t.Value, t.Language})
}

//Texts holds one or more literals. A single literal is serialized without
//the surrounding array.
type Texts []Text

func (t Texts) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0])
	}

	return json.Marshal([]Text(t))
}

//String returns the value of the first literal, or an empty string
func (t Texts) String() string {
	if len(t) == 0 {
		return ""
	}
	return t[0].Value
}

func PlainText(value string) Texts {
	return Texts{{Value: value}}
}

func TaggedText(value, language string) Texts {
	return Texts{{Value: value, Language: language}}
}
