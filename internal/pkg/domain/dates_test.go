package domain

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"
)

func TestFormatDateRendersTimestampsAsCalendarDates(t *testing.T) {
	is := is.New(t)
	is.Equal(string(FormatDate(json.RawMessage(`1720051200000`))), `"2024-07-04"`)
}

func TestFormatDatePassesOtherShapesThrough(t *testing.T) {
	is := is.New(t)
	is.Equal(string(FormatDate(json.RawMessage(`"2024-07-04T10:00:00Z"`))), `"2024-07-04T10:00:00Z"`)
	is.Equal(string(FormatDate(json.RawMessage(`"last tuesday"`))), `"last tuesday"`)
	is.Equal(string(FormatDate(json.RawMessage(`{"year":2024}`))), `{"year":2024}`)
}

func TestFormatDateOfNothingIsNil(t *testing.T) {
	is := is.New(t)
	is.Equal(FormatDate(nil), nil)
	is.Equal(FormatDate(json.RawMessage(`null`)), nil)
}

func TestFormatDateKeepsTimestampsOutOfRange(t *testing.T) {
	is := is.New(t)
	is.Equal(string(FormatDate(json.RawMessage(`1e300`))), `1e300`)
	is.Equal(string(FormatDate(json.RawMessage(`-1e19`))), `-1e19`)
}
