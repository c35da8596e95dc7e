package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"time"
)

const YearMonthDayISO8601 string = "2006-01-02"

//FormatDate renders a numeric timestamp (milliseconds since the epoch) as a
//calendar date. Values of any other shape are returned unchanged.
func FormatDate(raw json.RawMessage) json.RawMessage {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	millis, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || !(millis >= math.MinInt64 && millis < math.MaxInt64) {
		return raw
	}

	date := time.UnixMilli(int64(millis)).UTC().Format(YearMonthDayISO8601)
	formatted, _ := json.Marshal(date)
	return formatted
}

//DateString wraps a plain string as a date value, or returns nil when it is empty
func DateString(value string) json.RawMessage {
	if value == "" {
		return nil
	}
	b, _ := json.Marshal(value)
	return b
}
