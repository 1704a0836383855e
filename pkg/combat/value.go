package combat

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

//Value is a raw cell value. Empty, "0" and "0%" mean absent. A value may be a
//percent ("43.2%"), a bare number ("352") or a slash delimited rank list
//("16%/20%/24%/28%/32%").
type Value string

//UnmarshalYAML accepts string, int and float scalars
func (v *Value) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case nil:
		*v = ""
	case string:
		*v = Value(t)
	case int, int64, float64:
		*v = Value(fmt.Sprint(t))
	default:
		return fmt.Errorf("invalid value %v", raw)
	}
	return nil
}

//Absent reports whether the value is one of the absent sentinels
func (v Value) Absent() bool {
	switch strings.TrimSpace(string(v)) {
	case "", "0", "0%":
		return true
	}
	return false
}

//Float parses the value; ok is false when the value contributes nothing
func (v Value) Float() (float64, bool) {
	return ParseValue(string(v))
}

//Rank picks entry i of a slash delimited list, clamping to the last entry.
//Values without a slash are returned as is.
func (v Value) Rank(i int) Value {
	s := string(v)
	if !strings.Contains(s, "/") {
		return v
	}
	parts := strings.Split(s, "/")
	if i < 0 {
		i = 0
	}
	if i >= len(parts) {
		i = len(parts) - 1
	}
	return Value(strings.TrimSpace(parts[i]))
}

//ParseValue applies the shared numeric rule: trim, strip a trailing %, parse.
//NaN, unparseable and exact zero results report ok == false; callers must skip
//rather than add a zero term.
func ParseValue(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f == 0 {
		return 0, false
	}
	return f, true
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
