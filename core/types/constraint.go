package types

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Value is a constraint value: either free text or a number.
type Value struct {
	text    string
	number  float64
	numeric bool
}

// StringValue creates a text value
func StringValue(s string) Value {
	return Value{text: s}
}

// NumberValue creates a numeric value
func NumberValue(n float64) Value {
	return Value{number: n, numeric: true}
}

// ParseValue returns a numeric value when token is a finite number, text otherwise.
// "nan" and "inf" stay text so every Value can be encoded as JSON.
func ParseValue(token string) Value {
	if n, err := strconv.ParseFloat(token, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		return NumberValue(n)
	}
	return StringValue(token)
}

// IsNumber reports whether the value is numeric
func (v Value) IsNumber() bool {
	return v.numeric
}

// Number returns the numeric value and whether it is numeric
func (v Value) Number() (float64, bool) {
	return v.number, v.numeric
}

// String returns the display form
func (v Value) String() string {
	if v.numeric {
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	}
	return v.text
}

// MarshalJSON emits a JSON number or string
func (v Value) MarshalJSON() ([]byte, error) {
	if v.numeric {
		return json.Marshal(v.number)
	}
	return json.Marshal(v.text)
}

// UnmarshalJSON accepts a JSON number or string
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = NumberValue(n)
	return nil
}

// MarshalYAML emits the native scalar
func (v Value) MarshalYAML() (interface{}, error) {
	if v.numeric {
		return v.number, nil
	}
	return v.text, nil
}

// Constraint is a weighted signal derived from user input
type Constraint struct {
	// Name is the keyword that produced the constraint
	Name string `json:"name" yaml:"name"`

	// Value is the qualifier that followed the keyword
	Value Value `json:"value" yaml:"value"`

	// Weight is the importance in [0,1]
	Weight float64 `json:"weight" yaml:"weight"`

	// Category is the concern the constraint belongs to
	Category Category `json:"category" yaml:"category"`
}

// ParsedConstraints is the parser output for one input string
type ParsedConstraints struct {
	Constraints    []Constraint `json:"constraints" yaml:"constraints"`
	RawInput       string       `json:"rawInput" yaml:"raw_input"`
	Confidence     float64      `json:"confidence" yaml:"confidence"`
	Clarifications []string     `json:"clarifications" yaml:"clarifications"`
}

// HasCategory reports whether any constraint belongs to category c
func HasCategory(constraints []Constraint, c Category) bool {
	for _, constraint := range constraints {
		if constraint.Category == c {
			return true
		}
	}
	return false
}
