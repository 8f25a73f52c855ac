package models

import (
	"database/sql/driver"
	"encoding/json"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// SuitabilityTag marks a food as suitable or unsuitable for one health
// condition. Notes explains a positive match, Reason a negative one.
type SuitabilityTag struct {
	Condition string `json:"condition"`
	Notes     string `json:"notes,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// SuitabilityList is a JSONB list of suitability tags.
type SuitabilityList []SuitabilityTag

// Value implements the driver.Valuer interface
func (l SuitabilityList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *SuitabilityList) Scan(value interface{}) error {
	if value == nil {
		*l = SuitabilityList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Contains reports whether any tag references the given condition.
func (l SuitabilityList) Contains(condition string) bool {
	for _, tag := range l {
		if tag.Condition == condition {
			return true
		}
	}
	return false
}
