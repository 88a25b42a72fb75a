package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Place is a final placing that may be absent. It decodes from a JSON
// number, a numeric string, "" or null. Any other value decodes as absent
// with Invalid set, so callers choose whether to reject it.
type Place struct {
	Value int
	Valid bool
	// Invalid reports a value that was present but not a whole number.
	Invalid bool
}

// NewPlace returns a present place.
func NewPlace(v int) Place {
	return Place{Value: v, Valid: true}
}

// Ptr returns nil for an absent place.
func (p Place) Ptr() *int {
	if !p.Valid {
		return nil
	}
	v := p.Value
	return &v
}

func (p Place) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(p.Value)), nil
}

func (p *Place) UnmarshalJSON(data []byte) error {
	*p = Place{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	if raw == "" {
		return nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		p.Invalid = true
		return nil
	}
	*p = NewPlace(n)
	return nil
}
