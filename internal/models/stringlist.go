package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings stored as a JSON text column on
// the relational backend. The document backend stores it as a native array.
//
// Scan accepts both an encoded text blob and an already-decoded []byte,
// since drivers differ in what they hand back for text columns. A NULL or
// empty column decodes to an empty list, never nil.
type StringList []string

// Value encodes the list as JSON text for storage.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to encode string list: %w", err)
	}
	return string(b), nil
}

// Scan decodes a stored JSON text value into the list.
func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		return l.decode(v)
	case string:
		return l.decode([]byte(v))
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

func (l *StringList) decode(b []byte) error {
	if len(b) == 0 {
		*l = StringList{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(b, &out); err != nil {
		return fmt.Errorf("failed to decode string list: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*l = out
	return nil
}

// GormDataType tells GORM to map the list to a plain text column.
func (StringList) GormDataType() string {
	return "text"
}
