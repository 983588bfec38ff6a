package model

import (
	"bytes"
	"database/sql/driver"
	"errors"
	"fmt"
)

// Document is a raw JSON value stored in a jsonb column.
type Document []byte

func (d Document) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

func (d *Document) UnmarshalJSON(data []byte) error {
	if d == nil {
		return errors.New("model.Document: UnmarshalJSON on nil pointer")
	}
	*d = bytes.Clone(data)
	return nil
}

// Value implements driver.Valuer.
func (d Document) Value() (driver.Value, error) {
	if len(d) == 0 {
		return nil, nil
	}
	return string(d), nil
}

// Scan implements sql.Scanner. The driver buffer is copied.
func (d *Document) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = nil
	case []byte:
		*d = bytes.Clone(v)
	case string:
		*d = Document(v)
	default:
		return fmt.Errorf("model.Document: cannot scan %T", src)
	}
	return nil
}

// IsObject reports whether the document is a JSON object.
func (d Document) IsObject() bool {
	trimmed := bytes.TrimSpace(d)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
