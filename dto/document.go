package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// TimeLayout is how entity timestamps render on the wire, in local time with
// microsecond precision. Same-second siblings must render distinct stamps.
const TimeLayout = "2006-01-02T15:04:05.000000-07:00"

// FormatTime renders a timestamp as a local-time string.
func FormatTime(t time.Time) string {
	return t.Local().Format(TimeLayout)
}

// ParseTime is the inverse of FormatTime.
func ParseTime(s string) (time.Time, error) {
	return time.ParseInLocation(TimeLayout, s, time.Local)
}

type Field struct {
	Key   string
	Value interface{}
}

// Document is an ordered field list. Entities declare their fields as static
// metadata instead of relying on struct-tag ordering, so the wire
// representation is deterministic and children stay in creation order.
type Document []Field

// Get returns the value for key, scanning in order.
func (d Document) Get(key string) (interface{}, bool) {
	for _, f := range d {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the field names in document order.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d))
	for _, f := range d {
		keys = append(keys, f.Key)
	}
	return keys
}

// MarshalJSON writes the fields as a JSON object in document order.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal field %q: %w", f.Key, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ParseDocument decodes a JSON object into a Document, preserving the order
// fields appear in on the wire. Nested objects come back as Documents and
// arrays as []interface{}, so round-tripping keeps child ordering intact.
func ParseDocument(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	doc, err := parseFields(dec)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func parseFields(dec *json.Decoder) (Document, error) {
	doc := Document{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}
		value, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		doc = append(doc, Field{Key: key, Value: value})
	}
	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return doc, nil
}

func parseValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); ok {
		switch delim {
		case '{':
			return parseFields(dec)
		case '[':
			values := []interface{}{}
			for dec.More() {
				v, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				values = append(values, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return values, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", delim)
		}
	}
	return tok, nil
}
