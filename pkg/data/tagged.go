// Package data defines the values exchanged between the multiplexer host and
// its plugins: input events, mode snapshots, tab snapshots and colors.
// Everything here is plain data; wire shapes and variant order are part of
// the contract with plugins built against older versions.
package data

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownVariant is returned when a tagged value names a variant this
// version does not know about.
var ErrUnknownVariant = errors.New("unknown variant")

// Enums travel externally tagged: unit variants as a bare string holding
// the variant name, variants with a payload as a single-key object
// {"Name": payload}. Tuple payloads are JSON arrays.

func marshalUnit(name string) ([]byte, error) {
	return json.Marshal(name)
}

func marshalTagged(name string, payload interface{}) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	tag, _ := json.Marshal(name)
	buf.Write(tag)
	buf.WriteByte(':')
	buf.Write(body)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// splitTagged returns the variant name and its raw payload. Payload is nil
// for unit variants.
func splitTagged(data []byte) (string, json.RawMessage, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "", nil, errors.New("empty variant")
	}
	if data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return "", nil, err
		}
		return name, nil, nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", nil, err
	}
	if len(obj) != 1 {
		return "", nil, fmt.Errorf("tagged variant must have exactly one key, got %d", len(obj))
	}
	for name, payload := range obj {
		return name, payload, nil
	}
	return "", nil, nil
}

// unmarshalPair decodes a two-element JSON array into a and b.
func unmarshalPair(data []byte, a, b interface{}) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 2 {
		return fmt.Errorf("expected 2 elements, got %d", len(parts))
	}
	if err := json.Unmarshal(parts[0], a); err != nil {
		return err
	}
	return json.Unmarshal(parts[1], b)
}

func needPayload(name string, payload json.RawMessage) error {
	if payload == nil {
		return fmt.Errorf("variant %s requires a payload", name)
	}
	return nil
}

func unknownVariant(typ, name string) error {
	return fmt.Errorf("%s %q: %w", typ, name, ErrUnknownVariant)
}

// unmarshalRune decodes a JSON string holding exactly one character.
func unmarshalRune(data []byte) (rune, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return 0, err
	}
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("expected a single character, got %q", s)
	}
	return r[0], nil
}
