package bufferjson

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// tagBuffer is the type discriminator carried by every encoded binary value.
const tagBuffer = "Buffer"

// Buffer is a binary value inside persisted auth state. It marshals to the
// tagged object form and unmarshals from every variant the client has
// historically written.
type Buffer []byte

func (b Buffer) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Data string `json:"data"`
	}{Type: tagBuffer, Data: base64.StdEncoding.EncodeToString(b)})
}

func (b *Buffer) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = nil
		return nil
	}

	var raw struct {
		Type   string          `json:"type"`
		Marked bool            `json:"buffer"`
		Data   json.RawMessage `json:"data"`
		Value  json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Type != tagBuffer && !raw.Marked {
		return errors.New("not a tagged buffer value")
	}

	payload := raw.Data
	if rawEmpty(payload) {
		payload = raw.Value
	}
	decoded, err := decodePayload(payload)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}

func rawEmpty(p json.RawMessage) bool {
	return len(p) == 0 || string(p) == "null"
}

func decodePayload(payload json.RawMessage) (Buffer, error) {
	if rawEmpty(payload) {
		return Buffer{}, nil
	}
	switch payload[0] {
	case '"':
		var s string
		if err := json.Unmarshal(payload, &s); err != nil {
			return nil, err
		}
		out, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("bad base64 buffer payload: %v", err)
		}
		return out, nil
	case '[':
		var nums []int
		if err := json.Unmarshal(payload, &nums); err != nil {
			return nil, err
		}
		out := make(Buffer, len(nums))
		for i, n := range nums {
			if n < 0 || n > 255 {
				return nil, errors.New("buffer byte out of range")
			}
			out[i] = byte(n)
		}
		return out, nil
	}
	return nil, errors.New("unsupported buffer payload")
}

// Marshal encodes v with binary values in the tagged object form. Plain byte
// slices anywhere inside maps and slices are tagged too, so generic value
// trees and typed structs serialize identically.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(tagBinary(v))
}

// Unmarshal decodes data into generic maps and slices, reviving tagged
// objects into [Buffer] values.
func Unmarshal(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return revive(v), nil
}

// Decode unmarshals data into a typed destination. Fields declared as
// [Buffer] revive themselves.
func Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func tagBinary(v any) any {
	switch t := v.(type) {
	case []byte:
		return Buffer(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = tagBinary(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = tagBinary(val)
		}
		return out
	}
	return v
}

func revive(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if buf, ok := reviveTagged(t); ok {
			return buf
		}
		for k, val := range t {
			t[k] = revive(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = revive(val)
		}
		return t
	}
	return v
}

// reviveTagged converts one decoded object into a [Buffer] when it carries
// the buffer tag. Tagged objects with an undecodable payload are left as
// plain maps rather than dropped.
func reviveTagged(m map[string]any) (Buffer, bool) {
	typ, _ := m["type"].(string)
	marked, _ := m["buffer"].(bool)
	if typ != tagBuffer && !marked {
		return nil, false
	}

	payload, ok := m["data"]
	if !ok || payload == nil {
		payload = m["value"]
	}
	switch p := payload.(type) {
	case nil:
		return Buffer{}, true
	case string:
		out, err := base64.StdEncoding.DecodeString(p)
		if err != nil {
			return nil, false
		}
		return out, true
	case []any:
		out := make(Buffer, len(p))
		for i, n := range p {
			f, ok := n.(float64)
			if !ok || f < 0 || f > 255 {
				return nil, false
			}
			out[i] = byte(f)
		}
		return out, true
	}
	return nil, false
}
