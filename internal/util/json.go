package util

import (
	"bytes"
	"encoding/json"
)

func JSONMarshal(p interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(p)
	if err != nil {
		return nil, err
	}
	out := &bytes.Buffer{}
	if err := json.Compact(out, buf.Bytes()); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// JSONMarshalIndent renders p the way reports are printed: two-space
// indent, HTML escaping off, no trailing newline.
func JSONMarshalIndent(p interface{}) ([]byte, error) {
	compact, err := JSONMarshal(p)
	if err != nil {
		return nil, err
	}
	out := &bytes.Buffer{}
	if err := json.Indent(out, compact, "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func JSONUnmarshal(p []byte, out interface{}) error {
	buf := bytes.NewReader(p)
	dec := json.NewDecoder(buf)
	return dec.Decode(out)
}
