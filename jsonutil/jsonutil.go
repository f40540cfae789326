// Package jsonutil provides thin wrappers around sonic so the rest of the
// module encodes and decodes JSON through a single, swappable seam. The
// standard-compatible sonic config keeps output byte-for-byte interchangeable
// with encoding/json.
package jsonutil

import (
	"io"

	"github.com/bytedance/sonic"
)

var api = sonic.ConfigStd

// Marshal serialises v into a compact JSON document.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// MarshalIndent serialises v with the supplied prefix and indentation applied
// to every nested level.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}

// Unmarshal parses data into v.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

// Encode writes v to w as a single JSON document followed by a newline.
func Encode(w io.Writer, v any) error {
	return api.NewEncoder(w).Encode(v)
}

// Decode reads a single JSON document from r into v.
func Decode(r io.Reader, v any) error {
	return api.NewDecoder(r).Decode(v)
}
