package json

import (
	"bytes"
	"encoding/json"
)

// Marshal marshals the struct to json data.
// &, < and > are written as is, not escaped to \u0026, \u003c and \u003e.
// The trailing newline the encoder writes is dropped.
func Marshal(v interface{}) ([]byte, error) {
	var byteBuf bytes.Buffer
	encoder := json.NewEncoder(&byteBuf)
	encoder.SetEscapeHTML(false)
	err := encoder.Encode(v)
	if err == nil && byteBuf.Len() > 0 {
		return byteBuf.Bytes()[:byteBuf.Len()-1], err
	} else {
		return byteBuf.Bytes(), err
	}
}

// MarshalIndent 格式化输出，用于命令行打印 payload
// MarshalIndent marshals v with two-space indentation, without HTML escaping.
func MarshalIndent(v interface{}) ([]byte, error) {
	b, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	return Format(b)
}

// Format indents json data.
func Format(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal json data to struct
func Unmarshal(b []byte, m interface{}) error {
	return json.Unmarshal(b, m)
}
