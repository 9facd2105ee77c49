// Package jsoncodec wraps the sonic JSON implementation behind the small
// surface the bridge transport needs for envelope encoding.
package jsoncodec

import "github.com/bytedance/sonic"

var defaultConfig = sonic.ConfigStd

// Marshal encodes v as JSON.
func Marshal(v any) ([]byte, error) {
	return defaultConfig.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func Unmarshal(data []byte, v any) error {
	return defaultConfig.Unmarshal(data, v)
}
