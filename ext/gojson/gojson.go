// Package gojson wires github.com/goccy/go-json in as the JSON decoder for
// json and jsonb fields.
package gojson

import (
	json "github.com/goccy/go-json"

	"github.com/pgkit/pgcodec"
)

// DecodeFunc returns a pgcodec.JSONDecodeFunc that unmarshals into the
// usual map[string]any / []any / scalar shapes:
//
//	cfg.SetJSONDecodeFunc(gojson.DecodeFunc())
func DecodeFunc() pgcodec.JSONDecodeFunc {
	return func(data []byte) (any, error) {
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
}
