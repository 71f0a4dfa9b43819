package css

import (
	"fmt"
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadJSONStyle reads a flat JSON object of property defaults, e.g.
// {"padding": "10px", "size": 24}. Numbers and booleans are stored in their
// plain text form so they resolve like any other attribute.
func LoadJSONStyle(r io.Reader) (Attributes, error) {
	var raw map[string]interface{}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("json style: %w", err)
	}
	props := make(Attributes, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			props[k] = val
		case float64:
			props[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			props[k] = strconv.FormatBool(val)
		case nil:
			// null clears nothing; skip it
		default:
			return nil, fmt.Errorf("json style: property %q has unsupported type %T", k, v)
		}
	}
	return props, nil
}
