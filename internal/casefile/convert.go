package casefile

import (
	"fmt"
	"strconv"
)

// asSequence normalizes a decoded collection to a slice. Collections with a
// single element serialize as a bare object in the casefile, so callers must
// never iterate without normalizing first.
func asSequence(value interface{}) ([]interface{}, error) {
	switch v := value.(type) {
	case []interface{}:
		return v, nil
	case map[string]interface{}:
		return []interface{}{v}, nil
	default:
		return nil, fmt.Errorf("unexpected collection type %T", value)
	}
}

// toFloat coerces a decoded attribute value to float64. Casefile attributes
// usually decode as strings (the document originates from XML attributes) but
// may also appear as JSON numbers.
func toFloat(attribute string, value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, &ValueConversionError{Attribute: attribute, Value: value, Err: err}
		}
		return f, nil
	default:
		return 0, &ValueConversionError{Attribute: attribute, Value: value}
	}
}

// toText coerces a decoded attribute value to its string form.
func toText(attribute string, value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", &ValueConversionError{Attribute: attribute, Value: value}
	}
}
