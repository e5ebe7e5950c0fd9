package casefile

import "fmt"

// AttributeNotFoundError indicates an entity or one of its attributes is
// absent from the case document. Context carries the collection that was
// searched.
type AttributeNotFoundError struct {
	Entity    string
	Attribute string
	Context   string
}

func (e *AttributeNotFoundError) Error() string {
	return fmt.Sprintf("attribute not found: entity=%s attribute=%s context=%s",
		e.Entity, e.Attribute, e.Context)
}

// ValueConversionError indicates an attribute value could not be coerced to
// the type the caller requested.
type ValueConversionError struct {
	Attribute string
	Value     interface{}
	Err       error
}

func (e *ValueConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot convert attribute %s value %v: %v", e.Attribute, e.Value, e.Err)
	}
	return fmt.Sprintf("cannot convert attribute %s value %v (%T)", e.Attribute, e.Value, e.Value)
}

func (e *ValueConversionError) Unwrap() error {
	return e.Err
}
