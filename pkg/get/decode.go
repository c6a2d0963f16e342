package get

import (
	"encoding/json"
	"errors"
	"reflect"
	"unicode/utf8"
)

// None is the expected result type for exchanges whose body is ignored,
// e.g. get.Post[get.None]("/logout", nil).
type None = struct{}

// decode converts raw response bytes into T. Dispatch is on the static
// shape of T, never on response content:
//
//	[]byte    -> the bytes verbatim, no parsing
//	string    -> UTF-8 text
//	struct{}  -> zero value, bytes ignored
//	*X        -> nil on empty body, otherwise JSON into a new X
//	otherwise -> JSON; an empty body is a DecodingError
//
// The empty-body short-circuit applies only to pointer targets. A
// non-pointer target facing empty bytes fails rather than silently
// zero-constructing.
func decode[T any](data []byte) (T, error) {
	var value T

	switch out := any(&value).(type) {
	case *[]byte:
		*out = data
		return value, nil
	case *string:
		if !utf8.Valid(data) {
			return value, &DecodingError{Data: data, Target: "string", Err: errors.New("invalid UTF-8")}
		}
		*out = string(data)
		return value, nil
	case *struct{}:
		return value, nil
	}

	rv := reflect.ValueOf(&value).Elem()
	if rv.Kind() == reflect.Pointer {
		if len(data) == 0 {
			return value, nil
		}
		elem := reflect.New(rv.Type().Elem())
		if err := json.Unmarshal(data, elem.Interface()); err != nil {
			return value, &DecodingError{Data: data, Target: rv.Type().String(), Err: err}
		}
		rv.Set(elem)
		return value, nil
	}

	if len(data) == 0 {
		return value, &DecodingError{Data: data, Target: rv.Type().String(), Err: errEmptyBody}
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, &DecodingError{Data: data, Target: rv.Type().String(), Err: err}
	}
	return value, nil
}
