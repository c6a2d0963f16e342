package get

import "encoding/json"

// Body is a type-erased request payload. The concrete value is boxed at
// construction time and serialized only when the request is built, so a
// descriptor's own type parameter stays the expected result type.
type Body interface {
	// MarshalBody returns the serialized payload and its content type.
	MarshalBody() (data []byte, contentType string, err error)
}

type jsonBody struct {
	value any
}

// JSON boxes a value to be JSON-encoded at send time. JSON(struct{}{})
// sends "{}", which is distinct from passing a nil Body (no body bytes).
func JSON(value any) Body {
	return jsonBody{value: value}
}

func (b jsonBody) MarshalBody() ([]byte, string, error) {
	data, err := json.Marshal(b.value)
	if err != nil {
		return nil, "", err
	}
	return data, "application/json", nil
}

type textBody string

// Text boxes a plain-text payload.
func Text(s string) Body {
	return textBody(s)
}

func (b textBody) MarshalBody() ([]byte, string, error) {
	return []byte(b), "text/plain; charset=utf-8", nil
}

type rawBody struct {
	data        []byte
	contentType string
}

// Raw boxes pre-serialized bytes with an explicit content type.
func Raw(data []byte, contentType string) Body {
	return rawBody{data: data, contentType: contentType}
}

func (b rawBody) MarshalBody() ([]byte, string, error) {
	return b.data, b.contentType, nil
}

type formBody []QueryParam

// Form boxes ordered pairs as an application/x-www-form-urlencoded
// payload. Order and duplicate keys are preserved.
func Form(params ...QueryParam) Body {
	return formBody(params)
}

func (b formBody) MarshalBody() ([]byte, string, error) {
	return []byte(EncodeQuery(b)), "application/x-www-form-urlencoded", nil
}
