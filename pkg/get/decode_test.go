package get

import (
	"bytes"
	"errors"
	"testing"
)

type user struct {
	Login string `json:"login"`
}

func TestDecode_RawBytes(t *testing.T) {
	// Raw bytes pass through untouched even if they look like markup.
	data := []byte("<h>Hello</h>")

	value, err := decode[[]byte](data)
	if err != nil {
		t.Fatalf("Error decoding: %v", err)
	}
	if !bytes.Equal(value, data) {
		t.Errorf("Expected bytes unchanged, got %q", value)
	}
}

func TestDecode_Text(t *testing.T) {
	value, err := decode[string]([]byte("hello"))
	if err != nil {
		t.Fatalf("Error decoding: %v", err)
	}
	if value != "hello" {
		t.Errorf("Expected hello, got %s", value)
	}
}

func TestDecode_Text_InvalidUTF8(t *testing.T) {
	_, err := decode[string]([]byte{0xff, 0xfe})
	if err == nil {
		t.Fatal("Expected a decoding error, got nil")
	}

	var decErr *DecodingError
	if !errors.As(err, &decErr) {
		t.Fatalf("Expected *DecodingError, got %T", err)
	}
	if decErr.Target != "string" {
		t.Errorf("Expected target string, got %s", decErr.Target)
	}
}

func TestDecode_None(t *testing.T) {
	// Bytes are ignored for the unit type, even when present.
	if _, err := decode[None]([]byte(`{"ignored":true}`)); err != nil {
		t.Fatalf("Error decoding: %v", err)
	}
	if _, err := decode[None](nil); err != nil {
		t.Fatalf("Error decoding empty body: %v", err)
	}
}

func TestDecode_Optional_EmptyBody(t *testing.T) {
	value, err := decode[*user](nil)
	if err != nil {
		t.Fatalf("Expected empty body to decode as absent, got error: %v", err)
	}
	if value != nil {
		t.Errorf("Expected nil value, got %+v", value)
	}
}

func TestDecode_Optional_WithBody(t *testing.T) {
	value, err := decode[*user]([]byte(`{"login":"kean"}`))
	if err != nil {
		t.Fatalf("Error decoding: %v", err)
	}
	if value == nil || value.Login != "kean" {
		t.Errorf("Expected login kean, got %+v", value)
	}
}

func TestDecode_Optional_MalformedBody(t *testing.T) {
	_, err := decode[*user]([]byte(`{"login":`))
	if err == nil {
		t.Fatal("Expected a decoding error, got nil")
	}
	var decErr *DecodingError
	if !errors.As(err, &decErr) {
		t.Fatalf("Expected *DecodingError, got %T", err)
	}
}

func TestDecode_NonOptional_EmptyBody(t *testing.T) {
	// The empty-body short-circuit applies only to pointer targets; a
	// non-pointer target must fail rather than zero-construct.
	_, err := decode[user](nil)
	if err == nil {
		t.Fatal("Expected a decoding error, got nil")
	}

	var decErr *DecodingError
	if !errors.As(err, &decErr) {
		t.Fatalf("Expected *DecodingError, got %T", err)
	}
	if !errors.Is(err, errEmptyBody) {
		t.Errorf("Expected empty-body error, got %v", decErr.Err)
	}
}

func TestDecode_JSONStruct(t *testing.T) {
	value, err := decode[user]([]byte(`{"login":"kean"}`))
	if err != nil {
		t.Fatalf("Error decoding: %v", err)
	}
	if value.Login != "kean" {
		t.Errorf("Expected login kean, got %s", value.Login)
	}
}

func TestDecode_JSONStruct_Malformed(t *testing.T) {
	data := []byte(`not json`)

	_, err := decode[user](data)
	if err == nil {
		t.Fatal("Expected a decoding error, got nil")
	}

	var decErr *DecodingError
	if !errors.As(err, &decErr) {
		t.Fatalf("Expected *DecodingError, got %T", err)
	}
	// The raw bytes travel with the error for diagnostics.
	if !bytes.Equal(decErr.Data, data) {
		t.Errorf("Expected error to carry raw bytes, got %q", decErr.Data)
	}
	if decErr.Target != "get.user" {
		t.Errorf("Expected target get.user, got %s", decErr.Target)
	}
}

func TestDecode_JSONSlice(t *testing.T) {
	value, err := decode[[]user]([]byte(`[{"login":"a"},{"login":"b"}]`))
	if err != nil {
		t.Fatalf("Error decoding: %v", err)
	}
	if len(value) != 2 || value[1].Login != "b" {
		t.Errorf("Expected two users, got %+v", value)
	}
}
