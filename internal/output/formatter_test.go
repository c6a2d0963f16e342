package output

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/nryrk/Get/pkg/get"
)

func TestFormatRequest(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "https://example.com/users?sort=name", nil)
	if err != nil {
		t.Fatalf("Error building request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	formatter := NewFormatter(true, true)
	out := formatter.FormatRequest(req)

	if !strings.Contains(out, "GET") {
		t.Errorf("Expected method in output, got %q", out)
	}
	if !strings.Contains(out, "https://example.com/users?sort=name") {
		t.Errorf("Expected URL in output, got %q", out)
	}
	if !strings.Contains(out, "Accept: application/json") {
		t.Errorf("Expected header in verbose output, got %q", out)
	}
}

func TestFormatRequest_NotVerboseOmitsHeaders(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "https://example.com/", nil)
	req.Header.Set("Accept", "application/json")

	out := NewFormatter(false, true).FormatRequest(req)
	if strings.Contains(out, "Accept") {
		t.Errorf("Expected headers omitted, got %q", out)
	}
}

func TestFormatResponse(t *testing.T) {
	resp := &get.Response[[]byte]{
		Data:       []byte(`{"login":"kean"}`),
		StatusCode: 200,
		Response: &http.Response{
			Status: "200 OK",
			Header: http.Header{"Content-Type": []string{"application/json"}},
		},
		Metrics: &get.Timing{Total: 150 * time.Millisecond},
	}

	out := NewFormatter(true, true).FormatResponse(resp)

	if !strings.Contains(out, "200 OK") {
		t.Errorf("Expected status in output, got %q", out)
	}
	if !strings.Contains(out, "(150ms)") {
		t.Errorf("Expected total time in output, got %q", out)
	}
	if !strings.Contains(out, "Time to First Byte") {
		t.Errorf("Expected timing block in verbose output, got %q", out)
	}
	if !strings.Contains(out, `"login"`) {
		t.Errorf("Expected body in output, got %q", out)
	}
}

func TestFormatResponse_NoMetrics(t *testing.T) {
	resp := &get.Response[[]byte]{
		StatusCode: 204,
		Response:   &http.Response{Status: "204 No Content", Header: make(http.Header)},
	}

	out := NewFormatter(false, true).FormatResponse(resp)
	if !strings.Contains(out, "204 No Content") {
		t.Errorf("Expected status in output, got %q", out)
	}
	if strings.Contains(out, "ms)") {
		t.Errorf("Expected no timing without metrics, got %q", out)
	}
	if strings.Contains(out, "Body:") {
		t.Errorf("Expected no body section for empty data, got %q", out)
	}
}
