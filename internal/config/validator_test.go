package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Environments: map[string]Environment{
			"prod": {BaseURL: "https://example.com"},
		},
		Requests: map[string]Request{
			"ping": {URL: "/ping", Method: "GET"},
		},
		Suites: map[string]Suite{
			"smoke": {Requests: []string{"ping"}},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	if errs := Validate(validConfig()); len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{
		Environments: map[string]Environment{
			"prod": {},
		},
		Requests: map[string]Request{
			"bad":      {URL: "/x", Method: "FETCH"},
			"noMethod": {URL: "/y"},
		},
		Suites: map[string]Suite{
			"empty":  {},
			"broken": {Requests: []string{"missing"}},
		},
	}

	errs := Validate(cfg)
	if len(errs) != 5 {
		t.Fatalf("Expected 5 errors, got %d: %v", len(errs), errs)
	}
}

func TestValidate_QueryWithoutKey(t *testing.T) {
	cfg := validConfig()
	cfg.Requests["ping"] = Request{URL: "/ping", Method: "GET", Query: []QueryPair{{}}}

	errs := Validate(cfg)
	if len(errs) != 1 || !strings.Contains(errs[0].Error(), "query entry") {
		t.Errorf("Expected a query-entry error, got %v", errs)
	}
}

func TestValidateLookups(t *testing.T) {
	cfg := validConfig()

	if err := ValidateEnvironment(cfg, "prod"); err != nil {
		t.Errorf("Expected environment to validate, got %v", err)
	}
	if err := ValidateEnvironment(cfg, "qa"); err == nil {
		t.Error("Expected an error for an unknown environment")
	}
	if err := ValidateRequest(cfg, "ping"); err != nil {
		t.Errorf("Expected request to validate, got %v", err)
	}
	if err := ValidateRequest(cfg, "pong"); err == nil {
		t.Error("Expected an error for an unknown request")
	}
	if err := ValidateSuite(cfg, "smoke"); err != nil {
		t.Errorf("Expected suite to validate, got %v", err)
	}
	if err := ValidateSuite(cfg, "full"); err == nil {
		t.Error("Expected an error for an unknown suite")
	}
}
