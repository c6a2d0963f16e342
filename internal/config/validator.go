package config

import (
	"fmt"
	"net/http"
)

var allowedMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
	http.MethodHead:    true,
	http.MethodTrace:   true,
}

// Validate checks the configuration for structural problems and returns
// every error found rather than stopping at the first.
func Validate(cfg *Config) []error {
	var errs []error

	if len(cfg.Environments) == 0 {
		errs = append(errs, fmt.Errorf("at least one environment is required"))
	}
	for name, env := range cfg.Environments {
		if env.BaseURL == "" {
			errs = append(errs, fmt.Errorf("environment %q: baseUrl is required", name))
		}
	}

	for name, req := range cfg.Requests {
		if req.Method == "" {
			errs = append(errs, fmt.Errorf("request %q: method is required", name))
		} else if !allowedMethods[req.Method] {
			errs = append(errs, fmt.Errorf("request %q: unknown method %q", name, req.Method))
		}
		for i, pair := range req.Query {
			if pair.Key == "" {
				errs = append(errs, fmt.Errorf("request %q: query entry %d has no key", name, i))
			}
		}
	}

	for name, suite := range cfg.Suites {
		if len(suite.Requests) == 0 {
			errs = append(errs, fmt.Errorf("suite %q: no requests listed", name))
		}
		for _, requestName := range suite.Requests {
			if _, ok := cfg.Requests[requestName]; !ok {
				errs = append(errs, fmt.Errorf("suite %q: unknown request %q", name, requestName))
			}
		}
	}

	return errs
}

// ValidateEnvironment checks that an environment exists.
func ValidateEnvironment(cfg *Config, name string) error {
	if _, ok := cfg.Environments[name]; !ok {
		return fmt.Errorf("environment %q not found", name)
	}
	return nil
}

// ValidateRequest checks that a request exists.
func ValidateRequest(cfg *Config, name string) error {
	if _, ok := cfg.Requests[name]; !ok {
		return fmt.Errorf("request %q not found", name)
	}
	return nil
}

// ValidateSuite checks that a suite exists.
func ValidateSuite(cfg *Config, name string) error {
	if _, ok := cfg.Suites[name]; !ok {
		return fmt.Errorf("suite %q not found", name)
	}
	return nil
}
