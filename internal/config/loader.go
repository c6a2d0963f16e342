// Package config loads request-suite definitions: named environments,
// requests, and suites that the run command executes against a client.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nryrk/Get/pkg/get"
)

// Config is the top-level request-suite configuration.
type Config struct {
	Environments map[string]Environment `yaml:"environments" json:"environments"`
	Requests     map[string]Request     `yaml:"requests" json:"requests"`
	Suites       map[string]Suite       `yaml:"suites" json:"suites"`
}

// Environment names a base URL with default headers and variables.
type Environment struct {
	BaseURL string            `yaml:"baseUrl" json:"baseUrl"`
	Headers map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`
	Vars    map[string]string `yaml:"variables,omitempty" json:"variables,omitempty"`
}

// Request is one named request definition.
type Request struct {
	URL      string                 `yaml:"url" json:"url"`
	Method   string                 `yaml:"method" json:"method"`
	Headers  map[string]string      `yaml:"headers,omitempty" json:"headers,omitempty"`
	Query    []QueryPair            `yaml:"query,omitempty" json:"query,omitempty"`
	Body     interface{}            `yaml:"body,omitempty" json:"body,omitempty"`
	Extract  map[string]string      `yaml:"extract,omitempty" json:"extract,omitempty"`
	Validate map[string]interface{} `yaml:"validate,omitempty" json:"validate,omitempty"`
}

// QueryPair is one ordered query entry. A missing value renders the key
// alone, with no "=". Order in the file is the order on the wire.
type QueryPair struct {
	Key   string  `yaml:"key" json:"key"`
	Value *string `yaml:"value,omitempty" json:"value,omitempty"`
}

// Suite is an ordered list of request names with optional variables.
type Suite struct {
	Requests []string          `yaml:"requests" json:"requests"`
	Vars     map[string]string `yaml:"variables,omitempty" json:"variables,omitempty"`
}

// Load reads a configuration file. The format follows the extension:
// .json is JSON, everything else is parsed as YAML. A .env file next to
// the working directory is overlaid into the process environment first.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	// Best effort; a missing .env file is not an error.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing JSON config: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing YAML config: %w", err)
		}
	}

	return &cfg, nil
}

var varPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Expand substitutes ${name} references from vars, falling back to the
// process environment. Unknown references are left untouched.
func Expand(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := match[2 : len(match)-1]
		if value, ok := vars[name]; ok {
			return value
		}
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		return match
	})
}

// QueryParams converts the ordered query entries into descriptor pairs,
// expanding variables in keys and values.
func (r Request) QueryParams(vars map[string]string) []get.QueryParam {
	params := make([]get.QueryParam, 0, len(r.Query))
	for _, pair := range r.Query {
		key := Expand(pair.Key, vars)
		if pair.Value == nil {
			params = append(params, get.Flag(key))
			continue
		}
		params = append(params, get.Param(key, Expand(*pair.Value, vars)))
	}
	return params
}

// BodyFor returns the request body box with variables expanded in string
// fields, or nil when the definition has no body.
func (r Request) BodyFor(vars map[string]string) get.Body {
	switch body := r.Body.(type) {
	case nil:
		return nil
	case string:
		return get.Text(Expand(body, vars))
	case map[string]interface{}:
		expanded := make(map[string]interface{}, len(body))
		for k, v := range body {
			if s, ok := v.(string); ok {
				expanded[k] = Expand(s, vars)
			} else {
				expanded[k] = v
			}
		}
		return get.JSON(expanded)
	default:
		return get.JSON(body)
	}
}
