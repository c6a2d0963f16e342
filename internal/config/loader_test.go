package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
environments:
  staging:
    baseUrl: https://staging.example.com
    headers:
      X-Api-Version: "2"
    variables:
      token: abc123
requests:
  listUsers:
    url: /users
    method: GET
    query:
      - key: sort
        value: name
      - key: archived
      - key: sort
        value: -created
    headers:
      Authorization: Bearer ${token}
  createUser:
    url: /users
    method: POST
    body:
      login: ${login}
    extract:
      userId: $.id
suites:
  smoke:
    requests:
      - listUsers
      - createUser
    variables:
      login: kean
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "requests.yaml", sampleYAML))
	require.NoError(t, err)

	require.Contains(t, cfg.Environments, "staging")
	assert.Equal(t, "https://staging.example.com", cfg.Environments["staging"].BaseURL)

	req, ok := cfg.Requests["listUsers"]
	require.True(t, ok)
	assert.Equal(t, "GET", req.Method)

	// Query order and valueless entries survive parsing.
	require.Len(t, req.Query, 3)
	assert.Equal(t, "sort", req.Query[0].Key)
	require.NotNil(t, req.Query[0].Value)
	assert.Equal(t, "name", *req.Query[0].Value)
	assert.Equal(t, "archived", req.Query[1].Key)
	assert.Nil(t, req.Query[1].Value)
	require.NotNil(t, req.Query[2].Value)
	assert.Equal(t, "-created", *req.Query[2].Value)

	suite, ok := cfg.Suites["smoke"]
	require.True(t, ok)
	assert.Equal(t, []string{"listUsers", "createUser"}, suite.Requests)
}

func TestLoad_JSON(t *testing.T) {
	cfg, err := Load(writeConfig(t, "requests.json", `{
		"environments": {"prod": {"baseUrl": "https://example.com"}},
		"requests": {"ping": {"url": "/ping", "method": "GET"}}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", cfg.Environments["prod"].BaseURL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "bad.yaml", "environments: ["))
	assert.Error(t, err)
}

func TestExpand(t *testing.T) {
	vars := map[string]string{"token": "abc"}

	assert.Equal(t, "Bearer abc", Expand("Bearer ${token}", vars))
	assert.Equal(t, "${unknown}", Expand("${unknown}", vars))

	t.Setenv("CONFIG_TEST_HOST", "example.com")
	assert.Equal(t, "example.com", Expand("${CONFIG_TEST_HOST}", vars))

	// Explicit vars win over the environment.
	t.Setenv("CONFIG_TEST_HOST", "wrong.example.com")
	vars["CONFIG_TEST_HOST"] = "right.example.com"
	assert.Equal(t, "right.example.com", Expand("${CONFIG_TEST_HOST}", vars))
}

func TestRequest_QueryParams(t *testing.T) {
	value := "${v}"
	req := Request{Query: []QueryPair{
		{Key: "a", Value: &value},
		{Key: "flag"},
	}}

	params := req.QueryParams(map[string]string{"v": "1"})
	require.Len(t, params, 2)
	require.NotNil(t, params[0].Value)
	assert.Equal(t, "1", *params[0].Value)
	assert.Nil(t, params[1].Value)
}

func TestRequest_BodyFor(t *testing.T) {
	vars := map[string]string{"login": "kean"}

	assert.Nil(t, Request{}.BodyFor(vars))

	body := Request{Body: map[string]interface{}{"login": "${login}", "count": 1}}.BodyFor(vars)
	require.NotNil(t, body)
	data, contentType, err := body.MarshalBody()
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)
	assert.JSONEq(t, `{"login":"kean","count":1}`, string(data))

	text := Request{Body: "hello ${login}"}.BodyFor(vars)
	data, contentType, err = text.MarshalBody()
	require.NoError(t, err)
	assert.Equal(t, "text/plain; charset=utf-8", contentType)
	assert.Equal(t, "hello kean", string(data))
}
