package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nryrk/Get/internal/config"
	"github.com/nryrk/Get/internal/logger"
	"github.com/nryrk/Get/internal/output"
	"github.com/nryrk/Get/pkg/get"
	"github.com/nryrk/Get/pkg/jsonpath"
	"github.com/nryrk/Get/pkg/jsonschema"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run requests or suites from a configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, _ := cmd.Flags().GetString("config")
		environment, _ := cmd.Flags().GetString("environment")
		request, _ := cmd.Flags().GetString("request")
		suite, _ := cmd.Flags().GetString("suite")
		verbose, _ := cmd.Flags().GetBool("verbose")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		noColor, _ := cmd.Flags().GetBool("no-color")

		if configFile == "" {
			return fmt.Errorf("config file is required")
		}
		if environment == "" {
			return fmt.Errorf("environment is required")
		}
		if request == "" && suite == "" {
			return fmt.Errorf("either request or suite is required")
		}

		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		if errs := config.Validate(cfg); len(errs) > 0 {
			var b strings.Builder
			b.WriteString("configuration validation errors:")
			for _, err := range errs {
				b.WriteString("\n  - " + err.Error())
			}
			return fmt.Errorf("%s", b.String())
		}
		if err := config.ValidateEnvironment(cfg, environment); err != nil {
			return err
		}

		runner := &suiteRunner{
			cfg:       cfg,
			env:       cfg.Environments[environment],
			vars:      map[string]string{},
			formatter: output.NewFormatter(verbose, noColor),
			timeout:   timeout,
			verbose:   verbose,
			out:       cmd,
		}
		for name, value := range runner.env.Vars {
			runner.vars[name] = value
		}

		if request != "" {
			if err := config.ValidateRequest(cfg, request); err != nil {
				return err
			}
			return runner.runRequest(cmd.Context(), request)
		}

		if err := config.ValidateSuite(cfg, suite); err != nil {
			return err
		}
		return runner.runSuite(cmd.Context(), suite)
	},
}

// suiteRunner executes configured requests, carrying extracted variables
// from one request to the next.
type suiteRunner struct {
	cfg       *config.Config
	env       config.Environment
	vars      map[string]string
	formatter *output.Formatter
	timeout   time.Duration
	verbose   bool
	out       *cobra.Command
}

func (r *suiteRunner) runSuite(ctx context.Context, name string) error {
	suite := r.cfg.Suites[name]

	for varName, value := range suite.Vars {
		r.vars[varName] = config.Expand(value, r.vars)
	}

	for _, requestName := range suite.Requests {
		fmt.Fprintf(r.out.OutOrStdout(), "\n=== %s ===\n\n", requestName)
		if err := r.runRequest(ctx, requestName); err != nil {
			return fmt.Errorf("request %q: %w", requestName, err)
		}
	}
	return nil
}

func (r *suiteRunner) runRequest(ctx context.Context, name string) error {
	reqCfg := r.cfg.Requests[name]

	baseURL := r.env.BaseURL
	path := config.Expand(reqCfg.URL, r.vars)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		baseURL, path = splitURL(path)
	}

	clientOpts := []get.ClientOption{
		get.WithBaseURL(baseURL),
		get.WithTimeout(r.timeout),
		get.WithLogger(logger.Get()),
	}
	for key, value := range r.env.Headers {
		clientOpts = append(clientOpts, get.WithDefaultHeader(key, config.Expand(value, r.vars)))
	}
	client := get.NewClient(clientOpts...)

	opts := []get.Option{get.WithQueryParams(reqCfg.QueryParams(r.vars)...)}
	for key, value := range reqCfg.Headers {
		opts = append(opts, get.WithHeader(key, config.Expand(value, r.vars)))
	}

	req := newDescriptor(reqCfg.Method, path, reqCfg.BodyFor(r.vars), opts)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := get.Send(ctx, client, req)
	if err != nil {
		return err
	}

	fmt.Fprint(r.out.OutOrStdout(), r.formatter.FormatRequest(resp.Request))
	fmt.Fprint(r.out.OutOrStdout(), r.formatter.FormatResponse(resp))

	if len(reqCfg.Extract) > 0 {
		extracted, err := jsonpath.LookupAll(resp.Data, reqCfg.Extract)
		if err != nil {
			fmt.Fprintf(r.out.ErrOrStderr(), "Warning: variable extraction incomplete: %v\n", err)
		}
		for varName, value := range extracted {
			r.vars[varName] = value
			if r.verbose {
				fmt.Fprintf(r.out.OutOrStdout(), "Extracted %s = %s\n", varName, value)
			}
		}
	}

	if len(reqCfg.Validate) > 0 {
		schema, err := json.Marshal(reqCfg.Validate)
		if err != nil {
			return fmt.Errorf("marshaling schema: %w", err)
		}
		violations, err := jsonschema.Check(resp.Data, schema)
		if err != nil {
			return fmt.Errorf("schema validation: %w", err)
		}
		if len(violations) > 0 {
			return fmt.Errorf("schema validation failed: %s", strings.Join(violations, "; "))
		}
		if r.verbose {
			fmt.Fprintln(r.out.OutOrStdout(), "Schema validation passed")
		}
	}

	return nil
}

func init() {
	runCmd.Flags().StringP("config", "c", "", "Configuration file (required)")
	runCmd.Flags().StringP("environment", "e", "", "Environment to use (required)")
	runCmd.Flags().StringP("request", "r", "", "Request to run")
	runCmd.Flags().StringP("suite", "s", "", "Suite to run")
	runCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	runCmd.Flags().DurationP("timeout", "t", 30*time.Second, "Request timeout")
	runCmd.Flags().Bool("no-color", false, "Disable colored output")
}
