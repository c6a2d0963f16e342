package cli

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nryrk/Get/internal/logger"
	"github.com/nryrk/Get/internal/output"
	"github.com/nryrk/Get/internal/stats"
	"github.com/nryrk/Get/pkg/get"
	"github.com/nryrk/Get/pkg/jsonpath"
)

// methodFlags are the flags shared by the method commands.
type methodFlags struct {
	headers     []string
	query       []string
	data        string
	contentType string
	verbose     bool
	noColor     bool
	timeout     time.Duration
	repeat      int
	extract     string
}

func addMethodFlags(cmd *cobra.Command, flags *methodFlags, withBody bool) {
	cmd.Flags().StringArrayVarP(&flags.headers, "header", "H", nil, "HTTP header as key:value (repeatable)")
	cmd.Flags().StringArrayVarP(&flags.query, "query", "q", nil, "Query pair as key=value or a bare key (repeatable, order preserved)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	cmd.Flags().DurationVarP(&flags.timeout, "timeout", "t", 30*time.Second, "Request timeout")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().IntVarP(&flags.repeat, "repeat", "n", 1, "Send the request N times and report latency stats")
	cmd.Flags().StringVar(&flags.extract, "extract", "", "Print only the value at this JSONPath")
	if withBody {
		cmd.Flags().StringVarP(&flags.data, "data", "d", "", "Request body")
		cmd.Flags().StringVar(&flags.contentType, "content-type", "application/json", "Content type for --data")
	}
}

// splitURL separates a full URL into the client's base URL and the
// request path (including query and fragment).
func splitURL(fullURL string) (string, string) {
	if !strings.HasPrefix(fullURL, "http://") && !strings.HasPrefix(fullURL, "https://") {
		fullURL = "http://" + fullURL
	}

	parsed, err := url.Parse(fullURL)
	if err != nil {
		return fullURL, "/"
	}

	baseURL := fmt.Sprintf("%s://%s", parsed.Scheme, parsed.Host)
	if parsed.User != nil {
		baseURL = fmt.Sprintf("%s://%s@%s", parsed.Scheme, parsed.User.String(), parsed.Host)
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}
	if parsed.RawQuery != "" {
		path += "?" + parsed.RawQuery
	}
	if parsed.Fragment != "" {
		path += "#" + parsed.Fragment
	}

	return baseURL, path
}

// parseHeaderFlags turns "Key: Value" strings into descriptor options.
func parseHeaderFlags(headers []string) []get.Option {
	var opts []get.Option
	for _, header := range headers {
		parts := strings.SplitN(header, ":", 2)
		if len(parts) == 2 {
			opts = append(opts, get.WithHeader(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])))
		}
	}
	return opts
}

// parseQueryFlags turns "key=value" and bare "key" strings into ordered
// descriptor options.
func parseQueryFlags(query []string) []get.Option {
	var opts []get.Option
	for _, entry := range query {
		if key, value, found := strings.Cut(entry, "="); found {
			opts = append(opts, get.WithQuery(key, value))
		} else {
			opts = append(opts, get.WithQueryFlag(entry))
		}
	}
	return opts
}

// runMethod executes one of the method commands against a full URL.
func runMethod(cmd *cobra.Command, method, fullURL string, flags *methodFlags) error {
	noColor, _ := cmd.Flags().GetBool("no-color")

	baseURL, path := splitURL(fullURL)

	client := get.NewClient(
		get.WithBaseURL(baseURL),
		get.WithTimeout(flags.timeout),
		get.WithLogger(logger.Get()),
	)

	opts := parseHeaderFlags(flags.headers)
	opts = append(opts, parseQueryFlags(flags.query)...)

	var body get.Body
	if flags.data != "" {
		body = get.Raw([]byte(flags.data), flags.contentType)
	}

	req := newDescriptor(method, path, body, opts)

	if flags.repeat > 1 {
		return repeatRequest(cmd, client, req, flags.repeat)
	}

	formatter := output.NewFormatter(flags.verbose, noColor)

	ctx, cancel := context.WithTimeout(cmd.Context(), flags.timeout)
	defer cancel()

	resp, err := get.Send(ctx, client, req)
	if err != nil {
		return err
	}

	if flags.extract != "" {
		value, err := jsonpath.Lookup(resp.Data, flags.extract)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRequest(resp.Request))
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResponse(resp))
	return nil
}

func newDescriptor(method, path string, body get.Body, opts []get.Option) get.Request[[]byte] {
	switch method {
	case "POST":
		return get.Post[[]byte](path, body, opts...)
	case "PUT":
		return get.Put[[]byte](path, body, opts...)
	case "PATCH":
		return get.Patch[[]byte](path, body, opts...)
	case "DELETE":
		return get.Delete[[]byte](path, body, opts...)
	case "HEAD":
		return get.Head[[]byte](path, opts...)
	default:
		return get.Get[[]byte](path, opts...)
	}
}

// repeatRequest sends the same descriptor N times and prints a latency
// summary.
func repeatRequest(cmd *cobra.Command, client *get.Client, req get.Request[[]byte], n int) error {
	recorder := stats.NewRecorder()

	for i := 0; i < n; i++ {
		resp, err := get.Send(cmd.Context(), client, req)
		if err != nil {
			recorder.RecordFailure()
			fmt.Fprintf(os.Stderr, "request %d: %v\n", i+1, err)
			continue
		}
		if resp.Metrics != nil {
			recorder.Record(resp.Metrics.Total)
		}
	}

	s := recorder.Snapshot()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Requests:  %d (%d failed)\n", s.Count+s.Failures, s.Failures)
	fmt.Fprintf(out, "Mean:      %v\n", s.Mean)
	fmt.Fprintf(out, "P50:       %v\n", s.P50)
	fmt.Fprintf(out, "P90:       %v\n", s.P90)
	fmt.Fprintf(out, "P95:       %v\n", s.P95)
	fmt.Fprintf(out, "P99:       %v\n", s.P99)
	fmt.Fprintf(out, "Max:       %v\n", s.Max)
	return nil
}
