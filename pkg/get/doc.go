// Package get provides a typed HTTP request/response façade: requests are
// described as immutable values parameterized by the expected result type,
// and responses come back as typed envelopes carrying the decoded value
// alongside the raw bytes, the exchange metadata, and timing metrics.
//
// This package is designed for programmatic use and provides:
//   - One constructor per HTTP method (Get, Post, Put, Patch, Delete, ...)
//   - Type-driven response decoding ([]byte, string, struct{}, *T, T)
//   - A configurable client with functional options and timing metrics
//   - A type-erased request body box serialized at send time
//
// Basic Usage:
//
//	client := get.NewClient(
//	    get.WithBaseURL("https://api.example.com"),
//	    get.WithTimeout(30*time.Second),
//	    get.WithHeader("Authorization", "Bearer token"),
//	)
//
//	type User struct {
//	    Login string `json:"login"`
//	}
//
//	req := get.Get[User]("/user", get.WithQuery("expand", "profile"))
//
//	resp, err := get.Send(context.Background(), client, req)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Status: %d\n", resp.StatusCode)
//	fmt.Printf("Login:  %s\n", resp.Value.Login)
//
// The expected result type drives decoding: []byte returns the raw bytes
// verbatim, string decodes UTF-8 text, struct{} skips the body entirely,
// a pointer type treats an empty body as absent, and any other type is
// decoded as JSON (an empty body is a DecodingError in that case).
//
// Thread Safety:
//
// Client is safe for concurrent use. Multiple goroutines may invoke
// Send with the same client simultaneously; each call receives its own
// envelope.
package get
