package framework

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alessio/shellescape"
)

const probeInterval = time.Millisecond * 100

// ServiceClient sends requests to the service under test. It does not retry and does not
// interpret status codes; deciding what a response means is up to the caller.
type ServiceClient struct {
	baseURL    string
	httpClient *http.Client
}

// ServiceRequest describes one request relative to the service's base URL.
type ServiceRequest struct {
	Method string
	Path   string
	Query  url.Values
	// Body is marshaled with json.Marshal. A nil Body sends no body at all.
	Body interface{}
}

// ServiceResponse is what came back from the service. The body has already been read fully.
type ServiceResponse struct {
	Method     string
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
}

func NewServiceClient(baseURL string, httpClient *http.Client) *ServiceClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ServiceClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// AwaitService polls the given path until the service answers with any HTTP status, so that a
// service that is still starting up does not fail the first few tests. Only transport errors
// cause another attempt. No attempt outlasts the overall timeout, even if the HTTP client's own
// timeout is longer.
func (s *ServiceClient) AwaitService(path string, timeout time.Duration, output io.Writer) error {
	target := s.baseURL + path
	fmt.Fprintf(output, "Connecting to service at %s", target)

	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		resp, err := s.probe(target, deadline)
		if err == nil {
			fmt.Fprintf(output, "\nService responded with status %d\n", resp.StatusCode)
			return nil
		}
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return fmt.Errorf("timed out, result of last query was: %w", err)
		}
		time.Sleep(probeInterval)
	}
}

func (s *ServiceClient) probe(target string, deadline time.Time) (*http.Response, error) {
	ctx, cancel := context.WithDeadline(context.Background(), deadline)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return resp, nil
}

// Do sends a single request. An error is returned only for problems that prevented getting a
// response at all; any status code counts as success here.
func (s *ServiceClient) Do(r ServiceRequest, logger Logger) (ServiceResponse, error) {
	if logger == nil {
		logger = NullLogger()
	}

	target := s.baseURL + r.Path
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}

	var body io.Reader
	var data []byte
	if r.Body != nil {
		var err error
		if data, err = json.Marshal(r.Body); err != nil {
			return ServiceResponse{}, fmt.Errorf("could not serialize request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(r.Method, target, body)
	if err != nil {
		return ServiceResponse{}, err
	}
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	logger.Printf("Request: %s", curlCommand(r.Method, target, data))
	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.Printf("Request failed: %s", err)
		return ServiceResponse{}, fmt.Errorf("%s %s: %w", r.Method, target, err)
	}
	defer resp.Body.Close()

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return ServiceResponse{}, fmt.Errorf("error reading response body from %s %s: %w", r.Method, target, err)
	}
	logger.Printf("Response: HTTP %d: %s", resp.StatusCode, string(respData))

	return ServiceResponse{
		Method:     r.Method,
		URL:        target,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respData,
	}, nil
}

func (r ServiceResponse) String() string {
	return fmt.Sprintf("%s %s -> HTTP %d %s", r.Method, r.URL, r.StatusCode, string(r.Body))
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// curlCommand renders the request as a shell command, so a failure can be reproduced by hand.
func curlCommand(method, target string, body []byte) string {
	var b commandBuilder
	b.add("curl", "-i", "-X", method)
	if body != nil {
		b.add("-H", "Content-Type: application/json", "-d", string(body))
	}
	b.add(target)
	return b.String()
}
