package isy

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Transport performs the hub round trips on behalf of the Controller.
//
// The default implementation speaks HTTP(S) with basic auth against the
// hub's /rest endpoint; tests and alternative stacks can substitute their
// own via WithTransport. Implementations report every failure (network,
// auth, non-success status) as an error wrapping ErrTransport.
type Transport interface {
	// Get fetches a REST resource and returns the raw XML body.
	Get(path string) ([]byte, error)

	// SendCommand issues a command request and returns the raw
	// acknowledgement body.
	SendCommand(path string) ([]byte, error)
}

// defaultTimeout bounds each hub round trip.
const defaultTimeout = 15 * time.Second

// httpTransport is the default Transport.
type httpTransport struct {
	baseURL  string
	username string
	password string
	client   *http.Client
}

func newHTTPTransport(host, username, password string, s settings) *httpTransport {
	scheme := "http"
	client := &http.Client{Timeout: s.timeout}
	if s.https {
		scheme = "https"
		if s.insecureTLS {
			// Opt-in for hubs with self-signed certificates.
			client.Transport = &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec
			}
		}
	}
	return &httpTransport{
		baseURL:  fmt.Sprintf("%s://%s/rest/", scheme, host),
		username: username,
		password: password,
		client:   client,
	}
}

func (t *httpTransport) Get(path string) ([]byte, error) {
	return t.roundTrip(path)
}

// SendCommand is also a GET: the hub's REST protocol drives commands
// through GET requests on the command path.
func (t *httpTransport) SendCommand(path string) ([]byte, error) {
	return t.roundTrip(path)
}

func (t *httpTransport) roundTrip(path string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, t.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %q: %v", ErrTransport, path, err)
	}
	req.SetBasicAuth(t.username, t.password)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET /rest/%s: %v", ErrTransport, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: GET /rest/%s returned %s", ErrTransport, path, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response for %q: %v", ErrTransport, path, err)
	}
	return body, nil
}
