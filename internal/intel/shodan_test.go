package intel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newShodanMock(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestShodanClient_Lookup_Success(t *testing.T) {
	mock := newShodanMock(http.StatusOK, `{
		"ip_str": "1.2.3.4",
		"org": "Example Org",
		"isp": "Example ISP",
		"hostnames": ["example.com"],
		"ports": [22, 443],
		"data": [{"port": 22, "data": "SSH-2.0-OpenSSH_8.9"}]
	}`)
	defer mock.Close()

	oldURL := ShodanBaseURL
	ShodanBaseURL = mock.URL
	defer func() { ShodanBaseURL = oldURL }()

	client := NewShodanClient("test-key")
	client.HTTP = mock.Client()

	res := client.Lookup(context.Background(), "1.2.3.4")
	if res.Status != StatusSuccess {
		t.Fatalf("Expected StatusSuccess, got %s (err: %v)", res.Status, res.Err)
	}
	for _, want := range []string{"IP: 1.2.3.4", "Org: Example Org", "Hostnames: example.com", "Ports: 22, 443", "SSH-2.0-OpenSSH_8.9"} {
		if !strings.Contains(res.Report, want) {
			t.Errorf("Report missing %q:\n%s", want, res.Report)
		}
	}
}

func TestShodanClient_Lookup_NoData(t *testing.T) {
	mock := newShodanMock(http.StatusNotFound, `{"error": "No information available for that IP."}`)
	defer mock.Close()

	oldURL := ShodanBaseURL
	ShodanBaseURL = mock.URL
	defer func() { ShodanBaseURL = oldURL }()

	client := NewShodanClient("test-key")
	client.HTTP = mock.Client()

	res := client.Lookup(context.Background(), "10.0.0.1")
	if res.Status != StatusEmpty {
		t.Errorf("Expected StatusEmpty, got %s", res.Status)
	}
}

func TestShodanClient_Lookup_APIError(t *testing.T) {
	mock := newShodanMock(http.StatusUnauthorized, `{"error": "Invalid API key"}`)
	defer mock.Close()

	oldURL := ShodanBaseURL
	ShodanBaseURL = mock.URL
	defer func() { ShodanBaseURL = oldURL }()

	client := NewShodanClient("bad-key")
	client.HTTP = mock.Client()

	res := client.Lookup(context.Background(), "1.2.3.4")
	if res.Status != StatusFailure {
		t.Fatalf("Expected StatusFailure, got %s", res.Status)
	}
	if res.Err == nil {
		t.Error("Expected a non-nil Err on failure")
	}
}

func TestShodanClient_Lookup_TransportError(t *testing.T) {
	oldURL := ShodanBaseURL
	ShodanBaseURL = "http://127.0.0.1:1" // nothing listens here
	defer func() { ShodanBaseURL = oldURL }()

	client := NewShodanClient("test-key")
	res := client.Lookup(context.Background(), "1.2.3.4")
	if res.Status != StatusFailure {
		t.Errorf("Expected StatusFailure, got %s", res.Status)
	}
}

func TestShodanClient_Lookup_EmptyBody(t *testing.T) {
	mock := newShodanMock(http.StatusOK, `{}`)
	defer mock.Close()

	oldURL := ShodanBaseURL
	ShodanBaseURL = mock.URL
	defer func() { ShodanBaseURL = oldURL }()

	client := NewShodanClient("test-key")
	client.HTTP = mock.Client()

	res := client.Lookup(context.Background(), "1.2.3.4")
	if res.Status != StatusEmpty {
		t.Errorf("Expected StatusEmpty for a contentless response, got %s", res.Status)
	}
}

func TestRegistry(t *testing.T) {
	Register(NewShodanClient("k"))
	p, err := Get("shodan")
	if err != nil {
		t.Fatalf("Get returned an error: %v", err)
	}
	if p.Name() != "shodan" {
		t.Errorf("Expected provider name shodan, got %s", p.Name())
	}
	if _, err := Get("nonexistent"); err == nil {
		t.Error("Expected an error for an unknown provider")
	}
}
