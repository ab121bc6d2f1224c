// internal/intel/shodan.go
package intel

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ShodanBaseURL is a variable so tests can point the client at a mock server.
var ShodanBaseURL = "https://api.shodan.io"

// DefaultHTTPClient is shared by the bundled providers; tests swap it out.
var DefaultHTTPClient = &http.Client{Timeout: 30 * time.Second}

type shodanHost struct {
	IPStr     string   `json:"ip_str"`
	Hostnames []string `json:"hostnames"`
	Ports     []int    `json:"ports"`
	Org       string   `json:"org"`
	ISP       string   `json:"isp"`
	OS        string   `json:"os"`
	Data      []struct {
		Port   int    `json:"port"`
		Banner string `json:"data"`
	} `json:"data"`
}

// ShodanClient looks up host intelligence via the Shodan REST API.
type ShodanClient struct {
	APIKey string
	HTTP   *http.Client
}

func NewShodanClient(apiKey string) *ShodanClient {
	return &ShodanClient{APIKey: apiKey, HTTP: DefaultHTTPClient}
}

func (c *ShodanClient) Name() string { return "shodan" }

// Lookup issues one GET against /shodan/host/{asset}. A 404 means Shodan has
// no data for the asset; any other non-200 is a failure.
func (c *ShodanClient) Lookup(ctx context.Context, asset string) Result {
	url := fmt.Sprintf("%s/shodan/host/%s?key=%s", ShodanBaseURL, asset, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{Status: StatusFailure, Err: err}
	}
	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = DefaultHTTPClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return Result{Status: StatusFailure, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Result{Status: StatusEmpty}
	}
	if resp.StatusCode != http.StatusOK {
		return Result{Status: StatusFailure, Err: fmt.Errorf("Shodan API error: %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Status: StatusFailure, Err: err}
	}
	var host shodanHost
	if err := json.Unmarshal(body, &host); err != nil {
		return Result{Status: StatusFailure, Err: err}
	}
	report := formatShodanReport(asset, &host)
	if report == "" {
		return Result{Status: StatusEmpty}
	}
	return Result{Status: StatusSuccess, Report: report}
}

func formatShodanReport(asset string, h *shodanHost) string {
	if h.IPStr == "" && len(h.Ports) == 0 && len(h.Data) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Asset: %s\n", asset)
	if h.IPStr != "" {
		fmt.Fprintf(&b, "IP: %s\n", h.IPStr)
	}
	if h.Org != "" {
		fmt.Fprintf(&b, "Org: %s\n", h.Org)
	}
	if h.ISP != "" {
		fmt.Fprintf(&b, "ISP: %s\n", h.ISP)
	}
	if h.OS != "" {
		fmt.Fprintf(&b, "OS: %s\n", h.OS)
	}
	if len(h.Hostnames) > 0 {
		fmt.Fprintf(&b, "Hostnames: %s\n", strings.Join(h.Hostnames, ", "))
	}
	if len(h.Ports) > 0 {
		ports := make([]string, len(h.Ports))
		for i, p := range h.Ports {
			ports[i] = fmt.Sprintf("%d", p)
		}
		fmt.Fprintf(&b, "Ports: %s\n", strings.Join(ports, ", "))
	}
	for _, d := range h.Data {
		banner := strings.TrimSpace(d.Banner)
		if banner == "" {
			continue
		}
		fmt.Fprintf(&b, "Port %d banner:\n%s\n", d.Port, banner)
	}
	return strings.TrimRight(b.String(), "\n")
}
