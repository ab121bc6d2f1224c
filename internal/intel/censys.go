// internal/intel/censys.go
package intel

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// CensysBaseURL is a variable so tests can point the client at a mock server.
var CensysBaseURL = "https://search.censys.io"

type censysHost struct {
	Result struct {
		IP       string `json:"ip"`
		Services []struct {
			Port        int    `json:"port"`
			ServiceName string `json:"service_name"`
		} `json:"services"`
		Location struct {
			Country string `json:"country"`
			City    string `json:"city"`
		} `json:"location"`
	} `json:"result"`
}

// CensysClient looks up host intelligence via the Censys v2 hosts API.
type CensysClient struct {
	APIID     string
	APISecret string
	HTTP      *http.Client
}

func NewCensysClient(apiID, apiSecret string) *CensysClient {
	return &CensysClient{APIID: apiID, APISecret: apiSecret, HTTP: DefaultHTTPClient}
}

func (c *CensysClient) Name() string { return "censys" }

func (c *CensysClient) Lookup(ctx context.Context, asset string) Result {
	url := fmt.Sprintf("%s/api/v2/hosts/%s", CensysBaseURL, asset)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{Status: StatusFailure, Err: err}
	}
	req.SetBasicAuth(c.APIID, c.APISecret)
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
		return Result{Status: StatusFailure, Err: fmt.Errorf("Censys API error: %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Status: StatusFailure, Err: err}
	}
	var host censysHost
	if err := json.Unmarshal(body, &host); err != nil {
		return Result{Status: StatusFailure, Err: err}
	}
	if host.Result.IP == "" && len(host.Result.Services) == 0 {
		return Result{Status: StatusEmpty}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Asset: %s\n", asset)
	fmt.Fprintf(&b, "IP: %s\n", host.Result.IP)
	if host.Result.Location.City != "" || host.Result.Location.Country != "" {
		fmt.Fprintf(&b, "Location: %s, %s\n", host.Result.Location.City, host.Result.Location.Country)
	}
	for _, s := range host.Result.Services {
		fmt.Fprintf(&b, "Service: %d/%s\n", s.Port, s.ServiceName)
	}
	return Result{Status: StatusSuccess, Report: strings.TrimRight(b.String(), "\n")}
}
