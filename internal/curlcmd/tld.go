// internal/curlcmd/tld.go
package curlcmd

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"
)

// IANATLDURL is a variable so tests can point the fetcher at a mock server.
var IANATLDURL = "https://data.iana.org/TLD/tlds-alpha-by-domain.txt"

// DefaultHTTPClient is used for TLD fetches; tests swap it out.
var DefaultHTTPClient = &http.Client{Timeout: 15 * time.Second}

// LoadTLDs reads a newline-separated TLD list; blank lines and '#' comments
// are skipped, entries lowercased.
func LoadTLDs(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tlds := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tlds[strings.ToLower(line)] = struct{}{}
	}
	return tlds, scanner.Err()
}

// FetchTLDs downloads the current IANA TLD list.
func FetchTLDs(ctx context.Context) (map[string]struct{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, IANATLDURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := DefaultHTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch IANA TLDs: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("IANA TLD list returned status %s", resp.Status)
	}

	tlds := make(map[string]struct{})
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tlds[strings.ToLower(line)] = struct{}{}
	}
	return tlds, scanner.Err()
}

// SaveTLDs writes the TLD set to path, sorted one per line.
func SaveTLDs(path string, tlds map[string]struct{}) error {
	list := make([]string, 0, len(tlds))
	for t := range tlds {
		list = append(list, t)
	}
	sort.Strings(list)
	return os.WriteFile(path, []byte(strings.Join(list, "\n")+"\n"), 0644)
}
