// internal/curlcmd/parse.go
package curlcmd

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/google/shlex"
)

var (
	domainRe  = regexp.MustCompile(`([A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)+)`)
	hostHdrRe = regexp.MustCompile(`(?i)Host\s*:\s*([^;,\s"']+)`)
)

// normalizeHost strips userinfo, IPv6 brackets and the port from a netloc.
func normalizeHost(netloc string) string {
	if at := strings.LastIndex(netloc, "@"); at != -1 {
		netloc = netloc[at+1:]
	}
	netloc = strings.Trim(netloc, "[]")
	if colon := strings.Index(netloc, ":"); colon != -1 {
		netloc = netloc[:colon]
	}
	return strings.ToLower(netloc)
}

// ExtractDomains tokenizes a curl command line and collects every candidate
// domain: direct URLs, --url/-I next-token URLs, Host headers, --resolve and
// --connect-to values, and any domain-shaped substring in remaining tokens.
// The result is de-duplicated and sorted.
func ExtractDomains(cmdline string) ([]string, error) {
	tokens, err := shlex.Split(cmdline)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize command: %w", err)
	}

	found := make(map[string]struct{})
	add := func(host string) {
		host = normalizeHost(host)
		if host != "" {
			found[host] = struct{}{}
		}
	}

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]

		if strings.HasPrefix(t, "http://") || strings.HasPrefix(t, "https://") {
			if u, err := url.Parse(t); err == nil && u.Host != "" {
				add(u.Host)
			}
		}

		switch t {
		case "--url", "-I", "--head":
			if i+1 < len(tokens) {
				next := tokens[i+1]
				if strings.HasPrefix(next, "http://") || strings.HasPrefix(next, "https://") {
					if u, err := url.Parse(next); err == nil && u.Host != "" {
						add(u.Host)
					}
				}
				i++
			}
		case "-H", "--header":
			if i+1 < len(tokens) {
				hdr := tokens[i+1]
				if m := hostHdrRe.FindStringSubmatch(hdr); m != nil {
					add(m[1])
				} else {
					for _, d := range domainRe.FindAllString(hdr, -1) {
						add(d)
					}
				}
				i++
			}
		case "--resolve", "--connect-to":
			// host:port:addr values, possibly comma separated
			if i+1 < len(tokens) {
				for _, part := range strings.Split(tokens[i+1], ",") {
					host := strings.TrimSpace(part)
					if colon := strings.Index(host, ":"); colon != -1 {
						host = host[:colon]
					}
					if host != "" {
						add(host)
					}
				}
				i++
			}
		default:
			for _, d := range domainRe.FindAllString(t, -1) {
				add(d)
			}
		}
	}

	domains := make([]string, 0, len(found))
	for d := range found {
		domains = append(domains, d)
	}
	sort.Strings(domains)
	return domains, nil
}

// FilterByTLDs keeps only domains whose final label is in the TLD set. This
// cuts false positives from version strings and file names that look like
// domains.
func FilterByTLDs(domains []string, tlds map[string]struct{}) []string {
	var out []string
	for _, d := range domains {
		idx := strings.LastIndex(d, ".")
		if idx == -1 || idx == len(d)-1 {
			continue
		}
		if _, ok := tlds[strings.ToLower(d[idx+1:])]; ok {
			out = append(out, d)
		}
	}
	return out
}

// Wildcards suggests scanner wildcard patterns from the second-level label of
// each domain, e.g. login.example.com -> example.*
func Wildcards(domains []string) []string {
	labels := make(map[string]struct{})
	for _, d := range domains {
		parts := strings.Split(d, ".")
		if len(parts) >= 2 {
			labels[parts[len(parts)-2]] = struct{}{}
		} else {
			labels[parts[0]] = struct{}{}
		}
	}
	out := make([]string, 0, len(labels))
	for l := range labels {
		out = append(out, l+".*")
	}
	sort.Strings(out)
	return out
}

// RegexForLabel returns a regex matching the label under any TLD, including
// subdomains.
func RegexForLabel(label string) string {
	return fmt.Sprintf(`(^|\.)%s\.[A-Za-z0-9.-]+$`, regexp.QuoteMeta(label))
}
