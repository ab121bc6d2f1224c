// internal/assets/loader.go
package assets

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/bl4cksku11/rto-toolkit/internal/core"
)

// tokenRe is the permissive shape check for newline-format entries: it admits
// hostnames and dotted quads alike without trying to fully validate either.
// Malformed-but-shaped tokens are passed through; the provider reports them.
var tokenRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9.-]*$`)

// Load parses a raw asset list into an ordered slice of asset identifiers.
//
// Two formats are accepted: a single comma-separated line (tokens are trimmed,
// empty tokens dropped, no further validation), or a newline-separated list
// where every line must pass the permissive token check. Duplicates are kept
// and will be queried independently. Load never touches the network.
func Load(source string) ([]string, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, fmt.Errorf("empty asset list: %w", core.ErrInputFormat)
	}

	if strings.Contains(source, ",") {
		var list []string
		for _, tok := range strings.Split(source, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			list = append(list, tok)
		}
		if len(list) == 0 {
			return nil, fmt.Errorf("no usable tokens: %w", core.ErrInputFormat)
		}
		return list, nil
	}

	var list []string
	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !tokenRe.MatchString(line) {
			return nil, fmt.Errorf("line %q is not a valid IP or hostname: %w", line, core.ErrInputFormat)
		}
		list = append(list, line)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("no usable tokens: %w", core.ErrInputFormat)
	}
	return list, nil
}

// LoadFile reads path and parses it with Load.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(string(data))
}
