// cmd/domains.go
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bl4cksku11/rto-toolkit/internal/core/logger"
	"github.com/bl4cksku11/rto-toolkit/internal/curlcmd"
)

var (
	domainsCmdline   string
	domainsTLDFile   string
	domainsFetchTLDs bool
	domainsSaveTLDs  string
	domainsWildcards bool
	domainsRegexes   bool
)

// domainsCmd represents the domains command
var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "Extract target domains from a captured curl command.",
	Long: `The domains command parses a curl command (argument or stdin) and extracts
candidate domains from URLs, Host headers and --resolve/--connect-to values.
With a TLD list (local file or fetched from IANA) only domains with a known
top-level domain are kept, cutting false positives from paths and versions.`,
	Example: `  rto-toolkit domains --cmd "curl https://login.example.com -H 'Host: api.example.net'"
  echo "curl https://login.example.com" | rto-toolkit domains --tld-file tlds.txt --wildcards
  rto-toolkit domains --fetch-tlds --save-tlds tlds.txt --cmd "curl https://x.example.io"`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.GetLogger()

		cmdline := domainsCmdline
		if cmdline == "" {
			data, _ := io.ReadAll(os.Stdin)
			cmdline = strings.TrimSpace(string(data))
		}
		if cmdline == "" {
			color.Red("❌ Provide a curl command via --cmd or stdin")
			os.Exit(1)
		}

		domains, err := curlcmd.ExtractDomains(cmdline)
		if err != nil {
			color.Red("❌ %v", err)
			os.Exit(1)
		}
		log.Debugf("Extracted %d candidate domains", len(domains))

		var tlds map[string]struct{}
		if domainsFetchTLDs {
			tlds, err = curlcmd.FetchTLDs(context.Background())
			if err != nil {
				color.Red("❌ %v", err)
				os.Exit(1)
			}
			log.Infof("Fetched %d TLDs from IANA", len(tlds))
			if domainsSaveTLDs != "" {
				if err := curlcmd.SaveTLDs(domainsSaveTLDs, tlds); err != nil {
					color.Red("❌ Failed to save TLD list: %v", err)
					os.Exit(1)
				}
			}
		} else if domainsTLDFile != "" {
			tlds, err = curlcmd.LoadTLDs(domainsTLDFile)
			if err != nil {
				color.Red("❌ Failed to load TLD list: %v", err)
				os.Exit(1)
			}
		}
		if tlds != nil {
			domains = curlcmd.FilterByTLDs(domains, tlds)
		}

		if len(domains) == 0 {
			color.Yellow("⚠️  No domains matched.")
			return
		}
		for _, d := range domains {
			fmt.Println(d)
		}
		if domainsWildcards {
			color.Cyan("\n# suggested wildcard patterns")
			for _, w := range curlcmd.Wildcards(domains) {
				fmt.Println(w)
			}
		}
		if domainsRegexes {
			color.Cyan("\n# per-label regex patterns")
			for _, w := range curlcmd.Wildcards(domains) {
				label := strings.TrimSuffix(w, ".*")
				fmt.Println(curlcmd.RegexForLabel(label))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(domainsCmd)

	domainsCmd.Flags().StringVar(&domainsCmdline, "cmd", "", "curl command as a single argument (stdin when omitted)")
	domainsCmd.Flags().StringVar(&domainsTLDFile, "tld-file", "", "Path to a newline-separated TLD list")
	domainsCmd.Flags().BoolVar(&domainsFetchTLDs, "fetch-tlds", false, "Fetch the latest IANA TLD list (requires network)")
	domainsCmd.Flags().StringVar(&domainsSaveTLDs, "save-tlds", "", "Save fetched TLDs to this path (with --fetch-tlds)")
	domainsCmd.Flags().BoolVar(&domainsWildcards, "wildcards", false, "Print suggested wildcard patterns (label.*)")
	domainsCmd.Flags().BoolVar(&domainsRegexes, "regexes", false, "Print per-label regex patterns")
}
