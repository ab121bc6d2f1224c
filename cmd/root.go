// cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bl4cksku11/rto-toolkit/internal/core"
	"github.com/bl4cksku11/rto-toolkit/internal/core/logger"
)

var (
	verbose      bool
	version      = "0.2.0" // Define tool version here
	shodanAPIKey string
	censysID     string
	censysSecret string
	providerName string
	configPath   string
	config       *core.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rto-toolkit",
	Short: "rto-toolkit: batch asset enumeration against intelligence providers.",
	Long: `rto-toolkit batches host lookups against an asset-intelligence provider
(Shodan by default) and persists every successful report into a single
timestamped artifact. It also ships a helper that extracts target domains
from captured curl commands.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize logger before any command runs
		if verbose {
			logger.SetupLogger("debug")
		} else {
			logger.SetupLogger("info")
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	printBanner()
	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func loadConfigOrExit() {
	if configPath != "" {
		cfg, err := core.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		config = cfg
		if shodanAPIKey == "" && cfg.ShodanAPIKey != "" {
			shodanAPIKey = cfg.ShodanAPIKey
		}
		if censysID == "" && cfg.CensysID != "" {
			censysID = cfg.CensysID
		}
		if censysSecret == "" && cfg.CensysSecret != "" {
			censysSecret = cfg.CensysSecret
		}
		if providerName == "shodan" && cfg.Provider != "" {
			providerName = cfg.Provider
		}
	}
}

func printBanner() {
	banner := `
 ________  _________  ________          _________  ___  __
|\   __  \|\___   ___\\   __  \        |\___   ___\\  \|\  \
\ \  \|\  \|___ \  \_\ \  \|\  \       \|___ \  \_\ \  \/  /|_
 \ \   _  _\   \ \  \ \ \  \\\  \  ___      \ \  \ \ \   ___  \
  \ \  \\  \|   \ \  \ \ \  \\\  \|\__\      \ \  \ \ \  \\ \  \
   \ \__\\ _\    \ \__\ \ \_______\|__|       \ \__\ \ \__\\ \__\
    \|__|\|__|    \|__|  \|_______|            \|__|  \|__| \|__|
`
	color.Cyan(banner)
	color.Magenta("rto-toolkit v%s - asset enumeration for red team ops", version)
}

func init() {
	// Add global flags here
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging.")
	rootCmd.PersistentFlags().StringVar(&shodanAPIKey, "api-key", os.Getenv("SHODAN_API_KEY"), "Shodan API key (or set SHODAN_API_KEY env)")
	rootCmd.PersistentFlags().StringVar(&censysID, "censys-id", os.Getenv("CENSYS_API_ID"), "Censys API ID (or set CENSYS_API_ID env)")
	rootCmd.PersistentFlags().StringVar(&censysSecret, "censys-secret", os.Getenv("CENSYS_API_SECRET"), "Censys API Secret (or set CENSYS_API_SECRET env)")
	rootCmd.PersistentFlags().StringVar(&providerName, "provider", "shodan", "Intelligence provider to query (shodan, censys)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (YAML or JSON)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("{{.Version}}\r\n")

	cobra.OnInitialize(loadConfigOrExit)
}
