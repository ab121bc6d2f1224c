// cmd/enum.go
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bl4cksku11/rto-toolkit/internal/assets"
	"github.com/bl4cksku11/rto-toolkit/internal/core/logger"
	"github.com/bl4cksku11/rto-toolkit/internal/intel"
	"github.com/bl4cksku11/rto-toolkit/internal/output"
	"github.com/bl4cksku11/rto-toolkit/internal/runner"
)

var (
	enumInput      string
	enumOutputDir  string
	enumFormat     string
	enumHTMLReport string
	enumTimeout    time.Duration
)

// enumCmd represents the enum command
var enumCmd = &cobra.Command{
	Use:   "enum",
	Short: "Enumerate a list of assets against an intelligence provider.",
	Long: `The enum command loads a target list (comma-separated single line, or
newline-separated), looks up each asset once against the selected provider in
input order, and writes every successful report into one timestamped artifact.
Per-asset failures are logged and skipped; the batch always continues.`,
	Example: `  rto-toolkit enum -i targets.txt
  rto-toolkit enum -i targets.txt -o results --provider censys
  echo done | rto-toolkit enum  # prompts for key and input file`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.GetLogger()

		resolveCredentials()
		registerProviders(cmd.Flags().Changed("timeout"))
		provider, err := intel.Get(providerName)
		if err != nil {
			color.Red("❌ %v (available: %s)", err, strings.Join(intel.Names(), ", "))
			os.Exit(1)
		}

		if enumInput == "" && config != nil {
			enumInput = config.InputFile
		}
		if enumOutputDir == "" && config != nil {
			enumOutputDir = config.OutputDir
		}
		if enumInput == "" {
			enumInput = promptLine("Target list file: ")
		}
		assetList, err := assets.LoadFile(enumInput)
		if err != nil {
			color.Red("❌ Failed to load asset list: %v", err)
			os.Exit(1)
		}
		color.Cyan("\n🔎 Loaded %d assets, querying %s...", len(assetList), provider.Name())

		if enumOutputDir != "" {
			if err := os.MkdirAll(enumOutputDir, 0755); err != nil {
				color.Red("❌ Failed to create output directory: %v", err)
				os.Exit(1)
			}
		}
		startedAt := time.Now()
		artifactPath := filepath.Join(enumOutputDir, output.ArtifactName(provider.Name()+"-enum", "txt", startedAt))

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " querying assets..."
		s.Start()
		batch := runner.Run(ctx, assetList, provider)
		s.Stop()

		if err := output.WriteArtifact(artifactPath, batch); err != nil {
			color.Red("❌ %v", err)
			os.Exit(1)
		}

		summary, err := output.FormatSummary(batch, enumFormat)
		if err != nil {
			color.Red("❌ %v", err)
			os.Exit(1)
		}
		fmt.Println(summary)
		color.Green("✅ Saved %d of %d assets to %s", batch.Successes(), len(batch), artifactPath)

		if enumHTMLReport != "" {
			if err := output.GenerateHTMLReport(batch, provider.Name(), startedAt, enumHTMLReport); err != nil {
				color.Red("❌ %v", err)
				os.Exit(1)
			}
			color.Cyan("📄 HTML report saved to %s", enumHTMLReport)
		}
		log.Infof("Enumeration completed: %d/%d assets with data", batch.Successes(), len(batch))
	},
}

// resolveCredentials prompts on stdin for any credential the selected
// provider needs that neither flag, env, nor config supplied. Missing
// credentials are fatal before any query runs.
func resolveCredentials() {
	if providerName == "censys" {
		if censysID == "" {
			censysID = promptLine("Censys API ID: ")
		}
		if censysSecret == "" {
			censysSecret = promptLine("Censys API secret: ")
		}
		if censysID == "" || censysSecret == "" {
			color.Red("❌ Censys credentials are required")
			os.Exit(1)
		}
		return
	}
	if shodanAPIKey == "" {
		shodanAPIKey = promptLine("Shodan API key: ")
	}
	if shodanAPIKey == "" {
		color.Red("❌ A Shodan API key is required (flag --api-key, env SHODAN_API_KEY, or config)")
		os.Exit(1)
	}
}

func registerProviders(timeoutChanged bool) {
	timeout := enumTimeout
	if !timeoutChanged && config != nil {
		timeout = config.QueryTimeoutDuration()
	}
	httpClient := &http.Client{Timeout: timeout}

	shodan := intel.NewShodanClient(shodanAPIKey)
	shodan.HTTP = httpClient
	intel.Register(shodan)

	if censysID != "" && censysSecret != "" {
		censys := intel.NewCensysClient(censysID, censysSecret)
		censys.HTTP = httpClient
		intel.Register(censys)
	}
}

func promptLine(prompt string) string {
	fmt.Print(prompt)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}

func init() {
	rootCmd.AddCommand(enumCmd)

	// Local flags for the enum command
	enumCmd.Flags().StringVarP(&enumInput, "input", "i", "", "Asset list file (prompted for when omitted).")
	enumCmd.Flags().StringVarP(&enumOutputDir, "output-dir", "o", "", "Directory for the output artifact (default: current directory).")
	enumCmd.Flags().StringVarP(&enumFormat, "format", "f", "console", "Summary format: console, json, csv.")
	enumCmd.Flags().StringVar(&enumHTMLReport, "html-report", "", "Also write an HTML run report to this path.")
	enumCmd.Flags().DurationVarP(&enumTimeout, "timeout", "w", 30*time.Second, "Per-query timeout (e.g. 10s, 1m).")
}
