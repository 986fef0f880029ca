package cli

import (
	"fmt"
	"os"

	"github.com/koreg/sanctia/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sanctia",
	Short: "Sanctia - Korean financial sanction notice collector",
	Long: `Sanctia collects sanction and enforcement notices published by Korean
financial regulators (FSS, Bank of Korea, KOFIA, KRX Market Oversight
Commission), downloads the attached decision documents, and extracts
structured records from them:

- sanctioned institution, sanction date, target, and measure
- individual incidents (title + detail) from the findings section
- OCR fallback for image-only PDFs, with Hangul-aware cleanup

Extraction is pattern-based and conservative: a field the patterns
cannot read is recorded as a gap, never guessed.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("sanctia v0.3.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.sanctia/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.sanctia")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match SANCTIA_*
	viper.SetEnvPrefix("SANCTIA")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the runtime configuration: built-in defaults, then
// config file and SANCTIA_* environment values where set. Command flags
// apply on top in the individual commands.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if viper.IsSet("http.timeout") {
		cfg.HTTP.Timeout = viper.GetDuration("http.timeout")
	}
	if viper.IsSet("http.user_agent") {
		cfg.HTTP.UserAgent = viper.GetString("http.user_agent")
	}
	if viper.IsSet("http.max_body_bytes") {
		cfg.HTTP.MaxBodyBytes = viper.GetInt64("http.max_body_bytes")
	}
	if viper.IsSet("http.insecure_tls") {
		cfg.HTTP.InsecureTLS = viper.GetBool("http.insecure_tls")
	}
	if viper.IsSet("http.http_proxy") {
		cfg.HTTP.HTTPProxy = viper.GetString("http.http_proxy")
	}
	if viper.IsSet("http.https_proxy") {
		cfg.HTTP.HTTPSProxy = viper.GetString("http.https_proxy")
	}

	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if viper.IsSet("cache.dir") {
		cfg.Cache.Dir = viper.GetString("cache.dir")
	}
	if viper.IsSet("cache.memory_ttl") {
		cfg.Cache.MemoryTTL = viper.GetDuration("cache.memory_ttl")
	}
	if viper.IsSet("cache.disk_ttl") {
		cfg.Cache.DiskTTL = viper.GetDuration("cache.disk_ttl")
	}

	if viper.IsSet("crawl.pages") {
		cfg.Crawl.Pages = viper.GetInt("crawl.pages")
	}
	if viper.IsSet("crawl.workers") {
		cfg.Crawl.Workers = viper.GetInt("crawl.workers")
	}
	if viper.IsSet("crawl.requests_per_second") {
		cfg.Crawl.RequestsPerSecond = viper.GetFloat64("crawl.requests_per_second")
	}
	if viper.IsSet("crawl.burst_size") {
		cfg.Crawl.BurstSize = viper.GetInt("crawl.burst_size")
	}
	if viper.IsSet("crawl.respect_robots") {
		cfg.Crawl.RespectRobots = viper.GetBool("crawl.respect_robots")
	}
	if viper.IsSet("crawl.download_retries") {
		cfg.Crawl.DownloadRetries = viper.GetInt("crawl.download_retries")
	}

	if viper.IsSet("ocr.enabled") {
		cfg.OCR.Enabled = viper.GetBool("ocr.enabled")
	}
	if viper.IsSet("ocr.languages") {
		cfg.OCR.Languages = viper.GetStringSlice("ocr.languages")
	}
	if viper.IsSet("ocr.dpi") {
		cfg.OCR.DPI = viper.GetInt("ocr.dpi")
	}
	if viper.IsSet("ocr.poppler_path") {
		cfg.OCR.PopplerPath = viper.GetString("ocr.poppler_path")
	}
	if viper.IsSet("ocr.min_hangul") {
		cfg.OCR.MinHangul = viper.GetInt("ocr.min_hangul")
	}

	if viper.IsSet("extract.overrides_path") {
		cfg.Extract.OverridesPath = viper.GetString("extract.overrides_path")
	}

	if viper.IsSet("output.data_dir") {
		cfg.Output.DataDir = viper.GetString("output.data_dir")
	}
	if viper.IsSet("output.csv_path") {
		cfg.Output.CSVPath = viper.GetString("output.csv_path")
	}
	cfg.Output.Verbose = verbose

	if viper.IsSet("llm.provider") {
		cfg.LLM.Provider = viper.GetString("llm.provider")
	}
	if viper.IsSet("llm.model") {
		cfg.LLM.Model = viper.GetString("llm.model")
	}
	if viper.IsSet("llm.base_url") {
		cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	}

	return cfg
}

// resolveAgencies turns the optional positional argument into the agency
// list to work on: all agencies when absent.
func resolveAgencies(args []string) ([]model.Agency, error) {
	if len(args) == 0 {
		return model.Agencies(), nil
	}

	want := model.Agency(args[0])
	for _, a := range model.Agencies() {
		if a == want {
			return []model.Agency{a}, nil
		}
	}
	return nil, fmt.Errorf("unknown agency %q (expected one of: fss, bok, kofia, krx)", args[0])
}
