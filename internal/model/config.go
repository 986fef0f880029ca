package model

import "time"

// Config holds the full runtime configuration. Values are resolved from
// CLI flags, SANCTIA_* environment variables, and ~/.sanctia/config.yaml,
// in that priority order, on top of DefaultConfig.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http" json:"http"`
	Cache   CacheConfig   `yaml:"cache" json:"cache"`
	Crawl   CrawlConfig   `yaml:"crawl" json:"crawl"`
	OCR     OCRConfig     `yaml:"ocr" json:"ocr"`
	Extract ExtractConfig `yaml:"extract" json:"extract"`
	Output  OutputConfig  `yaml:"output" json:"output"`
	LLM     LLMConfig     `yaml:"llm" json:"llm"`
}

// HTTPConfig controls the fetcher.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls" json:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy" json:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy" json:"https_proxy"`
}

// CacheConfig controls the layered HTTP response cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// CrawlConfig controls board crawling.
type CrawlConfig struct {
	Pages             int     `yaml:"pages" json:"pages"`                           // List pages per agency
	Workers           int     `yaml:"workers" json:"workers"`                       // Concurrent notice workers
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"` // Per-host rate limit
	BurstSize         int     `yaml:"burst_size" json:"burst_size"`
	RespectRobots     bool    `yaml:"respect_robots" json:"respect_robots"`
	DownloadRetries   int     `yaml:"download_retries" json:"download_retries"`
}

// OCRConfig controls the Tesseract fallback for image-based PDFs.
type OCRConfig struct {
	Enabled     bool     `yaml:"enabled" json:"enabled"`
	Languages   []string `yaml:"languages" json:"languages"`       // Tesseract language hints
	DPI         int      `yaml:"dpi" json:"dpi"`                   // Rasterization resolution
	PopplerPath string   `yaml:"poppler_path" json:"poppler_path"` // pdftoppm binary (empty = $PATH lookup)
	MinHangul   int      `yaml:"min_hangul" json:"min_hangul"`     // Native-text Hangul threshold below which OCR kicks in
}

// ExtractConfig controls the extraction core.
type ExtractConfig struct {
	OverridesPath string `yaml:"overrides_path" json:"overrides_path"` // YAML known-issue override table
}

// OutputConfig controls persistence and console output.
type OutputConfig struct {
	DataDir string `yaml:"data_dir" json:"data_dir"`
	CSVPath string `yaml:"csv_path" json:"csv_path"`
	Verbose bool   `yaml:"verbose" json:"verbose"`
}

// LLMConfig controls the optional quality-report digest. Extraction output
// never depends on it.
type LLMConfig struct {
	Provider string `yaml:"provider" json:"provider"` // "" disables the digest
	Model    string `yaml:"model" json:"model"`
	APIKey   string `yaml:"-" json:"-"` // From env only, never persisted
	BaseURL  string `yaml:"base_url" json:"base_url"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "sanctia/0.3 (+https://github.com/koreg/sanctia)",
			MaxBodyBytes: 20_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".sanctia-cache",
			MemoryTTL: 10 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Crawl: CrawlConfig{
			Pages:             3,
			Workers:           4,
			RequestsPerSecond: 2,
			BurstSize:         4,
			RespectRobots:     true,
			DownloadRetries:   2,
		},
		OCR: OCRConfig{
			Enabled:   true,
			Languages: []string{"kor", "eng"},
			DPI:       300,
			MinHangul: 40,
		},
		Extract: ExtractConfig{},
		Output: OutputConfig{
			DataDir: "data",
			CSVPath: "data/sanctions.csv",
		},
	}
}
