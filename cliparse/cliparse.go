package cliparse

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string
	StateDir    string
	PageSize    int
	HTTPTimeout time.Duration
	NoColor     bool
}

// StatePath returns the location of the local state database.
func (c Config) StatePath() string {
	return filepath.Join(c.StateDir, "state.db")
}

// ParseFlags validates flags and resolves defaults
func ParseFlags(args []string) (Config, error) {
	// Optional .env for local dev; ignored when absent
	_ = godotenv.Load()

	var cfg Config
	var timeoutStr string

	fs := flag.NewFlagSet("alize", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "u", "", "API base URL")
	fs.StringVar(&cfg.StateDir, "s", "", "State directory")
	fs.IntVar(&cfg.PageSize, "n", 0, "List page size")
	fs.StringVar(&timeoutStr, "timeout", "", "HTTP timeout (e.g. 15s)")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable ANSI color output")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = os.Getenv("ALIZE_API_URL")
	}
	if cfg.APIBaseURL == "" {
		return Config{}, errors.New("API base URL required (use -u or ALIZE_API_URL env)")
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	if cfg.StateDir == "" {
		cfg.StateDir = os.Getenv("ALIZE_STATE_DIR")
	}
	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, errors.New("cannot resolve home directory; set ALIZE_STATE_DIR")
		}
		cfg.StateDir = filepath.Join(home, ".alize")
	}

	if cfg.PageSize == 0 {
		if sizeStr := os.Getenv("ALIZE_PAGE_SIZE"); sizeStr != "" {
			size, err := strconv.Atoi(sizeStr)
			if err != nil {
				return Config{}, errors.New("invalid ALIZE_PAGE_SIZE env variable")
			}
			cfg.PageSize = size
		} else {
			cfg.PageSize = 20 // default
		}
	}
	if cfg.PageSize < 1 || cfg.PageSize > 100 {
		return Config{}, errors.New("page size must be between 1 and 100")
	}

	if timeoutStr == "" {
		timeoutStr = os.Getenv("ALIZE_HTTP_TIMEOUT")
	}
	if timeoutStr == "" {
		cfg.HTTPTimeout = 15 * time.Second
	} else {
		d, err := time.ParseDuration(timeoutStr)
		if err != nil || d <= 0 {
			return Config{}, errors.New("invalid HTTP timeout (want a positive duration like 15s)")
		}
		cfg.HTTPTimeout = d
	}

	if !cfg.NoColor && os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	return cfg, nil
}

// EnsureStateDir creates the state directory if it does not exist.
func EnsureStateDir(cfg Config) error {
	return os.MkdirAll(cfg.StateDir, 0o700)
}
