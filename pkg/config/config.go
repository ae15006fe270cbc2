package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	StrategyBacktracking = "backtracking"
	StrategyStack        = "stack"
)

var ValidStrategies = []string{StrategyBacktracking, StrategyStack}

type Config struct {
	Env    string
	Log    LogConfig
	Search SearchConfig
	CSV    CSVConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// SearchConfig governs how the combinations are searched for
type SearchConfig struct {
	Strategy string
	// Inputs whose search space (product of group counts) exceeds MaxSpace are rejected before searching
	MaxSpace uint64
}

type CSVConfig struct {
	Delimiter rune
}

// Load reads the configuration from the environment and from the given file, or from a .env file in the working
// directory when file is empty. A missing .env file is not an error, a missing explicit file is
func Load(file string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigFile(".env")
		v.SetConfigType("env")
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || (!errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist)) {
			return nil, fmt.Errorf("cannot read config file: %w", err)
		}
	}

	cfg := &Config{}
	cfg.Env = v.GetString("ENV")
	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}
	cfg.Search = SearchConfig{
		Strategy: strings.ToLower(v.GetString("SEARCH_STRATEGY")),
		MaxSpace: v.GetUint64("SEARCH_MAX_SPACE"),
	}

	delimiter, size := utf8.DecodeRuneInString(v.GetString("CSV_DELIMITER"))
	if size == 0 || size != len(v.GetString("CSV_DELIMITER")) {
		return nil, fmt.Errorf("csv delimiter must be a single character: \"%v\"", v.GetString("CSV_DELIMITER"))
	}
	cfg.CSV = CSVConfig{Delimiter: delimiter}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) Validate() error {
	if !slices.Contains(ValidStrategies, cfg.Search.Strategy) {
		return fmt.Errorf("%v is not a valid search strategy", cfg.Search.Strategy)
	} else if cfg.Search.MaxSpace == 0 {
		return errors.New("search max space must be greater than 0")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("SEARCH_STRATEGY", StrategyBacktracking)
	v.SetDefault("SEARCH_MAX_SPACE", 1000000)

	v.SetDefault("CSV_DELIMITER", ";")
}
