package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/gitpublish/internal/model"
	"github.com/mmr-tortoise/gitpublish/internal/tagpattern"
)

// searchNames are the config file names probed in the working directory,
// in order. The TOML name is unhidden because it is the primary,
// documented format.
var searchNames = []string{
	"gitpublish.toml",
	".gitpublish.yaml",
	".gitpublish.yml",
	".gitpublish.jsonc",
}

// Load reads the configuration.
//
// When explicitPath is non-empty that file must exist and decode; any
// failure is an error. Otherwise the working directory is probed for the
// well-known names, then the user config directory for
// gitpublish/gitpublish.toml. When nothing is found, the built-in defaults
// are returned — a missing config file is a normal condition, not an error.
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return loadFile(explicitPath)
	}

	for _, name := range searchNames {
		if _, err := os.Stat(name); err == nil {
			return loadFile(name)
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		userPath := filepath.Join(configDir, "gitpublish", "gitpublish.toml")
		if _, err := os.Stat(userPath); err == nil {
			return loadFile(userPath)
		}
	}

	return Default(), nil
}

// loadFile reads and decodes a single config file, chosen by extension,
// then fills unset fields with defaults.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("cannot read config file %s", path), err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".jsonc", ".json":
		// Strip // and /* */ comments and trailing commas before handing
		// the document to encoding/json.
		err = json.Unmarshal(jsonc.ToJSON(data), &cfg)
	default:
		return Config{}, model.NewCLIError(model.ExitConfigError,
			fmt.Sprintf("unsupported config format %q (expected .toml, .yaml or .jsonc)", ext))
	}
	if err != nil {
		return Config{}, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("cannot parse config file %s", path), err)
	}

	cfg.applyDefaults()

	// A branch pattern without the {version} placeholder would produce the
	// same tag name on every release; reject it here rather than failing
	// with "tag already exists" on the second publish.
	for _, branch := range cfg.BranchNames() {
		if !strings.Contains(cfg.Branches[branch], tagpattern.Placeholder) {
			return Config{}, model.NewCLIError(model.ExitConfigError,
				fmt.Sprintf("tag pattern %q for branch %q must contain the %s placeholder",
					cfg.Branches[branch], branch, tagpattern.Placeholder))
		}
	}

	return cfg, nil
}
