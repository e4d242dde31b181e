package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/pborges/boolmin/internal/formatter"
)

// fileConfig mirrors the .boolmin.toml schema: default formatter
// options the CLI applies when a flag isn't set explicitly.
type fileConfig struct {
	Format struct {
		Operators   string `toml:"operators"`
		Parentheses string `toml:"parentheses"`
	} `toml:"format"`
}

// loadConfig reads .boolmin.toml from the current directory, falling
// back to $HOME/.boolmin.toml. A missing file at either location is not
// an error — it just means defaults apply.
func loadConfig() (fileConfig, error) {
	var cfg fileConfig

	for _, path := range configCandidates() {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return fileConfig{}, err
		}
		return cfg, nil
	}
	return cfg, nil
}

func configCandidates() []string {
	home, _ := os.UserHomeDir()
	candidates := []string{".boolmin.toml"}
	if home != "" {
		candidates = append(candidates, filepath.Join(home, ".boolmin.toml"))
	}
	return candidates
}

// formatDefaults resolves fileConfig into formatter.Options, falling
// back to symbolic/minimal for anything unset or unrecognized.
func formatDefaults(cfg fileConfig) formatter.Options {
	opts := formatter.Options{Operators: formatter.Symbolic, Parentheses: formatter.Minimal}
	switch cfg.Format.Operators {
	case "word":
		opts.Operators = formatter.Word
	case "symbolic", "":
		opts.Operators = formatter.Symbolic
	}
	switch cfg.Format.Parentheses {
	case "full":
		opts.Parentheses = formatter.Full
	case "minimal", "":
		opts.Parentheses = formatter.Minimal
	}
	return opts
}
