package cli

import (
	"testing"

	"github.com/pborges/boolmin/internal/formatter"
)

func TestFormatDefaultsEmpty(t *testing.T) {
	got := formatDefaults(fileConfig{})
	if got.Operators != formatter.Symbolic || got.Parentheses != formatter.Minimal {
		t.Errorf("got %+v, want symbolic/minimal defaults", got)
	}
}

func TestFormatDefaultsWordFull(t *testing.T) {
	var cfg fileConfig
	cfg.Format.Operators = "word"
	cfg.Format.Parentheses = "full"
	got := formatDefaults(cfg)
	if got.Operators != formatter.Word || got.Parentheses != formatter.Full {
		t.Errorf("got %+v, want word/full", got)
	}
}

func TestFormatDefaultsUnrecognizedFallsBackToDefault(t *testing.T) {
	var cfg fileConfig
	cfg.Format.Operators = "garbage"
	got := formatDefaults(cfg)
	if got.Operators != formatter.Symbolic {
		t.Errorf("got %v, want symbolic fallback", got.Operators)
	}
}
