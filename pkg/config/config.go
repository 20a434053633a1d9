package config

import (
	"github.com/go-ini/ini"
	"github.com/pkg/errors"
)

// REPLConfig holds the optional settings of the interactive loop.
type REPLConfig struct {
	Prompt string
	Debug  bool
}

func Default() *REPLConfig {
	return &REPLConfig{Prompt: "> "}
}

// Load reads an ini file with a [repl] section. An empty path yields
// the defaults; missing keys keep their default values.
func Load(path string) (*REPLConfig, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := ini.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "loading config")
	}
	cfg := Default()
	cfg.Prompt = f.Section("repl").Key("Prompt").MustString(cfg.Prompt)
	cfg.Debug = f.Section("repl").Key("Debug").MustBool(cfg.Debug)
	return cfg, nil
}
