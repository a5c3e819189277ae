package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/openpore/channelmap/internal/fetch"
)

// Load reads an experiment document from a local path or bucket URL and
// parses it. The format is chosen by extension: .toml (the default for
// nanopore tooling), or .yaml/.yml.
func Load(ctx context.Context, src string) (*Experiment, error) {
	data, err := fetch.ReadAll(ctx, src)
	if err != nil {
		return nil, err
	}

	raw, err := Decode(src, data)
	if err != nil {
		return nil, err
	}
	return FromMap(raw)
}

// Decode parses document bytes into a generic map based on the name's
// extension.
func Decode(name string, data []byte) (map[string]any, error) {
	base := strings.TrimSuffix(strings.TrimSuffix(name, ".gz"), ".zst")
	switch {
	case strings.HasSuffix(base, ".toml"):
		return decodeTOML(name, data)
	case strings.HasSuffix(base, ".yaml"), strings.HasSuffix(base, ".yml"):
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
}

func decodeTOML(name string, data []byte) (map[string]any, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return tree.ToMap(), nil
}
