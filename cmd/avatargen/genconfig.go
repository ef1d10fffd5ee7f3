package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/gogpu/avatar/palette"
)

func newGenConfigCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "genconfig FILE",
		Short: "Write a sample configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return genConfig(args[0], format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "toml or json (default from file extension, else toml)")
	return cmd
}

// genConfig writes a sample configuration and checks that it loads back.
func genConfig(path, format string) error {
	if format == "" {
		format = "toml"
		if filepath.Ext(path) == ".json" {
			format = "json"
		}
	}

	data, err := marshalConfig(sampleConfig(), format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	conf, err := loadConfig(nil, path)
	if err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("error getting config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("error validating config: %w", err)
	}
	return nil
}

func marshalConfig(doc map[string]any, format string) ([]byte, error) {
	switch format {
	case "toml":
		return toml.Marshal(doc)
	case "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown config format %q, want toml or json", format)
	}
}

// sampleConfig is the document genconfig writes. Palettes are written in
// their configuration form so every format can represent them.
func sampleConfig() map[string]any {
	colors := palette.Options{
		Background: palette.Single(palette.Hex("#f4f1de")),
		Foreground: palette.HexList("#e07a5f", "#3d405b", "#81b29a", "#f2cc8f"),
	}
	return map[string]any{
		"theme":     defaults["theme"],
		"size":      defaults["size"],
		"scale":     defaults["scale"],
		"workers":   defaults["workers"],
		"normalize": true,
		"log": map[string]any{
			"level": defaults["log.level"],
		},
		"colors": map[string]any{
			"background": colors.Background.Raw(),
			"foreground": colors.Foreground.Raw(),
		},
		"params": map[string]any{
			"grid_size": 8,
			"density":   0.5,
			"symmetry":  "vertical|horizontal",
		},
	}
}
