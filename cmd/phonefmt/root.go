package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"phonelink_backend/internal/phonelink/domain"
	"phonelink_backend/internal/phonelink/service"
	"phonelink_backend/platform/logger"
)

// settingsFlags are shared by every command that renders numbers.
type settingsFlags struct {
	file    string
	region  string
	format  string
	linkify bool
}

// settingsFile mirrors the stored settings. Values are read as text and
// normalized like an admin form submission.
type settingsFile struct {
	Region  string `yaml:"region"`
	Format  string `yaml:"format"`
	Linkify string `yaml:"linkify"`
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "phonefmt",
		Short:        "Format phone numbers and expand [phone] shortcodes",
		SilenceUsage: true,
	}

	root.AddCommand(newRenderCmd())
	root.AddCommand(newFormatCmd())
	root.AddCommand(newRegionsCmd())
	root.AddCommand(newTokenCmd())
	return root
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.file, "settings", "", "YAML file with region, format and linkify defaults")
	cmd.Flags().StringVar(&f.region, "region", "", "default region, e.g. NL")
	cmd.Flags().StringVar(&f.format, "format", "", "default format: e164, int, national, rfc3966 or 0-3")
	cmd.Flags().BoolVar(&f.linkify, "linkify", true, "wrap numbers in a tel: link")
}

// load builds the settings from the file, then applies explicitly set flags.
func (f *settingsFlags) load(cmd *cobra.Command) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	if f.file != "" {
		data, err := os.ReadFile(f.file)
		if err != nil {
			return domain.Settings{}, fmt.Errorf("read settings: %w", err)
		}
		var raw settingsFile
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return domain.Settings{}, fmt.Errorf("parse settings %s: %w", f.file, err)
		}
		settings = domain.Normalize(domain.RawSettings{
			Region:  raw.Region,
			Format:  raw.Format,
			Linkify: raw.Linkify,
		})
	}

	flags := cmd.Flags()
	if flags.Changed("region") {
		settings.Region = domain.NormalizeRegion(f.region)
	}
	if flags.Changed("format") {
		if format, ok := domain.ParseFormatToken(f.format); ok {
			settings.Format = format
		} else {
			settings.Format = domain.Normalize(domain.RawSettings{Format: f.format}).Format
		}
	}
	if flags.Changed("linkify") {
		settings.Linkify = f.linkify
	}
	return settings, nil
}

// staticSettings serves a fixed record to the phone link service.
type staticSettings domain.Settings

func (s staticSettings) Get(context.Context) (domain.Settings, error) {
	return domain.Settings(s), nil
}

func newService(cmd *cobra.Command, settings domain.Settings) *service.Service {
	return service.New(staticSettings(settings), logger.NewWithWriter("development", cmd.ErrOrStderr()))
}
