package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"phonelink_backend/internal/phonelink/domain"
)

func newRenderCmd() *cobra.Command {
	var flags settingsFlags
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Expand [phone] shortcodes in a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := flags.load(cmd)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			content, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read content: %w", err)
			}

			out := newService(cmd, settings).ExpandContent(cmd.Context(), string(content))
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func newFormatCmd() *cobra.Command {
	var flags settingsFlags
	cmd := &cobra.Command{
		Use:   "format <number>",
		Short: "Format a single phone number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := flags.load(cmd)
			if err != nil {
				return err
			}

			out := newService(cmd, settings).RenderShortcode(cmd.Context(), domain.Invocation{
				Positional: args,
			})
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	flags.register(cmd)
	return cmd
}
