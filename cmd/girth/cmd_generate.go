package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/girth/converters"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		flags  genFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random positioned graph as a YAML document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.apply(cmd, a.cfg)
			if err != nil {
				return err
			}
			g, err := a.generate(cfg)
			if err != nil {
				return err
			}
			data, err := converters.Encode(g)
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err = os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			a.logger.Info("graph written", "path", output, "vertices", g.Order(), "edges", g.Size())

			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document to a file instead of stdout")

	return cmd
}
