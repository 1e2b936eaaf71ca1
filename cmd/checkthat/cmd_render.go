package main

import (
	"fmt"

	"github.com/isti03/checkthat-generator/format"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "render <script>",
		Short: "Print the declarations of a script without writing files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputFormat == "" {
				outputFormat = cfg.Format
			}
			s, err := loadScript(args[0])
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			results, err := s.Run(runOptions())
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}

			enc, err := format.NewEncoder(outputFormat, cmd.OutOrStdout(), format.WithIndent(cfg.Indent))
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			for _, r := range results {
				if err := enc.Encode(r.Builder.Declaration()); err != nil {
					return fmt.Errorf("encode %s: %w", r.Path(), err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format: java, line or json")

	return cmd
}
