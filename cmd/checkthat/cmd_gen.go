package main

import (
	"fmt"
	"path/filepath"

	"github.com/isti03/checkthat-generator/project"
	"github.com/isti03/checkthat-generator/verify"
	"github.com/spf13/cobra"
)

func newGenCmd() *cobra.Command {
	var output string
	var dryRun bool
	var check bool

	cmd := &cobra.Command{
		Use:   "gen <script>...",
		Short: "Generate Java sources from scripts",
		Long: `Run each script and write the declarations it produces below the
output directory, one file per declaration at <package path>/<Name>.java.

A declaration whose target file already exists fails and stops the script.
With --dry-run nothing is written and the sources are printed instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = cfg.Output
			}
			check = check || cfg.Verify

			tree := project.NewTree(nil, output)
			if dryRun {
				tree = project.NewMemTree()
			}

			opts := runOptions()
			opts.Sink = tree
			for _, path := range args {
				s, err := loadScript(path)
				if err != nil {
					return fmt.Errorf("gen: %w", err)
				}
				results, err := s.Run(opts)
				if err != nil {
					return fmt.Errorf("gen: %w", err)
				}
				for _, r := range results {
					if check {
						if err := verify.Check(cmd.Context(), []byte(r.Text())); err != nil {
							return fmt.Errorf("gen: verify %s: %w", r.Path(), err)
						}
					}
					if dryRun {
						fmt.Fprintf(cmd.OutOrStdout(), "// %s\n%s\n", r.Path(), r.Text())
						continue
					}
					fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(output, filepath.FromSlash(r.Path())))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory (default from config)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the sources instead of writing them")
	cmd.Flags().BoolVar(&check, "verify", false, "syntax check every generated source")

	return cmd
}
