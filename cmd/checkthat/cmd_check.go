package main

import (
	"fmt"
	"os"

	"github.com/isti03/checkthat-generator/project"
	"github.com/isti03/checkthat-generator/verify"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file-or-dir>...",
		Short: "Syntax check Java sources",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			for _, arg := range args {
				info, err := os.Stat(arg)
				if err != nil {
					return fmt.Errorf("check: %w", err)
				}
				if !info.IsDir() {
					files = append(files, arg)
					continue
				}
				found, err := project.NewTree(nil, arg).JavaFiles()
				if err != nil {
					return fmt.Errorf("check: %w", err)
				}
				files = append(files, found...)
			}

			failed := 0
			for _, file := range files {
				src, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("check: %w", err)
				}
				if err := verify.Check(cmd.Context(), src); err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s:%v\n", file, err)
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("check: %d of %d files have syntax errors", failed, len(files))
			}
			return nil
		},
	}
}
