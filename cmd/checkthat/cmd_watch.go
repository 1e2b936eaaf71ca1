package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/isti03/checkthat-generator/project"
	"github.com/isti03/checkthat-generator/script"
	"github.com/isti03/checkthat-generator/workspace"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "watch <dir-or-script>...",
		Short: "Regenerate scripts whenever they change",
		Long: `Generate every given script, or every script in the given directories,
then keep regenerating them on save until interrupted. Files written by an
earlier run are overwritten; other existing files are left alone.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = cfg.Output
			}

			ws := workspace.New(nil, ".", runOptions())
			w, err := workspace.NewWatcher(ws, project.NewTree(nil, output))
			if err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			defer w.Stop()

			out := cmd.OutOrStdout()
			report := func(f *workspace.File, err error) {
				if err != nil {
					fmt.Fprintln(out, err)
					return
				}
				for _, r := range f.Results {
					fmt.Fprintln(out, filepath.Join(output, filepath.FromSlash(r.Path())))
				}
			}

			dirs := map[string]bool{}
			for _, arg := range args {
				scripts := []string{arg}
				dir := filepath.Dir(arg)
				if info, err := os.Stat(arg); err == nil && info.IsDir() {
					dir = arg
					scripts, err = filepath.Glob(filepath.Join(arg, "*"+script.Extension))
					if err != nil {
						return fmt.Errorf("watch: %w", err)
					}
				}
				for _, s := range scripts {
					report(w.Generate(s))
				}
				if !dirs[dir] {
					if err := w.Add(dir); err != nil {
						return fmt.Errorf("watch: %w", err)
					}
					dirs[dir] = true
				}
			}

			w.OnRun(report)
			w.Start()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			<-ctx.Done()
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory (default from config)")

	return cmd
}
