package main

import (
	"fmt"
	"os"

	"github.com/isti03/checkthat-generator/config"
	"github.com/isti03/checkthat-generator/script"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

var (
	configPath string
	verbose    int
	cfg        = &config.Config{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "checkthat",
		Short:        "Scaffold Java classes from declarative scripts",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(nil, configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg = loaded

			var logFile *string
			if cfg.Log.File != "" {
				logFile = &cfg.Log.File
			}
			commonlog.Configure(cfg.Log.Verbosity+verbose, logFile)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./"+config.FileName+" if present)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newGenCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newOpsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runOptions() script.RunOptions {
	return script.RunOptions{
		Indent:       cfg.Indent,
		KnownImports: cfg.Resolver.KnownImports,
	}
}

func loadScript(path string) (*script.Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return script.Parse(path, data)
}
