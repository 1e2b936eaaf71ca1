package main

import (
	"fmt"

	"github.com/isti03/checkthat-generator/descriptor"
	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <descriptor>...",
		Short: "Show the Java type and imports for type descriptors",
		Long: `Resolve descriptors such as "m: HashMap of String to List of int" the
way a script would, as one parameter list. Prints each typed name and then
the imports the session recorded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session := descriptor.NewSession(descriptor.WithKnownImports(cfg.Resolver.KnownImports...))
			for _, desc := range args {
				tn, err := session.Resolve(desc)
				if err != nil {
					return fmt.Errorf("resolve: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), tn.String())
			}
			for _, imp := range session.Imports() {
				fmt.Fprintf(cmd.OutOrStdout(), "import %s;\n", imp)
			}
			return nil
		},
	}
}
