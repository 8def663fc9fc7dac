package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"GoNLP/internal/nlp"
)

func newModulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "modules",
		Aliases: []string{"list"},
		Short:   "List the registered analyzers",
		Long:    `List every analyzer with its qualified name and input and output types.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runModules(cmd)
		},
	}
}

func runModules(cmd *cobra.Command) error {
	cfg, err := configFrom(cmd)
	if err != nil {
		return err
	}
	registry, err := nlp.NewRegistry(cfg.Namespace)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tVERSION\tINPUT\tOUTPUT")
	for _, def := range registry.Definitions() {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			registry.QualifiedName(def.Name), def.Version, def.InputType, def.OutputType)
	}
	return tw.Flush()
}
