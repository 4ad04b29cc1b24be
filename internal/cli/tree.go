// internal/cli/tree.go
package cli

import (
	"fmt"

	"github.com/TuftsBCB/io/newick"
	"github.com/spf13/cobra"

	"biokit/internal/seqio"
)

func treeCommands() []*cobra.Command {
	return []*cobra.Command{tipLabelsCmd()}
}

func tipLabelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tip_labels <tree>",
		Aliases: []string{"tree_labels", "labels", "tl"},
		Short:   "Print the tip labels of a newick phylogeny",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := seqio.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = rc.Close() }()

			trees, err := newick.NewReader(rc).ReadAll()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			for _, t := range trees {
				if err := printTips(cmd, t); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return cmd
}

func printTips(cmd *cobra.Command, t *newick.Tree) error {
	if len(t.Children) == 0 {
		if t.Label == "" {
			return nil
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Label)
		return err
	}
	for i := range t.Children {
		if err := printTips(cmd, &t.Children[i]); err != nil {
			return err
		}
	}
	return nil
}
