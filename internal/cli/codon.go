// internal/cli/codon.go
package cli

import (
	"github.com/spf13/cobra"

	"biokit/internal/output"
	"biokit/internal/stats"
)

func codonCommands() []*cobra.Command {
	return []*cobra.Command{rscuCmd(), gc3Cmd()}
}

func rscuCmd() *cobra.Command {
	var opt loadOptions
	var noHeader bool
	cmd := &cobra.Command{
		Use:     "relative_synonymous_codon_usage <fasta>",
		Aliases: []string{"rscu"},
		Short:   "Calculate relative synonymous codon usage",
		Long: `Calculate RSCU over all coding sequences in a FASTA file.

Sequences are read in non-overlapping codons from position 0; trailing
partial codons are dropped and codons containing ambiguous symbols are
skipped. RSCU of a codon is its observed count divided by the count expected
if all synonymous codons for its amino acid were used equally; amino acids
with no observed codons are omitted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opt.loadFasta(args[0])
			if err != nil {
				return err
			}
			rows, err := stats.RSCU(s)
			if err != nil {
				return err
			}
			return output.WriteCodonUsage(cmd.OutOrStdout(), rows, !noHeader)
		},
	}
	opt.register(cmd)
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "suppress header line")
	return cmd
}

func gc3Cmd() *cobra.Command {
	var opt loadOptions
	cmd := &cobra.Command{
		Use:     "gc_content_third_position <fasta>",
		Aliases: []string{"gc3"},
		Short:   "Calculate GC content at the third codon position",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opt.loadFasta(args[0])
			if err != nil {
				return err
			}
			v, err := stats.GCThirdPosition(s)
			if err != nil {
				return err
			}
			return output.WriteScalar(cmd.OutOrStdout(), v)
		},
	}
	opt.register(cmd)
	return cmd
}
