// internal/cli/alignment.go
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"biokit/internal/output"
	"biokit/internal/record"
	"biokit/internal/seqio"
	"biokit/internal/stats"
)

func alignmentCommands() []*cobra.Command {
	return []*cobra.Command{
		alignmentSummaryCmd(),
		pairwiseIdentityCmd(),
		variableSitesCmd(),
		parsimonyInformativeSitesCmd(),
		gapFractionCmd(),
		consensusSequenceCmd(),
	}
}

func alignmentSummaryCmd() *cobra.Command {
	var opt loadOptions
	cmd := &cobra.Command{
		Use:     "alignment_summary <alignment>",
		Aliases: []string{"aln_sum"},
		Short:   "Summarize a multiple sequence alignment",
		Long: `Summarize a multiple sequence alignment in FASTA format: record count,
alignment width, variable sites, parsimony-informative sites, and mean gap
fraction. Non-uniform sequence lengths are a fatal error at load time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opt.loadAlignment(args[0])
			if err != nil {
				return err
			}
			sum, err := stats.SummarizeAlignment(s)
			if err != nil {
				return err
			}
			return output.WriteAlignmentSummary(cmd.OutOrStdout(), sum)
		},
	}
	opt.register(cmd)
	return cmd
}

func pairwiseIdentityCmd() *cobra.Command {
	var opt loadOptions
	var threads int
	var noHeader bool
	cmd := &cobra.Command{
		Use:     "pairwise_identity <alignment>",
		Aliases: []string{"pi"},
		Short:   "Compute the pairwise identity matrix of an alignment",
		Long: `Compute pairwise identity for every pair of aligned sequences.

Identity of a pair is the fraction of columns where both symbols match,
counted only over columns where neither sequence is gapped. The matrix is
symmetric and row/column order follows the input. --threads parallelizes the
upper-triangle computation without changing the output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if threads < 0 {
				return errors.New("--threads must be >= 0")
			}
			s, err := opt.loadAlignment(args[0])
			if err != nil {
				return err
			}
			m, err := stats.PairwiseIdentity(s, threads)
			if err != nil {
				return err
			}
			return output.WriteMatrix(cmd.OutOrStdout(), m, !noHeader)
		},
	}
	opt.register(cmd)
	cmd.Flags().IntVar(&threads, "threads", 1, "worker threads for the pairwise matrix (0 or 1 = serial)")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "suppress header row")
	return cmd
}

func variableSitesCmd() *cobra.Command {
	var opt loadOptions
	cmd := &cobra.Command{
		Use:     "variable_sites <alignment>",
		Aliases: []string{"vs"},
		Short:   "Count alignment columns with two or more distinct residues",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opt.loadAlignment(args[0])
			if err != nil {
				return err
			}
			v, err := stats.VariableSites(s)
			if err != nil {
				return err
			}
			return output.WriteScalar(cmd.OutOrStdout(), v)
		},
	}
	opt.register(cmd)
	return cmd
}

func parsimonyInformativeSitesCmd() *cobra.Command {
	var opt loadOptions
	cmd := &cobra.Command{
		Use:     "parsimony_informative_sites <alignment>",
		Aliases: []string{"pis"},
		Short:   "Count parsimony-informative alignment columns",
		Long: `Count columns where at least two distinct residues each occur in at
least two sequences.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opt.loadAlignment(args[0])
			if err != nil {
				return err
			}
			v, err := stats.ParsimonyInformativeSites(s)
			if err != nil {
				return err
			}
			return output.WriteScalar(cmd.OutOrStdout(), v)
		},
	}
	opt.register(cmd)
	return cmd
}

func gapFractionCmd() *cobra.Command {
	var opt loadOptions
	var verbose, noHeader bool
	cmd := &cobra.Command{
		Use:   "gap_fraction <alignment>",
		Short: "Report the gap proportion of an alignment",
		Long: `Report the mean gap proportion over all alignment columns. With
--verbose, the gap count and proportion of each column are printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opt.loadAlignment(args[0])
			if err != nil {
				return err
			}
			cols, mean, err := stats.GapFraction(s)
			if err != nil {
				return err
			}
			if verbose {
				return output.WriteGapColumns(cmd.OutOrStdout(), cols, !noHeader)
			}
			return output.WriteScalar(cmd.OutOrStdout(), mean)
		},
	}
	opt.register(cmd)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print per-column gap proportions")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "suppress header line in table output")
	return cmd
}

func consensusSequenceCmd() *cobra.Command {
	var opt loadOptions
	var threshold float64
	var ambiguous string
	cmd := &cobra.Command{
		Use:     "consensus_sequence <alignment>",
		Aliases: []string{"con_len"},
		Short:   "Generate a consensus sequence from an alignment",
		Long: `Generate a consensus from a multiple sequence alignment in FASTA
format. Per column, the most common residue is emitted when its share of all
sequences reaches the threshold; otherwise the ambiguity character is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(ambiguous) != 1 {
				return errors.New("--ambiguous-character must be a single symbol")
			}
			s, err := opt.loadAlignment(args[0])
			if err != nil {
				return err
			}
			cons, err := stats.Consensus(s, threshold, ambiguous[0])
			if err != nil {
				return err
			}
			return seqio.WriteFasta(cmd.OutOrStdout(), []record.Record{cons}, seqio.DefaultWrap)
		},
	}
	opt.register(cmd)
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0.5,
		"minimum fraction a residue needs to be represented")
	cmd.Flags().StringVar(&ambiguous, "ambiguous-character", "N",
		"symbol emitted when no residue reaches the threshold")
	return cmd
}
