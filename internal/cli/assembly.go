// internal/cli/assembly.go
package cli

import (
	"github.com/spf13/cobra"

	"biokit/internal/output"
	"biokit/internal/stats"
)

func assemblyCommands() []*cobra.Command {
	return []*cobra.Command{
		sequenceLengthCmd(),
		totalLengthCmd(),
		nxCmd("n50", 50, "Calculate N50 of a genome assembly"),
		nxCmd("n90", 90, "Calculate N90 of a genome assembly"),
		lxCmd("l50", 50, "Calculate L50 of a genome assembly"),
		lxCmd("l90", 90, "Calculate L90 of a genome assembly"),
		lengthSummaryCmd(),
	}
}

func sequenceLengthCmd() *cobra.Command {
	var opt loadOptions
	var noHeader bool
	cmd := &cobra.Command{
		Use:     "sequence_length <fasta>",
		Aliases: []string{"seq_len"},
		Short:   "Print the length of each FASTA entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opt.loadFasta(args[0])
			if err != nil {
				return err
			}
			return output.WriteRecordLengths(cmd.OutOrStdout(), stats.Lengths(s), !noHeader)
		},
	}
	opt.register(cmd)
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "suppress header line")
	return cmd
}

func totalLengthCmd() *cobra.Command {
	var opt loadOptions
	cmd := &cobra.Command{
		Use:     "total_length <fasta>",
		Aliases: []string{"sum_len"},
		Short:   "Sum the lengths of all FASTA entries",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opt.loadFasta(args[0])
			if err != nil {
				return err
			}
			return output.WriteScalar(cmd.OutOrStdout(), stats.TotalLength(s))
		},
	}
	opt.register(cmd)
	return cmd
}

func nxCmd(name string, x int, short string) *cobra.Command {
	var opt loadOptions
	cmd := &cobra.Command{
		Use:   name + " <fasta>",
		Short: short,
		Long: short + `.

With entry lengths sorted in descending order, ` + name + ` is the first
length at which the cumulative sum reaches the target fraction of the total.
The result is always the length of some entry, never interpolated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opt.loadFasta(args[0])
			if err != nil {
				return err
			}
			v, err := stats.Nx(s, x)
			if err != nil {
				return err
			}
			return output.WriteScalar(cmd.OutOrStdout(), v)
		},
	}
	opt.register(cmd)
	return cmd
}

func lxCmd(name string, x int, short string) *cobra.Command {
	var opt loadOptions
	cmd := &cobra.Command{
		Use:   name + " <fasta>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opt.loadFasta(args[0])
			if err != nil {
				return err
			}
			v, err := stats.Lx(s, x)
			if err != nil {
				return err
			}
			return output.WriteScalar(cmd.OutOrStdout(), v)
		},
	}
	opt.register(cmd)
	return cmd
}

func lengthSummaryCmd() *cobra.Command {
	var opt loadOptions
	cmd := &cobra.Command{
		Use:     "length_summary <fasta>",
		Aliases: []string{"assembly_stats"},
		Short:   "Summarize the length distribution of a FASTA file",
		Long: `Summarize the length distribution: record count, total, shortest,
longest, mean, median, variance, and the N50/L50/N90/L90 statistics.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opt.loadFasta(args[0])
			if err != nil {
				return err
			}
			sum, err := stats.LengthSummary(s)
			if err != nil {
				return err
			}
			return output.WriteLengthSummary(cmd.OutOrStdout(), sum)
		},
	}
	opt.register(cmd)
	return cmd
}
