// internal/cli/fastq.go
package cli

import (
	"github.com/spf13/cobra"

	"biokit/internal/output"
	"biokit/internal/seqio"
	"biokit/internal/stats"
)

func fastqCommands() []*cobra.Command {
	return []*cobra.Command{fastqReadLengthsCmd(), fastqQualityCmd()}
}

func fastqReadLengthsCmd() *cobra.Command {
	var noHeader bool
	cmd := &cobra.Command{
		Use:     "fastq_read_lengths <fastq>",
		Aliases: []string{"frl"},
		Short:   "Print the length of each FASTQ read",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := seqio.LoadFastq(args[0])
			if err != nil {
				return err
			}
			return output.WriteRecordLengths(cmd.OutOrStdout(), stats.Lengths(s), !noHeader)
		},
	}
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "suppress header line")
	return cmd
}

func fastqQualityCmd() *cobra.Command {
	var verbose, noHeader bool
	cmd := &cobra.Command{
		Use:     "fastq_quality <fastq>",
		Aliases: []string{"fq"},
		Short:   "Report mean Phred quality of a FASTQ file",
		Long: `Report the base-weighted mean Phred+33 quality over all reads. With
--verbose, each read's length and mean quality are printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := seqio.LoadFastq(args[0])
			if err != nil {
				return err
			}
			if verbose {
				rows, err := stats.MeanQualityPerRead(s)
				if err != nil {
					return err
				}
				return output.WriteReadQualities(cmd.OutOrStdout(), rows, !noHeader)
			}
			v, err := stats.MeanQuality(s)
			if err != nil {
				return err
			}
			return output.WriteScalar(cmd.OutOrStdout(), v)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print per-read quality")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "suppress header line in table output")
	return cmd
}
