// internal/cli/composition.go
package cli

import (
	"github.com/spf13/cobra"

	"biokit/internal/output"
	"biokit/internal/stats"
)

func compositionCommands() []*cobra.Command {
	return []*cobra.Command{
		gcContentCmd(),
		atContentCmd(),
		gcSkewCmd(),
		atSkewCmd(),
		characterFrequencyCmd(),
	}
}

func gcContentCmd() *cobra.Command {
	var opt loadOptions
	var verbose, noHeader bool
	cmd := &cobra.Command{
		Use:     "gc_content <fasta>",
		Aliases: []string{"gc"},
		Short:   "Calculate the GC content of a FASTA file",
		Long: `Calculate GC content: (#G + #C) / (#G + #C + #A + #T), counted
case-insensitively over the concatenation of all entries. Ambiguity codes and
gaps are excluded from the denominator; an all-ambiguous input reports NA.

With --verbose, the GC content of each entry is printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opt.loadFasta(args[0])
			if err != nil {
				return err
			}
			if verbose {
				return output.WriteRecordRatios(cmd.OutOrStdout(), stats.GCContentPerRecord(s), !noHeader)
			}
			return output.WriteScalar(cmd.OutOrStdout(), stats.GCContent(s))
		},
	}
	opt.register(cmd)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print per-entry GC content")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "suppress header line in table output")
	return cmd
}

func atContentCmd() *cobra.Command {
	var opt loadOptions
	var verbose, noHeader bool
	cmd := &cobra.Command{
		Use:     "at_content <fasta>",
		Aliases: []string{"at"},
		Short:   "Calculate the AT content of a FASTA file",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opt.loadFasta(args[0])
			if err != nil {
				return err
			}
			if verbose {
				return output.WriteRecordRatios(cmd.OutOrStdout(), stats.ATContentPerRecord(s), !noHeader)
			}
			return output.WriteScalar(cmd.OutOrStdout(), stats.ATContent(s))
		},
	}
	opt.register(cmd)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print per-entry AT content")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "suppress header line in table output")
	return cmd
}

func gcSkewCmd() *cobra.Command {
	var opt loadOptions
	cmd := &cobra.Command{
		Use:   "gc_skew <fasta>",
		Short: "Calculate GC skew, (#G - #C) / (#G + #C)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opt.loadFasta(args[0])
			if err != nil {
				return err
			}
			return output.WriteScalar(cmd.OutOrStdout(), stats.GCSkew(s))
		},
	}
	opt.register(cmd)
	return cmd
}

func atSkewCmd() *cobra.Command {
	var opt loadOptions
	cmd := &cobra.Command{
		Use:   "at_skew <fasta>",
		Short: "Calculate AT skew, (#A - #T) / (#A + #T)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opt.loadFasta(args[0])
			if err != nil {
				return err
			}
			return output.WriteScalar(cmd.OutOrStdout(), stats.ATSkew(s))
		},
	}
	opt.register(cmd)
	return cmd
}

func characterFrequencyCmd() *cobra.Command {
	var opt loadOptions
	var noHeader bool
	cmd := &cobra.Command{
		Use:     "character_frequency <fasta>",
		Aliases: []string{"char_freq"},
		Short:   "Count every symbol across all entries",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opt.loadFasta(args[0])
			if err != nil {
				return err
			}
			return output.WriteCharFrequencies(cmd.OutOrStdout(), stats.CharacterFrequency(s), !noHeader)
		},
	}
	opt.register(cmd)
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "suppress header line")
	return cmd
}
