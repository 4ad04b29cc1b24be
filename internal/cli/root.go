// internal/cli/root.go
package cli

import (
	"github.com/spf13/cobra"

	"biokit/internal/alphabet"
	"biokit/internal/record"
	"biokit/internal/seqio"
	"biokit/internal/version"
)

// NewRoot assembles the biokit command tree. Output is written to the
// command's configured out stream so the whole tree is testable with byte
// buffers.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:     "biokit",
		Short:   "A toolkit for molecular sequence statistics",
		Version: version.Version,
		Long: `BioKIT computes composition, length-distribution, alignment, codon-usage,
and quality statistics over FASTA, FASTQ, and alignment files.

Each subcommand computes exactly one statistic or transformation. Inputs may
be plain or gzip-compressed; "-" reads from stdin. Aliases are listed per
subcommand (for example "biokit gc" for "biokit gc_content").`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(compositionCommands()...)
	root.AddCommand(assemblyCommands()...)
	root.AddCommand(alignmentCommands()...)
	root.AddCommand(codonCommands()...)
	root.AddCommand(fastqCommands()...)
	root.AddCommand(utilCommands()...)
	root.AddCommand(treeCommands()...)
	return root
}

// loadOptions are the flags shared by sequence-file commands.
type loadOptions struct {
	strict   bool
	alphabet string
}

func (o *loadOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.strict, "strict", false,
		"fail on symbols outside the active alphabet")
	cmd.Flags().StringVar(&o.alphabet, "alphabet", "nucleotide",
		"active alphabet: nucleotide | protein")
}

func (o *loadOptions) mode() alphabet.Alphabet {
	if o.alphabet == "protein" {
		return alphabet.Protein
	}
	return alphabet.Nucleotide
}

// loadFasta loads path as FASTA, applying strict validation when requested.
func (o *loadOptions) loadFasta(path string) (*record.Store, error) {
	s, err := seqio.LoadFasta(path)
	if err != nil {
		return nil, err
	}
	if o.strict {
		if err := s.Validate(o.mode()); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// loadAlignment loads path as uniform-width FASTA.
func (o *loadOptions) loadAlignment(path string) (*record.Store, error) {
	s, err := seqio.LoadAlignment(path)
	if err != nil {
		return nil, err
	}
	if o.strict {
		if err := s.Validate(o.mode()); err != nil {
			return nil, err
		}
	}
	return s, nil
}
