// internal/cli/util.go
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"biokit/internal/alphabet"
	"biokit/internal/record"
	"biokit/internal/seqio"
)

func utilCommands() []*cobra.Command {
	return []*cobra.Command{faidxCmd(), sequenceComplementCmd(), renameFastaEntriesCmd()}
}

func faidxCmd() *cobra.Command {
	var opt loadOptions
	var entry string
	cmd := &cobra.Command{
		Use:     "faidx <fasta>",
		Aliases: []string{"get_entry", "ge"},
		Short:   "Extract one entry from a multi-FASTA file",
		Long: `Extract the named entry from a multi-FASTA file, like samtools faidx
but without an index. When IDs are duplicated, the first occurrence wins.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opt.loadFasta(args[0])
			if err != nil {
				return err
			}
			for _, r := range s.Records {
				if r.ID == entry {
					return seqio.WriteFasta(cmd.OutOrStdout(), []record.Record{r}, seqio.DefaultWrap)
				}
			}
			return fmt.Errorf("%s: entry %q not found", args[0], entry)
		},
	}
	opt.register(cmd)
	cmd.Flags().StringVarP(&entry, "entry", "e", "", "entry name to extract")
	_ = cmd.MarkFlagRequired("entry")
	return cmd
}

func sequenceComplementCmd() *cobra.Command {
	var opt loadOptions
	var reverse bool
	cmd := &cobra.Command{
		Use:     "sequence_complement <fasta>",
		Aliases: []string{"seq_comp"},
		Short:   "Complement every entry of a multi-FASTA file",
		Long: `Generate the sequence complement for all entries in a multi-FASTA
file, honoring IUPAC ambiguity codes. With --reverse, the reverse complement
is generated instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opt.loadFasta(args[0])
			if err != nil {
				return err
			}
			out := make([]record.Record, 0, s.Len())
			for _, r := range s.Records {
				out = append(out, record.Record{
					ID:  r.ID,
					Seq: alphabet.ComplementSeq(r.Seq, reverse),
				})
			}
			return seqio.WriteFasta(cmd.OutOrStdout(), out, seqio.DefaultWrap)
		},
	}
	opt.register(cmd)
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "generate the reverse complement")
	return cmd
}

func renameFastaEntriesCmd() *cobra.Command {
	var opt loadOptions
	var idmap, outPath string
	cmd := &cobra.Command{
		Use:     "rename_fasta_entries <fasta>",
		Aliases: []string{"rename_fasta"},
		Short:   "Rename FASTA entries from a two-column map",
		Long: `Rename FASTA entries following a tab-delimited map: first column is
the current name, second column the new name. Entries missing from the map
keep their names. Output goes to stdout unless --output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mapping, err := loadIDMap(idmap)
			if err != nil {
				return err
			}
			s, err := opt.loadFasta(args[0])
			if err != nil {
				return err
			}
			out := make([]record.Record, 0, s.Len())
			for _, r := range s.Records {
				if name, ok := mapping[r.ID]; ok {
					r.ID = name
				}
				out = append(out, r)
			}
			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				fh, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer func() { _ = fh.Close() }()
				w = fh
			}
			return seqio.WriteFasta(w, out, seqio.DefaultWrap)
		},
	}
	opt.register(cmd)
	cmd.Flags().StringVarP(&idmap, "idmap", "i", "", "two-column TSV of current and desired names")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("idmap")
	return cmd
}

// loadIDMap reads a two-column TSV of old and new entry names.
func loadIDMap(path string) (map[string]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	out := make(map[string]string)
	sc := bufio.NewScanner(fh)
	line := 0
	for sc.Scan() {
		line++
		txt := strings.TrimSpace(sc.Text())
		if txt == "" {
			continue
		}
		fields := strings.Split(txt, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s:%d: expected two tab-separated columns", path, line)
		}
		out[fields[0]] = fields[1]
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}
