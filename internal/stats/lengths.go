// internal/stats/lengths.go
package stats

import (
	"sort"

	"biokit/internal/record"
)

// RecordLength pairs a record ID with its sequence length.
type RecordLength struct {
	ID     string
	Length int
}

// Lengths returns each record's length in store order.
func Lengths(s *record.Store) []RecordLength {
	out := make([]RecordLength, 0, s.Len())
	for _, r := range s.Records {
		out = append(out, RecordLength{ID: r.ID, Length: r.Length()})
	}
	return out
}

// TotalLength sums all sequence lengths. An empty store is valid and sums
// to 0.
func TotalLength(s *record.Store) int {
	total := 0
	for _, r := range s.Records {
		total += r.Length()
	}
	return total
}

// sortedLengths returns all lengths in descending order.
func sortedLengths(s *record.Store) []int {
	ls := make([]int, 0, s.Len())
	for _, r := range s.Records {
		ls = append(ls, r.Length())
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ls)))
	return ls
}

// Nx returns the Nx statistic (e.g. x=50 for N50): with lengths sorted
// descending, the first length at which the cumulative sum reaches x% of the
// total. The result is always an observed record length.
func Nx(s *record.Store, x int) (int, error) {
	if err := s.Require(nxName(x), 1); err != nil {
		return 0, err
	}
	ls := sortedLengths(s)
	total := 0
	for _, l := range ls {
		total += l
	}
	cum := 0
	for _, l := range ls {
		cum += l
		if cum*100 >= total*x {
			return l, nil
		}
	}
	return ls[len(ls)-1], nil
}

// Lx returns the Lx statistic: the smallest number of records whose lengths
// sum to at least x% of the total.
func Lx(s *record.Store, x int) (int, error) {
	if err := s.Require(lxName(x), 1); err != nil {
		return 0, err
	}
	ls := sortedLengths(s)
	total := 0
	for _, l := range ls {
		total += l
	}
	cum := 0
	for i, l := range ls {
		cum += l
		if cum*100 >= total*x {
			return i + 1, nil
		}
	}
	return len(ls), nil
}

func nxName(x int) string {
	if x == 90 {
		return "n90"
	}
	return "n50"
}

func lxName(x int) string {
	if x == 90 {
		return "l90"
	}
	return "l50"
}

// Summary bundles the length-distribution metrics of one store.
type Summary struct {
	Records  int
	Total    int
	Shortest int
	Longest  int
	Mean     float64
	Median   float64
	Variance float64
	N50      int
	L50      int
	N90      int
	L90      int
}

// LengthSummary computes the assembly-style length summary. At least one
// record is required.
func LengthSummary(s *record.Store) (Summary, error) {
	if err := s.Require("length_summary", 1); err != nil {
		return Summary{}, err
	}
	ls := sortedLengths(s) // descending
	sum := Summary{Records: len(ls), Longest: ls[0], Shortest: ls[len(ls)-1]}
	for _, l := range ls {
		sum.Total += l
	}
	sum.Mean = float64(sum.Total) / float64(len(ls))

	mid := len(ls) / 2
	if len(ls)%2 == 1 {
		sum.Median = float64(ls[mid])
	} else {
		sum.Median = float64(ls[mid-1]+ls[mid]) / 2
	}

	if len(ls) > 1 {
		var ss float64
		for _, l := range ls {
			d := float64(l) - sum.Mean
			ss += d * d
		}
		sum.Variance = ss / float64(len(ls)-1)
	}

	sum.N50, _ = Nx(s, 50)
	sum.L50, _ = Lx(s, 50)
	sum.N90, _ = Nx(s, 90)
	sum.L90, _ = Lx(s, 90)
	return sum, nil
}
