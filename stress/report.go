package stress

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Report summarizes a run.
type Report struct {
	Seed        int64      // seed of the random source, for reproducing a run
	Operations  int        // number of operations performed
	Counts      map[Op]int // number of operations by kind
	Misses      int        // operations reporting an error, e.g. duplicate keys
	Rebalancing int        // rebalancing steps of successful inserts and deletes
	JoinCost    int        // sum of join costs of split/join round trips
	Checks      int        // number of invariant checks
	MaxRank     int        // largest root rank observed
	Size        int        // final number of entries
	Rank        int        // final root rank
}

// String formats r on a single line, with digit grouping for counts.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s ops (", humanize.Comma(int64(r.Operations)))
	for op := OpInsert; op <= OpSplitJoin; op++ {
		if op > OpInsert {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s %s", humanize.Comma(int64(r.Counts[op])), op)
	}
	fmt.Fprintf(&b, "), %s misses, %s rebalancing steps, join cost %s, %s checks",
		humanize.Comma(int64(r.Misses)), humanize.Comma(int64(r.Rebalancing)),
		humanize.Comma(int64(r.JoinCost)), humanize.Comma(int64(r.Checks)))
	fmt.Fprintf(&b, "; final size %s, rank %d (max %d), seed %d",
		humanize.Comma(int64(r.Size)), r.Rank, r.MaxRank, r.Seed)
	return b.String()
}
