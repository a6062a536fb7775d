package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"workwise/internal/listing"
)

const loadingMessage = "Loading..."

// renderTable prints v the way every list screen shows it: a loading line,
// the failure, the empty message, or a numbered table with the sort marker
// on the active column.
func renderTable[T any](w io.Writer, t listing.Table[T], v listing.View[T], q listing.Query) {
	switch v.State {
	case listing.Loading:
		fmt.Fprintln(w, loadingMessage)
		return
	case listing.Failed:
		fmt.Fprintf(w, "Failed to load: %v\n", v.Err)
		return
	case listing.Empty:
		fmt.Fprintln(w, listing.EmptyMessage)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := []string{"#"}
	for _, col := range t.Columns {
		label := col.Label
		if col.Key == q.SortKey && col.Sortable {
			if q.Direction == listing.Desc {
				label += " v"
			} else {
				label += " ^"
			}
		}
		header = append(header, label)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for i, row := range v.Rows {
		cells := []string{strconv.Itoa(i + 1)}
		for _, col := range t.Columns {
			cells = append(cells, col.Cell(row))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()
}

// renderFields prints label/value pairs aligned.
func renderFields(w io.Writer, pairs ...string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(tw, "%s:\t%s\n", pairs[i], pairs[i+1])
	}
	_ = tw.Flush()
}
