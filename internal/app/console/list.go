package console

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"strconv"
	"strings"

	"workwise/internal/apperr"
	"workwise/internal/listing"
)

// listScreen is one resource list: a fetched snapshot shown through the
// shared search, sort and row-action behavior.
type listScreen[T any] struct {
	title string
	table listing.Table[T]
	fetch listing.FetchFunc[T]
	extra commands
	// export writes the server side export; when nil the visible rows are
	// written locally.
	export func(ctx context.Context, q listing.Query, w io.Writer) error
}

func runList[T any](ctx context.Context, a *App, s listScreen[T]) error {
	loader := listing.NewLoader(s.fetch)
	var q listing.Query
	var shown listing.View[T]
	loader.Load(ctx)

	cmds := commands{
		"search": {
			usage: "search <text>      filter rows, no text clears",
			run: func(_ context.Context, args []string) error {
				q.Search = strings.Join(args, " ")
				return nil
			},
		},
		"sort": {
			usage: "sort <column>      sort by a column, repeat to reverse",
			run: func(_ context.Context, args []string) error {
				if len(args) != 1 {
					return fmt.Errorf("%w: usage sort <column>", apperr.ErrInvalidInput)
				}
				col, ok := s.table.Column(args[0])
				if !ok || !col.Sortable {
					return fmt.Errorf("%w: column %q is not sortable", apperr.ErrInvalidInput, args[0])
				}
				q.ClickHeader(col.Key)
				return nil
			},
		},
		"refresh": {
			usage: "refresh            reload from the server",
			run: func(ctx context.Context, _ []string) error {
				loader.Load(ctx)
				return nil
			},
		},
		"export": {
			usage: "export <file>      save the visible rows as a spreadsheet",
			run: func(ctx context.Context, args []string) error {
				if len(args) != 1 {
					return fmt.Errorf("%w: usage export <file.xlsx>", apperr.ErrInvalidInput)
				}
				return exportTo(args[0], func(w io.Writer) error {
					if s.export != nil {
						return s.export(ctx, q, w)
					}
					return listing.WriteXLSX(w, s.title, s.table, shown.Rows)
				})
			},
		},
	}
	for _, action := range s.table.Actions {
		cmds[action.Name] = command{
			usage: fmt.Sprintf("%-18s %s", action.Name+" <#>", action.Label),
			run: func(ctx context.Context, args []string) error {
				row, err := pick(shown.Rows, args)
				if err != nil {
					return err
				}
				if err := s.table.Trigger(ctx, action.Name, row, a.Prompt); err != nil {
					return err
				}
				if !a.leaving() {
					loader.Load(ctx)
				}
				return nil
			},
		}
	}
	maps.Copy(cmds, s.extra)

	return a.loop(ctx, strings.ToLower(s.title), cmds, func() {
		shown = s.table.Present(loader.View(), q)
		fmt.Fprintf(a.Out, "\n== %s ==\n", s.title)
		if q.Search != "" {
			fmt.Fprintf(a.Out, "Search: %q\n", q.Search)
		}
		renderTable(a.Out, s.table, shown, q)
	})
}

// pick returns the row numbered by args[0], counting from one.
func pick[T any](rows []T, args []string) (T, error) {
	var zero T
	if len(args) != 1 {
		return zero, fmt.Errorf("%w: expected a row number", apperr.ErrInvalidInput)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(rows) {
		return zero, fmt.Errorf("%w: no row %s", apperr.ErrInvalidInput, args[0])
	}
	return rows[n-1], nil
}

func exportTo(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}
