package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	sonic "github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/football-ranking/internal/domain/page"
	"github.com/riskibarqy/football-ranking/internal/usecase"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func checkFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q: use table, json or yaml", format)
	}
}

// listView is the machine readable form of a list state.
type listView[T any] struct {
	Items      []T             `json:"items" yaml:"items"`
	Pagination page.Pagination `json:"pagination" yaml:"pagination"`
	Extra      any             `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// render writes v as JSON or YAML, or calls table with a tab aligned writer.
func (rt *runtime) render(cmd *cobra.Command, v any, table func(w io.Writer)) error {
	out := cmd.OutOrStdout()
	switch rt.format {
	case formatJSON:
		raw, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(out, string(raw))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		table(tw)
		return tw.Flush()
	}
}

type pagedQuery[T any] interface {
	Fetch(ctx context.Context, params page.Params) usecase.ListState[T]
}

// fetchPage loads params and, when the returned page lies outside
// [1, totalPages], loads the clamped page instead.
func fetchPage[T any](ctx context.Context, q pagedQuery[T], params page.Params) usecase.ListState[T] {
	state := q.Fetch(ctx, params)
	if state.Err != nil || state.Pagination.Total == 0 {
		return state
	}
	requested := state.Pagination.Page
	pager := usecase.NewPaginator(state.Pagination.Total, state.Pagination.Limit)
	if clamped := pager.GoToPage(requested); clamped != requested {
		return q.Fetch(ctx, params.WithInt(page.KeyPage, clamped))
	}
	return state
}

// renderList renders a loaded list with a pager footer in table mode.
func renderList[T any](rt *runtime, cmd *cobra.Command, state usecase.ListState[T], header string, row func(T) string) error {
	view := listView[T]{Items: state.Items, Pagination: state.Pagination, Extra: state.Extra}
	return rt.render(cmd, view, func(w io.Writer) {
		if len(state.Items) == 0 {
			fmt.Fprintln(w, "No results found.")
			return
		}
		fmt.Fprintln(w, header)
		for _, item := range state.Items {
			fmt.Fprintln(w, row(item))
		}
		if footer := pagerFooter(state.Pagination); footer != "" {
			fmt.Fprintln(w)
			fmt.Fprintln(w, footer)
		}
	})
}

// pagerFooter renders "Page 2 of 5 (87 total)  1 [2] 3 4 5". Single page
// results get no footer.
func pagerFooter(p page.Pagination) string {
	if p.Total == 0 || p.TotalPages() <= 1 {
		return ""
	}
	pager := usecase.NewPaginator(p.Total, p.Limit)
	current := pager.GoToPage(p.Page)

	numbers := pager.PageNumbers()
	links := make([]string, 0, len(numbers))
	for _, n := range numbers {
		if n == current {
			links = append(links, "["+strconv.Itoa(n)+"]")
			continue
		}
		links = append(links, strconv.Itoa(n))
	}
	return fmt.Sprintf("Page %d of %d (%d total)  %s", current, pager.TotalPages(), p.Total, strings.Join(links, " "))
}

func cells(cols ...any) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = fmt.Sprint(col)
	}
	return strings.Join(parts, "\t")
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
