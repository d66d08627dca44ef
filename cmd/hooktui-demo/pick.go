package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	tui "github.com/grindlemire/hooktui"
	"github.com/grindlemire/hooktui/internal/config"
)

const maxPickRows = 10

func init() {
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick [item]...",
	Short: "Fuzzy picker over the arguments or stdin lines",
	Long:  "Type to filter, up/down to move, enter to print the selection to stdout. With no arguments, items are read from stdin and the terminal is opened directly.",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		items := args
		var extra []tui.AppOption

		if len(items) == 0 {
			if isatty.IsTerminal(os.Stdin.Fd()) {
				return fmt.Errorf("pick: no items given and stdin is a terminal")
			}
			read, err := readLines(os.Stdin)
			if err != nil {
				return fmt.Errorf("read items: %w", err)
			}
			items = read

			// stdin is the item list, so draw and read keys on the tty.
			tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			defer tty.Close()
			term, err := tui.NewANSITerminal(tty, tty)
			if err != nil {
				return err
			}
			reader, err := tui.NewEventReader(tty)
			if err != nil {
				return err
			}
			extra = append(extra, tui.WithTerminal(term), tui.WithEventReader(reader))
		}
		if len(items) == 0 {
			return fmt.Errorf("pick: nothing to pick from")
		}

		var chosen string
		if err := runApp(cmd.Context(), pickView(items, &chosen), extra...); err != nil {
			return err
		}
		if chosen != "" {
			fmt.Fprintln(cmd.OutOrStdout(), chosen)
		}
		return nil
	},
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}

// filterItems returns the items matching query, best first. An empty query
// keeps every item in its original order.
func filterItems(items []string, query string) fuzzy.Matches {
	if query == "" {
		all := make(fuzzy.Matches, len(items))
		for i, s := range items {
			all[i] = fuzzy.Match{Str: s, Index: i}
		}
		return all
	}
	return fuzzy.Find(query, items)
}

func pickView(items []string, chosen *string) tui.RenderFunc {
	return func(rc *tui.RenderContext) *tui.Element {
		selected := tui.UseState(rc, 0)
		query := tui.UseTextInput(rc,
			tui.WithInputWidth(40),
			tui.WithInputPlaceholder("filter"),
			tui.WithInputFocus(tui.FocusOptions{ID: "query", AutoFocus: true}),
		)
		matches := tui.UseMemo(rc, query.Value(), func() fuzzy.Matches {
			return filterItems(items, query.Value())
		})

		sel := min(selected.Get(), max(0, len(matches)-1))
		h := rc.Handle()
		rc.UseKeys(
			tui.OnKey(tui.KeyUp, func(tui.KeyEvent) { selected.Set(max(0, sel-1)) }),
			tui.OnKey(tui.KeyDown, func(tui.KeyEvent) { selected.Set(min(len(matches)-1, sel+1)) }),
			tui.OnKey(tui.KeyEscape, func(tui.KeyEvent) { h.Exit() }),
			tui.OnKey(tui.KeyEnter, func(tui.KeyEvent) {
				if len(matches) > 0 {
					*chosen = matches[sel].Str
				}
				h.Exit()
			}),
		)

		_, vh := rc.Viewport()
		rows := min(maxPickRows, max(1, vh-2))
		start := 0
		if sel >= rows {
			start = sel - rows + 1
		}
		end := min(len(matches), start+rows)

		accent := config.Color(cfg.Theme.Accent)
		list := make([]*tui.Element, 0, end-start)
		for i := start; i < end; i++ {
			list = append(list, matchRow(matches[i], i == sel, accent))
		}

		return tui.Column(
			tui.Row(tui.Text("> ", tui.WithForeground(accent)), query.Element()),
			tui.Column(list...),
			tui.Text(fmt.Sprintf("%d/%d", len(matches), len(items)),
				tui.WithForeground(config.Color(cfg.Theme.Muted))),
		)
	}
}

// matchRow draws one candidate with its matched characters highlighted.
func matchRow(m fuzzy.Match, selected bool, accent tui.Color) *tui.Element {
	hit := make(map[int]bool, len(m.MatchedIndexes))
	for _, i := range m.MatchedIndexes {
		hit[i] = true
	}

	prefix := "  "
	if selected {
		prefix = "› "
	}
	parts := []*tui.Element{tui.Text(prefix, tui.WithForeground(accent))}

	var run strings.Builder
	runHit := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		var opts []tui.Option
		if runHit {
			opts = append(opts, tui.WithBold(), tui.WithForeground(accent))
		}
		if selected {
			opts = append(opts, tui.WithReverse())
		}
		parts = append(parts, tui.Text(run.String(), opts...))
		run.Reset()
	}
	for i, r := range m.Str {
		if hit[i] != runHit {
			flush()
			runHit = hit[i]
		}
		run.WriteRune(r)
	}
	flush()
	return tui.Row(parts...)
}
