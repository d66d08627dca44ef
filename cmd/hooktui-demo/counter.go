package main

import (
	"fmt"

	"github.com/spf13/cobra"

	tui "github.com/grindlemire/hooktui"
	"github.com/grindlemire/hooktui/internal/config"
)

func init() {
	rootCmd.AddCommand(counterCmd)
}

var counterCmd = &cobra.Command{
	Use:   "counter",
	Short: "Inline counter with a focusable name input",
	Long:  "Tab moves focus between the name input and the counter. +/- change the count while the counter is focused; Esc quits.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd.Context(), counterView)
	},
}

func counterView(rc *tui.RenderContext) *tui.Element {
	count := tui.UseState(rc, 0)
	name := tui.UseTextInput(rc,
		tui.WithInputWidth(24),
		tui.WithInputBorder(tui.BorderRounded),
		tui.WithInputFocusColor(config.Color(cfg.Theme.Accent)),
		tui.WithInputPlaceholder("your name"),
		tui.WithInputFocus(tui.FocusOptions{ID: "name", AutoFocus: true}),
	)
	counterFocused := rc.UseFocus(tui.FocusOptions{ID: "counter"})

	h := rc.Handle()
	rc.UseKeys(
		tui.OnKey(tui.KeyTab, func(ke tui.KeyEvent) {
			if ke.Shift() {
				h.FocusPrev()
				return
			}
			h.FocusNext()
		}),
		tui.OnKey(tui.KeyEscape, func(tui.KeyEvent) { h.Exit() }),
	)
	if counterFocused {
		rc.UseKeys(
			tui.OnRune('+', func(tui.KeyEvent) { count.Update(func(n *int) { *n++ }) }),
			tui.OnRune('-', func(tui.KeyEvent) { count.Update(func(n *int) { *n-- }) }),
			tui.OnKey(tui.KeyUp, func(tui.KeyEvent) { count.Update(func(n *int) { *n++ }) }),
			tui.OnKey(tui.KeyDown, func(tui.KeyEvent) { count.Update(func(n *int) { *n-- }) }),
			tui.OnKey(tui.KeyEnter, func(tui.KeyEvent) {
				h.Println(fmt.Sprintf("%s counted to %d", displayName(name.Value()), count.Get()))
				count.Set(0)
			}),
		)
	}

	border := config.Color(cfg.Theme.Border)
	hint := "type your name  tab: counter  esc: quit"
	if counterFocused {
		border = config.Color(cfg.Theme.Accent)
		hint = "+/-: count  enter: print  tab: name  esc: quit"
	}
	counter := tui.New(
		tui.WithBorder(tui.BorderRounded),
		tui.WithBorderColor(border),
		tui.WithPaddingTRBL(0, 1, 0, 1),
		tui.WithChildren(tui.Text(fmt.Sprintf("count: %d", count.Get()), tui.WithBold())),
	)

	return tui.Column(
		tui.Text("Hello, "+displayName(name.Value())),
		tui.New(
			tui.WithDirection(tui.DirRow),
			tui.WithGap(1),
			tui.WithChildren(name.Element(), counter),
		),
		tui.Text(hint, tui.WithForeground(config.Color(cfg.Theme.Muted))),
	)
}

func displayName(s string) string {
	if s == "" {
		return "stranger"
	}
	return s
}
