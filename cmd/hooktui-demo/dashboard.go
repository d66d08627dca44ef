package main

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	tui "github.com/grindlemire/hooktui"
	"github.com/grindlemire/hooktui/internal/config"
)

var dashInterval time.Duration

func init() {
	dashboardCmd.Flags().DurationVar(&dashInterval, "interval", time.Second, "how often to sample runtime stats")
	rootCmd.AddCommand(dashboardCmd)
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Fullscreen dashboard redrawn on a timer",
	Long:  "Samples Go runtime stats on an interval. ? toggles help, s switches between fullscreen and inline, q quits.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		started := time.Now()
		samples := tui.NewSignal([]sample{takeSample(started)})
		return runApp(cmd.Context(),
			dashboardView(samples),
			tui.WithFullscreen(),
			tui.WithWatcher(tui.OnTimer(dashInterval, func() {
				samples.Update(func(s *[]sample) {
					*s = append(*s, takeSample(started))
					if len(*s) > historyLen {
						*s = (*s)[len(*s)-historyLen:]
					}
				})
			})),
		)
	},
}

const historyLen = 120

type sample struct {
	uptime     time.Duration
	goroutines int
	heapBytes  uint64
	numGC      uint32
}

func takeSample(started time.Time) sample {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return sample{
		uptime:     time.Since(started).Truncate(time.Second),
		goroutines: runtime.NumGoroutine(),
		heapBytes:  ms.HeapAlloc,
		numGC:      ms.NumGC,
	}
}

func dashboardView(samples tui.Signal[[]sample]) tui.RenderFunc {
	return func(rc *tui.RenderContext) *tui.Element {
		showHelp := tui.UseState(rc, false)

		h := rc.Handle()
		mode := rc.Mode()
		rc.UseKeys(
			tui.OnRune('q', func(tui.KeyEvent) { h.Exit() }),
			tui.OnRune('?', func(tui.KeyEvent) { showHelp.Set(!showHelp.Get()) }),
			tui.OnKey(tui.KeyEscape, func(tui.KeyEvent) { showHelp.Set(false) }),
			tui.OnRune('s', func(tui.KeyEvent) {
				if mode == tui.ModeAltScreen {
					h.ExitAltScreen()
				} else {
					h.EnterAltScreen()
				}
			}),
		)

		history := samples.Get()
		last := history[len(history)-1]
		w, _ := rc.Viewport()
		accent := config.Color(cfg.Theme.Accent)
		border := config.Color(cfg.Theme.Border)

		heap := make([]float64, len(history))
		for i, s := range history {
			heap[i] = float64(s.heapBytes)
		}

		stat := func(label, value string) *tui.Element {
			return tui.Row(
				tui.Text(fmt.Sprintf("%-12s", label), tui.WithForeground(config.Color(cfg.Theme.Muted))),
				tui.Text(value, tui.WithBold()),
			)
		}

		panel := tui.New(
			tui.WithDirection(tui.DirColumn),
			tui.WithBorder(tui.BorderRounded),
			tui.WithBorderColor(border),
			tui.WithPaddingTRBL(0, 1, 0, 1),
			tui.WithFlexGrow(1),
			tui.WithChildren(
				tui.Text("runtime", tui.WithBold(), tui.WithForeground(accent)),
				stat("uptime", last.uptime.String()),
				stat("goroutines", fmt.Sprint(last.goroutines)),
				stat("heap", formatBytes(last.heapBytes)),
				stat("gc cycles", fmt.Sprint(last.numGC)),
			),
		)

		graph := tui.New(
			tui.WithDirection(tui.DirColumn),
			tui.WithBorder(tui.BorderRounded),
			tui.WithBorderColor(border),
			tui.WithPaddingTRBL(0, 1, 0, 1),
			tui.WithFlexGrow(2),
			tui.WithChildren(
				tui.Text("heap", tui.WithBold(), tui.WithForeground(accent)),
				tui.Text(sparkline(heap, max(1, w/2)), tui.WithForeground(accent)),
			),
		)

		var help *tui.Element
		if showHelp.Get() {
			help = tui.New(
				tui.WithAbsolute(1, 4),
				tui.WithBorder(tui.BorderDouble),
				tui.WithBorderColor(accent),
				tui.WithBackground(tui.Black),
				tui.WithPadding(1),
				tui.WithChildren(tui.Text(strings.Join([]string{
					"?    toggle this help",
					"s    switch inline/fullscreen",
					"esc  close help",
					"q    quit",
				}, "\n"))),
			)
		}

		return tui.New(
			tui.WithDirection(tui.DirColumn),
			tui.WithRelative(),
			tui.WithChildren(
				tui.New(tui.WithDirection(tui.DirRow), tui.WithGap(1), tui.WithChildren(panel, graph)),
				tui.Text("?: help  s: switch screen  q: quit", tui.WithForeground(config.Color(cfg.Theme.Muted))),
				help,
			),
		)
	}
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// sparkline draws the last width values scaled between their min and max.
func sparkline(values []float64, width int) string {
	if len(values) > width {
		values = values[len(values)-width:]
	}
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}
	var b strings.Builder
	for _, v := range values {
		idx := 0
		if hi > lo {
			idx = int((v - lo) * float64(len(sparkRunes)-1) / (hi - lo))
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
