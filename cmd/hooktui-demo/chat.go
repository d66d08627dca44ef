package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	tui "github.com/grindlemire/hooktui"
	"github.com/grindlemire/hooktui/internal/config"
)

var chatDelay time.Duration

func init() {
	chatCmd.Flags().DurationVar(&chatDelay, "delay", 600*time.Millisecond, "how long the bot takes to answer")
	rootCmd.AddCommand(chatCmd)
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Scrollback chat fed by a background goroutine",
	Long:  "Messages are printed above the live input and stay in the terminal's scrollback. Type /quit or press Ctrl+C to leave.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		prompts := make(chan string, 8)
		replies := make(chan string)
		typing := tui.NewSignal(false)
		go answer(ctx, prompts, replies, typing)

		var app *tui.App
		app, err := newApp(
			chatView(prompts, typing),
			tui.WithWatcher(tui.Watch(replies, func(msg string) {
				app.PrintElement(chatLine("bot", msg, config.Color(cfg.Theme.Muted)))
			})),
		)
		if err != nil {
			return err
		}
		return app.Run(ctx)
	},
}

func chatView(prompts chan<- string, typing tui.Signal[bool]) tui.RenderFunc {
	return func(rc *tui.RenderContext) *tui.Element {
		h := rc.Handle()
		var input *tui.TextInput
		input = tui.UseTextInput(rc,
			tui.WithInputWidth(50),
			tui.WithInputBorder(tui.BorderRounded),
			tui.WithInputFocusColor(config.Color(cfg.Theme.Accent)),
			tui.WithInputPlaceholder("say something"),
			tui.WithInputFocus(tui.FocusOptions{ID: "message", AutoFocus: true}),
			tui.WithInputOnSubmit(func(msg string) {
				msg = strings.TrimSpace(msg)
				input.Clear()
				switch msg {
				case "":
					return
				case "/quit":
					h.Exit()
					return
				}
				h.PrintElement(chatLine("you", msg, config.Color(cfg.Theme.Accent)))
				select {
				case prompts <- msg:
				default:
					h.Println("(bot is busy, message dropped)")
				}
			}),
		)

		status := tui.Text(" ")
		if typing.Get() {
			status = tui.Text("bot is typing...", tui.WithItalic(), tui.WithForeground(config.Color(cfg.Theme.Muted)))
		}
		return tui.Column(status, input.Element())
	}
}

func chatLine(who, msg string, c tui.Color) *tui.Element {
	return tui.Row(
		tui.Text(fmt.Sprintf("%-4s", who), tui.WithBold(), tui.WithForeground(c)),
		tui.Text(msg),
	)
}

// answer replies to each prompt after chatDelay. It runs outside the loop,
// so it requests a render after touching typing.
func answer(ctx context.Context, prompts <-chan string, replies chan<- string, typing tui.Signal[bool]) {
	for {
		var msg string
		select {
		case <-ctx.Done():
			return
		case msg = <-prompts:
		}

		typing.Set(true)
		tui.RequestRender()
		select {
		case <-ctx.Done():
			return
		case <-time.After(chatDelay):
		}
		typing.Set(false)
		tui.RequestRender()

		select {
		case <-ctx.Done():
			return
		case replies <- reply(msg):
		}
	}
}

func reply(msg string) string {
	words := strings.Fields(msg)
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
	return strings.Join(words, " ")
}
