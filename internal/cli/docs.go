package cli

import (
	"fmt"

	"tripweaver-cli/internal/docs"
	"tripweaver-cli/internal/format"
	"tripweaver-cli/internal/itinerary"

	"github.com/spf13/cobra"
)

type topicList struct {
	Topics []docs.Topic `json:"topics"`
}

func (l topicList) Table() format.Table {
	t := format.Table{Headers: []string{"TOPIC", "TITLE"}}
	for _, tp := range l.Topics {
		t.Rows = append(t.Rows, []string{tp.Name, tp.Title})
	}
	return t
}

type topicView struct {
	Topic    string `json:"topic"`
	Markdown string `json:"markdown"`
}

func newDocsCmd(app *App) *cobra.Command {
	var raw bool
	var width int

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show the built-in guides",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, topicList{Topics: docs.Topics()})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown docs topic: %q (run `tripweaver docs` to list topics)", topic))
			}

			switch {
			case raw:
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			case app.Format == format.FormatTable:
				_, err := fmt.Fprint(cmd.OutOrStdout(), itinerary.Render(body, width, markdownStyle(cmd)))
				return err
			default:
				return writeOut(cmd, app, topicView{Topic: topic, Markdown: body})
			}
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no JSON envelope)")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for rendered markdown")

	return cmd
}
