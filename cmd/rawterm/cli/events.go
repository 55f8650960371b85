package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/xyproto/rawterm"
)

var pollInterval time.Duration

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show decoded input events until q or Esc is pressed",
	Long: `Show decoded input events, one batch per line.

Input is polled with the given interval. Everything that arrived in the
meantime is decoded together as one batch.`,
	Args: cobra.NoArgs,
	RunE: showEvents,
}

func init() {
	eventsCmd.Flags().DurationVar(&pollInterval, "interval", 100*time.Millisecond, "how long to wait for input per poll")
	rootCmd.AddCommand(eventsCmd)
}

func showEvents(cmd *cobra.Command, args []string) error {
	t, err := openTerminal()
	if err != nil {
		return err
	}
	defer t.Close()

	fmt.Fprint(t, "Press q or Esc to exit\r\n")
	if err := t.Flush(); err != nil {
		return err
	}

	return withRawMode(t, func() error {
		for {
			batch, err := t.ReadBatchBlocking(pollInterval)
			if err != nil {
				return err
			}
			if batch.IsEmpty() {
				continue
			}
			for ev := range batch.All() {
				fmt.Fprint(t, ev.String(), " ")
			}
			fmt.Fprint(t, "\r\n")
			if err := t.Flush(); err != nil {
				return err
			}
			if batch.Pressed(rawterm.Char('q')) || batch.Pressed(rawterm.Code(rawterm.KeyEscape)) {
				return nil
			}
		}
	})
}
