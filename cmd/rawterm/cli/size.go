package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/xyproto/rawterm"
)

var watchSize bool

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Show the number of rows and columns",
	Args:  cobra.NoArgs,
	RunE:  showSize,
}

func init() {
	sizeCmd.Flags().BoolVarP(&watchSize, "watch", "w", false, "show the size again whenever the terminal is resized")
	rootCmd.AddCommand(sizeCmd)
}

func printSize(t *rawterm.Terminal) error {
	size, err := t.Size()
	if err != nil {
		return err
	}
	fmt.Fprintf(t, "%d rows, %d columns\n", size.Rows, size.Columns)
	return t.Flush()
}

func showSize(cmd *cobra.Command, args []string) error {
	t, err := openTerminal()
	if err != nil {
		return err
	}
	defer t.Close()

	if err := printSize(t); err != nil || !watchSize {
		return err
	}

	resized := make(chan os.Signal, 1)
	rawterm.NotifyResize(resized)
	defer rawterm.StopResize(resized)

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt)
	defer signal.Stop(interrupted)

	for {
		select {
		case <-resized:
			logger.Debug("resized")
			if err := printSize(t); err != nil {
				return err
			}
		case <-interrupted:
			return nil
		}
	}
}
