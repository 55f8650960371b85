package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var cursorCmd = &cobra.Command{
	Use:   "cursor",
	Short: "Ask the terminal where the cursor is",
	Long: `Ask the terminal where the cursor is and wait for the reply.

The wait is one second by default, RAWTERM_CURSOR_TIMEOUT_MS changes it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := openTerminal()
		if err != nil {
			return err
		}
		defer t.Close()

		return withRawMode(t, func() error {
			pos, ok, err := t.CursorPosition()
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprint(t, "the terminal did not reply\r\n")
			} else {
				fmt.Fprintf(t, "row %d, column %d\r\n", pos.Row, pos.Column)
			}
			return t.Flush()
		})
	},
}

var moveCmd = &cobra.Command{
	Use:   "move ROW COLUMN",
	Short: "Move the cursor to a 1-based row and column",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		row, err := strconv.ParseUint(args[0], 10, 16)
		if err != nil {
			return fmt.Errorf("invalid row %q: %w", args[0], err)
		}
		column, err := strconv.ParseUint(args[1], 10, 16)
		if err != nil {
			return fmt.Errorf("invalid column %q: %w", args[1], err)
		}

		t, err := openTerminal()
		if err != nil {
			return err
		}
		defer t.Close()

		if err := t.MoveCursor(uint16(row), uint16(column)); err != nil {
			return err
		}
		return t.Flush()
	},
}

var visibilityCmd = &cobra.Command{
	Use:       "visibility show|hide",
	Short:     "Show or hide the cursor",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"show", "hide"},
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := openTerminal()
		if err != nil {
			return err
		}
		defer t.Close()

		if args[0] == "show" {
			err = t.ShowCursor()
		} else {
			err = t.HideCursor()
		}
		if err != nil {
			return err
		}
		return t.Flush()
	},
}

func init() {
	rootCmd.AddCommand(cursorCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(visibilityCmd)
}
