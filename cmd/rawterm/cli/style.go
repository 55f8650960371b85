package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xyproto/rawterm"
)

var altScreen bool

var styleCmd = &cobra.Command{
	Use:   "style",
	Short: "Show the basic colors",
	Long: `Show the basic colors as foreground and background.

With --alt the colors are shown on the alternate screen until a key is pressed.
NO_COLOR turns the colored names off.`,
	Args: cobra.NoArgs,
	RunE: showStyle,
}

func init() {
	styleCmd.Flags().BoolVar(&altScreen, "alt", false, "use the alternate screen")
	rootCmd.AddCommand(styleCmd)
}

func showStyle(cmd *cobra.Command, args []string) error {
	t, err := openTerminal()
	if err != nil {
		return err
	}
	defer t.Close()

	if altScreen {
		if err := t.EnterAlternateBuffer(); err != nil {
			return err
		}
		if err := t.EraseEntireScreen(); err != nil {
			return err
		}
		if err := t.MoveCursor(1, 1); err != nil {
			return err
		}
	}

	for c := rawterm.Black; c <= rawterm.White; c++ {
		fmt.Fprint(t, c.Paint(fmt.Sprintf("%-8s", c)), " ")
		if !rawterm.NoColor() {
			bg := rawterm.Black
			if c == rawterm.Black {
				bg = rawterm.White
			}
			if err := t.SetColors(bg, c); err != nil {
				return err
			}
			fmt.Fprint(t, " sample ")
			if err := t.ResetColors(); err != nil {
				return err
			}
		}
		fmt.Fprint(t, "\r\n")
	}
	if err := t.Flush(); err != nil {
		return err
	}

	if !altScreen {
		return nil
	}
	err = withRawMode(t, func() error {
		_, _, err := t.ReadSingle()
		return err
	})
	if lerr := t.LeaveAlternateBuffer(); lerr != nil && err == nil {
		err = lerr
	}
	return err
}
