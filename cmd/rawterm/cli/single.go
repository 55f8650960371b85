package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var singleCmd = &cobra.Command{
	Use:   "single",
	Short: "Wait for one input event and show it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := openTerminal()
		if err != nil {
			return err
		}
		defer t.Close()

		return withRawMode(t, func() error {
			ev, ok, err := t.ReadSingle()
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprint(t, "no input\r\n")
				return nil
			}
			fmt.Fprint(t, ev.String(), "\r\n")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(singleCmd)
}
