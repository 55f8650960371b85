package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/xyproto/rawterm"
)

var (
	verbose bool
	jsonOut bool
	useTTY  bool

	logger = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "rawterm",
	Short: "Inspect terminal input and try out terminal commands",
	Long: `rawterm puts the terminal in raw mode and shows the decoded input events,
or runs a single terminal command such as moving the cursor.

Debug output goes to stderr when --verbose is given.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug output on stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "debug output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&useTTY, "tty", false, "open the terminal device instead of using stdin and stdout")
}

func initLogger() {
	if !verbose {
		return
	}
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if jsonOut {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, opts))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
}

// openTerminal returns the terminal to work on. The cursor query budget
// comes from RAWTERM_CURSOR_TIMEOUT_MS.
func openTerminal() (*rawterm.Terminal, error) {
	if useTTY {
		return rawterm.OpenTTY(rawterm.WithLogger(logger))
	}
	t := rawterm.Stdio(rawterm.WithLogger(logger))
	if !t.IsTerminal() {
		return nil, rawterm.ErrNotTerminal
	}
	return t, nil
}

// withRawMode runs f with the terminal in raw mode and restores it afterwards
func withRawMode(t *rawterm.Terminal, f func() error) error {
	if err := t.EnableRawMode(); err != nil {
		return err
	}
	defer t.Restore()
	return f()
}
