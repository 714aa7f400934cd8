package cmd

import (
	"fmt"

	"github.com/devika/grammaroll/internal/app"
	"github.com/devika/grammaroll/internal/screens/practice"
	"github.com/devika/grammaroll/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store and launches the TUI. A non-empty mode skips
// the menu and opens a practice session directly.
func runApp(cmd *cobra.Command, mode practice.Mode) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(app.Options{
		State:      st.StateRepo(),
		Events:     st.EventRepo(),
		StartMode:  mode,
		SkipSplash: noSplash,
	})
}
