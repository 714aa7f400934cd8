package cmd

import (
	"github.com/devika/grammaroll/internal/screens/practice"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Jump straight into a sentence practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, practice.ModeSelect)
	},
}

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Jump straight into a diagram session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, practice.ModeDiagram)
	},
}
