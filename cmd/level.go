package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/devika/grammaroll/internal/difficulty"
	"github.com/devika/grammaroll/internal/store"
	"github.com/spf13/cobra"
)

var levelCmd = &cobra.Command{
	Use:   "level [n]",
	Short: "Show or set the difficulty level",
	Long: fmt.Sprintf("Show the current difficulty level, or set it to n (%d-%d).\n"+
		"Setting a level overrides the adaptive engine until it adjusts again.",
		difficulty.MinLevel, difficulty.MaxLevel),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		state := st.StateRepo()

		diffState, err := state.Difficulty(ctx)
		if err != nil {
			return fmt.Errorf("load difficulty state: %w", err)
		}

		engine := difficulty.New(difficulty.MinLevel)
		if diffState != nil {
			engine.SetState(*diffState)
		}

		if len(args) == 0 {
			fmt.Printf("Current level: %d\n", engine.CurrentLevel())
			return nil
		}

		target, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid level %q", args[0])
		}
		if target < difficulty.MinLevel || target > difficulty.MaxLevel {
			return fmt.Errorf("level must be between %d and %d", difficulty.MinLevel, difficulty.MaxLevel)
		}

		from := engine.CurrentLevel()
		if target == from {
			fmt.Printf("Already at level %d.\n", from)
			return nil
		}

		engine.SetLevel(target)

		rec, err := state.Get(ctx)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		rec.CurrentDifficultyLevel = target

		newState := engine.State()
		if err := state.SaveAll(ctx, rec, &newState); err != nil {
			return fmt.Errorf("save state: %w", err)
		}

		err = st.EventRepo().AppendLevelChange(ctx, store.LevelEventData{
			FromLevel: from,
			ToLevel:   target,
			Trigger:   "manual",
		})
		if err != nil {
			return fmt.Errorf("log level change: %w", err)
		}

		fmt.Printf("Level set: %d → %d\n", from, target)
		return nil
	},
}
