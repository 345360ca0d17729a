package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/perihelion/internal/tui"
	"github.com/papapumpkin/perihelion/internal/watch"
)

// interactiveCmd opens the shell over an already-loaded catalog so
// repeated inspections and queries skip reloading the data files.
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Open an interactive query shell",
	Long: `Load and link the data set once, then open a shell for repeated
inspect and query commands. The data files are watched while the shell
runs; if one changes on disk a staleness notice appears, and with
--aggressive the session ends instead.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	interactiveCmd.Flags().Bool("aggressive", false, "exit the shell when a data file changes")
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := buildCatalog(cfg)
	if err != nil {
		return err
	}
	presets, err := loadPresets(cfg)
	if err != nil {
		return err
	}

	aggressive, _ := cmd.Flags().GetBool("aggressive")

	w, err := watch.New(cfg.NEOsPath, cfg.CADPath)
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		// A dead watcher only loses staleness notices; the shell still works.
		fmt.Fprintf(os.Stderr, "warning: file watching unavailable: %v\n", err)
		w = nil
	} else {
		defer w.Stop()
	}

	var changes <-chan watch.Change
	if w != nil {
		changes = w.Changes
	}

	m := tui.New(cat, presets, changes, aggressive)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("shell error: %w", err)
	}
	return nil
}
