package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crossplay/xword/internal/store"
	"github.com/crossplay/xword/pkg/engine"
)

// catalogueSlot registers (or re-registers) name as a save slot for e's
// file at path, recording the dictionary fingerprint that produced its
// current fill if one has been loaded.
func catalogueSlot(e *engine.Engine, name, path string) error {
	reg, err := store.Open(cfg.StorePath)
	if err != nil {
		return fmt.Errorf("xword: opening save-slot registry: %w", err)
	}
	defer reg.Close()

	meta := e.Metadata()
	fingerprint := ""
	if fp, ok := e.Fingerprint(); ok {
		fingerprint = fmt.Sprintf("%x", fp)
	}

	if existing, found, err := reg.FindByName(name); err == nil && found {
		return reg.Touch(existing.ID)
	}
	_, err = reg.Save(name, path, meta.Title, meta.Author, meta.Difficulty, fingerprint)
	return err
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalogued save slots",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(c *cobra.Command, args []string) error {
	reg, err := store.Open(cfg.StorePath)
	if err != nil {
		return fmt.Errorf("xword: opening save-slot registry: %w", err)
	}
	defer reg.Close()

	slots, err := reg.List()
	if err != nil {
		return err
	}
	if len(slots) == 0 {
		fmt.Println("no saved slots")
		return nil
	}
	for _, s := range slots {
		fmt.Printf("%-20s %-30s %-8s %s\n", s.Name, s.Path, s.Difficulty, s.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
