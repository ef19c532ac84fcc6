package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/crossplay/xword/pkg/engine"
)

var (
	newHeight     int
	newWidth      int
	newDifficulty string
	newTitle      string
	newAuthor     string
	newRandom     bool
)

var newCmd = &cobra.Command{
	Use:   "new <file>",
	Short: "Create a new grid and write it to file",
	Args:  cobra.ExactArgs(1),
	RunE:  runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().IntVar(&newHeight, "height", 15, "grid height")
	newCmd.Flags().IntVar(&newWidth, "width", 15, "grid width")
	newCmd.Flags().StringVarP(&newDifficulty, "difficulty", "d", "medium", "barrier density preset (easy, medium, hard, expert)")
	newCmd.Flags().StringVar(&newTitle, "title", "Untitled", "puzzle title")
	newCmd.Flags().StringVar(&newAuthor, "author", "", "puzzle author")
	newCmd.Flags().BoolVar(&newRandom, "random", false, "seed a random valid barrier pattern instead of an empty grid")
}

func runNew(c *cobra.Command, args []string) error {
	path := args[0]

	difficulty, err := parseDifficulty(newDifficulty)
	if err != nil {
		return err
	}
	meta := engine.NewMetadata(newTitle, newAuthor, difficulty)

	var e *engine.Engine
	if newRandom {
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		e, err = engine.NewGeneratedEngine(newHeight, newWidth, difficulty, r, meta)
		if err != nil {
			return fmt.Errorf("xword: generating grid: %w", err)
		}
	} else {
		e = engine.New(newHeight, newWidth, meta)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("xword: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := e.Save(f); err != nil {
		return fmt.Errorf("xword: writing %s: %w", path, err)
	}

	if verbosity > 0 {
		fmt.Printf("wrote %dx%d grid to %s\n", newHeight, newWidth, path)
	}
	return nil
}
