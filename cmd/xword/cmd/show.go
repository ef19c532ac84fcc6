package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/crossplay/xword/pkg/engine"
	"github.com/crossplay/xword/pkg/grid"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a grid's current contents",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(c *cobra.Command, args []string) error {
	e, err := loadEngine(args[0])
	if err != nil {
		return err
	}
	printGrid(os.Stdout, e)
	return nil
}

const (
	ansiReset = "\x1b[0m"
	ansiDim   = "\x1b[2m"
	ansiBold  = "\x1b[1m"
)

// printGrid dumps e's grid as a character matrix, using ANSI styling
// for barriers and locked cells when w is an interactive terminal.
func printGrid(w *os.File, e *engine.Engine) {
	color := isatty.IsTerminal(w.Fd())
	h, width := e.Height(), e.Width()

	var sb strings.Builder
	for row := 0; row < h; row++ {
		for col := 0; col < width; col++ {
			cell := e.Get(grid.Coord{Row: row, Col: col})
			switch {
			case cell.Barrier:
				if color {
					sb.WriteString(ansiDim + "#" + ansiReset)
				} else {
					sb.WriteString("#")
				}
			case cell.Contents.IsEmpty():
				sb.WriteString(".")
			default:
				letter := string(cell.Contents.Letter())
				if color && cell.Locked {
					sb.WriteString(ansiBold + letter + ansiReset)
				} else {
					sb.WriteString(letter)
				}
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(w, sb.String())
}
