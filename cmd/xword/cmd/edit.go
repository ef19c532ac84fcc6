package cmd

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/crossplay/xword/pkg/atom"
	"github.com/crossplay/xword/pkg/clue"
	"github.com/crossplay/xword/pkg/engine"
	"github.com/crossplay/xword/pkg/fill"
	"github.com/crossplay/xword/pkg/grid"
)

var editDict string

var editCmd = &cobra.Command{
	Use:   "edit <file>",
	Short: "Interactively edit a grid file",
	Long: `edit opens file against one live engine and reads commands from
stdin until "quit":

  set <row> <col> <letter>     set one cell
  setslot <across|down> <num> <word>   fill a whole slot
  clear <across|down> <num>    clear a slot's unlocked cells
  clearall                     clear every unlocked cell
  barrier <row> <col>          toggle a barrier, mirrored for symmetry
  lock <row> <col>             toggle a cell's lock flag
  undo / redo                  step through the edit log
  autofill [seconds]           run one autofill search
  save [name]                  write the grid back to file, catalogued
                                in the save-slot registry under name
  show                         print the grid
  quit                         save and exit

undo/redo only make sense within this live session: the edit log is
in-memory and is not part of the persisted file format.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editDict, "dict", "", "dictionary file to load before editing (defaults to the config's dict_path)")
}

func runEdit(c *cobra.Command, args []string) error {
	path := args[0]
	e, err := loadEngine(path)
	if err != nil {
		return err
	}

	dictPath := editDict
	if dictPath == "" {
		dictPath = cfg.DictPath
	}
	if dictPath != "" {
		e.LoadDeferred(dictPath)
	}

	printGrid(os.Stdout, e)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("xword> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return saveEngine(e, path)
		case "save":
			if err := saveEngine(e, path); err != nil {
				fmt.Println(err)
				continue
			}
			if len(fields) >= 2 {
				if err := catalogueSlot(e, fields[1], path); err != nil {
					fmt.Println(err)
					continue
				}
			}
			fmt.Println("saved")
		case "show":
			printGrid(os.Stdout, e)
		case "set":
			if err := cmdSet(e, fields); err != nil {
				fmt.Println(err)
			}
		case "setslot":
			if err := cmdSetSlot(e, fields); err != nil {
				fmt.Println(err)
			}
		case "clear":
			if err := cmdClear(e, fields); err != nil {
				fmt.Println(err)
			}
		case "clearall":
			e.ClearAllAtoms()
		case "barrier":
			if err := cmdBarrier(e, fields); err != nil {
				fmt.Println(err)
			}
		case "lock":
			if err := cmdLock(e, fields); err != nil {
				fmt.Println(err)
			}
		case "undo":
			if !e.Undo() {
				fmt.Println("nothing to undo")
			}
		case "redo":
			if !e.Redo() {
				fmt.Println("nothing to redo")
			}
		case "autofill":
			cmdAutofill(e, fields)
		default:
			fmt.Printf("unrecognized command %q\n", fields[0])
		}
	}
	return scanner.Err()
}

func parseCoord(rowStr, colStr string) (grid.Coord, error) {
	row, err := strconv.Atoi(rowStr)
	if err != nil {
		return grid.Coord{}, fmt.Errorf("invalid row %q", rowStr)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil {
		return grid.Coord{}, fmt.Errorf("invalid col %q", colStr)
	}
	return grid.Coord{Row: row, Col: col}, nil
}

func parseDirection(s string) (clue.Direction, error) {
	switch strings.ToLower(s) {
	case "across", "a":
		return clue.Across, nil
	case "down", "d":
		return clue.Down, nil
	default:
		return 0, fmt.Errorf("invalid direction %q (want across or down)", s)
	}
}

func findSlot(e *engine.Engine, dir clue.Direction, number int) (*clue.Slot, error) {
	slots := e.Slots()
	for i := range slots {
		if slots[i].Direction == dir && slots[i].Number == number {
			return &slots[i], nil
		}
	}
	return nil, fmt.Errorf("no such slot: %s %d", dir, number)
}

func cmdSet(e *engine.Engine, fields []string) error {
	if len(fields) != 4 {
		return fmt.Errorf("usage: set <row> <col> <letter>")
	}
	coord, err := parseCoord(fields[1], fields[2])
	if err != nil {
		return err
	}
	letter := strings.ToUpper(fields[3])
	if len(letter) != 1 {
		return fmt.Errorf("letter must be a single character")
	}
	e.Set(coord, atom.FromLetter(rune(letter[0])))
	return nil
}

func cmdSetSlot(e *engine.Engine, fields []string) error {
	if len(fields) != 4 {
		return fmt.Errorf("usage: setslot <across|down> <number> <word>")
	}
	dir, err := parseDirection(fields[1])
	if err != nil {
		return err
	}
	number, err := strconv.Atoi(fields[2])
	if err != nil {
		return fmt.Errorf("invalid slot number %q", fields[2])
	}
	slot, err := findSlot(e, dir, number)
	if err != nil {
		return err
	}
	e.SetSlot(slot, atom.FromString(strings.ToUpper(fields[3])))
	return nil
}

func cmdClear(e *engine.Engine, fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("usage: clear <across|down> <number>")
	}
	dir, err := parseDirection(fields[1])
	if err != nil {
		return err
	}
	number, err := strconv.Atoi(fields[2])
	if err != nil {
		return fmt.Errorf("invalid slot number %q", fields[2])
	}
	slot, err := findSlot(e, dir, number)
	if err != nil {
		return err
	}
	e.ClearSlot(slot)
	return nil
}

func cmdBarrier(e *engine.Engine, fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("usage: barrier <row> <col>")
	}
	coord, err := parseCoord(fields[1], fields[2])
	if err != nil {
		return err
	}
	e.ToggleBarrier(coord, true)
	return nil
}

func cmdLock(e *engine.Engine, fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("usage: lock <row> <col>")
	}
	coord, err := parseCoord(fields[1], fields[2])
	if err != nil {
		return err
	}
	e.ToggleLock(coord)
	return nil
}

func cmdAutofill(e *engine.Engine, fields []string) {
	params := fill.DefaultParams()
	if len(fields) >= 2 {
		if n, err := strconv.Atoi(fields[1]); err == nil {
			params.SecondsLimit = n
		}
	}
	params.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

	e.WaitForLoad()
	outcome := e.Autofill(params)
	fmt.Println(outcome)
	printGrid(os.Stdout, e)
}
