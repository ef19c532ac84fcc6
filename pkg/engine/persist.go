package engine

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/crossplay/xword/pkg/atom"
	"github.com/crossplay/xword/pkg/clue"
	"github.com/crossplay/xword/pkg/grid"
)

// cellToken renders one cell as its persisted-format token: "-" for a
// barrier, " " for an open-but-blank cell, or the cell's letter.
func cellToken(c grid.Cell) string {
	if c.Barrier {
		return "-"
	}
	if c.Contents.IsEmpty() {
		return " "
	}
	return string(c.Contents.Letter())
}

// WriteGrid serializes g in the §6 line-oriented text format: width,
// then height, then one line per row of comma-terminated cell tokens.
// Hints and lock state are not persisted - a documented gap.
func WriteGrid(w io.Writer, g *grid.Grid) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d\n%d\n", g.Width(), g.Height()); err != nil {
		return fmt.Errorf("engine: writing grid header: %w", err)
	}

	for row := 0; row < g.Height(); row++ {
		var line strings.Builder
		for col := 0; col < g.Width(); col++ {
			line.WriteString(cellToken(g.Get(grid.Coord{Row: row, Col: col})))
			line.WriteByte(',')
		}
		line.WriteByte('\n')
		if _, err := bw.WriteString(line.String()); err != nil {
			return fmt.Errorf("engine: writing grid row %d: %w", row, err)
		}
	}

	return bw.Flush()
}

// ReadGrid parses the §6 line-oriented text format back into a Grid.
// Returns an error, leaving no partial state behind, if the header or
// any row is malformed.
func ReadGrid(r io.Reader) (*grid.Grid, error) {
	scanner := bufio.NewScanner(r)

	readInt := func(label string) (int, error) {
		if !scanner.Scan() {
			return 0, fmt.Errorf("engine: reading %s: %w", label, io.ErrUnexpectedEOF)
		}
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			return 0, fmt.Errorf("engine: parsing %s: %w", label, err)
		}
		return n, nil
	}

	width, err := readInt("width")
	if err != nil {
		return nil, err
	}
	height, err := readInt("height")
	if err != nil {
		return nil, err
	}

	if height < grid.MinDim || height > grid.MaxDim || width < grid.MinDim || width > grid.MaxDim {
		return nil, fmt.Errorf("engine: dimensions %dx%d out of range", height, width)
	}
	g := grid.NewGrid(height, width)

	for row := 0; row < height; row++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("engine: row %d: %w", row, io.ErrUnexpectedEOF)
		}
		line := scanner.Text()
		tokens := strings.Split(line, ",")
		// Trailing comma after every cell leaves one empty trailing token.
		if len(tokens) > 0 && tokens[len(tokens)-1] == "" {
			tokens = tokens[:len(tokens)-1]
		}
		if len(tokens) != width {
			return nil, fmt.Errorf("engine: row %d has %d cells, want %d", row, len(tokens), width)
		}

		for col, tok := range tokens {
			c := grid.Coord{Row: row, Col: col}
			switch {
			case tok == "-":
				g.SetBarrier(c, true, false)
			case tok == " " || tok == "":
				// already blank
			case len(tok) == 1 && tok[0] >= 'A' && tok[0] <= 'Z':
				g.SetCellRaw(c, atom.FromLetter(rune(tok[0])))
			default:
				return nil, fmt.Errorf("engine: row %d col %d: invalid cell token %q", row, col, tok)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("engine: reading grid: %w", err)
	}

	return g, nil
}

// clueJSON mirrors one slot in the JSON export sidecar.
type clueJSON struct {
	Number    int    `json:"number"`
	Direction string `json:"direction"`
	Length    int    `json:"length"`
	Answer    string `json:"answer"`
}

// puzzleJSON is the export sidecar: the persisted text format carries
// the grid, this carries everything a viewer needs without replaying
// the clue structure itself.
type puzzleJSON struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Author     string     `json:"author"`
	Difficulty string     `json:"difficulty"`
	CreatedAt  time.Time  `json:"createdAt"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Grid       [][]string `json:"grid"`
	Across     []clueJSON `json:"across"`
	Down       []clueJSON `json:"down"`
}

// WriteJSONSidecar writes the JSON export sidecar alongside the
// persisted text format: grid as a 2-D array of tokens, plus every
// slot's number, direction, length, and current answer.
func WriteJSONSidecar(w io.Writer, g *grid.Grid, structure *clue.Structure, meta Metadata) error {
	rows := make([][]string, g.Height())
	for row := range rows {
		rows[row] = make([]string, g.Width())
		for col := range rows[row] {
			rows[row][col] = cellToken(g.Get(grid.Coord{Row: row, Col: col}))
		}
	}

	var across, down []clueJSON
	for _, slot := range structure.Slots() {
		entry := clueJSON{
			Number:    slot.Number,
			Direction: slot.Direction.String(),
			Length:    slot.Length,
			Answer:    slot.ToWord().String(),
		}
		if slot.Direction == clue.Across {
			across = append(across, entry)
		} else {
			down = append(down, entry)
		}
	}

	doc := puzzleJSON{
		ID:         meta.ID,
		Title:      meta.Title,
		Author:     meta.Author,
		Difficulty: string(meta.Difficulty),
		CreatedAt:  meta.CreatedAt,
		Width:      g.Width(),
		Height:     g.Height(),
		Grid:       rows,
		Across:     across,
		Down:       down,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("engine: encoding JSON sidecar: %w", err)
	}
	return nil
}
