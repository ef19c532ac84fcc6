// Package engine implements the single-writer façade (C8) that wires
// the grid, clue structure, action log, word index, and fill search
// together behind the operations an embedder actually calls.
package engine

import (
	"io"
	"math/rand"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/crossplay/xword/pkg/actionlog"
	"github.com/crossplay/xword/pkg/atom"
	"github.com/crossplay/xword/pkg/clue"
	"github.com/crossplay/xword/pkg/fill"
	"github.com/crossplay/xword/pkg/grid"
	"github.com/crossplay/xword/pkg/wordindex"
)

// hintKey identifies one slot for the in-memory, unpersisted hint map.
type hintKey struct {
	dir    clue.Direction
	number int
}

// Engine is the single-writer façade over one puzzle in progress. At
// most one mutating call (an edit or an autofill run) should be in
// flight at a time; serializing that is the embedder's responsibility,
// same as the component design's concurrency model says. Autofill
// holds the engine's mutex for the duration of the search, which is
// what makes that true in practice; StopAutofill and IsSearching
// deliberately bypass the mutex since they only touch the search's own
// atomic flags.
type Engine struct {
	mu sync.Mutex

	g         *grid.Grid
	structure *clue.Structure
	log       *actionlog.Log
	index     *wordindex.Index
	search    *fill.Search

	meta  Metadata
	hints map[hintKey]string
}

// New constructs an engine around a fresh H x W empty grid.
func New(h, w int, meta Metadata) *Engine {
	g := grid.NewGrid(h, w)
	return newEngine(g, meta)
}

// NewFromGrid constructs an engine around an already-built grid (for
// example one produced by NewRandomGrid or loaded via ReadGrid).
func NewFromGrid(g *grid.Grid, meta Metadata) *Engine {
	return newEngine(g, meta)
}

func newEngine(g *grid.Grid, meta Metadata) *Engine {
	structure := clue.New(g)
	log := actionlog.NewLog(g)
	log.OnChange = structure.UpdateConstraint

	return &Engine{
		g:         g,
		structure: structure,
		log:       log,
		index:     wordindex.NewIndex(),
		search:    fill.NewSearch(),
		meta:      meta,
		hints:     make(map[hintKey]string),
	}
}

// NewGeneratedEngine builds an engine around a freshly generated, valid
// random barrier pattern of the given difficulty. See NewRandomGrid in
// generate.go for the retry loop itself.
func NewGeneratedEngine(h, w int, difficulty grid.Difficulty, r *rand.Rand, meta Metadata) (*Engine, error) {
	g, err := NewRandomGrid(h, w, difficulty, r)
	if err != nil {
		return nil, err
	}
	return newEngine(g, meta), nil
}

// NewRandomGrid reseeds the engine in place with a freshly generated,
// valid random barrier pattern, discarding the current grid, action
// log, and cached slot structure. This is the "start from a random
// valid pattern" action left implicit by set_barrier/set_dimensions.
func (e *Engine) NewRandomGrid(cfg GeneratorConfig) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, err := NewRandomGrid(cfg.Height, cfg.Width, cfg.Difficulty, cfg.Rand)
	if err != nil {
		return err
	}

	structure := clue.New(g)
	log := actionlog.NewLog(g)
	log.OnChange = structure.UpdateConstraint

	e.g = g
	e.structure = structure
	e.log = log
	e.hints = make(map[hintKey]string)
	return nil
}

// Metadata returns the engine's puzzle metadata.
func (e *Engine) Metadata() Metadata {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.meta
}

// --- Edits (push to log) ---

// Set assigns one open cell's contents through the log, making it
// undoable.
func (e *Engine) Set(c grid.Coord, a atom.Atom) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.log.Apply(actionlog.NewSetCell(e.g, c, a))
}

// SetSlot fills the blanks of slot with word through the log, as one
// undoable group.
func (e *Engine) SetSlot(slot *clue.Slot, word atom.Word) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.log.Apply(clue.BuildFillGroup(e.g, slot, word))
}

// ClearSlot clears slot's unlocked cells through the log, as one
// undoable group.
func (e *Engine) ClearSlot(slot *clue.Slot) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.log.Apply(clue.BuildClearGroup(e.g, slot))
}

// ClearAllAtoms clears every filled, unlocked open cell in the grid
// through the log, as one undoable group.
func (e *Engine) ClearAllAtoms() {
	e.mu.Lock()
	defer e.mu.Unlock()

	var actions []actionlog.Action
	for row := 0; row < e.g.Height(); row++ {
		for col := 0; col < e.g.Width(); col++ {
			c := grid.Coord{Row: row, Col: col}
			if e.g.IsBarrier(c) {
				continue
			}
			if e.g.IsFilled(c) && !e.g.IsLocked(c) {
				actions = append(actions, actionlog.NewSetCell(e.g, c, atom.Empty))
			}
		}
	}
	e.log.Apply(actionlog.NewGroup(actions...))
}

// Undo reverts the most recently applied log entry. Returns false if
// there is nothing to undo.
func (e *Engine) Undo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.log.Undo()
}

// Redo re-applies the next entry in the log's redo tail. Returns false
// if there is nothing to redo.
func (e *Engine) Redo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.log.Redo()
}

// --- Non-log edits ---

// SetBarrier flips the barrier bit at c, mirroring to the rotational
// pair when enforceSymmetry is set. Never pushes to the log.
func (e *Engine) SetBarrier(c grid.Coord, val, enforceSymmetry bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.g.SetBarrier(c, val, enforceSymmetry)
	e.structure.MarkDirty()
}

// ToggleBarrier flips c's current barrier state.
func (e *Engine) ToggleBarrier(c grid.Coord, enforceSymmetry bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.g.SetBarrier(c, !e.g.IsBarrier(c), enforceSymmetry)
	e.structure.MarkDirty()
}

// SetDimensions resizes the live grid rectangle.
func (e *Engine) SetDimensions(h, w int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.g.SetDimensions(h, w)
	e.structure.MarkDirty()
}

// LockCell sets c's lock flag directly, outside the log.
func (e *Engine) LockCell(c grid.Coord, val bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.g.SetLocked(c, val)
	e.structure.UpdateConstraint(c)
}

// ToggleLock flips c's current lock flag.
func (e *Engine) ToggleLock(c grid.Coord) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.g.SetLocked(c, !e.g.IsLocked(c))
	e.structure.UpdateConstraint(c)
}

// --- Queries ---

func (e *Engine) Get(c grid.Coord) grid.Cell {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.g.Get(c)
}

func (e *Engine) IsInBounds(c grid.Coord) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.g.IsInBounds(c)
}

func (e *Engine) IsFilled(c grid.Coord) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.g.IsFilled(c)
}

func (e *Engine) IsLocked(c grid.Coord) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.g.IsLocked(c)
}

func (e *Engine) IsValidPattern() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.structure.IsValidPattern()
}

func (e *Engine) Height() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.g.Height()
}

func (e *Engine) Width() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.g.Width()
}

// Slots returns the current slot list. The slice is the clue
// structure's own, not a copy: later cell edits update its entries in
// place.
func (e *Engine) Slots() []clue.Slot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.structure.Slots()
}

// SlotsStartingAt returns the slots beginning at c (0, 1, or 2 of
// them).
func (e *Engine) SlotsStartingAt(c grid.Coord) []clue.Slot {
	e.mu.Lock()
	defer e.mu.Unlock()
	slots := e.structure.Slots()
	indices := e.structure.StartsAt(c)
	out := make([]clue.Slot, len(indices))
	for i, idx := range indices {
		out[i] = slots[idx]
	}
	return out
}

func (e *Engine) ClueNumber(c grid.Coord) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.structure.Number(c)
}

// Hint returns the player-facing hint text for slot, if one was set.
// Hints are in-memory only and are not part of the persisted format.
func (e *Engine) Hint(dir clue.Direction, number int) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	text, ok := e.hints[hintKey{dir, number}]
	return text, ok
}

// SetHint attaches player-facing hint text to a slot.
func (e *Engine) SetHint(dir clue.Direction, number int, text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hints[hintKey{dir, number}] = text
}

// --- Search ---

// Autofill runs one autofill search to completion, holding the engine
// mutex for its entire duration. This is what makes the engine's
// single-writer guarantee hold for search as well as for edits.
func (e *Engine) Autofill(params fill.Params) fill.Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.search.Run(e.g, e.structure, e.log, e.index, params)
}

// StopAutofill sets the cooperative cancellation flag on any in-flight
// search. Deliberately does not take the engine mutex: the search's
// stop, externalStop and done flags are the only state shared across
// the search goroutine and its caller, and they are already atomic.
func (e *Engine) StopAutofill() {
	e.search.Stop()
}

// IsSearching reports whether an Autofill call is currently running.
func (e *Engine) IsSearching() bool {
	return e.search.IsSearching()
}

// --- Index ---

func (e *Engine) AddEntry(word atom.Word, freq int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.index.AddEntry(word, freq)
}

func (e *Engine) Contains(word atom.Word) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.index.Contains(word)
}

func (e *Engine) FreqScore(word atom.Word) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.index.FreqScore(word)
}

func (e *Engine) GetSolutions(slot *clue.Slot) []atom.Word {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.index.GetSolutions(slot)
}

func (e *Engine) HasSolution(slot *clue.Slot, scoreMin int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.index.HasSolution(slot, scoreMin)
}

// LoadFromFile loads a dictionary synchronously. The engine mutex is
// not held across the whole load: the index has its own writer lock
// (see pkg/wordindex), so other engines sharing no state are
// unaffected, and this engine's non-index operations can proceed
// concurrently with the load per §5.
func (e *Engine) LoadFromFile(path string) error {
	return e.index.LoadFromFile(path)
}

// LoadDeferred starts loading a dictionary in the background.
func (e *Engine) LoadDeferred(path string) {
	e.index.LoadDeferred(path)
}

// WaitForLoad blocks until any in-flight deferred load completes.
func (e *Engine) WaitForLoad() {
	e.index.WaitForLoad()
}

func (e *Engine) IsLoaded() bool {
	return e.index.IsLoaded()
}

// FlushCaches clears the index's has-solution memo at every length.
func (e *Engine) FlushCaches() {
	e.index.FlushCaches()
}

// Fingerprint returns the blake2b-256 digest of the last dictionary
// file loaded into the index, and whether one has been loaded yet.
func (e *Engine) Fingerprint() ([blake2b.Size256]byte, bool) {
	return e.index.Fingerprint()
}

// --- Persistence ---

// Save writes the engine's grid to w in the line-oriented text format
// (see WriteGrid). The caller is responsible for opening the file.
func (e *Engine) Save(w io.Writer) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return WriteGrid(w, e.g)
}

// SaveJSON writes the JSON export sidecar for the engine's current
// grid and clue structure to w.
func (e *Engine) SaveJSON(w io.Writer) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return WriteJSONSidecar(w, e.g, e.structure, e.meta)
}
