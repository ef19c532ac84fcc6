// Package httpapi is the thin read/query transport adapter for the
// external GUI client (§1/§6): it exposes the engine's grid, slot, and
// autofill-trigger operations over HTTP, and streams periodic grid
// snapshots over a websocket. It never reaches into engine internals - every
// handler goes through the facade's exported methods, same boundary
// the engine itself enforces for its embedders.
package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/crossplay/xword/pkg/engine"
	"github.com/crossplay/xword/pkg/fill"
	"github.com/crossplay/xword/pkg/grid"
)

// Handlers wraps a single engine instance. The engine's own mutex
// serializes concurrent requests; handlers never add their own
// locking.
type Handlers struct {
	engine *engine.Engine
}

// NewHandlers returns Handlers bound to e.
func NewHandlers(e *engine.Engine) *Handlers {
	return &Handlers{engine: e}
}

// Register attaches every route to router.
func (h *Handlers) Register(router gin.IRouter) {
	router.GET("/grid", h.GetGrid)
	router.GET("/slots", h.GetSlots)
	router.GET("/clue/:row/:col", h.GetClueAt)
	router.POST("/autofill", h.PostAutofill)
	router.POST("/autofill/stop", h.PostStopAutofill)
	router.GET("/ws", h.ServeProgressWS)
}

type cellJSON struct {
	Barrier  bool   `json:"barrier"`
	Contents string `json:"contents"`
	Locked   bool   `json:"locked"`
}

type gridJSON struct {
	Height int          `json:"height"`
	Width  int          `json:"width"`
	Cells  [][]cellJSON `json:"cells"`
}

func toGridJSON(e *engine.Engine) gridJSON {
	h, w := e.Height(), e.Width()
	cells := make([][]cellJSON, h)
	for row := 0; row < h; row++ {
		cells[row] = make([]cellJSON, w)
		for col := 0; col < w; col++ {
			c := e.Get(grid.Coord{Row: row, Col: col})
			cells[row][col] = cellJSON{
				Barrier:  c.Barrier,
				Contents: c.Contents.String(),
				Locked:   c.Locked,
			}
		}
	}
	return gridJSON{Height: h, Width: w, Cells: cells}
}

// GetGrid returns the full grid: dimensions and every cell's
// barrier/contents/lock state.
func (h *Handlers) GetGrid(c *gin.Context) {
	c.JSON(http.StatusOK, toGridJSON(h.engine))
}

type slotJSON struct {
	Number    int    `json:"number"`
	Direction string `json:"direction"`
	Length    int    `json:"length"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Pattern   string `json:"pattern"`
}

// GetSlots returns the current slot list.
func (h *Handlers) GetSlots(c *gin.Context) {
	slots := h.engine.Slots()
	out := make([]slotJSON, len(slots))
	for i, s := range slots {
		out[i] = slotJSON{
			Number:    s.Number,
			Direction: s.Direction.String(),
			Length:    s.Length,
			Row:       s.Start.Row,
			Col:       s.Start.Col,
			Pattern:   s.Constraint.String(),
		}
	}
	c.JSON(http.StatusOK, out)
}

type clueAtResponse struct {
	Number int        `json:"number"`
	Slots  []slotJSON `json:"slots"`
	Hints  []string   `json:"hints"`
}

// GetClueAt returns the clue number and any slots starting at (row,
// col), along with their stored hint text if set.
func (h *Handlers) GetClueAt(c *gin.Context) {
	row, err := strconv.Atoi(c.Param("row"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid row"})
		return
	}
	col, err := strconv.Atoi(c.Param("col"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid col"})
		return
	}
	coord := grid.Coord{Row: row, Col: col}
	if !h.engine.IsInBounds(coord) {
		c.JSON(http.StatusNotFound, gin.H{"error": "coordinate out of bounds"})
		return
	}

	slots := h.engine.SlotsStartingAt(coord)
	resp := clueAtResponse{Number: h.engine.ClueNumber(coord)}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, slotJSON{
			Number:    s.Number,
			Direction: s.Direction.String(),
			Length:    s.Length,
			Row:       s.Start.Row,
			Col:       s.Start.Col,
			Pattern:   s.Constraint.String(),
		})
		if text, ok := h.engine.Hint(s.Direction, s.Number); ok {
			resp.Hints = append(resp.Hints, text)
		}
	}
	c.JSON(http.StatusOK, resp)
}

type autofillRequest struct {
	SecondsLimit         int     `json:"secondsLimit"`
	BranchingFactorLimit int     `json:"branchingFactorLimit"`
	Entropy              int     `json:"entropy"`
	EntropyDecay         float64 `json:"entropyDecay"`
	ScoreMin             int     `json:"scoreMin"`
	ScoreMinDecay        float64 `json:"scoreMinDecay"`
	Rollback             bool    `json:"rollback"`
}

// PostAutofill runs one autofill request to completion and returns its
// outcome. The request blocks for the duration of the search. /ws
// snapshots wait on the engine mutex that the search holds, so no
// snapshot is sent while it runs; the next one shows the grid after it
// returns.
func (h *Handlers) PostAutofill(c *gin.Context) {
	if h.engine.IsSearching() {
		c.JSON(http.StatusConflict, gin.H{"error": "autofill already in progress"})
		return
	}

	params := fill.DefaultParams()
	var req autofillRequest
	if err := c.ShouldBindJSON(&req); err == nil {
		if req.SecondsLimit > 0 {
			params.SecondsLimit = req.SecondsLimit
		}
		params.BranchingFactorLimit = req.BranchingFactorLimit
		if req.Entropy > 0 {
			params.Entropy = req.Entropy
		}
		if req.EntropyDecay > 0 {
			params.EntropyDecay = req.EntropyDecay
		}
		if req.ScoreMin > 0 {
			params.ScoreMin = req.ScoreMin
		}
		if req.ScoreMinDecay > 0 {
			params.ScoreMinDecay = req.ScoreMinDecay
		}
		params.Rollback = req.Rollback
	}

	outcome := h.engine.Autofill(params)
	c.JSON(http.StatusOK, gin.H{"outcome": outcome.String(), "grid": toGridJSON(h.engine)})
}

// PostStopAutofill requests cancellation of any in-flight autofill.
func (h *Handlers) PostStopAutofill(c *gin.Context) {
	h.engine.StopAutofill()
	c.JSON(http.StatusAccepted, gin.H{"stopping": true})
}
