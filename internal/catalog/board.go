package catalog

import (
	"github.com/picoforge/picoforge/internal/errors"
)

// Platform tags group boards by chip family and select platform-level link
// libraries during resolution.
const (
	PlatformRP2040 = "rp2040"
	PlatformPicoW  = "pico_w"
)

// Board is a hardware target discovered from the SDK's board header
// directory. Immutable once the catalog is built.
type Board struct {
	// ID is the board type name, e.g. "pico" or "pico_w".
	ID string
	// Header is the path of the board definition header inside the SDK.
	Header string
	// Platform tags the chip family; it drives platform library selection.
	Platform string
}

// BoardCatalog is the read-only board registry for one generation pass.
// It is populated once from an external scan result.
type BoardCatalog struct {
	boards []Board
	index  map[string]int
}

// NewBoardCatalog builds a catalog from boards in the order supplied by the
// scan. Duplicate ids keep the first entry, matching the scan precedence of
// the SDK tree over user-supplied header directories.
func NewBoardCatalog(boards ...Board) *BoardCatalog {
	c := &BoardCatalog{
		index: make(map[string]int, len(boards)),
	}
	for _, b := range boards {
		if _, ok := c.index[b.ID]; ok {
			continue
		}
		c.index[b.ID] = len(c.boards)
		c.boards = append(c.boards, b)
	}

	return c
}

// Lookup returns the board for id.
func (c *BoardCatalog) Lookup(id string) (Board, error) {
	pos, ok := c.index[id]
	if !ok {
		return Board{}, errors.NewUnknownBoard(id)
	}

	return c.boards[pos], nil
}

// Contains reports whether id is registered.
func (c *BoardCatalog) Contains(id string) bool {
	_, ok := c.index[id]
	return ok
}

// All returns every board in scan order.
func (c *BoardCatalog) All() []Board {
	out := make([]Board, len(c.boards))
	copy(out, c.boards)
	return out
}

// Len returns the number of registered boards.
func (c *BoardCatalog) Len() int {
	return len(c.boards)
}
