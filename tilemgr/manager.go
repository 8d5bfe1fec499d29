// SPDX-License-Identifier: MIT
package tilemgr

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/penrose/geom"
	"github.com/katalvlaran/penrose/numfield"
	"github.com/katalvlaran/penrose/tile"
)

// AddStatus is the tri-state outcome of proposing a tile to a Manager.
type AddStatus int

const (
	// AddStatusRejected means the tile conflicts with a matching rule of
	// a neighboring tile already present in the manager.
	AddStatusRejected AddStatus = iota
	// AddStatusAdded means the tile is compatible with (CanAddTile) or
	// was just inserted into (TryAddTile) the manager.
	AddStatusAdded
	// AddStatusAlreadyPresent means the tile is already a member.
	AddStatusAlreadyPresent
)

func (s AddStatus) String() string {
	switch s {
	case AddStatusAdded:
		return "Added"
	case AddStatusAlreadyPresent:
		return "AlreadyPresent"
	default:
		return "Rejected"
	}
}

type gridCell [2]int

// Manager holds an evolving, mutually-compatible set of Tiles, indexed
// by grid cell and by incident vertex.
type Manager struct {
	tiles    []tile.Tile
	grid     map[gridCell][]tile.Tile
	vertices map[string]vertexEntry
	scale    *big.Rat
	hasScale bool
}

type vertexEntry struct {
	point geom.Point
	tiles []tile.Tile
}

// New returns an empty Manager, applying any Options left to right.
func New(opts ...Option) *Manager {
	m := &Manager{
		grid:     make(map[gridCell][]tile.Tile),
		vertices: make(map[string]vertexEntry),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// initScale sets the manager's grid scale factor from the first tile
// ever proposed to it: s ~ 1/sqrt(D) where D is the tile's transform
// determinant, falling back to 1/min(bbox extents) if D is not positive
// (should not happen for a validly constructed tile, but guards against
// a zero-size degenerate bbox).
func (m *Manager) initScale(t tile.Tile) {
	if m.hasScale {
		return
	}
	det := t.Transform().Det()
	if det.Sign() > 0 {
		m.scale = ApproxInvSqrt(det)
		m.hasScale = true
		return
	}
	bbox := t.BBox()
	w := bbox.Width()
	h := bbox.Height()
	extent := w
	if h.Less(w) {
		extent = h
	}
	if extent.Sign() > 0 {
		// (1/sqrt(extent))^2 approximates 1/extent.
		q := ApproxInvSqrt(extent)
		m.scale = new(big.Rat).Mul(q, q)
	} else {
		m.scale = big.NewRat(1, 1)
	}
	m.hasScale = true
}

// gridCellsFor returns every grid cell t's bbox touches, inclusive of
// both endpoints.
func (m *Manager) gridCellsFor(t tile.Tile) []gridCell {
	bbox := t.BBox()
	scale := numfield.FromRat(m.scale)
	loX := int(numfield.Mul(bbox.Lo.X, scale).Floor().Int64())
	hiX := int(numfield.Mul(bbox.Hi.X, scale).Floor().Int64())
	loY := int(numfield.Mul(bbox.Lo.Y, scale).Floor().Int64())
	hiY := int(numfield.Mul(bbox.Hi.Y, scale).Floor().Int64())

	cells := make([]gridCell, 0, (hiX-loX+1)*(hiY-loY+1))
	for i := loX; i <= hiX; i++ {
		for j := loY; j <= hiY; j++ {
			cells = append(cells, gridCell{i, j})
		}
	}
	return cells
}

func sameTile(a, b tile.Tile) bool {
	return a.Class() == b.Class() && a.Equal(b)
}

func (m *Manager) contains(t tile.Tile) bool {
	for _, existing := range m.tiles {
		if sameTile(existing, t) {
			return true
		}
	}
	return false
}

// CanAddTile reports whether t could be added: AddStatusAlreadyPresent if an
// equal tile is already a member, AddStatusRejected if t conflicts with any
// neighbor sharing a grid cell, AddStatusAdded otherwise.
func (m *Manager) CanAddTile(t tile.Tile) (AddStatus, error) {
	if m.contains(t) {
		return AddStatusAlreadyPresent, nil
	}
	if !m.hasScale {
		return AddStatusAdded, nil
	}

	checked := make([]tile.Tile, 0)
	for _, cell := range m.gridCellsFor(t) {
		for _, neighbor := range m.grid[cell] {
			if alreadyChecked(checked, neighbor) {
				continue
			}
			checked = append(checked, neighbor)
			ok, err := t.Matches(neighbor)
			if err != nil {
				return AddStatusRejected, err
			}
			if !ok {
				return AddStatusRejected, nil
			}
		}
	}
	return AddStatusAdded, nil
}

func alreadyChecked(checked []tile.Tile, t tile.Tile) bool {
	for _, existing := range checked {
		if sameTile(existing, t) {
			return true
		}
	}
	return false
}

// TryAddTile calls CanAddTile; on AddStatusAdded it inserts t and updates
// the grid and vertex indexes, initializing the scale factor first if
// this is the manager's first tile.
func (m *Manager) TryAddTile(t tile.Tile) (AddStatus, error) {
	status, err := m.CanAddTile(t)
	if err != nil || status != AddStatusAdded {
		return status, err
	}

	if !m.hasScale {
		m.initScale(t)
	}
	m.tiles = append(m.tiles, t)
	for _, cell := range m.gridCellsFor(t) {
		m.grid[cell] = append(m.grid[cell], t)
	}
	for _, v := range t.Vertices() {
		key := v.String()
		entry := m.vertices[key]
		entry.point = v
		entry.tiles = append(entry.tiles, t)
		m.vertices[key] = entry
	}
	return AddStatusAdded, nil
}

// AddTile is TryAddTile collapsed to a plain error: nil on AddStatusAdded,
// ErrAlreadyPresent or ErrRuleMismatch otherwise. An error surfaced by
// TryAddTile itself (e.g. a non-convex decomposition) is returned
// unchanged.
func (m *Manager) AddTile(t tile.Tile) error {
	status, err := m.TryAddTile(t)
	if err != nil {
		return err
	}
	switch status {
	case AddStatusAdded:
		return nil
	case AddStatusAlreadyPresent:
		return ErrAlreadyPresent
	default:
		return ErrRuleMismatch
	}
}

// RemoveTile reverses the inserts made by a prior successful add; it is a
// no-op if t (by class and vertex equality) is not present.
func (m *Manager) RemoveTile(t tile.Tile) {
	idx := -1
	for i, existing := range m.tiles {
		if sameTile(existing, t) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	found := m.tiles[idx]
	m.tiles = append(m.tiles[:idx], m.tiles[idx+1:]...)

	for _, cell := range m.gridCellsFor(found) {
		bucket := m.grid[cell]
		for i, candidate := range bucket {
			if sameTile(candidate, found) {
				m.grid[cell] = append(bucket[:i], bucket[i+1:]...)
				break
			}
		}
		if len(m.grid[cell]) == 0 {
			delete(m.grid, cell)
		}
	}
	for _, v := range found.Vertices() {
		key := v.String()
		entry := m.vertices[key]
		for i, candidate := range entry.tiles {
			if sameTile(candidate, found) {
				entry.tiles = append(entry.tiles[:i], entry.tiles[i+1:]...)
				break
			}
		}
		if len(entry.tiles) == 0 {
			delete(m.vertices, key)
		} else {
			m.vertices[key] = entry
		}
	}
}

// GetTiles returns a snapshot of the manager's current tiles.
func (m *Manager) GetTiles() []tile.Tile {
	out := make([]tile.Tile, len(m.tiles))
	copy(out, m.tiles)
	return out
}

// GetVertices returns a snapshot of the manager's currently-populated
// vertex positions.
func (m *Manager) GetVertices() []geom.Point {
	out := make([]geom.Point, 0, len(m.vertices))
	for _, entry := range m.vertices {
		out = append(out, entry.point)
	}
	return out
}

// Transform returns a new Manager containing t.Transform(T) applied to
// (i.e. composed onto) every tile currently in m, re-verifying matching
// rules on insertion.
func (m *Manager) Transform(T geom.AffineTransform) (*Manager, error) {
	out := New()
	for _, existing := range m.tiles {
		composed := existing.Transform().Compose(T)
		moved, err := tile.NewTile(existing.Class(), composed)
		if err != nil {
			if errors.Is(err, tile.ErrUnknownClass) {
				return nil, fmt.Errorf("%w: %s", ErrUnknownClass, err)
			}
			return nil, err
		}
		if err := out.AddTile(moved); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Decompose returns a new Manager containing the union of
// existing.Decompose(ruleID) for every tile currently in m, re-adding
// each child so matching rules are re-verified after the substitution. A
// tile whose class has no rule of that name contributes no children, and
// a child that is already present (both halves of a converted tile
// regenerate the same parent under to-P2/to-P3) counts as an idempotent
// success, not a conflict.
func (m *Manager) Decompose(ruleID string) (*Manager, error) {
	out := New()
	for _, existing := range m.tiles {
		children, ok := existing.Decompose(ruleID)
		if !ok {
			continue
		}
		for _, child := range children {
			status, err := out.TryAddTile(child)
			if err != nil {
				return nil, err
			}
			if status == AddStatusRejected {
				return nil, ErrRuleMismatch
			}
		}
	}
	return out, nil
}

// BBox returns the union of every tile's bbox, or (zero, false) if m is
// empty.
func (m *Manager) BBox() (geom.Rectangle, bool) {
	if len(m.tiles) == 0 {
		return geom.Rectangle{}, false
	}
	bbox := m.tiles[0].BBox()
	for _, t := range m.tiles[1:] {
		bbox = bbox.Union(t.BBox())
	}
	return bbox, true
}
