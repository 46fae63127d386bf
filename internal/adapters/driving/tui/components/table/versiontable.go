// Package table provides the navigable version table of the TUI.
package table

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/lineage-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lineage-cli/internal/core/domain"
)

// Column widths, in cells. The last column takes the remaining width.
const (
	markWidth      = 4
	idWidth        = 14
	versionWidth   = 8
	datasetWidth   = 18
	authorWidth    = 10
	operationWidth = 10
	timeWidth      = 20
)

// rootMark flags the effective root of a chain in the mark column.
const rootMark = "*"

// VersionTable displays flattened lineage rows with a cursor and marks the
// rows held in the diff buffer.
type VersionTable struct {
	rows   []domain.VersionRecord
	cursor int
	marked []string
	roots  map[string]bool
	styles *styles.Styles
	width  int
	height int
}

// NewVersionTable creates an empty table.
func NewVersionTable(s *styles.Styles) *VersionTable {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &VersionTable{styles: s, width: 100, height: 20}
}

// SetRows replaces the rows. The cursor stays on the same record id when it
// is still present.
func (t *VersionTable) SetRows(rows []domain.VersionRecord) {
	current, hadCurrent := t.Current()
	t.rows = append([]domain.VersionRecord(nil), rows...)
	t.cursor = 0
	if hadCurrent {
		for i := range t.rows {
			if t.rows[i].ID == current.ID {
				t.cursor = i
				break
			}
		}
	}
}

// Rows returns the displayed rows.
func (t *VersionTable) Rows() []domain.VersionRecord {
	return t.rows
}

// SetMarked sets the ids held in the diff buffer, in selection order.
func (t *VersionTable) SetMarked(ids []string) {
	t.marked = append([]string(nil), ids...)
}

// SetRoots sets the ids of the effective roots. A root that is not in the
// diff buffer shows a rootMark.
func (t *VersionTable) SetRoots(ids []string) {
	t.roots = make(map[string]bool, len(ids))
	for _, id := range ids {
		t.roots[id] = true
	}
}

// Current returns the row under the cursor.
func (t *VersionTable) Current() (domain.VersionRecord, bool) {
	if t.cursor < 0 || t.cursor >= len(t.rows) {
		return domain.VersionRecord{}, false
	}
	return t.rows[t.cursor], true
}

// Cursor returns the cursor index.
func (t *VersionTable) Cursor() int {
	return t.cursor
}

// MoveUp moves the cursor up one row.
func (t *VersionTable) MoveUp() {
	if t.cursor > 0 {
		t.cursor--
	}
}

// MoveDown moves the cursor down one row.
func (t *VersionTable) MoveDown() {
	if t.cursor < len(t.rows)-1 {
		t.cursor++
	}
}

// MoveTop moves the cursor to the first row.
func (t *VersionTable) MoveTop() {
	t.cursor = 0
}

// MoveBottom moves the cursor to the last row.
func (t *VersionTable) MoveBottom() {
	if len(t.rows) > 0 {
		t.cursor = len(t.rows) - 1
	}
}

// SetDimensions sets the available width and height.
func (t *VersionTable) SetDimensions(width, height int) {
	t.width = width
	t.height = height
}

// View renders the header and the visible window of rows.
func (t *VersionTable) View() string {
	if len(t.rows) == 0 {
		return t.styles.Muted.Render("No versions")
	}

	lines := make([]string, 0, len(t.rows)+1)
	header := t.format("", "ID", "VERSION", "DATASET", "AUTHOR", "OPERATION", "TIMESTAMP", "DERIVED FROM")
	lines = append(lines, t.styles.Header.Render(header))

	visible := t.height - 1
	if visible < 1 {
		visible = 1
	}
	start := 0
	if t.cursor >= visible {
		start = t.cursor - visible + 1
	}
	end := min(start+visible, len(t.rows))

	for i := start; i < end; i++ {
		lines = append(lines, t.renderRow(i))
	}
	return strings.Join(lines, "\n")
}

func (t *VersionTable) renderRow(i int) string {
	r := t.rows[i]
	mark := ""
	selected := false
	for pos, id := range t.marked {
		if id == r.ID {
			mark = fmt.Sprintf("[%d]", pos+1)
			selected = true
		}
	}
	if !selected && t.roots[r.ID] {
		mark = rootMark
	}

	line := t.format(mark, r.ID, r.Version, r.DatasetName, r.Author, r.Operation.String(), r.Timestamp, r.DerivedFrom)
	switch {
	case i == t.cursor:
		return t.styles.Cursor.Render(line)
	case selected:
		return t.styles.Marked.Render(line)
	default:
		// Only unselected rows colour the operation cell.
		return t.styles.Normal.Render(pad(mark, markWidth)+pad(r.ID, idWidth)+pad(r.Version, versionWidth)+
			pad(r.DatasetName, datasetWidth)+pad(r.Author, authorWidth)) +
			t.styles.Operation(r.Operation).Render(pad(r.Operation.String(), operationWidth)) +
			t.styles.Normal.Render(pad(r.Timestamp, timeWidth)+r.DerivedFrom)
	}
}

func (t *VersionTable) format(mark, id, version, dataset, author, op, ts, parent string) string {
	return pad(mark, markWidth) +
		pad(id, idWidth) +
		pad(version, versionWidth) +
		pad(dataset, datasetWidth) +
		pad(author, authorWidth) +
		pad(op, operationWidth) +
		pad(ts, timeWidth) +
		parent
}

// pad truncates or fills s to exactly width cells, leaving one space.
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		if width <= 2 {
			return string(runes[:width])
		}
		return string(runes[:width-2]) + "… "
	}
	return s + strings.Repeat(" ", width-len(runes))
}
