package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
)

func TestDiffSelection_ZeroValueIsEmpty(t *testing.T) {
	var d DiffSelection

	assert.Equal(t, domain.DiffEmpty, d.State())
	assert.Empty(t, d.Buffer())
}

func TestDiffSelection_Walkthrough(t *testing.T) {
	d := NewDiffSelection()

	_, ready := d.Select("A")
	assert.False(t, ready)
	assert.Equal(t, domain.DiffOneSelected, d.State())
	assert.Equal(t, []string{"A"}, d.Buffer())

	req, ready := d.Select("B")
	assert.True(t, ready)
	assert.Equal(t, domain.DiffReady, d.State())
	assert.Equal(t, domain.DiffRequest{FirstID: "A", SecondID: "B"}, req)
	assert.Equal(t, "Value 1:A Value 2:B", req.Label())

	pending, ok := d.Pending()
	assert.True(t, ok)
	assert.Equal(t, req, pending)

	// A third selection starts a new pair rather than sliding the window.
	_, ready = d.Select("C")
	assert.False(t, ready)
	assert.Equal(t, domain.DiffOneSelected, d.State())
	assert.Equal(t, []string{"C"}, d.Buffer())

	_, ok = d.Pending()
	assert.False(t, ok)
}

func TestDiffSelection_SameIDTwice(t *testing.T) {
	d := NewDiffSelection()

	d.Select("A")
	req, ready := d.Select("A")

	assert.True(t, ready)
	assert.Equal(t, domain.DiffRequest{FirstID: "A", SecondID: "A"}, req)
}

func TestDiffSelection_EmptyIDIgnored(t *testing.T) {
	d := NewDiffSelection()
	d.Select("A")

	_, ready := d.Select("")

	assert.False(t, ready)
	assert.Equal(t, []string{"A"}, d.Buffer())
}

func TestDiffSelection_Reset(t *testing.T) {
	setups := map[string][]string{
		"EMPTY":        nil,
		"ONE_SELECTED": {"A"},
		"READY":        {"A", "B"},
	}

	for name, ids := range setups {
		t.Run(name, func(t *testing.T) {
			d := NewDiffSelection()
			for _, id := range ids {
				d.Select(id)
			}
			assert.Equal(t, name, d.State().String())

			d.Reset()

			assert.Equal(t, domain.DiffEmpty, d.State())
			assert.Empty(t, d.Buffer())
		})
	}
}

func TestDiffSelection_BufferIsCopy(t *testing.T) {
	d := NewDiffSelection()
	d.Select("A")

	buf := d.Buffer()
	buf[0] = "mutated"

	assert.Equal(t, []string{"A"}, d.Buffer())
}

func TestDiffSelection_OnReady(t *testing.T) {
	d := NewDiffSelection()
	var first, second []domain.DiffRequest
	d.OnReady(func(req domain.DiffRequest) { first = append(first, req) })
	d.OnReady(func(req domain.DiffRequest) { second = append(second, req) })
	d.OnReady(nil)

	for _, id := range []string{"A", "B", "C", "D", "E"} {
		d.Select(id)
	}

	want := []domain.DiffRequest{
		{FirstID: "A", SecondID: "B"},
		{FirstID: "C", SecondID: "D"},
	}
	assert.Equal(t, want, first)
	assert.Equal(t, want, second)
}
