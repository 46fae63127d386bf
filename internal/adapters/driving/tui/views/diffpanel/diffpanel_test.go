package diffpanel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
)

func TestView_EmptyRendersNothing(t *testing.T) {
	v := NewView(nil)

	assert.Empty(t, v.View())
	_, ok := v.Request()
	assert.False(t, ok)
}

func TestView_RendersPair(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(120, 40)
	first := &domain.VersionRecord{ID: "123abc", DatasetName: "random_name", Operation: domain.OperationCreate}
	second := &domain.VersionRecord{ID: "323abc", DatasetName: "random_name", Operation: domain.OperationUpdate,
		DerivedFrom: "223abc"}
	req := domain.DiffRequest{FirstID: "123abc", SecondID: "323abc"}

	v.SetDiff(req, first, second)

	view := v.View()
	assert.Contains(t, view, "Value 1:123abc Value 2:323abc")
	assert.Contains(t, view, "create")
	assert.Contains(t, view, "update")
	assert.Contains(t, view, "223abc")

	got, ok := v.Request()
	assert.True(t, ok)
	assert.Equal(t, req, got)
}

func TestView_MissingRecord(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(120, 40)
	v.SetDiff(domain.DiffRequest{FirstID: "a", SecondID: "gone"}, &domain.VersionRecord{ID: "a"}, nil)

	assert.Contains(t, v.View(), "(not in table)")
}

func TestView_Clear(t *testing.T) {
	v := NewView(nil)
	v.SetDiff(domain.DiffRequest{FirstID: "a", SecondID: "b"}, nil, nil)

	v.Clear()

	assert.Empty(t, v.View())
}
