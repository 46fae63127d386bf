package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffState_String(t *testing.T) {
	assert.Equal(t, "EMPTY", DiffEmpty.String())
	assert.Equal(t, "ONE_SELECTED", DiffOneSelected.String())
	assert.Equal(t, "READY", DiffReady.String())
	assert.Equal(t, "DiffState(7)", DiffState(7).String())
}

func TestDiffRequest_Label(t *testing.T) {
	req := DiffRequest{FirstID: "123abc", SecondID: "323abc"}
	assert.Equal(t, "Value 1:123abc Value 2:323abc", req.Label())
}
