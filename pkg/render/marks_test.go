package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/prettysitter/pkg/config"
)

func TestMarksResolveFirstGroupWins(t *testing.T) {
	shared := leaf("identifier", "x")
	onlySecond := leaf("identifier", "y")

	marks := Marks{
		{Label: "Definitions", Color: "red", Nodes: config.NewNodeSet(shared)},
		{Label: "Usages", Color: "green2", Nodes: config.NewNodeSet(shared, onlySecond)},
	}

	i, ok := marks.Resolve(shared)
	require.True(t, ok)
	assert.Equal(t, "Definitions", marks[i].Label, "registration order decides for nodes in several groups")

	i, ok = marks.Resolve(onlySecond)
	require.True(t, ok)
	assert.Equal(t, "Usages", marks[i].Label)
}

func TestMarksResolveMiss(t *testing.T) {
	marks := Marks{
		{Label: "Definitions", Color: "red", Nodes: config.NewNodeSet(leaf("identifier", "x"))},
	}

	_, ok := marks.Resolve(leaf("identifier", "x"))
	assert.False(t, ok, "membership is by node identity, not by value")

	var none Marks
	_, ok = none.Resolve(leaf("identifier", "x"))
	assert.False(t, ok)
}
