package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTreeAddChild(t *testing.T) {
	tr := newTree(DefaultCPuct)

	first := tr.addChild(0, 7, 0.4)
	second := tr.addChild(0, 3, 0.6)
	grandchild := tr.addChild(first, 11, 1)

	require.Equal(t, []int{first, second}, tr.root().children, "Children should keep creation order")
	require.Equal(t, first, tr.nodes[grandchild].parent)
	require.Equal(t, noNode, tr.root().parent)
	require.False(t, tr.isLeaf(0))
	require.True(t, tr.isLeaf(second))

	got, ok := tr.child(0, 3)
	require.True(t, ok)
	require.Equal(t, second, got)
	_, ok = tr.child(0, 11)
	require.False(t, ok, "Grandchild should not be found under the root")
}

func TestTreeSelectChild(t *testing.T) {
	t.Run("ties go to the first created child", func(t *testing.T) {
		tr := newTree(DefaultCPuct)
		first := tr.addChild(0, 5, 0.5)
		tr.addChild(0, 2, 0.5)

		require.Equal(t, first, tr.selectChild(0))
	})

	t.Run("unvisited root picks the first child regardless of prior", func(t *testing.T) {
		tr := newTree(DefaultCPuct)
		first := tr.addChild(0, 0, 0.1)
		tr.addChild(0, 1, 0.9)

		require.Equal(t, first, tr.selectChild(0), "All scores equal Q=0 when N=0")
	})

	t.Run("higher prior wins once the parent is visited", func(t *testing.T) {
		tr := newTree(DefaultCPuct)
		tr.addChild(0, 0, 0.1)
		likely := tr.addChild(0, 1, 0.9)
		tr.root().visits = 1

		require.Equal(t, likely, tr.selectChild(0))
	})

	t.Run("higher mean value wins with equal priors and visits", func(t *testing.T) {
		tr := newTree(DefaultCPuct)
		worse := tr.addChild(0, 0, 0.5)
		better := tr.addChild(0, 1, 0.5)
		tr.backup(worse, -1)
		tr.backup(better, 1)

		require.Equal(t, better, tr.selectChild(0))
	})
}

func TestTreeBackup(t *testing.T) {
	tr := newTree(DefaultCPuct)
	child := tr.addChild(0, 0, 1)
	grandchild := tr.addChild(child, 1, 1)

	tr.backup(grandchild, 1)
	tr.backup(grandchild, 0.5)

	require.Equal(t, 2, tr.nodes[grandchild].visits)
	require.InDelta(t, 1.5, tr.nodes[grandchild].value, 1e-9)
	require.InDelta(t, 0.75, tr.nodes[grandchild].q, 1e-9)
	require.InDelta(t, -1.5, tr.nodes[child].value, 1e-9, "Value should flip sign each ply")
	require.InDelta(t, -0.75, tr.nodes[child].q, 1e-9)
	require.InDelta(t, 1.5, tr.root().value, 1e-9)
	require.Equal(t, 2, tr.root().visits)

	actions, visits := tr.rootVisits()
	require.Equal(t, []int{0}, actions)
	require.Equal(t, []int{2}, visits)
}
