package hierarchy

import (
	"testing"

	"github.com/mohitkumar/streamhub/model"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	nodes         map[int64]model.OrganizationNode
	children      map[int64][]int64
	childrenCalls int
}

func (s *stubSource) Node(id int64) (*model.OrganizationNode, error) {
	n := s.nodes[id]
	return &n, nil
}

func (s *stubSource) Children(parentId int64) ([]model.OrganizationNode, error) {
	s.childrenCalls++
	out := make([]model.OrganizationNode, 0)
	for _, childId := range s.children[parentId] {
		out = append(out, s.nodes[childId])
	}
	return out, nil
}

func treeSource() *stubSource {
	// 1 -> (2, 3), 2 -> (4)
	return &stubSource{
		nodes: map[int64]model.OrganizationNode{
			1: {Id: 1, ParentId: 0},
			2: {Id: 2, ParentId: 1},
			3: {Id: 3, ParentId: 1},
			4: {Id: 4, ParentId: 2},
		},
		children: map[int64][]int64{
			1: {2, 3},
			2: {4},
		},
	}
}

func TestTraverseVisitsEveryNodeOnce(t *testing.T) {
	source := treeSource()
	traverser := NewTraverserBuilder(source).Build()

	err := traverser.Traverse(model.OrganizationNode{Id: 1, ParentId: 0})
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3, 4}, traverser.OrganizationIds())
	require.Equal(t, 4, traverser.Statistics().OrganizationCount)
}

func TestTraverseSurvivesCycle(t *testing.T) {
	source := treeSource()
	// malformed data: 4 points back at the root
	source.children[4] = []int64{1}

	traverser := NewTraverserBuilder(source).Build()
	err := traverser.Traverse(model.OrganizationNode{Id: 1, ParentId: 0})
	require.NoError(t, err)
	require.ElementsMatch(t, []int64{1, 2, 3, 4}, traverser.OrganizationIds())
}

func TestTraverseUsesPreloadedChildIds(t *testing.T) {
	source := treeSource()
	traverser := NewTraverserBuilder(source).Build()

	// root arrives with its children already resolved
	err := traverser.Traverse(model.OrganizationNode{Id: 1, ParentId: 0, ChildIds: []int64{2, 3}})
	require.NoError(t, err)
	require.ElementsMatch(t, []int64{1, 2, 3, 4}, traverser.OrganizationIds())
}

func TestBuilderYieldsFreshTraverserPerRun(t *testing.T) {
	source := treeSource()
	builder := NewTraverserBuilder(source)

	first := builder.Build()
	require.NoError(t, first.Traverse(model.OrganizationNode{Id: 2, ParentId: 1}))
	require.Equal(t, []int64{2, 4}, first.OrganizationIds())

	second := builder.Build()
	require.NoError(t, second.Traverse(model.OrganizationNode{Id: 3, ParentId: 1}))
	require.Equal(t, []int64{3}, second.OrganizationIds())
	// the first run's visited set must not leak into the second
	require.Equal(t, []int64{2, 4}, first.OrganizationIds())
}
