package projects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slugs(names ...string) []Project {
	out := make([]Project, len(names))
	for i, n := range names {
		out[i] = Project{Slug: n, Title: n}
	}
	return out
}

func TestFindReturnsFirstMatch(t *testing.T) {
	list := slugs("a", "b", "b")
	list[2].Title = "second b"

	i, ok := Find(list, "b")
	require.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = Find(list, "zzz")
	assert.False(t, ok)

	_, ok = Find(nil, "a")
	assert.False(t, ok)
}

func TestNeighborsWrapAround(t *testing.T) {
	list := slugs("a", "b", "c")

	tests := []struct {
		slug, prev, next string
	}{
		{"a", "c", "b"},
		{"b", "a", "c"},
		{"c", "b", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			i, ok := Find(list, tt.slug)
			require.True(t, ok)

			prev, next, ok := Neighbors(list, i)
			require.True(t, ok)
			assert.Equal(t, tt.prev, prev.Slug)
			assert.Equal(t, tt.next, next.Slug)
		})
	}
}

func TestNeighborsSingleProjectPointsAtItself(t *testing.T) {
	list := slugs("only")
	prev, next, ok := Neighbors(list, 0)
	require.True(t, ok)
	assert.Equal(t, "only", prev.Slug)
	assert.Equal(t, "only", next.Slug)
}

func TestNeighborsOutOfRange(t *testing.T) {
	_, _, ok := Neighbors(slugs("a"), 3)
	assert.False(t, ok)
	_, _, ok = Neighbors(nil, 0)
	assert.False(t, ok)
}

func TestFeaturedAndCategories(t *testing.T) {
	list := []Project{
		{Slug: "a", Category: "Web", Featured: true},
		{Slug: "b", Category: "CLI"},
		{Slug: "c", Category: "Web", Featured: true},
		{Slug: "d"},
	}

	featured := Featured(list)
	require.Len(t, featured, 2)
	assert.Equal(t, "a", featured[0].Slug)
	assert.Equal(t, "c", featured[1].Slug)

	assert.Equal(t, []string{"Web", "CLI"}, Categories(list))
	assert.Len(t, InCategory(list, "Web"), 2)
	assert.Len(t, InCategory(list, ""), 4)
	assert.Empty(t, InCategory(list, "Games"))
}
