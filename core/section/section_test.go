package section_test

import (
	"testing"

	"model-storage/core/section"

	"github.com/stretchr/testify/assert"
)

type tagged struct {
	id   string
	tags []string
}

func (t tagged) Equal(other any) bool {
	o, ok := other.(tagged)
	return ok && o.id == t.id
}

func TestSection_Items(t *testing.T) {
	s := section.New()
	assert.Equal(t, 0, s.Append("a"))
	assert.Equal(t, 1, s.Append("c"))
	assert.True(t, s.Insert(1, "b"))
	assert.False(t, s.Insert(4, "z"))

	assert.Equal(t, []any{"a", "b", "c"}, s.Items())
	assert.Equal(t, 3, s.NumberOfItems())

	item, ok := s.Item(2)
	assert.True(t, ok)
	assert.Equal(t, "c", item)
	_, ok = s.Item(3)
	assert.False(t, ok)

	removed, ok := s.Remove(0)
	assert.True(t, ok)
	assert.Equal(t, "a", removed)
	assert.True(t, s.Replace(0, "B"))
	assert.False(t, s.Replace(5, "x"))
	assert.Equal(t, []any{"B", "c"}, s.Items())
}

func TestSection_ItemsReturnsCopy(t *testing.T) {
	s := section.New()
	s.SetItems([]any{"a"})
	items := s.Items()
	items[0] = "changed"

	item, _ := s.Item(0)
	assert.Equal(t, "a", item)
}

func TestSection_Supplementary(t *testing.T) {
	var s section.Section
	assert.Nil(t, s.Supplementary("header"))

	s.SetSupplementary("header", "Fruits")
	s.SetSupplementary("header", "Vegetables")
	s.SetSupplementary("footer", "2 items")
	assert.Equal(t, "Vegetables", s.Supplementary("header"))
	assert.Len(t, s.Supplementaries(), 2)

	s.SetSupplementary("footer", nil)
	assert.Nil(t, s.Supplementary("footer"))
	assert.Len(t, s.Supplementaries(), 1)
}

func TestSame(t *testing.T) {
	a, b := &struct{ n int }{1}, &struct{ n int }{1}

	tests := []struct {
		name string
		x, y any
		want bool
	}{
		{"EqualStrings", "a", "a", true},
		{"DifferentStrings", "a", "b", false},
		{"SamePointer", a, a, true},
		{"DistinctPointers", a, b, false},
		{"DifferentTypes", 1, int64(1), false},
		{"Equaler", tagged{id: "x", tags: []string{"1"}}, tagged{id: "x"}, true},
		{"EqualerMismatch", tagged{id: "x"}, tagged{id: "y"}, false},
		{"NonComparable", []int{1}, []int{1}, false},
		{"Nil", nil, nil, true},
		{"NilAndValue", nil, "a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, section.Same(tt.x, tt.y))
		})
	}
}

func TestSection_IndexOf(t *testing.T) {
	s := section.New()
	s.SetItems([]any{"a", []int{1}, tagged{id: "t"}})

	assert.Equal(t, 0, s.IndexOf("a"))
	assert.Equal(t, -1, s.IndexOf([]int{1}))
	assert.Equal(t, 2, s.IndexOf(tagged{id: "t"}))
	assert.Equal(t, -1, s.IndexOf("missing"))
}
