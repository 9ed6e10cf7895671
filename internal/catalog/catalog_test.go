package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_AddKeepsFirstEntry(t *testing.T) {
	t.Parallel()

	c := New()
	first := c.Add("CUSTREC", 3)
	dupe := c.Add("CUSTREC", 17)

	assert.Same(t, first, dupe)
	assert.Equal(t, 3, dupe.StartLine)
	assert.Equal(t, 1, c.Len())
}

func TestCatalog_LookupAndOrder(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add("B", 10)
	c.Add("A", 20)

	entry, ok := c.Record("A")
	require.True(t, ok)
	assert.Equal(t, "A", entry.RecordName)

	_, ok = c.Record("MISSING")
	assert.False(t, ok)

	var names []string
	for _, e := range c.Records() {
		names = append(names, e.RecordName)
	}
	assert.Equal(t, []string{"B", "A"}, names, "entries keep source order, not name order")
}

func TestEntry_AddFieldFirstWins(t *testing.T) {
	t.Parallel()

	e := &Entry{RecordName: "R"}
	require.True(t, e.AddField(FieldInfo{Name: "FLD", Length: 5}))
	require.False(t, e.AddField(FieldInfo{Name: "FLD", Length: 9}))

	require.Len(t, e.Fields, 1)
	assert.Equal(t, 5, e.Fields[0].Length)
}

func TestEntry_AddConstantDedupesByText(t *testing.T) {
	t.Parallel()

	e := &Entry{RecordName: "R"}
	require.True(t, e.AddConstant(ConstantInfo{Text: "'Name'", Row: 1}))
	require.False(t, e.AddConstant(ConstantInfo{Text: "'Name'", Row: 9}))
	require.True(t, e.AddConstant(ConstantInfo{Text: "'Other'"}))

	require.Len(t, e.Constants, 2)
	assert.Equal(t, 1, e.Constants[0].Row)
}
