package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitNames_CommaSeparated(t *testing.T) {
	assert.Equal(t, []string{"Jane Smith", "John Doe"}, splitNames("Jane Smith, John Doe"))
}

func TestSplitNames_PipeSeparated(t *testing.T) {
	assert.Equal(t, []string{"Jane Smith", "John Doe"}, splitNames("Jane Smith | John Doe"))
}

func TestSplitNames_Single(t *testing.T) {
	assert.Equal(t, []string{"Jane Smith"}, splitNames("  Jane Smith  "))
}

func TestSplitNames_DropsEmpties(t *testing.T) {
	assert.Equal(t, []string{"Jane Smith", "John Doe"}, splitNames("Jane Smith,, John Doe,"))
}

func TestJoinNames(t *testing.T) {
	assert.Equal(t, "", joinNames(nil))
	assert.Equal(t, "A", joinNames([]string{"A"}))
	assert.Equal(t, "A and B", joinNames([]string{"A", "B"}))
	assert.Equal(t, "A, B and C", joinNames([]string{"A", "B", "C"}))
}

func TestDedupeOrdered(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, dedupeOrdered([]string{"b", "a", "b", "c", "a"}))
}

func TestDedupeSorted(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, dedupeSorted([]string{"b", "a", "b", "c", "a"}))
}
