package htmldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Success(t *testing.T) {
	doc, err := Parse(`<html><body><p>hello</p></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "hello", TextOf(doc.Select("p")))
}

func TestParse_EmptyInputStillProducesImplicitStructure(t *testing.T) {
	// net/html's parser always inserts html/head/body even for empty
	// input, so Parse only errors on a reader failure, not on content.
	doc, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Select("body").Length())
}

func TestSameNode(t *testing.T) {
	doc, err := Parse(`<html><body><p id="a">x</p><p id="b">y</p></body></html>`)
	require.NoError(t, err)

	a1 := doc.Select("#a")
	a2 := doc.Select("#a")
	b := doc.Select("#b")

	assert.True(t, SameNode(a1, a2))
	assert.False(t, SameNode(a1, b))
}

func TestTagName(t *testing.T) {
	doc, err := Parse(`<html><body><DIV>x</DIV></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "div", TagName(doc.Select("div")))
}

func TestParent(t *testing.T) {
	doc, err := Parse(`<html><body><div id="parent"><p id="child">x</p></div></body></html>`)
	require.NoError(t, err)
	child := doc.Select("#child")
	parent := Parent(child)
	assert.Equal(t, "parent", parent.AttrOr("id", ""))
}
