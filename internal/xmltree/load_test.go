package xmltree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStripsNamespaces(t *testing.T) {
	xml := `<a:Root xmlns:a="urn:one" xmlns:x="urn:two">
	  <a:Item x:code="1"/>
	</a:Root>`
	root, err := Parse(strings.NewReader(xml))
	require.NoError(t, err)

	assert.Equal(t, "Root", root.Name)
	item := root.First("Item")
	require.NotNil(t, item)
	// префикс снят и у атрибута, xmlns-декларации в данные не попадают
	assert.Equal(t, "1", item.Attr("code"))
	assert.False(t, root.HasAttr("a"))
	assert.False(t, root.HasAttr("xmlns"))
}

func TestParseOneOrManyCoercion(t *testing.T) {
	// единственное вхождение и повтор лежат одинаково — срезом
	xml := `<Root><Many/><Many/><Single attr="v"/></Root>`
	root, err := Parse(strings.NewReader(xml))
	require.NoError(t, err)

	assert.Len(t, root.All("Many"), 2)
	assert.Len(t, root.All("Single"), 1)
	assert.Equal(t, root.First("Single"), root.All("Single")[0])
	assert.Nil(t, root.First("Absent"))
	assert.Empty(t, root.All("Absent"))
}

func TestParseTextAndOrder(t *testing.T) {
	xml := `<Root b="2" a="1"><K>  hello  </K></Root>`
	root, err := Parse(strings.NewReader(xml))
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a"}, root.AttrKeys)
	assert.Equal(t, "hello", root.First("K").Text)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	require.Error(t, err)

	_, err = Parse(strings.NewReader("<a><b></a>"))
	require.Error(t, err)
}

func TestNodeNilSafety(t *testing.T) {
	var n *Node
	assert.Equal(t, "", n.Attr("x"))
	assert.Nil(t, n.First("x"))
	assert.Empty(t, n.All("x"))
	assert.False(t, n.Has("x"))
}
