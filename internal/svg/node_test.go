package svg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommonAttrSetHasAttr(t *testing.T) {
	var c CommonAttr
	require.False(t, c.HasAttr(AttrFill))
	c.SetAttr(AttrFill)
	require.True(t, c.HasAttr(AttrFill))
	require.False(t, c.HasAttr(AttrStroke))
}

func TestCommonAttrEachAttrAscendingOrder(t *testing.T) {
	var c CommonAttr
	c.SetAttr(AttrStrokeWidth)
	c.SetAttr(AttrFill)
	c.SetAttr(AttrID)

	var got []Attr
	c.EachAttr(func(a Attr) { got = append(got, a) })

	require.Equal(t, []Attr{AttrFill, AttrID, AttrStrokeWidth}, got)
}

func TestCommonAttrEachAttrEmpty(t *testing.T) {
	var c CommonAttr
	called := false
	c.EachAttr(func(a Attr) { called = true })
	require.False(t, called)
}

func TestCommonAttrEachAttrAllBits(t *testing.T) {
	var c CommonAttr
	for a := Attr(1); int(a) <= AttrLimit(); a++ {
		c.SetAttr(a)
	}
	count := 0
	c.EachAttr(func(a Attr) { count++ })
	require.Equal(t, AttrLimit(), count)
}
