package tagcodec_test

import (
	"testing"

	"github.com/lonng/tagcodec"
	"github.com/lonng/tagcodec/option"
	"github.com/lonng/tagcodec/protocal/codec"
	. "github.com/pingcap/check"
)

type dispatchSuite struct{}

var _ = Suite(&dispatchSuite{})

func TestDispatch(t *testing.T) {
	TestingT(t)
}

// 完整场景: 业务参数列表 -> 传输形态 -> 还原
func (s *dispatchSuite) TestEndToEnd(c *C) {
	d := tagcodec.New()
	someOption := option.Some("inner")

	packed, err := d.SerializeArgs(42, someOption, "str")
	c.Assert(err, IsNil)
	c.Assert(packed.N, Equals, 3)
	c.Assert(packed.Slots[0], Equals, 42)
	c.Assert(packed.Slots[1], DeepEquals, map[string]any{
		codec.TagField: option.ClassName,
		"has":          true,
		"value":        "inner",
	})
	c.Assert(packed.Slots[2], Equals, "str")

	// 传输层把同样形态的数据送回来
	values, err := d.DeserializeArgsAndUnpack(packed.Slots...)
	c.Assert(err, IsNil)
	c.Assert(values, HasLen, 3)
	c.Assert(values[0], Equals, 42)
	back, ok := values[1].(*option.Option)
	c.Assert(ok, Equals, true)
	c.Assert(someOption.Equal(back), Equals, true, Commentf("还原后的 Option 应该与原值等价"))
	c.Assert(values[2], Equals, "str")
}

// 完整场景: 尾部空位穿过两个方向都不丢失
func (s *dispatchSuite) TestEndToEndTrailingGap(c *C) {
	d := tagcodec.New()

	wire, err := d.SerializeArgsAndUnpack(option.None(), nil)
	c.Assert(err, IsNil)
	c.Assert(wire, HasLen, 2)

	packed, err := d.DeserializeArgs(wire...)
	c.Assert(err, IsNil)
	c.Assert(packed.N, Equals, 2)
	none, ok := packed.Slots[0].(*option.Option)
	c.Assert(ok, Equals, true)
	c.Assert(none.HasValue(), Equals, false)
	c.Assert(packed.Slots[1], IsNil)
}
