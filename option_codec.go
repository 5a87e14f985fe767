package tagcodec

import (
	"github.com/lonng/tagcodec/option"
	"github.com/pingcap/errors"
)

// optionCodec 内置的 Option 编解码器, 只做委托:
// 序列化交给值自身的 Serialize 方法, 反序列化交给 option.Deserialize,
// 映射表对它没有任何特殊处理, 它同时也是扩展约定的示例
type optionCodec struct{}

func (optionCodec) Serialize(v any) (any, error) {
	o, ok := v.(*option.Option)
	if !ok {
		return nil, errors.Errorf("option codec expects *option.Option, got %T", v)
	}
	return o.Serialize(), nil
}

func (optionCodec) Deserialize(v any) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, errors.Errorf("option codec expects map[string]any, got %T", v)
	}
	return option.Deserialize(m)
}
