package option

import (
	"fmt"
	"reflect"

	"github.com/lonng/tagcodec/protocal/codec"
	"github.com/pingcap/errors"
)

// ClassName Option 类型参与分发时使用的类名
const ClassName = "Option"

// fieldHas 传输形态中标记是否持有值的字段名
const fieldHas = "has"

// fieldValue 传输形态中携带内部值的字段名, 无值时省略
const fieldValue = "value"

// Option 可空值容器, 区分 "持有 nil" 和 "没有值"
type Option struct {
	has   bool
	value any
}

// Some 构造持有 v 的 Option
func Some(v any) *Option {
	return &Option{has: true, value: v}
}

// None 构造无值的 Option
func None() *Option {
	return &Option{}
}

// HasValue 是否持有值
func (o *Option) HasValue() bool {
	return o.has
}

// Value 返回内部值, 无值时返回 nil
func (o *Option) Value() any {
	return o.value
}

// ClassTag 声明类名, 参与按类名的分发
func (o *Option) ClassTag() string {
	return ClassName
}

// Serialize 生成传输形态
func (o *Option) Serialize() map[string]any {
	m := map[string]any{
		codec.TagField: ClassName,
		fieldHas:       o.has,
	}
	if o.has {
		m[fieldValue] = o.value
	}
	return m
}

// Deserialize 从传输形态还原 Option
func Deserialize(m map[string]any) (*Option, error) {
	if tag, _ := m[codec.TagField].(string); tag != ClassName {
		return nil, errors.Errorf("not an encoded Option: %v", m)
	}
	has, ok := m[fieldHas].(bool)
	if !ok {
		return nil, errors.Errorf("encoded Option misses %q field: %v", fieldHas, m)
	}
	if !has {
		return None(), nil
	}
	return Some(m[fieldValue]), nil
}

// Equal 同为有值且内部值相等, 或者同为无值
func (o *Option) Equal(other *Option) bool {
	if o == nil || other == nil {
		return o == other
	}
	if o.has != other.has {
		return false
	}
	return !o.has || reflect.DeepEqual(o.value, other.value)
}

// String, implementation of fmt.Stringer interface
func (o *Option) String() string {
	if !o.has {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
