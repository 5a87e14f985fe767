package codec

// TagField 传输形态中携带类名的字段名
const TagField = "__class"

type (
	// Serializer represents a serialize interface
	Serializer interface {
		Serialize(v any) (any, error)
	}

	// Deserializer represents a deserialize interface
	Deserializer interface {
		Deserialize(v any) (any, error)
	}

	// Codec is the interface that groups the basic Serialize and Deserialize methods.
	// Serialize 将某一类的富类型值转换为底层传输层可以理解的形态,
	// Deserialize 做相反方向的还原; 两个方法返回的 error 会原样传递给调用方
	Codec interface {
		Serializer
		Deserializer
	}

	// Tagged 富类型值实现该接口以声明自己的类名, 从而参与按类名的分发;
	// 未实现该接口的值在序列化方向上原样放行
	Tagged interface {
		ClassTag() string
	}
)

// TagOf 提取传输形态(map)中携带的类名;
// 不是 map, 或者 map 中没有类名字段时返回 false
func TagOf(v any) (string, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	tag, ok := m[TagField].(string)
	return tag, ok
}
