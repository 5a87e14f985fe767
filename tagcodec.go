package tagcodec

import (
	"github.com/lonng/tagcodec/protocal/args"
	"github.com/lonng/tagcodec/protocal/codec"
)

// VERSION returns current tagcodec version
var VERSION = "0.1.0"

// Default 默认分发器, 包级函数全部委托给它.
// 内置的映射表是进程级共享状态, 注册放在初始化阶段进行
var Default = New()

// RegisterCodec 往默认分发器注册(或覆盖)某类名的编解码器
func RegisterCodec(tag string, c codec.Codec) {
	Default.RegisterCodec(tag, c)
}

// Serialize 单值序列化, 未注册类名的值原样放行
func Serialize(v any) (any, error) {
	return Default.Serialize(v)
}

// Deserialize 单值反序列化, 未注册类名的值原样放行
func Deserialize(v any) (any, error) {
	return Default.Deserialize(v)
}

// SerializeArgs 打包一次变参调用并逐槽位序列化, 尾部空位计入 N
func SerializeArgs(values ...any) (*args.Args, error) {
	return Default.SerializeArgs(values...)
}

// DeserializeArgs 打包一次变参调用并逐槽位反序列化, 尾部空位计入 N
func DeserializeArgs(values ...any) (*args.Args, error) {
	return Default.DeserializeArgs(values...)
}

// SerializeArgsAndUnpack 序列化后立即展开为恰好 N 个位置
func SerializeArgsAndUnpack(values ...any) ([]any, error) {
	return Default.SerializeArgsAndUnpack(values...)
}

// DeserializeArgsAndUnpack 反序列化后立即展开为恰好 N 个位置
func DeserializeArgsAndUnpack(values ...any) ([]any, error) {
	return Default.DeserializeArgsAndUnpack(values...)
}

// UnpackArgs 展开打包过的参数列表为恰好 N 个位置
func UnpackArgs(a *args.Args) ([]any, error) {
	return Default.UnpackArgs(a)
}
