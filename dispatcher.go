package tagcodec

import (
	"github.com/lonng/tagcodec/option"
	"github.com/lonng/tagcodec/pipeline"
	"github.com/lonng/tagcodec/protocal/args"
	"github.com/lonng/tagcodec/protocal/codec"
)

// Dispatcher 按类名分发的序列化器.
// 每个操作都是入参加映射表当前快照的纯函数, 分发器自身不持有别的状态
type Dispatcher struct {
	registry *codec.Registry
	pipe     pipeline.Pipeline
}

// New 创建分发器实例, 默认携带内置的 Option 编解码器
func New(opts ...Option) *Dispatcher {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	d := &Dispatcher{
		registry: options.registry,
		pipe:     options.pipe,
	}
	if options.bundled {
		d.registry.Register(option.ClassName, optionCodec{})
	}
	for tag, c := range options.codecs {
		d.registry.Register(tag, c)
	}
	return d
}

// Registry 返回分发器使用的映射表
func (d *Dispatcher) Registry() *codec.Registry {
	return d.registry
}

// RegisterCodec 注册(或覆盖)某类名的编解码器
func (d *Dispatcher) RegisterCodec(tag string, c codec.Codec) {
	d.registry.Register(tag, c)
}

// Serialize 单值序列化: 值声明了类名且类名已注册时应用编解码器,
// 其余情况原样放行; 只看顶层值的类名, 不递归处理内部字段
func (d *Dispatcher) Serialize(v any) (any, error) {
	t, ok := v.(codec.Tagged)
	if !ok {
		return v, nil
	}
	c, ok := d.registry.Lookup(t.ClassTag())
	if !ok {
		//未注册的类名不是错误, 原样放行
		return v, nil
	}
	return c.Serialize(v)
}

// Deserialize 单值反序列化, 与 Serialize 对称,
// 类名从传输形态(map)的类名字段读取
func (d *Dispatcher) Deserialize(v any) (any, error) {
	tag, ok := codec.TagOf(v)
	if !ok {
		return v, nil
	}
	c, ok := d.registry.Lookup(tag)
	if !ok {
		return v, nil
	}
	return c.Deserialize(v)
}

// SerializeArgs 打包一次变参调用并逐槽位序列化.
// 真实参数个数在打包时捕获, 尾部的 nil 空位不会丢失;
// 配置了管道时, 出方向的处理链在编解码之后执行
func (d *Dispatcher) SerializeArgs(values ...any) (*args.Args, error) {
	a := args.Pack(values...)
	if err := d.apply(a, d.Serialize); err != nil {
		return nil, err
	}
	if err := d.process(a, outbound); err != nil {
		return nil, err
	}
	return a, nil
}

// DeserializeArgs 打包一次变参调用并逐槽位反序列化.
// 配置了管道时, 入方向的处理链在编解码之前执行
func (d *Dispatcher) DeserializeArgs(values ...any) (*args.Args, error) {
	a := args.Pack(values...)
	if err := d.process(a, inbound); err != nil {
		return nil, err
	}
	if err := d.apply(a, d.Deserialize); err != nil {
		return nil, err
	}
	return a, nil
}

// SerializeArgsAndUnpack 序列化后立即展开为恰好 N 个位置
func (d *Dispatcher) SerializeArgsAndUnpack(values ...any) ([]any, error) {
	a, err := d.SerializeArgs(values...)
	if err != nil {
		return nil, err
	}
	return a.Unpack()
}

// DeserializeArgsAndUnpack 反序列化后立即展开为恰好 N 个位置
func (d *Dispatcher) DeserializeArgsAndUnpack(values ...any) ([]any, error) {
	a, err := d.DeserializeArgs(values...)
	if err != nil {
		return nil, err
	}
	return a.Unpack()
}

// UnpackArgs 把打包过的参数列表展开为恰好 N 个位置, 空位保留;
// 计数与槽位不一致时返回 ErrMalformedArgs
func (d *Dispatcher) UnpackArgs(a *args.Args) ([]any, error) {
	return a.Unpack()
}

// apply 对 0..N-1 的槽位就地应用变换, 编解码器的错误原样向上传递
func (d *Dispatcher) apply(a *args.Args, transform func(any) (any, error)) error {
	for i := 0; i < a.N; i++ {
		v, err := transform(a.Slots[i])
		if err != nil {
			return err
		}
		a.Slots[i] = v
	}
	return nil
}

// 管道方向
const (
	inbound = iota
	outbound
)

// process 执行管道某个方向的处理链, 未配置管道时什么也不做
func (d *Dispatcher) process(a *args.Args, direction int) error {
	if d.pipe == nil {
		return nil
	}
	chain := d.pipe.Inbound()
	if direction == outbound {
		chain = d.pipe.Outbound()
	}
	return chain.Process(a)
}
