package tagcodec

import (
	"github.com/lonng/tagcodec/internal/env"
	"github.com/lonng/tagcodec/internal/log"
	"github.com/lonng/tagcodec/pipeline"
	"github.com/lonng/tagcodec/protocal/codec"
)

type options struct {
	registry *codec.Registry
	pipe     pipeline.Pipeline
	bundled  bool                   // 是否携带内置条目
	codecs   map[string]codec.Codec // WithCodec 注册的条目
}

func defaultOptions() *options {
	return &options{
		registry: codec.NewRegistry(),
		bundled:  true,
	}
}

type Option func(*options)

// WithDebugMode 启用调试
func WithDebugMode() Option {
	return func(opt *options) {
		env.Debug = true
	}
}

// WithLogger 设置日志
func WithLogger(logger log.Logger) Option {
	return func(opt *options) {
		log.SetLogger(logger)
	}
}

// WithRegistry 整体替换映射表, 表中放什么条目由调用方负责,
// 内置的 Option 条目不会再注册进去
func WithRegistry(r *codec.Registry) Option {
	if r == nil {
		panic("registry can not be nil")
	}
	return func(opt *options) {
		opt.registry = r
		opt.bundled = false
	}
}

// WithCodec 构造时注册某类名的编解码器, 与 RegisterCodec 等价
func WithCodec(tag string, c codec.Codec) Option {
	return func(opt *options) {
		if opt.codecs == nil {
			opt.codecs = map[string]codec.Codec{}
		}
		opt.codecs[tag] = c
	}
}

// WithPipeline 设置参数列表的出入处理管道
func WithPipeline(pipe pipeline.Pipeline) Option {
	return func(opt *options) {
		opt.pipe = pipe
	}
}
