package codec

import (
	"sync"

	"github.com/lonng/tagcodec/internal/env"
	"github.com/lonng/tagcodec/internal/log"
)

// Registry 类名到编解码器的映射表
type Registry struct {
	mu     sync.RWMutex     // 注册与分发可能并发, 读多写少
	codecs map[string]Codec // 类名 -> 编解码器
}

// NewRegistry 构造函数, 返回空的映射表
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Codec)}
}

// Register 注册某类名的编解码器, 重复注册时后注册的生效
func (r *Registry) Register(tag string, c Codec) {
	if env.Debug {
		log.Info("Register codec for class %s", tag)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.codecs[tag] = c
}

// Lookup 查找某类名的编解码器, 未注册时返回 false
func (r *Registry) Lookup(tag string) (Codec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.codecs[tag]
	return c, ok
}
