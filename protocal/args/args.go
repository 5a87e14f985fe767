package args

import (
	"github.com/pingcap/errors"
)

// ErrMalformed 参数列表的计数与槽位不一致
var ErrMalformed = errors.New("malformed argument list")

// Args 带显式计数的参数列表.
// 变参调用允许尾部省略的参数, 这些位置仍然占位, 所以真实个数必须在
// 打包时从调用方的实参个数捕获, 之后一律以 N 为准, 不能再数槽位
type Args struct {
	N     int   // 权威的参数个数
	Slots []any // 参数槽位, 下标 0..N-1 有效, nil 表示空位
}

// Pack 捕获一次变参调用的全部实参, 包括尾部的 nil 空位
func Pack(values ...any) *Args {
	slots := make([]any, len(values))
	copy(slots, values)
	return &Args{N: len(values), Slots: slots}
}

// Valid 校验计数与槽位的一致性; 超出 N 的槽位没有意义, 不影响合法性
func (a *Args) Valid() bool {
	return a != nil && a.N >= 0 && a.N <= len(a.Slots)
}

// Unpack 按存储的计数展开为恰好 N 个位置, 空位保留为 nil.
// 展开只信任 N, 不使用槽位自身的长度; 计数与槽位不一致时返回 ErrMalformed,
// 静默截断会把空位重新藏起来, 这正是本模块要避免的问题
func (a *Args) Unpack() ([]any, error) {
	if !a.Valid() {
		return nil, ErrMalformed
	}
	values := make([]any, a.N)
	copy(values, a.Slots[:a.N])
	return values, nil
}
