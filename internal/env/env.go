package env

//goland:noinspection GoVarAndConstTypeMayBeOmitted,GoCommentStart
var (
	Debug bool = false //调试模式
)
