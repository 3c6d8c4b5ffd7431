package xconf

// options 内部可选配置。
type options struct {
	key string
}

// Option 定义加载选项函数类型。
type Option func(*options)

func defaultOptions() *options {
	return &options{key: "rules"}
}

// WithKey 设置规则集在配置中的根键，默认为 "rules"。
func WithKey(key string) Option {
	return func(o *options) {
		o.key = key
	}
}
