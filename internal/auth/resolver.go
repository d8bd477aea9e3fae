package auth

// Resolver 把一个呈现的API密钥解析为角色。
// 抽象成接口是为了以后可以在不改动任何处理器的前提下，
// 用真实的凭证存储替换内置的静态密钥表。
type Resolver interface {
	Resolve(key string) (Role, bool)
}

// StaticResolver 是Resolver的静态查找表实现，无任何副作用。
type StaticResolver struct {
	keys map[string]Role
}

// NewStaticResolver 从 密钥->角色名 映射构造一个静态解析器。
// 角色名非法的条目会被直接忽略。
func NewStaticResolver(keys map[string]string) *StaticResolver {
	table := make(map[string]Role, len(keys))
	for key, role := range keys {
		if Valid(role) {
			table[key] = Role(role)
		}
	}
	return &StaticResolver{keys: table}
}

// Resolve 查表解析密钥。
func (r *StaticResolver) Resolve(key string) (Role, bool) {
	role, ok := r.keys[key]
	return role, ok
}
