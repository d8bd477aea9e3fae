package auth

// Role 表示一个API调用方的权限角色。
type Role string

const (
	// RoleGuest 是可选认证模式下、未携带API密钥时的特殊角色。
	// 它不在等级序列中，无法通过任何角色门槛。
	RoleGuest Role = "guest"

	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// roleRank 定义了固定的角色等级序列 user < moderator < admin。
var roleRank = map[Role]int{
	RoleUser:      1,
	RoleModerator: 2,
	RoleAdmin:     3,
}

// Satisfies 判断当前角色的等级是否不低于所要求的角色。
// guest等未知角色的等级为0，永远不满足任何要求。
func (r Role) Satisfies(required Role) bool {
	return roleRank[r] >= roleRank[required]
}

// Valid 判断一个字符串是否是等级序列中的合法角色。
func Valid(role string) bool {
	_, ok := roleRank[Role(role)]
	return ok
}
