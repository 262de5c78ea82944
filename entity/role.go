package entity

//Role represents column role
type Role int

const (
	RoleNormal = Role(iota)
	RoleKey
	RoleComputed
)

func (r Role) String() string {
	switch r {
	case RoleKey:
		return "key"
	case RoleComputed:
		return "computed"
	}
	return "normal"
}
