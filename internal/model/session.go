package model

type Role string

const (
	RoleBuyer    Role = "BUYER"
	RoleSeller   Role = "SELLER"
	RoleAdmin    Role = "ADMIN"
	RoleMerchant Role = "MERCHANT"
)

type Session struct {
	UserID int64
	Role   Role
	Email  string
	Token  string
}

// LoggedIn holds exactly when both the user id and the auth token are present.
func (s *Session) LoggedIn() bool {
	return s != nil && s.UserID != 0 && s.Token != ""
}

func (s *Session) CanSell() bool {
	return s.LoggedIn() && (s.Role == RoleSeller || s.Role == RoleMerchant)
}
