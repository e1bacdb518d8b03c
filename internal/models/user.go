package models

type UserInfo struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Session — либо все три поля заполнены, либо сессии нет.
// Частичное состояние никогда не сохраняется.
type Session struct {
	User         *UserInfo `json:"user"`
	AccessToken  string    `json:"access"`
	RefreshToken string    `json:"refresh"`
}

func (s Session) Complete() bool {
	return s.User != nil && s.AccessToken != "" && s.RefreshToken != ""
}

type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
