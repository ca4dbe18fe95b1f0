package domain

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Session is the identity the external API reports for a token. It is built
// by the session bootstrap on every page load and only read afterwards.
type Session struct {
	UserID     string `json:"_id"`
	Username   string `json:"username,omitempty"`
	Name       string `json:"name,omitempty"`
	Role       string `json:"role"`
	EmployeeID string `json:"employeeId,omitempty"`
	Token      string `json:"-"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// DisplayName prefers the full name and falls back to the username.
func (s *Session) DisplayName() string {
	if s == nil {
		return ""
	}
	if s.Name != "" {
		return s.Name
	}
	return s.Username
}

// Employee models an account as listed by the external API. TotalHours is
// computed server-side and never sent back.
type Employee struct {
	ID         string  `json:"_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Username   string  `json:"username,omitempty"`
	Role       string  `json:"role,omitempty"`
	TotalHours float64 `json:"totalHours"`
}

// NewEmployee carries the fields of an account creation request. Password is
// write-only.
type NewEmployee struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
