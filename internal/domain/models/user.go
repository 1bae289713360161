package models

// User never serializes its password hash.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"` // owner / admin / staff
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

func (u User) SearchFields() []string {
	return []string{u.Name, u.Username, u.Email, u.Phone}
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case "owner", "admin", "staff":
		return true
	}
	return false
}
