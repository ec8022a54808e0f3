package models

// User is an account in WeDo. The password is stored as-is and never
// serialized; clients identify themselves with a plain userId parameter,
// there is no login flow.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar,omitempty"`
	Streak   int    `json:"streak"`
}
