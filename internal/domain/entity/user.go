package entity

import "time"

// UserStatus is the canonical role of a user
type UserStatus string

const (
	UserStatusUser  UserStatus = "user"
	UserStatusAdmin UserStatus = "admin"
)

// User is an account known to the dashboard
type User struct {
	ID        string     `json:"id"`
	AccountID string     `json:"accountId"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	ImageURL  string     `json:"imageUrl"`
	JoinedAt  time.Time  `json:"joinedAt"`
	Status    UserStatus `json:"status"`
}

// IsAdmin reports whether the user may access admin pages
func (u *User) IsAdmin() bool {
	return u != nil && u.Status == UserStatusAdmin
}

// CanonicalStatus picks the role from the legacy status/role/userType fields,
// in that order of precedence.
func CanonicalStatus(status, role, userType string) UserStatus {
	for _, v := range []string{status, role, userType} {
		if v != "" {
			return UserStatus(v)
		}
	}
	return ""
}

// UserWithTripCount is a user annotated with the number of trips they created
type UserWithTripCount struct {
	User
	ItineraryCreated int64 `json:"itineraryCreated"`
}

// Identity is the profile returned by the identity provider after sign-in
type Identity struct {
	AccountID string
	Name      string
	Email     string
	ImageURL  string
}

// OAuthState is carried through the provider redirect and tells the callback where to send the browser
type OAuthState struct {
	Provider   string
	SuccessURL string
	FailureURL string
}
