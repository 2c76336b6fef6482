package models

// User represents a user account record held in the in-memory store.
// Records arrive either fully formed from the `user_created` queue or are
// mutated field-by-field through the HTTP API.
type User struct {
	// ID is the unique identifier of the user. At most one record per ID
	// is ever visible in the store.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the contact address of the user.
	Email string `json:"email"`

	// Password stores the user's credential hash as produced by the
	// issuing authority. It is opaque to this service and MUST never be
	// a plaintext password.
	Password string `json:"password"`

	// Role is the coarse role tag of the user (e.g. "user", "admin").
	// It is informational only; authorization is not enforced here.
	Role string `json:"role"`
}

// UserUpdate represents a partial update of a single user record.
// Only non-nil fields are applied (partial update support); a field that is
// present in the request body overwrites the stored value even when it is
// empty, a field that is absent leaves the stored value untouched.
type UserUpdate struct {
	// Name replaces the stored display name when non-nil.
	Name *string `json:"name,omitempty"`

	// Email replaces the stored contact address when non-nil.
	Email *string `json:"email,omitempty"`

	// Password replaces the stored credential hash when non-nil.
	Password *string `json:"password,omitempty"`

	// Role replaces the stored role tag when non-nil.
	Role *string `json:"role,omitempty"`
}

// ApplyTo merges the update into user, overwriting exactly the fields that
// are set on the receiver.
func (u UserUpdate) ApplyTo(user *User) {
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.Password != nil {
		user.Password = *u.Password
	}
	if u.Role != nil {
		user.Role = *u.Role
	}
}
