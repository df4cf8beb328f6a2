package models

// User is a row of the users table. PasswordHash is never serialized to
// clients; read paths leave it empty.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
}

// UserUpdate carries the fields of a partial update. A nil field is left
// unchanged in the store.
type UserUpdate struct {
	Email    *string
	Password *string
}

// Empty reports whether the update carries nothing to change. Empty strings
// count as absent.
func (u UserUpdate) Empty() bool {
	return (u.Email == nil || *u.Email == "") && (u.Password == nil || *u.Password == "")
}
