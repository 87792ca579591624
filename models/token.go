package models

import "time"

// Token is the opaque bearer credential bound one-to-one with a user
// account. A token is issued lazily on the first successful registration
// or login ("get-or-create") and never rotates: repeated logins for the
// same account always return the same Key.
//
// The Key is a 40-character hex string derived from 20 random bytes.
// It carries no embedded claims; possession of the string is the proof
// of prior authentication.
type Token struct {
	// UserID is the owner of the token. Exactly zero or one token exists
	// per user at all times, enforced by the primary key on user_id.
	UserID int64 `json:"-"`

	// Key is the opaque token string presented by clients in the
	// Authorization header.
	Key string `json:"token"`

	// CreatedAt records when the token was first issued.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Token model.
func (t Token) TableName() string {
	return "tokens"
}

// String returns the opaque token key.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.Key
}
