// Package models holds the document shapes stored in MongoDB and their
// client-facing projections.
package models

import (
	"time"

	"github.com/lunchboxd/lunchboxd-server/internal/server/docid"
)

// User is a stored user record. Password holds the bcrypt digest; the
// plaintext only exists transiently inside the registration flow.
//
// ID is deliberately untyped: API-created accounts are keyed by ObjectID,
// while bulk-imported ones keep their original string key. Read paths must
// go through ExternalID rather than assuming either representation.
type User struct {
	ID        any       `bson:"_id,omitempty" json:"-"`
	Username  string    `bson:"username" json:"username"`
	Email     string    `bson:"email" json:"email"`
	FirstName string    `bson:"firstName" json:"firstName"`
	LastName  string    `bson:"lastName" json:"lastName"`
	Mobile    string    `bson:"mobile,omitempty" json:"mobile,omitempty"`
	Avatar    string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Password  string    `bson:"password" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ExternalID returns the client-facing string form of the native key.
func (u *User) ExternalID() string {
	return docid.ExternalString(u.ID)
}

// PublicUser is the password-free projection of a User, with the native
// key converted to its external string form.
type PublicUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Mobile    string    `json:"mobile,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public strips the password and exposes the external identifier.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ExternalID(),
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Mobile:    u.Mobile,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}
