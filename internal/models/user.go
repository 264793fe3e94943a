// Package models defines the domain types shared by the launchboard core:
// the user registry records and the launch/rocket catalog shapes.
package models

// User is a registry record owned by the credential store. PasswordHash is a
// one-way bcrypt hash and must never leave the store boundary.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"passwordHash"`
}

// SafeUser is the only user representation exposed outside the credential
// store: User with the credential secret stripped.
type SafeUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Safe returns the exposable view of the user.
func (u User) Safe() SafeUser {
	return SafeUser{ID: u.ID, Email: u.Email, Name: u.Name}
}
