package model

import "time"

// User is an account record. PasswordHash is the HMAC-SHA512 of the
// plaintext keyed by PasswordSalt; the two fields are always assigned
// together.
type User struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        Email     `db:"email" json:"email"`
	PasswordHash []byte    `db:"password_hash" json:"-"`
	PasswordSalt []byte    `db:"password_salt" json:"-"`
	IsAdmin      bool      `db:"is_admin" json:"is_admin"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// NewUser builds a user with the admin flag off. Promotion is always an
// explicit PromoteToAdmin call.
func NewUser(id int, name string, email Email) *User {
	return &User{ID: id, Name: name, Email: email}
}

// SetPassword validates plain against the password policy and stores a fresh
// hash and salt. Returns a ValidationError when the policy rejects it.
func (u *User) SetPassword(plain string) error {
	if err := ValidateStrongPassword(plain); err != nil {
		return err
	}
	hash, salt, err := HashPassword(plain, nil)
	if err != nil {
		return err
	}
	u.ChangePassword(hash, salt)
	return nil
}

// ChangePassword assigns a precomputed hash and salt pair. The reset flow
// generates the password itself, so no policy check happens here.
func (u *User) ChangePassword(hash, salt []byte) {
	u.PasswordHash = hash
	u.PasswordSalt = salt
}

// PromoteToAdmin flips the admin flag. Idempotent.
func (u *User) PromoteToAdmin() {
	u.IsAdmin = true
}
