package model

import "time"

// User represents an application user record as stored in the `users`
// table.  Users both list spaces and request bookings; there is no role
// distinction, the only privilege in the system (resolving a booking
// request) is derived from space ownership.  Passwords are stored as
// bcrypt hashes, never in plain text.
//
// Fields:
//  ID           – primary key identifier of the user.
//  UserName     – display name shown on booking requests.
//  Email        – unique, lowercased email address.
//  Phone        – contact phone number.
//  PasswordHash – bcrypt hashed password.
//  IsActive     – whether the account is active.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	UserName     string    // users.user_name
	Email        string    // users.email
	Phone        string    // users.phone
	PasswordHash string    // users.password_hash
	IsActive     bool      // users.is_active
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
