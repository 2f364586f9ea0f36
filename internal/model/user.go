package model

import "time"

// User represents an application user record as stored in the `users`
// table.  The password is kept only as a bcrypt hash; handlers define
// separate response types so the hash never leaves the repository layer.
//
// Fields:
//  ID           – primary key identifier of the user.
//  FirstName    – given name supplied at sign-up.
//  LastName     – family name supplied at sign-up.
//  Email        – unique email address, stored exactly as given.
//  PasswordHash – bcrypt hashed password.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           uint64    // users.id
    FirstName    string    // users.first_name
    LastName     string    // users.last_name
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}
