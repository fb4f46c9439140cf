package entity

import "time"

// Domain separates the two identity scopes. Users and admins live in
// disjoint collections and are signed with different secrets.
type Domain string

const (
	DomainUser  Domain = "user"
	DomainAdmin Domain = "admin"
)

func (d Domain) Valid() bool {
	return d == DomainUser || d == DomainAdmin
}

// Account is a registered user or admin.
// Password holds the bcrypt hash, never the plaintext.
type Account struct {
	ID        string    `json:"id"`
	Domain    Domain    `json:"-"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}
