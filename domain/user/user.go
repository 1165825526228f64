// Package user provides the User resource value types and pure validation
// functions. This package has NO dependencies on I/O or external packages.
package user

import "fmt"

// Sex is the declared sex of a user.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// IsValid returns true if the sex is a known valid value.
func (s Sex) IsValid() bool {
	return s == SexMale || s == SexFemale
}

// User is the resource exposed over HTTP.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
	Sex   Sex    `json:"sex"`
}

// Ref is a minimal projection of a User, used in creation responses.
// Derived, never stored.
type Ref struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// NewRef derives a Ref from a user.
func NewRef(u User) Ref {
	return Ref{
		ID:   u.ID,
		Name: u.Name,
		URL:  fmt.Sprintf("/users/%d", u.ID),
	}
}

// Fields is a decoded request body: field name -> value.
type Fields map[string]any

// Email returns the email field if it was supplied as a string.
func (f Fields) Email() (string, bool) {
	v, ok := f["email"]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// FromFields builds a User from a full, validated field set.
func FromFields(f Fields) User {
	return Apply(User{}, f)
}

// Apply overwrites the supplied fields onto u and returns the result.
// Fields not supplied are untouched. The input must already be validated.
func Apply(u User, f Fields) User {
	if v, ok := f["name"]; ok {
		u.Name, _ = v.(string)
	}
	if v, ok := f["email"]; ok {
		u.Email, _ = v.(string)
	}
	if v, ok := f["age"]; ok {
		u.Age = asInt(v)
	}
	if v, ok := f["sex"]; ok {
		if s, isStr := v.(string); isStr {
			u.Sex = Sex(s)
		}
	}
	return u
}

// asInt converts a validated numeric value to int. JSON numbers decode as
// float64; only integer-valued numbers pass the schema.
func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}
