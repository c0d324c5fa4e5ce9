package syntax

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_]{1,15}$`)

	// special author string attached to automatic moderation reports. Contains
	// characters which can never appear in a valid username, so it can not
	// collide with a registered account.
	SystemAuthor = "-System-"
)

// String type which represents a syntaxtually valid username: 1 to 15
// alphanumeric characters or underscores.
//
// Always use [ParseUsername] instead of wrapping strings directly, especially
// when working with input.
type Username string

func ParseUsername(raw string) (Username, error) {
	if raw == "" {
		return "", errors.New("expected username, got empty string")
	}
	if len(raw) > 15 {
		return "", errors.New("username is too long (15 chars max)")
	}
	if !usernameRegex.MatchString(raw) {
		return "", fmt.Errorf("username syntax didn't validate via regex: %s", raw)
	}
	return Username(raw), nil
}

// Is this the reserved author used for automatic reports?
func (u Username) IsSystem() bool {
	return string(u) == SystemAuthor
}

func (u Username) Normalize() Username {
	return Username(strings.ToLower(string(u)))
}

func (u Username) String() string {
	return string(u)
}

func (u Username) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Username) UnmarshalText(text []byte) error {
	username, err := ParseUsername(string(text))
	if err != nil {
		return err
	}
	*u = username
	return nil
}
