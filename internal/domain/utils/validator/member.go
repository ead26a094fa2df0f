package validator

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

const maxNameLength = 100

// Name accepts a non-blank name of at most 100 characters.
func Name(name string) bool {
	name = strings.TrimSpace(name)
	return name != "" && utf8.RuneCountInString(name) <= maxNameLength
}

// Email accepts a bare address such as alice@example.com.
func Email(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
