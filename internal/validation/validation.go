// Package validation holds the field rules applied to user-entered item and
// supplier data. Every rule is a total predicate over raw text: it never
// fails, it only answers whether the text is well-formed.
package validation

import (
	"regexp"
	"strings"

	"github.com/dmitrijs2005/inventory/internal/models"
)

var (
	priceRe    = regexp.MustCompile(`^\d*\.?\d+$`)
	quantityRe = regexp.MustCompile(`^\d+$`)
	phoneRe    = regexp.MustCompile(`^\+?[1-9]\d{7,14}$`)

	// emailRe follows the address grammar used by mobile platforms:
	// local part, "@", then at least two dot-separated labels.
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9+._%\-]{1,256}@[a-zA-Z0-9][a-zA-Z0-9\-]{0,64}(\.[a-zA-Z0-9][a-zA-Z0-9\-]{0,25})+$`)
)

// Price reports whether s is an unsigned decimal such as "5", "5.25" or ".5".
func Price(s string) bool { return priceRe.MatchString(s) }

// Quantity reports whether s is a non-negative integer made of ASCII digits.
func Quantity(s string) bool { return quantityRe.MatchString(s) }

// Email reports whether s is a single-line email address.
func Email(s string) bool { return emailRe.MatchString(s) }

// Phone reports whether s is an optional "+" followed by 8 to 15 digits
// without a leading zero.
func Phone(s string) bool { return phoneRe.MatchString(s) }

// Blank reports whether s is empty or contains only whitespace.
func Blank(s string) bool { return strings.TrimSpace(s) == "" }

// Item is the conjunction of all rules an item draft must satisfy before it
// can be persisted.
func Item(d models.ItemDetails) bool {
	return !Blank(d.Name) &&
		Price(d.Price) &&
		Quantity(d.Quantity) &&
		!Blank(d.Supplier) &&
		Email(d.Email) &&
		Phone(d.Phone)
}

// Supplier validates supplier defaults. Unlike Item, contact fields may be
// left blank; when present they must be well-formed.
func Supplier(d models.SupplierDetails) bool {
	return (Blank(d.Email) || Email(d.Email)) && (Blank(d.Phone) || Phone(d.Phone))
}
