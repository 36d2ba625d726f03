// Package models defines the inventory records and the conversions between
// their editable and persisted shapes.
package models

import (
	"math"
	"strconv"
	"strings"
)

// NewItemID is the identifier of an item that has not been persisted yet.
const NewItemID int64 = 0

// Item is the canonical, persisted inventory record.
type Item struct {
	ID       int64
	Name     string
	Price    float64
	Quantity int32
	Supplier string
	Email    string
	Phone    string
}

// ItemDetails is the editable form of an Item. Every field holds raw text
// as typed by the user and may be transiently invalid.
type ItemDetails struct {
	ID       int64
	Name     string
	Price    string
	Quantity string
	Supplier string
	Email    string
	Phone    string
}

// SupplierDetails holds the supplier contact used to pre-fill new entries.
type SupplierDetails struct {
	Supplier string
	Email    string
	Phone    string
}

// PriceFormatter renders an amount of money for display.
type PriceFormatter interface {
	Format(amount float64) string
}

// ItemDetailsFromSupplier returns an empty draft carrying the supplier contact.
func ItemDetailsFromSupplier(s SupplierDetails) ItemDetails {
	return ItemDetails{Supplier: s.Supplier, Email: s.Email, Phone: s.Phone}
}

// ToItem converts a draft into an Item. A price or quantity that does not
// parse, is not finite or is negative is stored as zero.
func (d ItemDetails) ToItem() Item {
	return Item{
		ID:       d.ID,
		Name:     d.Name,
		Price:    parsePrice(d.Price),
		Quantity: parseQuantity(d.Quantity),
		Supplier: d.Supplier,
		Email:    d.Email,
		Phone:    d.Phone,
	}
}

// ToItemDetails renders an Item back into its editable form.
func (i Item) ToItemDetails() ItemDetails {
	return ItemDetails{
		ID:       i.ID,
		Name:     i.Name,
		Price:    strconv.FormatFloat(i.Price, 'f', -1, 64),
		Quantity: strconv.FormatInt(int64(i.Quantity), 10),
		Supplier: i.Supplier,
		Email:    i.Email,
		Phone:    i.Phone,
	}
}

// DisplayPrice renders the item price with f.
func (i Item) DisplayPrice(f PriceFormatter) string {
	return f.Format(i.Price)
}

// Contact returns the supplier part of a draft.
func (d ItemDetails) Contact() SupplierDetails {
	return SupplierDetails{Supplier: d.Supplier, Email: d.Email, Phone: d.Phone}
}

// HideSupplier returns a copy of d with every character of the supplier
// name, email and phone replaced by a block glyph. It is meant for display
// only and must never be persisted.
func (d ItemDetails) HideSupplier() ItemDetails {
	d.Supplier = mask(d.Supplier)
	d.Email = mask(d.Email)
	d.Phone = mask(d.Phone)
	return d
}

// Summary renders the draft as a human readable block. The price is parsed
// with the same coercion as ToItem.
func (d ItemDetails) Summary(f PriceFormatter) string {
	var b strings.Builder
	b.WriteString("Item: " + d.Name + "\n")
	b.WriteString("Quantity in stock: " + d.Quantity + "\n")
	b.WriteString("Price: " + f.Format(parsePrice(d.Price)) + "\n")
	b.WriteString("Supplier\n")
	b.WriteString("Name: " + d.Supplier + "\n")
	b.WriteString("Email: " + d.Email + "\n")
	b.WriteString("Phone: " + d.Phone + "\n")
	return b.String()
}

// MaskGlyph replaces each character of a hidden field.
const MaskGlyph = '█'

func mask(s string) string {
	var b strings.Builder
	for range s {
		b.WriteRune(MaskGlyph)
	}
	return b.String()
}

func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func parseQuantity(s string) int32 {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil || v < 0 {
		return 0
	}
	return int32(v)
}
