// Package services contains the application services behind the CLI.
//
// SettingsService owns the supplier defaults form and the display and
// sharing toggles, all persisted through a securestore.Store.
// InventoryService lists, sells, deletes and shares stored items and honours
// those toggles.
package services

import "errors"

var (
	ErrSharingProhibited = errors.New("sharing is prohibited")
	ErrOutOfStock        = errors.New("item is out of stock")
	ErrUnknownSetting    = errors.New("unknown setting")
	ErrUnknownContact    = errors.New("unknown contact")
)

// Preference keys.
const (
	KeySupplier = "supplier"
	KeyEmail    = "email"
	KeyPhone    = "phone"
	KeyUse      = "use"
	KeyHide     = "hide"
	KeyProhibit = "prohibit"
)
