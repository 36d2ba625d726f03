// Package cli is the interactive shell of the inventory keeper.
//
// NewApp opens the database named by the configuration, unlocks the secure
// preference store with the user's passphrase and wires the editor and the
// services together. Run then reads commands until "exit", EOF or context
// cancellation:
//
//	help                            show available commands
//	list                            list items with formatted prices
//	show                            print an item summary
//	add                             enter a new item
//	edit                            edit an existing item
//	sell                            take one unit out of stock
//	delete                          remove an item
//	share                           send an item summary to a supplier contact
//	settings                        print supplier defaults and toggles
//	defaults                        edit supplier defaults
//	toggle <use|hide|prohibit>      flip a toggle
//	exit | quit                     leave the program
package cli
