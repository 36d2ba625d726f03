package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/inventory/internal/editor"
	"github.com/dmitrijs2005/inventory/internal/models"
	"github.com/dmitrijs2005/inventory/internal/services"
)

type field struct {
	label string
	ptr   *string
}

func itemFields(d *models.ItemDetails) []field {
	return []field{
		{"Name", &d.Name},
		{"Price", &d.Price},
		{"Quantity", &d.Quantity},
		{"Supplier", &d.Supplier},
		{"Email", &d.Email},
		{"Phone", &d.Phone},
	}
}

func supplierFields(d *models.SupplierDetails) []field {
	return []field{
		{"Supplier", &d.Supplier},
		{"Email", &d.Email},
		{"Phone", &d.Phone},
	}
}

func (a *App) List(ctx context.Context) error {
	var rows []services.ItemView
	err := a.withTimeout(ctx, func(ctx context.Context) error {
		var err error
		rows, err = a.inventory.List(ctx)
		return err
	})
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Fprintln(a.out, "No items")
		return nil
	}
	for _, r := range rows {
		fmt.Fprintf(a.out, "%d\t%s\t%d in stock\t%s\n", r.ID, r.Name, r.Quantity, r.Price)
	}
	return nil
}

func (a *App) Show(ctx context.Context) error {
	id, err := GetID(a.reader, "Item id to show", a.out)
	if err != nil {
		return err
	}

	var summary string
	err = a.withTimeout(ctx, func(ctx context.Context) error {
		summary, err = a.inventory.Summary(ctx, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("item %d: %w", id, err)
	}
	fmt.Fprint(a.out, summary)
	return nil
}

func (a *App) Add(ctx context.Context) error {
	var prefill *models.ItemDetails
	err := a.withTimeout(ctx, func(ctx context.Context) error {
		var err error
		prefill, err = a.settings.EntryPrefill(ctx)
		return err
	})
	if err != nil {
		return err
	}

	s := a.editor.NewSession()
	if _, err := s.Start(ctx, prefill); err != nil {
		return err
	}
	return a.runSession(ctx, s)
}

func (a *App) Edit(ctx context.Context) error {
	id, err := GetID(a.reader, "Item id to edit", a.out)
	if err != nil {
		return err
	}

	s := a.editor.NewSession()
	err = a.withTimeout(ctx, func(ctx context.Context) error {
		_, err := s.Load(ctx, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("item %d: %w", id, err)
	}
	return a.runSession(ctx, s)
}

// runSession walks the user through the draft fields until the draft is
// saved or the user gives up.
func (a *App) runSession(ctx context.Context, s *editor.Session) error {
	for {
		st, err := a.fillDraft(s)
		if err != nil {
			_ = s.Cancel(ctx)
			return err
		}

		if !st.IsValid {
			again, err := Confirm(a.reader, "Item is invalid. Edit again?", a.out)
			if err == nil && again {
				continue
			}
			_ = s.Cancel(ctx)
			fmt.Fprintln(a.out, "Cancelled")
			return err
		}

		fmt.Fprint(a.out, st.Details.Summary(a.format))
		ok, err := Confirm(a.reader, "Save item?", a.out)
		if err != nil || !ok {
			_ = s.Cancel(ctx)
			fmt.Fprintln(a.out, "Cancelled")
			return err
		}

		var id int64
		err = a.withTimeout(ctx, func(ctx context.Context) error {
			var err error
			id, err = s.Save(ctx)
			return err
		})
		if err != nil {
			_ = s.Cancel(ctx)
			return err
		}
		fmt.Fprintf(a.out, "Saved item %d\n", id)
		return nil
	}
}

// fillDraft prompts every item field, updating the session after each one.
func (a *App) fillDraft(s *editor.Session) (editor.State, error) {
	st := s.State()
	d := st.Details
	for _, f := range itemFields(&d) {
		v, err := GetWithDefault(a.reader, f.label, *f.ptr, a.out)
		if err != nil {
			return st, err
		}
		*f.ptr = v
		if st, err = s.Update(d); err != nil {
			return st, err
		}
	}
	fmt.Fprintf(a.out, "Valid: %t\n", st.IsValid)
	return st, nil
}

func (a *App) Sell(ctx context.Context) error {
	id, err := GetID(a.reader, "Item id to sell", a.out)
	if err != nil {
		return err
	}

	var it models.Item
	err = a.withTimeout(ctx, func(ctx context.Context) error {
		it, err = a.inventory.Sell(ctx, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("item %d: %w", id, err)
	}
	fmt.Fprintf(a.out, "Sold one %s, %d left\n", it.Name, it.Quantity)
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	id, err := GetID(a.reader, "Item id to delete", a.out)
	if err != nil {
		return err
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete item %d?", id), a.out)
	if err != nil || !ok {
		return err
	}

	err = a.withTimeout(ctx, func(ctx context.Context) error {
		return a.inventory.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("item %d: %w", id, err)
	}
	fmt.Fprintf(a.out, "Deleted item %d\n", id)
	return nil
}

func (a *App) Share(ctx context.Context) error {
	id, err := GetID(a.reader, "Item id to share", a.out)
	if err != nil {
		return err
	}

	for i, name := range services.SupplierContacts {
		fmt.Fprintf(a.out, "%d) %s\n", i+1, name)
	}
	choice, err := GetSimpleText(a.reader, "Send to", a.out)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(choice)
	if err != nil {
		return fmt.Errorf("%w: %q", services.ErrUnknownContact, choice)
	}

	var text string
	err = a.withTimeout(ctx, func(ctx context.Context) error {
		text, err = a.inventory.Share(ctx, id, n-1)
		return err
	})
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, text)
	return nil
}

func (a *App) loadSettings(ctx context.Context) (services.SettingsState, error) {
	var st services.SettingsState
	err := a.withTimeout(ctx, func(ctx context.Context) error {
		var err error
		st, err = a.settings.Load(ctx)
		return err
	})
	return st, err
}

func (a *App) Settings(ctx context.Context) error {
	st, err := a.loadSettings(ctx)
	if err != nil {
		return err
	}

	d := st.Defaults
	fmt.Fprintf(a.out, "Supplier: %s\nEmail: %s\nPhone: %s\n", d.Supplier, d.Email, d.Phone)
	fmt.Fprintf(a.out, "use: %t\nhide: %t\nprohibit: %t\n", st.Toggles.Use, st.Toggles.Hide, st.Toggles.Prohibit)
	return nil
}

func (a *App) Defaults(ctx context.Context) error {
	st, err := a.loadSettings(ctx)
	if err != nil {
		return err
	}

	d := st.Defaults
	for _, f := range supplierFields(&d) {
		v, err := GetWithDefault(a.reader, f.label, *f.ptr, a.out)
		if err != nil {
			return err
		}
		*f.ptr = v
	}

	if !a.settings.Update(d).IsValid {
		return fmt.Errorf("email or phone: %w", editor.ErrValidationRejected)
	}

	if err := a.withTimeout(ctx, a.settings.SaveDefaults); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Defaults saved")
	return nil
}

func (a *App) Toggle(ctx context.Context, key string) error {
	if _, err := a.loadSettings(ctx); err != nil {
		return err
	}

	st, err := a.settings.Toggle(key)
	if err != nil {
		return err
	}
	if err := a.withTimeout(ctx, a.settings.SaveToggles); err != nil {
		return err
	}

	var v bool
	switch key {
	case services.KeyUse:
		v = st.Toggles.Use
	case services.KeyHide:
		v = st.Toggles.Hide
	case services.KeyProhibit:
		v = st.Toggles.Prohibit
	}
	fmt.Fprintf(a.out, "%s: %t\n", key, v)
	return nil
}
