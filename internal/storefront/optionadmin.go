package storefront

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/cofund-lab/backend/internal/client"
)

var (
	ErrInvalidPrice       = errors.New("price must be a positive number")
	ErrBlankDescription   = errors.New("description must not be blank")
	ErrMutationInFlight   = errors.New("another change is still saving")
	ErrDeletionNotConfirm = errors.New("deletion was not confirmed")
)

// AdminMode tells the owner's panel what to render: the option list or a
// create/edit form.
type AdminMode string

const (
	ModeList AdminMode = "list"
	ModeForm AdminMode = "form"
)

// OptionForm is the raw text the owner typed. Parsing happens client-side so
// obviously bad input never produces a request.
type OptionForm struct {
	Price       string
	Description string
}

func (f OptionForm) parse() (price int64, description string, err error) {
	price, err = strconv.ParseInt(strings.TrimSpace(f.Price), 10, 64)
	if err != nil || price <= 0 {
		return 0, "", ErrInvalidPrice
	}

	description = strings.TrimSpace(f.Description)
	if description == "" {
		return 0, "", ErrBlankDescription
	}

	return price, description, nil
}

// OptionAdmin is the owner-only reward management panel. Every successful
// mutation invalidates the shared catalog instead of patching it directly, so
// the list the owner sees is always the service's answer.
type OptionAdmin struct {
	caller  client.StoreCaller
	catalog *RewardCatalog

	mode AdminMode
	// editing is zero when the form is creating a new option.
	editing int64
	busy    bool
}

func NewOptionAdmin(caller client.StoreCaller, catalog *RewardCatalog) *OptionAdmin {
	return &OptionAdmin{caller: caller, catalog: catalog, mode: ModeList}
}

func (a *OptionAdmin) Mode() AdminMode {
	return a.mode
}

func (a *OptionAdmin) Editing() int64 {
	return a.editing
}

// OpenCreate switches to an empty form.
func (a *OptionAdmin) OpenCreate() {
	a.mode = ModeForm
	a.editing = 0
}

// OpenEdit switches to a form prefilled from the given option.
func (a *OptionAdmin) OpenEdit(optionID int64) {
	a.mode = ModeForm
	a.editing = optionID
}

// Cancel abandons the form without touching anything remote.
func (a *OptionAdmin) Cancel() {
	a.mode = ModeList
	a.editing = 0
}

// Save validates the form and creates or updates depending on how the form
// was opened. The busy flag admits one mutation at a time; a double-click on
// save cannot produce two requests.
func (a *OptionAdmin) Save(ctx context.Context, projectID string, form OptionForm) error {
	if a.busy {
		return ErrMutationInFlight
	}

	price, description, err := form.parse()
	if err != nil {
		return err
	}

	a.busy = true
	defer func() { a.busy = false }()

	if a.editing == 0 {
		_, err = a.caller.CreateRewardOption(ctx, projectID, price, description)
	} else {
		err = a.caller.UpdateRewardOption(ctx, a.editing, price, description)
	}
	if err != nil {
		return err
	}

	a.mode = ModeList
	a.editing = 0
	a.catalog.Invalidate()
	return nil
}

// Delete removes an option after the confirm callback agrees. The callback is
// where the UI hangs its "are you sure" dialog.
func (a *OptionAdmin) Delete(ctx context.Context, optionID int64, confirm func() bool) error {
	if a.busy {
		return ErrMutationInFlight
	}

	if confirm == nil || !confirm() {
		return ErrDeletionNotConfirm
	}

	a.busy = true
	defer func() { a.busy = false }()

	if err := a.caller.DeleteRewardOption(ctx, optionID); err != nil {
		return err
	}

	a.catalog.Invalidate()
	return nil
}
