package storefront

import (
	"context"
	"errors"
	"sync"

	"github.com/cofund-lab/backend/internal/client"
	"github.com/cofund-lab/backend/internal/model"
)

// WizardState is the single discriminator of the checkout flow. Submitting is
// its own state rather than a busy flag, so a render can never show the
// review form while a request is in flight.
type WizardState string

const (
	SelectingReward  WizardState = "selecting_reward"
	ReviewingPayment WizardState = "reviewing_payment"
	Submitting       WizardState = "submitting"
	Submitted        WizardState = "submitted"
)

var (
	ErrNoSelection      = errors.New("no reward selected")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrTermsNotAccepted = errors.New("all terms must be accepted")
	ErrWrongState       = errors.New("operation not allowed in this state")
)

// CheckoutWizard drives one backer's contribution from selection to receipt.
// The flow only moves forward: selection, review, submit. There is no back
// transition, a backer who changes their mind starts a new wizard.
type CheckoutWizard struct {
	caller client.StoreCaller

	// lifetime outlives every individual request; Close cancels it so a
	// response that lands after teardown is discarded.
	lifetime context.Context
	cancel   context.CancelFunc

	// onSubmitted runs once after a successful submit. The page wires it to
	// the refetches a new contribution invalidates (the project's collected
	// amount, the backer's contribution list) instead of reloading the page.
	onSubmitted func()

	mutex     sync.Mutex
	state     WizardState
	selection SelectedReward
	terms     map[string]bool
	submitErr error
	receipt   *model.Funding
}

func NewCheckoutWizard(caller client.StoreCaller, termNames []string) *CheckoutWizard {
	lifetime, cancel := context.WithCancel(context.Background())

	terms := make(map[string]bool, len(termNames))
	for _, name := range termNames {
		terms[name] = false
	}

	return &CheckoutWizard{
		caller:   caller,
		lifetime: lifetime,
		cancel:   cancel,
		state:    SelectingReward,
		terms:    terms,
	}
}

// OnSubmitted registers the hook run after a successful submit.
func (w *CheckoutWizard) OnSubmitted(hook func()) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.onSubmitted = hook
}

// Close tears the wizard down. Any in-flight submit is abandoned and its
// outcome discarded.
func (w *CheckoutWizard) Close() {
	w.cancel()
}

func (w *CheckoutWizard) State() WizardState {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.state
}

func (w *CheckoutWizard) Selection() SelectedReward {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.selection
}

// SubmitError returns the failure from the last submit attempt, cleared on
// the next attempt.
func (w *CheckoutWizard) SubmitError() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.submitErr
}

func (w *CheckoutWizard) Receipt() *model.Funding {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.receipt
}

// Select replaces the current selection. Picking an option clears a free
// amount and vice versa, the two are mutually exclusive by construction.
func (w *CheckoutWizard) Select(reward SelectedReward) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.state != SelectingReward {
		return ErrWrongState
	}

	w.selection = reward
	return nil
}

// Advance moves from selection to review. It refuses an empty selection and a
// non-positive free amount; a published option carries a positive price by
// the service's own validation, so it passes unconditionally.
func (w *CheckoutWizard) Advance() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.state != SelectingReward {
		return ErrWrongState
	}

	if w.selection == nil {
		return ErrNoSelection
	}

	if free, ok := w.selection.(FreeReward); ok && free.Price <= 0 {
		return ErrInvalidAmount
	}

	w.state = ReviewingPayment
	return nil
}

// AcceptTerm flips one agreement checkbox on the review step.
func (w *CheckoutWizard) AcceptTerm(name string, accepted bool) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.state != ReviewingPayment {
		return ErrWrongState
	}

	if _, ok := w.terms[name]; !ok {
		return errors.New("unknown term: " + name)
	}

	w.terms[name] = accepted
	return nil
}

func (w *CheckoutWizard) allTermsAccepted() bool {
	for _, accepted := range w.terms {
		if !accepted {
			return false
		}
	}
	return true
}

// Submit sends the contribution. It blocks until the service answers or the
// wizard is closed. On failure the wizard returns to review with the error
// retained, so the backer can retry without re-entering anything.
func (w *CheckoutWizard) Submit(ctx context.Context) error {
	w.mutex.Lock()
	if w.state != ReviewingPayment {
		w.mutex.Unlock()
		return ErrWrongState
	}

	if !w.allTermsAccepted() {
		w.mutex.Unlock()
		return ErrTermsNotAccepted
	}

	w.state = Submitting
	w.submitErr = nil
	request := w.selection.Request()
	w.mutex.Unlock()

	type outcome struct {
		funding *model.Funding
		err     error
	}

	done := make(chan outcome, 1)
	go func() {
		funding, err := w.caller.SubmitFunding(ctx, request)
		done <- outcome{funding: funding, err: err}
	}()

	select {
	case <-w.lifetime.Done():
		// Torn down mid-flight. The response, success or not, is dropped.
		return w.lifetime.Err()

	case result := <-done:
		w.mutex.Lock()

		if result.err != nil {
			w.state = ReviewingPayment
			w.submitErr = result.err
			w.mutex.Unlock()
			return result.err
		}

		w.state = Submitted
		w.receipt = result.funding
		hook := w.onSubmitted
		w.mutex.Unlock()

		if hook != nil {
			hook()
		}
		return nil
	}
}
