package application

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/Lexv0lk/storefront/internal/pkg/logging"
	"github.com/Lexv0lk/storefront/internal/storefront/domain"
	"github.com/shopspring/decimal"
)

type SubmissionPhase string

const (
	PhaseIdle       SubmissionPhase = "idle"
	PhaseValidating SubmissionPhase = "validating"
	PhaseSubmitting SubmissionPhase = "submitting"
	PhaseSucceeded  SubmissionPhase = "succeeded"
	PhaseFailed     SubmissionPhase = "failed"
)

const maxAmountLength = 32

type submission struct {
	mode   domain.GiftMode
	sender domain.User
	target domain.User
	amount decimal.Decimal
	itemID string
}

type SubmissionCoordinator struct {
	mu       sync.Mutex
	gifts    domain.GiftService
	identity IdentityProvider
	resolver *RecipientResolver
	selector *ModeSelector
	loader   *InventoryLoader
	notifier domain.Notifier
	logger   logging.Logger

	phase       SubmissionPhase
	lastOutcome SubmissionPhase
}

func NewSubmissionCoordinator(
	gifts domain.GiftService,
	identity IdentityProvider,
	resolver *RecipientResolver,
	selector *ModeSelector,
	loader *InventoryLoader,
	notifier domain.Notifier,
	logger logging.Logger,
) *SubmissionCoordinator {
	return &SubmissionCoordinator{
		gifts:       gifts,
		identity:    identity,
		resolver:    resolver,
		selector:    selector,
		loader:      loader,
		notifier:    notifier,
		logger:      logger,
		phase:       PhaseIdle,
		lastOutcome: PhaseIdle,
	}
}

// Submit validates the current selections and sends exactly one gift request.
// A submission started while another one is running is refused.
func (sc *SubmissionCoordinator) Submit(ctx context.Context) (domain.TransferResult, error) {
	sc.mu.Lock()
	if sc.phase != PhaseIdle {
		sc.mu.Unlock()
		err := &domain.OperationInProgressError{Msg: domain.MsgInProgress}
		sc.notifier.Notify(domain.ErrorNotification(err.Msg))
		return domain.TransferResult{}, err
	}
	sc.phase = PhaseValidating
	sc.mu.Unlock()

	sub, err := sc.validate()
	if err != nil {
		return domain.TransferResult{}, sc.fail(err, err.Error())
	}

	sc.setPhase(PhaseSubmitting)

	var result domain.TransferResult
	switch sub.mode {
	case domain.GiftModeBalance:
		result, err = sc.gifts.SendBalanceGift(ctx, sub.sender.ID, domain.BalanceGiftRequest{
			TargetUserID: sub.target.ID,
			Amount:       sub.amount,
		})
	case domain.GiftModeItem:
		result, err = sc.gifts.SendChestItemGift(ctx, sub.sender.ID, domain.ItemGiftRequest{
			TargetUserID: sub.target.ID,
			ChestItemID:  sub.itemID,
		})
	}

	if err != nil {
		sc.logger.Error("failed to send gift", "mode", string(sub.mode), "to", sub.target.ID, "error", err.Error())
		return domain.TransferResult{}, sc.fail(asNetworkFailure(err), networkFailureMessage(err))
	}

	if !result.Success {
		msg := messageOr(result.Message, rejectedFallback(sub.mode))
		sc.logger.Warn("gift rejected by backend", "mode", string(sub.mode), "to", sub.target.ID, "message", result.Message)
		return result, sc.fail(&domain.TransferRejectedError{Msg: msg}, msg)
	}

	sc.succeed(ctx, sub, result)

	return result, nil
}

func (sc *SubmissionCoordinator) Phase() SubmissionPhase {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	return sc.phase
}

func (sc *SubmissionCoordinator) LastOutcome() SubmissionPhase {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	return sc.lastOutcome
}

func (sc *SubmissionCoordinator) validate() (submission, error) {
	sender, ok := sc.identity.Current()
	if !ok {
		return submission{}, &domain.NotAuthenticatedError{Msg: domain.MsgNotAuthenticated}
	}

	target, ok := sc.resolver.Recipient()
	if !ok {
		return submission{}, &domain.NoRecipientError{Msg: domain.MsgNoRecipient}
	}

	if target.ID == sender.ID {
		return submission{}, &domain.SelfTargetError{Msg: domain.MsgSelfTarget}
	}

	sub := submission{
		mode:   sc.selector.Mode(),
		sender: sender,
		target: target,
	}

	switch sub.mode {
	case domain.GiftModeBalance:
		amount, err := ParseAmount(sc.selector.Amount())
		if err != nil {
			return submission{}, err
		}
		sub.amount = amount
	case domain.GiftModeItem:
		item, ok := sc.selector.SelectedItem()
		if !ok {
			return submission{}, &domain.NoItemSelectedError{Msg: domain.MsgNoItemSelected}
		}
		sub.itemID = item.ID
	default:
		return submission{}, &domain.InvalidModeError{Msg: domain.MsgInvalidMode}
	}

	return sub, nil
}

func (sc *SubmissionCoordinator) succeed(ctx context.Context, sub submission, result domain.TransferResult) {
	sc.selector.ClearSelection(sub.mode)
	sc.resolver.ClearIfRecipient(sub.target.ID)

	sc.finish(PhaseSucceeded)
	sc.notifier.Notify(domain.SuccessNotification(messageOr(result.Message, sentFallback(sub.mode))))

	sc.logger.Info("gift sent", "mode", string(sub.mode), "from", sub.sender.ID, "to", sub.target.ID)

	switch sub.mode {
	case domain.GiftModeBalance:
		if err := sc.identity.Reload(ctx); err != nil {
			sc.logger.Warn("balance not refreshed after gift", "error", err.Error())
		}
	case domain.GiftModeItem:
		// failures are already reported to the user by the loader
		_ = sc.loader.Reload(ctx)
	}
}

func (sc *SubmissionCoordinator) fail(err error, message string) error {
	sc.finish(PhaseFailed)
	sc.notifier.Notify(domain.ErrorNotification(message))

	return err
}

func (sc *SubmissionCoordinator) setPhase(phase SubmissionPhase) {
	sc.mu.Lock()
	sc.phase = phase
	sc.mu.Unlock()
}

func (sc *SubmissionCoordinator) finish(outcome SubmissionPhase) {
	sc.mu.Lock()
	sc.lastOutcome = outcome
	sc.phase = PhaseIdle
	sc.mu.Unlock()
}

// ParseAmount accepts a strictly positive decimal number in plain notation.
// Exponents are refused since they expand to arbitrarily long digit strings.
func ParseAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) > maxAmountLength || strings.ContainsAny(trimmed, "eE") {
		return decimal.Decimal{}, &domain.InvalidAmountError{Msg: domain.MsgInvalidAmount}
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil || !amount.IsPositive() {
		return decimal.Decimal{}, &domain.InvalidAmountError{Msg: domain.MsgInvalidAmount}
	}

	return amount, nil
}

func asNetworkFailure(err error) error {
	var nf *domain.NetworkFailureError
	if errors.As(err, &nf) {
		return nf
	}

	return &domain.NetworkFailureError{Err: err}
}

func networkFailureMessage(err error) string {
	var nf *domain.NetworkFailureError
	if errors.As(err, &nf) {
		return messageOr(nf.Msg, domain.MsgGenericFailure)
	}

	return domain.MsgGenericFailure
}

func messageOr(message, fallback string) string {
	if strings.TrimSpace(message) == "" {
		return fallback
	}

	return message
}

func sentFallback(mode domain.GiftMode) string {
	if mode == domain.GiftModeItem {
		return domain.MsgItemGiftSent
	}

	return domain.MsgBalanceGiftSent
}

func rejectedFallback(mode domain.GiftMode) string {
	if mode == domain.GiftModeItem {
		return domain.MsgItemGiftRejected
	}

	return domain.MsgBalanceGiftRejected
}
