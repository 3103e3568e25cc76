package application

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/storefront/internal/pkg/logging"
	"github.com/Lexv0lk/storefront/internal/storefront/domain"
	"golang.org/x/sync/errgroup"
)

type GiftPage struct {
	Currency      string                `json:"currency"`
	Authenticated bool                  `json:"authenticated"`
	User          *domain.User          `json:"user"`
	Gift          WorkflowState         `json:"gift"`
	Notifications []domain.Notification `json:"notifications"`
}

type GiftPageCase struct {
	websites         domain.WebsiteService
	defaultWebsiteID string
	defaultCurrency  string
	logger           logging.Logger
}

func NewGiftPageCase(websites domain.WebsiteService, defaultWebsiteID, defaultCurrency string, logger logging.Logger) *GiftPageCase {
	if defaultCurrency == "" {
		defaultCurrency = domain.DefaultCurrency
	}

	return &GiftPageCase{
		websites:         websites,
		defaultWebsiteID: defaultWebsiteID,
		defaultCurrency:  defaultCurrency,
		logger:           logger,
	}
}

// LoadPage assembles the gift page. An unknown identity renders the page as logged out;
// a failing website lookup fails the page.
func (pc *GiftPageCase) LoadPage(ctx context.Context, session *GiftSession, websiteID string) (GiftPage, error) {
	if websiteID == "" {
		websiteID = pc.defaultWebsiteID
	}

	group, groupCtx := errgroup.WithContext(ctx)

	currency := pc.defaultCurrency
	group.Go(func() error {
		if websiteID == "" {
			return nil
		}

		website, err := pc.websites.GetWebsite(groupCtx, websiteID)
		if err != nil {
			return fmt.Errorf("failed to load website %q: %w", websiteID, err)
		}

		if website.Currency != "" {
			currency = website.Currency
		}

		return nil
	})

	group.Go(func() error {
		if err := session.Identity.Ensure(groupCtx); err != nil {
			pc.logger.Info("gift page rendered without identity", "error", err.Error())
		}

		return nil
	})

	if err := group.Wait(); err != nil {
		pc.logger.Error("failed to load gift page", "error", err.Error())
		return GiftPage{}, &domain.NetworkFailureError{Msg: domain.MsgGenericFailure, Err: err}
	}

	page := GiftPage{
		Currency:      currency,
		Gift:          session.Workflow.State(),
		Notifications: session.Notifications.Drain(),
	}

	if user, ok := session.Identity.Current(); ok {
		page.Authenticated = true
		page.User = &user
	}

	return page, nil
}
