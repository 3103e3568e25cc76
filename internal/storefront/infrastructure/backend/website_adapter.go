package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Lexv0lk/storefront/internal/storefront/domain"
)

type WebsiteAdapter struct {
	client *Client
}

func NewWebsiteAdapter(client *Client) *WebsiteAdapter {
	return &WebsiteAdapter{
		client: client,
	}
}

func (a *WebsiteAdapter) GetWebsite(ctx context.Context, websiteID string) (domain.Website, error) {
	var website domain.Website

	ctx = ContextWithWebsiteID(ctx, websiteID)
	if err := a.client.do(ctx, http.MethodGet, apiV1, "/websites/"+url.PathEscape(websiteID), nil, &website); err != nil {
		return domain.Website{}, fmt.Errorf("failed to get website: %w", err)
	}

	return website, nil
}
