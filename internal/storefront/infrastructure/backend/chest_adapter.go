package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Lexv0lk/storefront/internal/storefront/domain"
)

type ChestAdapter struct {
	client *Client
}

func NewChestAdapter(client *Client) *ChestAdapter {
	return &ChestAdapter{
		client: client,
	}
}

func (a *ChestAdapter) GetChestItems(ctx context.Context, userID string) ([]domain.ChestItem, error) {
	var items []domain.ChestItem

	if err := a.client.do(ctx, http.MethodGet, apiV1, "/chest/"+url.PathEscape(userID), nil, &items); err != nil {
		return nil, fmt.Errorf("failed to get chest items: %w", err)
	}

	return items, nil
}
