package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Lexv0lk/storefront/internal/storefront/domain"
)

type balanceGiftBody struct {
	TargetUserID string      `json:"targetUserId"`
	Amount       json.Number `json:"amount"`
}

type GiftAdapter struct {
	client *Client
}

func NewGiftAdapter(client *Client) *GiftAdapter {
	return &GiftAdapter{
		client: client,
	}
}

func (a *GiftAdapter) SendBalanceGift(ctx context.Context, senderID string, req domain.BalanceGiftRequest) (domain.TransferResult, error) {
	path := fmt.Sprintf("/users/%s/balance/send", url.PathEscape(senderID))
	body := balanceGiftBody{
		TargetUserID: req.TargetUserID,
		Amount:       json.Number(req.Amount.String()),
	}

	return a.send(ctx, apiV2, path, body)
}

func (a *GiftAdapter) SendChestItemGift(ctx context.Context, senderID string, req domain.ItemGiftRequest) (domain.TransferResult, error) {
	path := fmt.Sprintf("/chest/%s/gift/%s/%s",
		url.PathEscape(senderID),
		url.PathEscape(req.TargetUserID),
		url.PathEscape(req.ChestItemID),
	)

	return a.send(ctx, apiV1, path, struct{}{})
}

func (a *GiftAdapter) send(ctx context.Context, version, path string, body any) (domain.TransferResult, error) {
	var result domain.TransferResult

	err := a.client.do(ctx, http.MethodPost, version, path, body, &result)
	if err != nil {
		if message, ok := rejection(err); ok {
			return domain.TransferResult{Success: false, Message: message}, nil
		}

		return domain.TransferResult{}, &domain.NetworkFailureError{Msg: backendMessage(err), Err: err}
	}

	return result, nil
}
