package backend

import (
	"net/http"
	"testing"

	"github.com/Lexv0lk/storefront/internal/storefront/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGiftAdapter_SendBalanceGift(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		status int
		body   string

		expectedErr     error
		expectedMessage string
		expectedResult  domain.TransferResult
	}

	tests := []testCase{
		{
			name:           "accepted",
			status:         http.StatusOK,
			body:           `{"success":true,"message":"OK"}`,
			expectedResult: domain.TransferResult{Success: true, Message: "OK"},
		},
		{
			name:           "refused in body",
			status:         http.StatusOK,
			body:           `{"success":false,"message":"Yetersiz bakiye"}`,
			expectedResult: domain.TransferResult{Success: false, Message: "Yetersiz bakiye"},
		},
		{
			name:           "refused with error status",
			status:         http.StatusBadRequest,
			body:           `{"message":"Yetersiz bakiye"}`,
			expectedResult: domain.TransferResult{Success: false, Message: "Yetersiz bakiye"},
		},
		{
			name:           "refused as conflict",
			status:         http.StatusConflict,
			body:           `{"message":"Alıcı hediyeleri kabul etmiyor"}`,
			expectedResult: domain.TransferResult{Success: false, Message: "Alıcı hediyeleri kabul etmiyor"},
		},
		{
			name:        "server failure without message",
			status:      http.StatusInternalServerError,
			body:        `oops`,
			expectedErr: &domain.NetworkFailureError{},
		},
		{
			name:            "server failure with message",
			status:          http.StatusInternalServerError,
			body:            `{"message":"Internal server error"}`,
			expectedErr:     &domain.NetworkFailureError{},
			expectedMessage: "Internal server error",
		},
		{
			name:            "unauthorized with message",
			status:          http.StatusUnauthorized,
			body:            `{"message":"Unauthorized"}`,
			expectedErr:     &domain.NetworkFailureError{},
			expectedMessage: "Unauthorized",
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, last := newBackend(t, tt.status, tt.body)
			adapter := NewGiftAdapter(client)

			result, err := adapter.SendBalanceGift(authorized(t.Context()), "u2", domain.BalanceGiftRequest{
				TargetUserID: "u1",
				Amount:       decimal.RequireFromString("12.50"),
			})

			recorded := last()
			assert.Equal(t, http.MethodPost, recorded.Method)
			assert.Equal(t, "/v2/users/u2/balance/send", recorded.Path)
			assert.JSONEq(t, `{"targetUserId":"u1","amount":12.5}`, recorded.Body)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Equal(t, domain.TransferResult{}, result)

				var networkErr *domain.NetworkFailureError
				require.ErrorAs(t, err, &networkErr)
				assert.Equal(t, tt.expectedMessage, networkErr.Msg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedResult, result)
		})
	}
}

func TestGiftAdapter_SendChestItemGift(t *testing.T) {
	t.Parallel()

	client, last := newBackend(t, http.StatusOK, `{"success":true,"message":"Gönderildi","chestItem":{"id":"it1","name":"Diamond Sword"}}`)
	adapter := NewGiftAdapter(client)

	result, err := adapter.SendChestItemGift(authorized(t.Context()), "u2", domain.ItemGiftRequest{
		TargetUserID: "u1",
		ChestItemID:  "it1",
	})
	require.NoError(t, err)

	recorded := last()
	assert.Equal(t, http.MethodPost, recorded.Method)
	assert.Equal(t, "/v1/chest/u2/gift/u1/it1", recorded.Path)
	assert.JSONEq(t, `{}`, recorded.Body)

	assert.True(t, result.Success)
	assert.Equal(t, "Gönderildi", result.Message)
	require.NotNil(t, result.ChestItem)
	assert.Equal(t, "it1", result.ChestItem.ID)
	assert.Equal(t, "Diamond Sword", result.ChestItem.Attributes["name"])
}

func TestGiftAdapter_PathEscaping(t *testing.T) {
	t.Parallel()

	client, last := newBackend(t, http.StatusOK, `{"success":true}`)
	adapter := NewGiftAdapter(client)

	_, err := adapter.SendChestItemGift(t.Context(), "u 2", domain.ItemGiftRequest{TargetUserID: "a/b", ChestItemID: "it1"})
	require.NoError(t, err)

	assert.Equal(t, "/v1/chest/u%202/gift/a%2Fb/it1", last().Path)
}
