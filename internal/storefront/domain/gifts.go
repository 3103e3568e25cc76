package domain

import "github.com/shopspring/decimal"

type GiftMode string

const (
	GiftModeBalance GiftMode = "balance"
	GiftModeItem    GiftMode = "item"
)

func (m GiftMode) Valid() bool {
	return m == GiftModeBalance || m == GiftModeItem
}

type BalanceGiftRequest struct {
	TargetUserID string
	Amount       decimal.Decimal
}

type ItemGiftRequest struct {
	TargetUserID string
	ChestItemID  string
}

type TransferResult struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message,omitempty"`
	ChestItem *ChestItem `json:"chestItem,omitempty"`
}
