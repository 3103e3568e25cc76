package domain

import (
	"context"
)

//go:generate mockgen -destination=../../../gen/mocks/storefront/services_mock.go -package=mocks . GiftService,UserService,ChestService,WebsiteService,Notifier

type GiftService interface {
	SendBalanceGift(ctx context.Context, senderID string, req BalanceGiftRequest) (TransferResult, error)
	SendChestItemGift(ctx context.Context, senderID string, req ItemGiftRequest) (TransferResult, error)
}

type UserService interface {
	GetUserByID(ctx context.Context, idOrUsername string) (User, error)
	GetCurrentUser(ctx context.Context) (User, error)
}

type ChestService interface {
	GetChestItems(ctx context.Context, userID string) ([]ChestItem, error)
}

type WebsiteService interface {
	GetWebsite(ctx context.Context, websiteID string) (Website, error)
}

type Notifier interface {
	Notify(notification Notification)
}
