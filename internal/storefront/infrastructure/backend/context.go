package backend

import "context"

type websiteIDCtxKey struct{}

func ContextWithWebsiteID(ctx context.Context, websiteID string) context.Context {
	return context.WithValue(ctx, websiteIDCtxKey{}, websiteID)
}

func WebsiteIDFromContext(ctx context.Context) (string, bool) {
	websiteID, ok := ctx.Value(websiteIDCtxKey{}).(string)
	return websiteID, ok && websiteID != ""
}
