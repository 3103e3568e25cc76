package backend

import (
	"net/http"
	"testing"

	"github.com/Lexv0lk/storefront/internal/storefront/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebsiteAdapter_GetWebsite(t *testing.T) {
	t.Parallel()

	client, last := newBackend(t, http.StatusOK, `{"id":"site-9","name":"Craft","currency":"Elmas"}`)
	adapter := NewWebsiteAdapter(client)

	website, err := adapter.GetWebsite(t.Context(), "site-9")
	require.NoError(t, err)

	recorded := last()
	assert.Equal(t, "/v1/websites/site-9", recorded.Path)
	assert.Equal(t, "site-9", recorded.Header.Get(WebsiteIDHeader))
	assert.Equal(t, domain.Website{ID: "site-9", Name: "Craft", Currency: "Elmas"}, website)
}

func TestWebsiteAdapter_Failure(t *testing.T) {
	t.Parallel()

	client, _ := newBackend(t, http.StatusNotFound, `{"message":"Website not found"}`)
	adapter := NewWebsiteAdapter(client)

	_, err := adapter.GetWebsite(t.Context(), "missing")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "Website not found", statusErr.Message)
}
