package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Lexv0lk/storefront/internal/pkg/jwt"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	apiV1 = "v1"
	apiV2 = "v2"

	WebsiteIDHeader = "x-website-id"

	tracerName      = "github.com/Lexv0lk/storefront/backend"
	maxResponseSize = 1 << 20
)

// StatusError is returned for every non-2xx backend response.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded with status %d", e.StatusCode)
	}

	return fmt.Sprintf("backend responded with status %d: %s", e.StatusCode, e.Message)
}

type errorBody struct {
	Message string `json:"message"`
}

// Client talks JSON to the versioned backend API on behalf of the caller whose bearer
// token and website id travel in the context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tracer:     otel.Tracer(tracerName),
	}
}

func (c *Client) do(ctx context.Context, method, version, path string, body, out any) error {
	ctx, span := c.tracer.Start(ctx, method+" /"+version+path, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	err := c.roundTrip(ctx, span, method, version, path, body, out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return err
}

func (c *Client) roundTrip(ctx context.Context, span trace.Span, method, version, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+version+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := jwt.TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if websiteID, ok := WebsiteIDFromContext(ctx); ok {
		req.Header.Set(WebsiteIDHeader, websiteID)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := &StatusError{StatusCode: resp.StatusCode}

		var eb errorBody
		if json.Unmarshal(payload, &eb) == nil {
			statusErr.Message = eb.Message
		}

		return statusErr
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// rejection reports whether err is a business refusal: a 4xx response, other than an
// authentication failure, that carries a user-facing message.
func rejection(err error) (string, bool) {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Message == "" {
		return "", false
	}

	if statusErr.StatusCode < http.StatusBadRequest ||
		statusErr.StatusCode >= http.StatusInternalServerError ||
		statusErr.StatusCode == http.StatusUnauthorized {
		return "", false
	}

	return statusErr.Message, true
}

// backendMessage returns the message a failed response carried, if any.
func backendMessage(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Message
	}

	return ""
}
