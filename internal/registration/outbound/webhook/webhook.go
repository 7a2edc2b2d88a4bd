// Package webhook delivers registration payloads to the n8n automation hooks.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ManecoGomes/busca-social/internal/pkg/instrument"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Client posts JSON payloads to a webhook URL. Deliveries are one-shot: no
// retry, per-request timeout, any non-2xx response is a failure.
type Client struct {
	http *http.Client
	ins  instrument.Instrumentation
}

// NewClient returns a Client with the given per-delivery timeout.
func NewClient(timeout time.Duration, ins instrument.Instrumentation) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		http: &http.Client{Timeout: timeout},
		ins:  ins,
	}
}

// Deliver posts payload to url and returns an error on transport failure or
// a non-2xx status.
func (c *Client) Deliver(ctx context.Context, url string, payload any) (err error) {
	ctx, span := c.ins.Tracer("registration.outbound.webhook").Start(ctx, "Deliver")
	span.SetAttributes(attribute.String("webhook.url", url))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}

	return nil
}
