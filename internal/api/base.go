package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lifedash/lifedash-go/internal/httperr"
	"github.com/lifedash/lifedash-go/internal/types"
)

// getJSON issues a GET and decodes the 200 response into out.
// Transient-failure retries happen underneath, in the engine's HTTP
// transport; by the time a response reaches this layer it is final.
func getJSON(ctx context.Context, httpClient *http.Client, url, op string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return types.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return httperr.FromStatus(op, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// writeJSON issues a mutation (PATCH or PUT) with a JSON body and decodes
// the updated record from the 200 response. Mutations are never retried.
func writeJSON(ctx context.Context, httpClient *http.Client, method, url, op string, payload, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return types.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return httperr.FromStatus(op, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func resourceURL(baseURL, resource string) string {
	return fmt.Sprintf("%s/api/%s", baseURL, resource)
}

func recordURL(baseURL, resource, id string) string {
	return fmt.Sprintf("%s/api/%s/%s", baseURL, resource, id)
}
