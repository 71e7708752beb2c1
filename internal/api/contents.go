package api

import (
	"context"
	"net/http"

	"github.com/lifedash/lifedash-go/internal/types"
)

// ListContents retrieves every content-calendar entry.
func ListContents(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.Content, error) {
	var out []types.Content
	if err := getJSON(ctx, httpClient, resourceURL(baseURL, "contents"), "list contents", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PatchContent updates a single content entry's scheduled date and
// returns the updated record.
func PatchContent(ctx context.Context, httpClient *http.Client, baseURL, contentID string, patch types.ContentPatch) (*types.Content, error) {
	if err := types.ValidateIDPresent(contentID, "contentId"); err != nil {
		return nil, err
	}
	var out types.Content
	if err := writeJSON(ctx, httpClient, http.MethodPatch, recordURL(baseURL, "contents", contentID), "patch content", patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
