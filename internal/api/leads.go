package api

import (
	"context"
	"net/http"

	"github.com/lifedash/lifedash-go/internal/types"
)

// ListLeads retrieves every CRM lead.
func ListLeads(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.Lead, error) {
	var out []types.Lead
	if err := getJSON(ctx, httpClient, resourceURL(baseURL, "leads"), "list leads", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PatchLead updates a single lead's follow-up date and returns the
// updated record.
func PatchLead(ctx context.Context, httpClient *http.Client, baseURL, leadID string, patch types.LeadPatch) (*types.Lead, error) {
	if err := types.ValidateIDPresent(leadID, "leadId"); err != nil {
		return nil, err
	}
	var out types.Lead
	if err := writeJSON(ctx, httpClient, http.MethodPatch, recordURL(baseURL, "leads", leadID), "patch lead", patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
