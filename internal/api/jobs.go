package api

import (
	"context"
	"net/http"

	"github.com/lifedash/lifedash-go/internal/types"
)

// ListJobs retrieves every job application. Interview dates ride along
// on the job record; there is no separate interview resource, and the
// calendar never writes jobs back.
func ListJobs(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.Job, error) {
	var out []types.Job
	if err := getJSON(ctx, httpClient, resourceURL(baseURL, "jobs"), "list jobs", &out); err != nil {
		return nil, err
	}
	return out, nil
}
