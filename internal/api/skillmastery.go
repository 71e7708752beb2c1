package api

import (
	"context"
	"net/http"

	"github.com/lifedash/lifedash-go/internal/types"
)

// GetSkillMastery retrieves the whole skill-mastery document. Returns
// types.ErrNotFound when the document has never been provisioned.
func GetSkillMastery(ctx context.Context, httpClient *http.Client, baseURL string) (*types.SkillMastery, error) {
	var out types.SkillMastery
	if err := getJSON(ctx, httpClient, resourceURL(baseURL, "skillMastery"), "get skillMastery", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PutSkillMastery replaces the whole skill-mastery document and returns
// the stored copy. There is no partial update for milestones; callers
// must send the full document with only the intended change applied.
func PutSkillMastery(ctx context.Context, httpClient *http.Client, baseURL string, doc types.SkillMastery) (*types.SkillMastery, error) {
	var out types.SkillMastery
	if err := writeJSON(ctx, httpClient, http.MethodPut, resourceURL(baseURL, "skillMastery"), "put skillMastery", doc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
