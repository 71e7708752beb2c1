package api

import (
	"context"
	"net/http"

	"github.com/lifedash/lifedash-go/internal/types"
)

// ListTasks retrieves every task across all boards.
func ListTasks(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.Task, error) {
	var out []types.Task
	if err := getJSON(ctx, httpClient, resourceURL(baseURL, "tasks"), "list tasks", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PatchTask updates a single task's due date and returns the updated record.
func PatchTask(ctx context.Context, httpClient *http.Client, baseURL, taskID string, patch types.TaskPatch) (*types.Task, error) {
	if err := types.ValidateIDPresent(taskID, "taskId"); err != nil {
		return nil, err
	}
	var out types.Task
	if err := writeJSON(ctx, httpClient, http.MethodPatch, recordURL(baseURL, "tasks", taskID), "patch task", patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
