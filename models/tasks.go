package models

import (
	"encoding/json"

	"github.com/pkg/errors"
)

type ReconcileTask struct {
	RunID       string `json:"run_id"`
	TriggeredBy string `json:"triggered_by"`
}

// ParseReconcileTask decodes a queued task payload. A task without a
// run id is rejected so outcomes are never attributed to an empty run.
func ParseReconcileTask(body []byte) (ReconcileTask, error) {
	var task ReconcileTask
	if err := json.Unmarshal(body, &task); err != nil {
		return ReconcileTask{}, errors.Wrap(err, "could not decode reconcile task")
	}
	if task.RunID == "" {
		return ReconcileTask{}, errors.New("reconcile task has no run id")
	}
	return task, nil
}
