package api

import (
	"context"
	stderrors "errors"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/cloudpebble/cptui/internal/errors"
)

// PollTask polls a background task until it succeeds, fails, or the poll
// timeout elapses. onState, if non-nil, sees every intermediate state.
// A FAILURE state is returned as a KindTask error carrying the task result.
func (c *Client) PollTask(ctx context.Context, taskID string, onState func(TaskState)) (TaskState, error) {
	const op = errors.Op("api.PollTask")

	if taskID == "" {
		return TaskState{}, errors.E(op, errors.KindInvalid, "missing task id")
	}

	pollCtx, cancel := context.WithTimeout(ctx, c.pollTimeout)
	defer cancel()

	timedOut := func() bool {
		return ctx.Err() == nil && stderrors.Is(pollCtx.Err(), context.DeadlineExceeded)
	}

	limiter := rate.NewLimiter(rate.Every(c.pollInterval), 1)
	for attempt := 1; ; attempt++ {
		// Wait fails early when the next token lands past the deadline.
		if err := limiter.Wait(pollCtx); err != nil {
			if ctx.Err() == nil {
				return TaskState{}, errors.TaskTimeout(taskID)
			}
			return TaskState{}, errors.E(op, errors.KindCancelled, err)
		}

		var resp struct {
			State TaskState `json:"state"`
		}
		if err := c.get(pollCtx, op, "/ide/task/"+url.PathEscape(taskID), &resp); err != nil {
			if timedOut() {
				return TaskState{}, errors.TaskTimeout(taskID)
			}
			return TaskState{}, err
		}

		c.log.Debug("task state", "task", taskID, "status", resp.State.Status, "attempt", attempt)
		if onState != nil {
			onState(resp.State)
		}

		switch resp.State.Status {
		case TaskSuccess:
			return resp.State, nil
		case TaskFailure:
			return resp.State, errors.TaskFailed(taskID, resp.State.ResultString())
		}
	}
}
