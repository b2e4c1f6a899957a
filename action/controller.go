package action

import (
	"errors"

	"github.com/mohitkumar/streamhub/logger"
	"github.com/mohitkumar/streamhub/model"
	"go.uber.org/zap"
)

// TaskSubmitter hands a follow-up task descriptor to the async task runner.
// At-least-once delivery is assumed downstream.
type TaskSubmitter interface {
	Submit(req model.UserActionRequest) error
}

// Controller runs an action: validation first, then execution, then hand-off
// of every queued follow-up task in enqueue order. If validation or execution
// fails nothing is handed off.
type Controller struct {
	submitter TaskSubmitter
}

func NewController(submitter TaskSubmitter) *Controller {
	return &Controller{submitter: submitter}
}

func (c *Controller) Execute(ctx *ActionContext, act Action) (any, error) {
	if act.Validation != nil {
		if err := act.Validation.Validate(ctx); err != nil {
			logger.Warn("validation failed", zap.String("action", act.Name), zap.Error(err))
			return nil, classify(err)
		}
	}
	taskCtx := NewTaskHandlerContext(ctx)
	result, err := act.Execution.Execute(taskCtx)
	if err != nil {
		logger.Error("error in executing action", zap.String("action", act.Name), zap.Error(err))
		return nil, classify(err)
	}
	for _, req := range taskCtx.Requests() {
		if err := c.submitter.Submit(req); err != nil {
			// the synchronous portion already committed; a failed hand-off is
			// logged and skipped, cache entries expire on their own
			logger.Error("error submitting follow-up task",
				zap.String("action", act.Name),
				zap.String("actionKey", req.ActionKey),
				zap.Error(err))
		}
	}
	return result, nil
}

func classify(err error) error {
	var notFound NotFoundError
	var validation ValidationError
	var execution ExecutionError
	switch {
	case errors.As(err, &notFound), errors.As(err, &validation), errors.As(err, &execution):
		return err
	default:
		return ExecutionError{Cause: err}
	}
}
