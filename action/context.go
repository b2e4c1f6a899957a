package action

import (
	"github.com/mohitkumar/streamhub/model"
)

// Principal is the authenticated identity on behalf of which an action runs.
type Principal struct {
	Id        int64
	AccountId string
}

// ActionContext carries one request's parameters, acting identity and
// transient key/value state. Created per inbound request, discarded after the
// response is produced.
type ActionContext struct {
	Params    any
	Principal Principal
	state     map[string]any
}

func NewActionContext(params any, principal Principal) *ActionContext {
	return &ActionContext{
		Params:    params,
		Principal: principal,
		state:     make(map[string]any),
	}
}

func (c *ActionContext) Put(key string, value any) {
	c.state[key] = value
}

func (c *ActionContext) Get(key string) (any, bool) {
	v, ok := c.state[key]
	return v, ok
}

// TaskHandlerContext wraps an ActionContext and owns the ordered follow-up
// task queue. The queue is append-only; insertion order is preserved for
// dispatch and nothing is deduplicated.
type TaskHandlerContext struct {
	actionContext *ActionContext
	requests      []model.UserActionRequest
}

func NewTaskHandlerContext(actionContext *ActionContext) *TaskHandlerContext {
	return &TaskHandlerContext{
		actionContext: actionContext,
		requests:      make([]model.UserActionRequest, 0),
	}
}

func (c *TaskHandlerContext) ActionContext() *ActionContext {
	return c.actionContext
}

func (c *TaskHandlerContext) Enqueue(actionKey string, params map[string]any) {
	c.requests = append(c.requests, model.NewUserActionRequest(actionKey, params))
}

func (c *TaskHandlerContext) EnqueueRequest(req model.UserActionRequest) {
	c.requests = append(c.requests, req)
}

// Requests exposes the queue to the framework after the strategy completes.
func (c *TaskHandlerContext) Requests() []model.UserActionRequest {
	return c.requests
}
