package action

// ExecutionStrategy is a unit of business logic with no queuing capability.
type ExecutionStrategy interface {
	Execute(ctx *ActionContext) (any, error)
}

// TaskHandlerExecutionStrategy may additionally enqueue follow-up tasks on the
// context before returning.
type TaskHandlerExecutionStrategy interface {
	Execute(ctx *TaskHandlerContext) (any, error)
}

// ValidationStrategy checks caller-supplied arguments before execution.
type ValidationStrategy interface {
	Validate(ctx *ActionContext) error
}

type liftedStrategy struct {
	inner ExecutionStrategy
}

func (s liftedStrategy) Execute(ctx *TaskHandlerContext) (any, error) {
	return s.inner.Execute(ctx.ActionContext())
}

// Lift adapts a plain strategy to the task-handler contract. The lifted
// strategy never touches the queue.
func Lift(inner ExecutionStrategy) TaskHandlerExecutionStrategy {
	return liftedStrategy{inner: inner}
}

// TransformingStrategy composes an inner strategy's result through a
// transformer before returning. The inner strategy runs against the same
// context, so any tasks it queued are forwarded untouched.
type TransformingStrategy struct {
	inner     TaskHandlerExecutionStrategy
	transform func(any) (any, error)
}

func NewTransformingStrategy(inner TaskHandlerExecutionStrategy, transform func(any) (any, error)) *TransformingStrategy {
	return &TransformingStrategy{
		inner:     inner,
		transform: transform,
	}
}

func (s *TransformingStrategy) Execute(ctx *TaskHandlerContext) (any, error) {
	result, err := s.inner.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return s.transform(result)
}

// Action binds an optional validation strategy to an execution strategy under
// a stable name.
type Action struct {
	Name       string
	Validation ValidationStrategy
	Execution  TaskHandlerExecutionStrategy
}
