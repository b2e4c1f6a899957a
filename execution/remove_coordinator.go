package execution

import (
	"fmt"

	"github.com/mohitkumar/streamhub/action"
	"github.com/mohitkumar/streamhub/cache"
	"github.com/mohitkumar/streamhub/model"
	"github.com/mohitkumar/streamhub/persistence"
)

// RemoveCoordinatorValidation rejects removing the last remaining coordinator
// of a group. Runs before the execution strategy, so a rejected request never
// touches the remove-follower mapper.
type RemoveCoordinatorValidation struct {
	groupDao persistence.GroupDao
}

var _ action.ValidationStrategy = new(RemoveCoordinatorValidation)

func NewRemoveCoordinatorValidation(groupDao persistence.GroupDao) *RemoveCoordinatorValidation {
	return &RemoveCoordinatorValidation{groupDao: groupDao}
}

func (v *RemoveCoordinatorValidation) Validate(ctx *action.ActionContext) error {
	req, ok := ctx.Params.(model.RemoveCoordinatorRequest)
	if !ok {
		return fmt.Errorf("remove coordinator expects a RemoveCoordinatorRequest, got %T", ctx.Params)
	}
	coordinatorIds, err := v.groupDao.CoordinatorIds(req.GroupId)
	if err != nil {
		return err
	}
	if len(coordinatorIds) <= 1 {
		return action.NewValidationError("coordinators", "a group must keep at least one coordinator")
	}
	return nil
}

// RemoveGroupCoordinatorExecution demotes a coordinator and drops their
// follower relationship with the group.
type RemoveGroupCoordinatorExecution struct {
	groupDao persistence.GroupDao
}

var _ action.TaskHandlerExecutionStrategy = new(RemoveGroupCoordinatorExecution)

func NewRemoveGroupCoordinatorExecution(groupDao persistence.GroupDao) *RemoveGroupCoordinatorExecution {
	return &RemoveGroupCoordinatorExecution{groupDao: groupDao}
}

func (ex *RemoveGroupCoordinatorExecution) Execute(ctx *action.TaskHandlerContext) (any, error) {
	req, ok := ctx.ActionContext().Params.(model.RemoveCoordinatorRequest)
	if !ok {
		return nil, fmt.Errorf("remove coordinator expects a RemoveCoordinatorRequest, got %T", ctx.ActionContext().Params)
	}

	if err := ex.groupDao.RemoveCoordinator(req.GroupId, req.PersonId); err != nil {
		return nil, err
	}
	if err := ex.groupDao.RemoveFollower(req.PersonId, req.GroupId); err != nil {
		return nil, err
	}

	ctx.Enqueue(model.ACTION_DELETE_CACHE_KEYS, keysParam([]string{
		cache.CoordinatorPersonIdsByGroupId(req.GroupId),
		cache.GroupById(req.GroupId),
	}))
	ctx.Enqueue(model.ACTION_DELETE_IDS_FROM_LISTS,
		keysAndIdsParam([]string{cache.FollowersByGroup(req.GroupId)}, []int64{req.PersonId}))

	return true, nil
}
