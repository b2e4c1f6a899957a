package execution

import (
	"fmt"

	"github.com/mohitkumar/streamhub/action"
	"github.com/mohitkumar/streamhub/cache"
	"github.com/mohitkumar/streamhub/logger"
	"github.com/mohitkumar/streamhub/model"
	"github.com/mohitkumar/streamhub/persistence"
	"github.com/mohitkumar/streamhub/util"
	"go.uber.org/zap"
)

// DeleteGroupExecution deletes a group and everything attached to it from the
// primary store, then queues the follow-up tasks that clean up the search
// index and cache. Any store failure aborts the whole workflow before any
// task is queued; committed phases are not rolled back.
type DeleteGroupExecution struct {
	groupDao         persistence.GroupDao
	maxCacheListSize int
}

var _ action.TaskHandlerExecutionStrategy = new(DeleteGroupExecution)

func NewDeleteGroupExecution(groupDao persistence.GroupDao, maxCacheListSize int) *DeleteGroupExecution {
	return &DeleteGroupExecution{
		groupDao:         groupDao,
		maxCacheListSize: maxCacheListSize,
	}
}

func (ex *DeleteGroupExecution) Execute(ctx *action.TaskHandlerContext) (any, error) {
	groupId, ok := ctx.ActionContext().Params.(int64)
	if !ok {
		return nil, fmt.Errorf("delete group expects an int64 group id, got %T", ctx.ActionContext().Params)
	}

	group, err := ex.groupDao.FindById(groupId)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, action.NotFoundError{Entity: "group", Id: groupId}
	}

	deleteActivityResponse, err := ex.groupDao.DeleteActivity(groupId)
	if err != nil {
		return nil, err
	}
	followerIds, err := ex.groupDao.RemoveFollowers(groupId)
	if err != nil {
		return nil, err
	}
	deleteResponse, err := ex.groupDao.Delete(groupId)
	if err != nil {
		return nil, err
	}
	logger.Info("group deleted",
		zap.Int64("groupId", groupId),
		zap.Int("activities", len(deleteActivityResponse.ActivityIds)),
		zap.Int("followers", len(followerIds)))

	// reindex/removal tasks go first so the search collaborator can still
	// read from cache when it runs
	ctx.Enqueue(model.ACTION_DELETE_FROM_SEARCH_INDEX,
		searchIndexParam(string(model.ENTITY_TYPE_GROUP), []int64{deleteResponse.GroupId}))
	if len(deleteActivityResponse.ActivityIds) > 0 {
		ctx.Enqueue(model.ACTION_DELETE_FROM_SEARCH_INDEX,
			searchIndexParam(string(model.ENTITY_TYPE_ACTIVITY), deleteActivityResponse.ActivityIds))
	}

	ctx.Enqueue(model.ACTION_DELETE_CACHE_KEYS, keysParam(keysToPurge(deleteResponse)))

	for _, followerId := range followerIds {
		ctx.Enqueue(model.ACTION_DELETE_IDS_FROM_LISTS,
			keysAndIdsParam([]string{cache.GroupsFollowedByPerson(followerId)}, []int64{deleteResponse.GroupId}))
	}

	for personId, starredIds := range deleteActivityResponse.StarredActivityIdsByPersonId {
		ctx.Enqueue(model.ACTION_DELETE_IDS_FROM_LISTS,
			keysAndIdsParam([]string{cache.StarredByPersonId(personId)}, starredIds))
	}

	// no need to go beyond maxCacheListSize when scrubbing cached lists
	cachedActivityIds := util.Truncate(deleteActivityResponse.ActivityIds, ex.maxCacheListSize)
	if len(cachedActivityIds) > 0 {
		ctx.Enqueue(model.ACTION_DELETE_IDS_FROM_LISTS,
			keysAndIdsParam([]string{cache.KeyEveryoneActivityIds}, cachedActivityIds))
	}

	for _, activityId := range deleteActivityResponse.ActivityIds {
		ctx.Enqueue(model.ACTION_DELETE_CACHE_KEYS, keysParam([]string{cache.ActivityById(activityId)}))
	}
	for _, commentId := range deleteActivityResponse.CommentIds {
		ctx.Enqueue(model.ACTION_DELETE_CACHE_KEYS, keysParam([]string{cache.CommentById(commentId)}))
	}

	return true, nil
}

// keysToPurge builds the fixed key set invalidated by a group deletion. The
// short name and stream scope id come from the delete response; they are not
// fetchable once the row is gone.
func keysToPurge(resp *model.DeleteGroupResponse) []string {
	return []string{
		cache.GroupByShortName(resp.GroupShortName),
		cache.FollowersByGroup(resp.GroupId),
		cache.CoordinatorPersonIdsByGroupId(resp.GroupId),
		cache.GroupById(resp.GroupId),
		cache.EntityStreamByScopeId(resp.StreamScopeId),
		cache.StreamScopeIdByGroupShortName(resp.GroupShortName),
		cache.PopularHashTagsByStreamTypeAndShortName(model.SCOPE_TYPE_GROUP, resp.GroupShortName),
	}
}
