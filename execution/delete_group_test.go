package execution

import (
	"errors"
	"testing"

	"github.com/mohitkumar/streamhub/action"
	"github.com/mohitkumar/streamhub/model"
	"github.com/stretchr/testify/require"
)

func TestDeleteGroupPurgesExactKeySet(t *testing.T) {
	dao := newFakeGroupDao()
	dao.groups[1] = model.Group{Id: 1, ShortName: "shortname", StreamScopeId: 3}
	dao.deleteResp = &model.DeleteGroupResponse{GroupId: 1, GroupShortName: "shortname", StreamScopeId: 3}

	ex := NewDeleteGroupExecution(dao, 100)
	ctx := action.NewTaskHandlerContext(action.NewActionContext(int64(1), action.Principal{}))

	_, err := ex.Execute(ctx)
	require.NoError(t, err)

	var purgeTask *model.UserActionRequest
	for i, req := range ctx.Requests() {
		if req.ActionKey == model.ACTION_DELETE_CACHE_KEYS {
			purgeTask = &ctx.Requests()[i]
			break
		}
	}
	require.NotNil(t, purgeTask)
	keys := purgeTask.Params["keys"].([]string)
	require.ElementsMatch(t, []string{
		"GroupByShortName:shortname",
		"FollowersByGroup:1",
		"CoordinatorPersonIdsByGroupId:1",
		"GroupById:1",
		"EntityStreamByScopeId:3",
		"StreamScopeIdByGroupShortName:shortname",
		"PopularHashTagsByStreamTypeAndShortName:GROUP-shortname",
	}, keys)
	require.Len(t, keys, 7)
}

func TestDeleteGroupReindexTasksPrecedeCachePurge(t *testing.T) {
	dao := newFakeGroupDao()
	dao.groups[1] = model.Group{Id: 1, ShortName: "shortname", StreamScopeId: 3}
	dao.activityResp = &model.BulkActivityDeleteResponse{
		ActivityIds:                  []int64{10, 11},
		CommentIds:                   []int64{20},
		StarredActivityIdsByPersonId: map[int64][]int64{5: {10}},
	}
	dao.followers[1] = []int64{7}
	dao.deleteResp = &model.DeleteGroupResponse{GroupId: 1, GroupShortName: "shortname", StreamScopeId: 3}

	ex := NewDeleteGroupExecution(dao, 100)
	ctx := action.NewTaskHandlerContext(action.NewActionContext(int64(1), action.Principal{}))

	_, err := ex.Execute(ctx)
	require.NoError(t, err)

	requests := ctx.Requests()
	firstPurge := -1
	lastIndexRemoval := -1
	for i, req := range requests {
		switch req.ActionKey {
		case model.ACTION_DELETE_CACHE_KEYS:
			if firstPurge == -1 {
				firstPurge = i
			}
		case model.ACTION_DELETE_FROM_SEARCH_INDEX:
			lastIndexRemoval = i
		}
	}
	require.NotEqual(t, -1, firstPurge)
	require.NotEqual(t, -1, lastIndexRemoval)
	require.Less(t, lastIndexRemoval, firstPurge)
}

func TestDeleteGroupNotFound(t *testing.T) {
	dao := newFakeGroupDao()
	ex := NewDeleteGroupExecution(dao, 100)
	ctx := action.NewTaskHandlerContext(action.NewActionContext(int64(42), action.Principal{}))

	_, err := ex.Execute(ctx)
	var notFound action.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, int64(42), notFound.Id)
	require.Empty(t, ctx.Requests())
}

func TestDeleteGroupAbortsBeforeQueuingOnStoreFailure(t *testing.T) {
	dao := newFakeGroupDao()
	dao.groups[1] = model.Group{Id: 1, ShortName: "shortname", StreamScopeId: 3}
	dao.activityErr = errors.New("activity delete failed")

	ex := NewDeleteGroupExecution(dao, 100)
	ctx := action.NewTaskHandlerContext(action.NewActionContext(int64(1), action.Principal{}))

	_, err := ex.Execute(ctx)
	require.Error(t, err)
	require.Empty(t, ctx.Requests())
}

func TestDeleteGroupCapsCachedActivityListWork(t *testing.T) {
	dao := newFakeGroupDao()
	dao.groups[1] = model.Group{Id: 1, ShortName: "shortname", StreamScopeId: 3}
	dao.activityResp = &model.BulkActivityDeleteResponse{
		ActivityIds:                  []int64{10, 11, 12, 13},
		StarredActivityIdsByPersonId: map[int64][]int64{},
	}
	dao.deleteResp = &model.DeleteGroupResponse{GroupId: 1, GroupShortName: "shortname", StreamScopeId: 3}

	ex := NewDeleteGroupExecution(dao, 2)
	ctx := action.NewTaskHandlerContext(action.NewActionContext(int64(1), action.Principal{}))

	_, err := ex.Execute(ctx)
	require.NoError(t, err)

	for _, req := range ctx.Requests() {
		if req.ActionKey != model.ACTION_DELETE_IDS_FROM_LISTS {
			continue
		}
		keys := req.Params["keys"].([]string)
		if keys[0] == "EveryoneActivityIds" {
			require.Len(t, req.Params["ids"].([]int64), 2)
			return
		}
	}
	t.Fatal("no everyone-stream cleanup task queued")
}
