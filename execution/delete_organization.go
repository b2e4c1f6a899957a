package execution

import (
	"fmt"

	"github.com/mohitkumar/streamhub/action"
	"github.com/mohitkumar/streamhub/cache"
	"github.com/mohitkumar/streamhub/hierarchy"
	"github.com/mohitkumar/streamhub/logger"
	"github.com/mohitkumar/streamhub/model"
	"github.com/mohitkumar/streamhub/persistence"
	"go.uber.org/zap"
)

// DeleteOrganizationExecution deletes an organization that has no child
// organizations or groups left underneath it. People reporting to the
// organization are moved to its parent, hierarchy statistics are recomputed
// for the remaining branch, and follow-up tasks propagate the consequences to
// the search index and cache.
type DeleteOrganizationExecution struct {
	orgDao persistence.OrganizationDao
	// shared across requests, so traversers must be built fresh per run
	traverserBuilder *hierarchy.TraverserBuilder
}

var _ action.TaskHandlerExecutionStrategy = new(DeleteOrganizationExecution)

func NewDeleteOrganizationExecution(orgDao persistence.OrganizationDao, traverserBuilder *hierarchy.TraverserBuilder) *DeleteOrganizationExecution {
	return &DeleteOrganizationExecution{
		orgDao:           orgDao,
		traverserBuilder: traverserBuilder,
	}
}

func (ex *DeleteOrganizationExecution) Execute(ctx *action.TaskHandlerContext) (any, error) {
	orgId, ok := ctx.ActionContext().Params.(int64)
	if !ok {
		return nil, fmt.Errorf("delete organization expects an int64 organization id, got %T", ctx.ActionContext().Params)
	}

	org, err := ex.orgDao.FindById(orgId)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, action.NotFoundError{Entity: "organization", Id: orgId}
	}
	parent, err := ex.orgDao.FindById(org.ParentOrganizationId)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, fmt.Errorf("parent organization %d of organization %d not found", org.ParentOrganizationId, orgId)
	}

	moveResponse, err := ex.orgDao.MovePeople(model.MoveOrganizationPeopleRequest{
		SourceShortName:      org.ShortName,
		DestinationShortName: parent.ShortName,
	})
	if err != nil {
		return nil, err
	}
	relatedPersonIds, err := ex.orgDao.RelatedPersonIds(orgId)
	if err != nil {
		return nil, err
	}

	deleteResponse, err := ex.orgDao.Delete(orgId)
	if err != nil {
		return nil, err
	}

	// recompute statistics for the branch the organization was removed from
	traverser := ex.traverserBuilder.Build()
	err = traverser.Traverse(model.OrganizationNode{Id: parent.Id, ParentId: parent.ParentOrganizationId})
	if err != nil {
		return nil, err
	}
	if err := ex.orgDao.UpdateStatistics(traverser.OrganizationIds()); err != nil {
		return nil, err
	}

	logger.Info("organization deleted",
		zap.Int64("organizationId", orgId),
		zap.Int("movedPeople", len(moveResponse.MovedPersonIds)),
		zap.Int("movedActivities", len(moveResponse.MovedActivityIds)))

	for _, personId := range moveResponse.MovedPersonIds {
		ctx.Enqueue(model.ACTION_INDEX_PERSON, idParam(personId))
	}
	ctx.Enqueue(model.ACTION_INDEX_ORGANIZATION, idParam(parent.Id))
	for _, activityId := range moveResponse.MovedActivityIds {
		ctx.Enqueue(model.ACTION_INDEX_ACTIVITY, idParam(activityId))
	}
	ctx.Enqueue(model.ACTION_DELETE_FROM_SEARCH_INDEX,
		searchIndexParam(string(model.ENTITY_TYPE_ORGANIZATION), []int64{deleteResponse.OrganizationId}))

	// the cache purge goes last so the reindex tasks above can still read
	// the soon-to-be-stale entries
	keys := ex.keysToPurge(deleteResponse, parent, moveResponse.MovedPersonIds, relatedPersonIds, traverser.OrganizationIds())
	ctx.Enqueue(model.ACTION_DELETE_CACHE_KEYS, keysParam(keys))

	return parent.ShortName, nil
}

func (ex *DeleteOrganizationExecution) keysToPurge(resp *model.DeleteOrganizationResponse, parent *model.Organization,
	movedPersonIds []int64, relatedPersonIds []int64, traversedOrgIds []int64) []string {
	keys := make([]string, 0)
	seen := make(map[string]struct{})
	add := func(key string) {
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	// re-cache both moved people and people that had the org as related org
	for _, personId := range movedPersonIds {
		add(cache.PersonById(personId))
	}
	for _, personId := range relatedPersonIds {
		add(cache.PersonById(personId))
	}

	// every org on the branch the traversal covered
	for _, traversedId := range traversedOrgIds {
		add(cache.OrganizationById(traversedId))
		add(cache.OrganizationRecursiveChildren(traversedId))
	}
	add(cache.OrganizationByShortName(parent.ShortName))

	// the deleted org itself
	add(cache.OrganizationById(resp.OrganizationId))
	add(cache.OrganizationByShortName(resp.ShortName))
	add(cache.OrganizationRecursiveChildren(resp.OrganizationId))
	add(cache.EntityStreamByScopeId(resp.StreamScopeId))
	add(cache.KeyOrganizationTreeDto)

	return keys
}
