package service

import (
	"github.com/mohitkumar/streamhub/action"
	"github.com/mohitkumar/streamhub/cache"
	"github.com/mohitkumar/streamhub/execution"
	"github.com/mohitkumar/streamhub/hierarchy"
	"github.com/mohitkumar/streamhub/model"
	"github.com/mohitkumar/streamhub/persistence"
)

// ProfileActionService exposes the mutating profile operations as named
// actions run through the controller. One top-level execution per request;
// follow-up tasks are handed off only after the synchronous portion succeeds.
type ProfileActionService struct {
	controller *action.Controller

	deleteGroup        action.Action
	deleteOrganization action.Action
	setFollowing       action.Action
	removeCoordinator  action.Action
	getPerson          action.Action
}

func NewProfileActionService(controller *action.Controller, groupDao persistence.GroupDao,
	orgDao persistence.OrganizationDao, personDao persistence.PersonDao,
	cacheTier cache.Cache, maxCacheListSize int) *ProfileActionService {
	traverserBuilder := hierarchy.NewTraverserBuilder(orgDao)
	return &ProfileActionService{
		controller: controller,
		deleteGroup: action.Action{
			Name:      "deleteGroup",
			Execution: execution.NewDeleteGroupExecution(groupDao, maxCacheListSize),
		},
		deleteOrganization: action.Action{
			Name:      "deleteOrganization",
			Execution: execution.NewDeleteOrganizationExecution(orgDao, traverserBuilder),
		},
		setFollowing: action.Action{
			Name:      "setGroupFollowing",
			Execution: execution.NewSetGroupFollowingExecution(groupDao, cache.NewAddGroupFollowerMapper(cacheTier)),
		},
		removeCoordinator: action.Action{
			Name:       "removeGroupCoordinator",
			Validation: execution.NewRemoveCoordinatorValidation(groupDao),
			Execution:  execution.NewRemoveGroupCoordinatorExecution(groupDao),
		},
		getPerson: action.Action{
			Name:      "getPerson",
			Execution: action.Lift(execution.NewGetPersonExecution(personDao, cacheTier)),
		},
	}
}

func (s *ProfileActionService) DeleteGroup(principal action.Principal, groupId int64) (any, error) {
	ctx := action.NewActionContext(groupId, principal)
	return s.controller.Execute(ctx, s.deleteGroup)
}

func (s *ProfileActionService) DeleteOrganization(principal action.Principal, orgId int64) (any, error) {
	ctx := action.NewActionContext(orgId, principal)
	return s.controller.Execute(ctx, s.deleteOrganization)
}

func (s *ProfileActionService) SetGroupFollowing(principal action.Principal, req model.SetFollowingStatusRequest) (any, error) {
	ctx := action.NewActionContext(req, principal)
	return s.controller.Execute(ctx, s.setFollowing)
}

func (s *ProfileActionService) RemoveGroupCoordinator(principal action.Principal, req model.RemoveCoordinatorRequest) (any, error) {
	ctx := action.NewActionContext(req, principal)
	return s.controller.Execute(ctx, s.removeCoordinator)
}

func (s *ProfileActionService) GetPerson(principal action.Principal, personId int64) (any, error) {
	ctx := action.NewActionContext(personId, principal)
	return s.controller.Execute(ctx, s.getPerson)
}
