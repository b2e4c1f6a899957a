package execution

import (
	"github.com/mohitkumar/streamhub/model"
	"github.com/mohitkumar/streamhub/persistence"
)

type fakeGroupDao struct {
	groups              map[int64]model.Group
	followers           map[int64][]int64
	coordinators        map[int64][]int64
	activityResp        *model.BulkActivityDeleteResponse
	deleteResp          *model.DeleteGroupResponse
	deleteErr           error
	activityErr         error
	removeFollErr       error
	removedFollowers    [][2]int64
	removedCoordinators [][2]int64
}

var _ persistence.GroupDao = new(fakeGroupDao)

func newFakeGroupDao() *fakeGroupDao {
	return &fakeGroupDao{
		groups:       make(map[int64]model.Group),
		followers:    make(map[int64][]int64),
		coordinators: make(map[int64][]int64),
	}
}

func (f *fakeGroupDao) Save(group model.Group) error {
	f.groups[group.Id] = group
	return nil
}

func (f *fakeGroupDao) FindById(id int64) (*model.Group, error) {
	g, ok := f.groups[id]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (f *fakeGroupDao) FollowerIds(groupId int64) ([]int64, error) {
	return f.followers[groupId], nil
}

func (f *fakeGroupDao) CoordinatorIds(groupId int64) ([]int64, error) {
	return f.coordinators[groupId], nil
}

func (f *fakeGroupDao) AddFollower(followerId int64, groupId int64) error {
	f.followers[groupId] = append(f.followers[groupId], followerId)
	return nil
}

func (f *fakeGroupDao) RemoveFollower(followerId int64, groupId int64) error {
	if f.removeFollErr != nil {
		return f.removeFollErr
	}
	f.removedFollowers = append(f.removedFollowers, [2]int64{followerId, groupId})
	kept := make([]int64, 0)
	for _, id := range f.followers[groupId] {
		if id != followerId {
			kept = append(kept, id)
		}
	}
	f.followers[groupId] = kept
	return nil
}

func (f *fakeGroupDao) RemoveCoordinator(groupId int64, personId int64) error {
	f.removedCoordinators = append(f.removedCoordinators, [2]int64{groupId, personId})
	kept := make([]int64, 0)
	for _, id := range f.coordinators[groupId] {
		if id != personId {
			kept = append(kept, id)
		}
	}
	f.coordinators[groupId] = kept
	return nil
}

func (f *fakeGroupDao) DeleteActivity(groupId int64) (*model.BulkActivityDeleteResponse, error) {
	if f.activityErr != nil {
		return nil, f.activityErr
	}
	if f.activityResp != nil {
		return f.activityResp, nil
	}
	return &model.BulkActivityDeleteResponse{
		StarredActivityIdsByPersonId: map[int64][]int64{},
	}, nil
}

func (f *fakeGroupDao) RemoveFollowers(groupId int64) ([]int64, error) {
	ids := f.followers[groupId]
	delete(f.followers, groupId)
	return ids, nil
}

func (f *fakeGroupDao) Delete(groupId int64) (*model.DeleteGroupResponse, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	delete(f.groups, groupId)
	return f.deleteResp, nil
}

type fakeOrganizationDao struct {
	orgs             map[int64]model.Organization
	children         map[int64][]int64
	moveResp         *model.MoveOrganizationPeopleResponse
	relatedPersonIds []int64
	deleteResp       *model.DeleteOrganizationResponse
	moveErr          error
	statsOrgIds      []int64
}

var _ persistence.OrganizationDao = new(fakeOrganizationDao)

func newFakeOrganizationDao() *fakeOrganizationDao {
	return &fakeOrganizationDao{
		orgs:     make(map[int64]model.Organization),
		children: make(map[int64][]int64),
	}
}

func (f *fakeOrganizationDao) Save(org model.Organization) error {
	f.orgs[org.Id] = org
	return nil
}

func (f *fakeOrganizationDao) FindById(id int64) (*model.Organization, error) {
	o, ok := f.orgs[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (f *fakeOrganizationDao) MovePeople(req model.MoveOrganizationPeopleRequest) (*model.MoveOrganizationPeopleResponse, error) {
	if f.moveErr != nil {
		return nil, f.moveErr
	}
	return f.moveResp, nil
}

func (f *fakeOrganizationDao) RelatedPersonIds(orgId int64) ([]int64, error) {
	return f.relatedPersonIds, nil
}

func (f *fakeOrganizationDao) Delete(orgId int64) (*model.DeleteOrganizationResponse, error) {
	delete(f.orgs, orgId)
	return f.deleteResp, nil
}

func (f *fakeOrganizationDao) UpdateStatistics(orgIds []int64) error {
	f.statsOrgIds = orgIds
	return nil
}

func (f *fakeOrganizationDao) Node(id int64) (*model.OrganizationNode, error) {
	o := f.orgs[id]
	return &model.OrganizationNode{Id: o.Id, ParentId: o.ParentOrganizationId}, nil
}

func (f *fakeOrganizationDao) Children(parentId int64) ([]model.OrganizationNode, error) {
	nodes := make([]model.OrganizationNode, 0)
	for _, childId := range f.children[parentId] {
		nodes = append(nodes, model.OrganizationNode{Id: childId, ParentId: parentId})
	}
	return nodes, nil
}
