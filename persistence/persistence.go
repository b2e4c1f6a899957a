package persistence

import (
	"fmt"

	"github.com/mohitkumar/streamhub/model"
)

type StorageLayerError struct {
	Message string
}

func (e StorageLayerError) Error() string {
	return fmt.Sprintf("storage layer error %s", e.Message)
}

// GroupDao is the primary-store mapper surface for groups. Find methods return
// (nil, nil) when the entity is absent.
type GroupDao interface {
	Save(group model.Group) error
	FindById(id int64) (*model.Group, error)
	FollowerIds(groupId int64) ([]int64, error)
	CoordinatorIds(groupId int64) ([]int64, error)
	AddFollower(followerId int64, groupId int64) error
	RemoveFollower(followerId int64, groupId int64) error
	RemoveCoordinator(groupId int64, personId int64) error

	// DeleteActivity removes all activity authored into the group's stream
	// along with comments, reporting everything removed.
	DeleteActivity(groupId int64) (*model.BulkActivityDeleteResponse, error)

	// RemoveFollowers detaches every follower and returns their person ids.
	RemoveFollowers(groupId int64) ([]int64, error)

	// Delete removes the group row itself. The response carries the short name
	// and stream scope id, which are not fetchable post-delete.
	Delete(groupId int64) (*model.DeleteGroupResponse, error)
}

// OrganizationDao is the primary-store mapper surface for organizations. It
// also feeds the hierarchy traverser through Node and Children.
type OrganizationDao interface {
	Save(org model.Organization) error
	FindById(id int64) (*model.Organization, error)

	// MovePeople reparents every person (and their authored activity) from the
	// source organization to the destination, returning the affected ids.
	MovePeople(req model.MoveOrganizationPeopleRequest) (*model.MoveOrganizationPeopleResponse, error)

	// RelatedPersonIds returns ids of people that carry the organization in
	// their related-organizations collection.
	RelatedPersonIds(orgId int64) ([]int64, error)

	Delete(orgId int64) (*model.DeleteOrganizationResponse, error)

	// UpdateStatistics recomputes and persists aggregate counts for the given
	// organizations, typically the visited set of a hierarchy traversal.
	UpdateStatistics(orgIds []int64) error

	Node(id int64) (*model.OrganizationNode, error)
	Children(parentId int64) ([]model.OrganizationNode, error)
}

// PersonDao is the primary-store mapper surface for people.
type PersonDao interface {
	Save(person model.Person) error
	FindById(id int64) (*model.Person, error)
}
