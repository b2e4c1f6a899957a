package model

// MoveOrganizationPeopleRequest moves everyone parented to SourceShortName
// under DestinationShortName.
type MoveOrganizationPeopleRequest struct {
	SourceShortName      string `json:"sourceShortName"`
	DestinationShortName string `json:"destinationShortName"`
}

// MoveOrganizationPeopleResponse carries the ids affected by the move; they are
// needed later to build reindex tasks and cache-invalidation key sets.
type MoveOrganizationPeopleResponse struct {
	MovedPersonIds   []int64 `json:"movedPersonIds"`
	MovedActivityIds []int64 `json:"movedActivityIds"`
}

// DeleteGroupResponse is captured from the delete call itself; the short name
// and stream scope id are no longer fetchable once the group row is gone.
type DeleteGroupResponse struct {
	GroupId        int64  `json:"groupId"`
	GroupShortName string `json:"groupShortName"`
	StreamScopeId  int64  `json:"streamScopeId"`
}

// DeleteOrganizationResponse mirrors DeleteGroupResponse for organizations.
type DeleteOrganizationResponse struct {
	OrganizationId int64  `json:"organizationId"`
	ShortName      string `json:"shortName"`
	StreamScopeId  int64  `json:"streamScopeId"`
}

// BulkActivityDeleteResponse reports everything removed when a stream's
// activities are deleted in bulk.
type BulkActivityDeleteResponse struct {
	ActivityIds []int64 `json:"activityIds"`
	CommentIds  []int64 `json:"commentIds"`
	// StarredActivityIdsByPersonId maps a person id to the deleted activity ids
	// that person had starred.
	StarredActivityIdsByPersonId map[int64][]int64 `json:"starredActivityIdsByPersonId"`
}

type SetFollowingStatusRequest struct {
	FollowerId int64 `json:"followerId"`
	GroupId    int64 `json:"groupId"`
	Following  bool  `json:"following"`
}

type RemoveCoordinatorRequest struct {
	GroupId  int64 `json:"groupId"`
	PersonId int64 `json:"personId"`
}
