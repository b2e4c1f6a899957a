package model

type ScopeType string

const SCOPE_TYPE_PERSON ScopeType = "PERSON"
const SCOPE_TYPE_GROUP ScopeType = "GROUP"
const SCOPE_TYPE_ORGANIZATION ScopeType = "ORGANIZATION"
const SCOPE_TYPE_RESOURCE ScopeType = "RESOURCE"

type EntityType string

const ENTITY_TYPE_PERSON EntityType = "PERSON"
const ENTITY_TYPE_GROUP EntityType = "GROUP"
const ENTITY_TYPE_ORGANIZATION EntityType = "ORGANIZATION"
const ENTITY_TYPE_ACTIVITY EntityType = "ACTIVITY"

type StreamScope struct {
	Id        int64     `json:"id"`
	ScopeType ScopeType `json:"scopeType"`
	UniqueKey string    `json:"uniqueKey"`
}

type Person struct {
	Id                   int64  `json:"id"`
	AccountId            string `json:"accountId"`
	DisplayName          string `json:"displayName"`
	ParentOrganizationId int64  `json:"parentOrganizationId"`
	StreamScopeId        int64  `json:"streamScopeId"`
}

type Group struct {
	Id             int64   `json:"id"`
	ShortName      string  `json:"shortName"`
	Name           string  `json:"name"`
	StreamScopeId  int64   `json:"streamScopeId"`
	CoordinatorIds []int64 `json:"coordinatorIds"`
	FollowerCount  int     `json:"followerCount"`
}

type Organization struct {
	Id                      int64  `json:"id"`
	ShortName               string `json:"shortName"`
	Name                    string `json:"name"`
	ParentOrganizationId    int64  `json:"parentOrganizationId"`
	StreamScopeId           int64  `json:"streamScopeId"`
	DescendantEmployeeCount int    `json:"descendantEmployeeCount"`
	DescendantGroupCount    int    `json:"descendantGroupCount"`
	ChildOrganizationCount  int    `json:"childOrganizationCount"`
}

type Activity struct {
	Id            int64 `json:"id"`
	AuthorId      int64 `json:"authorId"`
	StreamScopeId int64 `json:"streamScopeId"`
}

// OrganizationNode is the lightweight view of an organization used by the
// hierarchy traverser. ChildIds may be empty when children are not yet loaded.
type OrganizationNode struct {
	Id       int64   `json:"id"`
	ParentId int64   `json:"parentId"`
	ChildIds []int64 `json:"childIds"`
}
