package cache

import (
	"fmt"
	"strconv"

	"github.com/mohitkumar/streamhub/model"
)

// Cache key prefixes. One per entity/relation kind, globally unique so keys
// for different kinds never collide. Key shapes are a persisted contract with
// any existing cache population and must not change.
const prefixGroupById string = "GroupById:"
const prefixGroupByShortName string = "GroupByShortName:"
const prefixFollowersByGroup string = "FollowersByGroup:"
const prefixCoordinatorPersonIdsByGroupId string = "CoordinatorPersonIdsByGroupId:"
const prefixEntityStreamByScopeId string = "EntityStreamByScopeId:"
const prefixStreamScopeIdByGroupShortName string = "StreamScopeIdByGroupShortName:"
const prefixPopularHashTags string = "PopularHashTagsByStreamTypeAndShortName:"
const prefixPersonById string = "PersonById:"
const prefixOrganizationById string = "OrganizationById:"
const prefixOrganizationByShortName string = "OrganizationByShortName:"
const prefixOrganizationRecursiveChildren string = "OrganizationRecursiveChildren:"
const prefixGroupsFollowedByPerson string = "GroupsFollowedByPerson:"
const prefixStarredByPersonId string = "StarredByPersonId:"
const prefixActivityById string = "ActivityById:"
const prefixCommentById string = "CommentById:"

// Constant keys.
const KeyEveryoneActivityIds string = "EveryoneActivityIds"
const KeyOrganizationTreeDto string = "OrganizationTreeDto"

func GroupById(id int64) string {
	return prefixGroupById + strconv.FormatInt(id, 10)
}

func GroupByShortName(shortName string) string {
	return prefixGroupByShortName + shortName
}

func FollowersByGroup(groupId int64) string {
	return prefixFollowersByGroup + strconv.FormatInt(groupId, 10)
}

func CoordinatorPersonIdsByGroupId(groupId int64) string {
	return prefixCoordinatorPersonIdsByGroupId + strconv.FormatInt(groupId, 10)
}

func EntityStreamByScopeId(scopeId int64) string {
	return prefixEntityStreamByScopeId + strconv.FormatInt(scopeId, 10)
}

func StreamScopeIdByGroupShortName(shortName string) string {
	return prefixStreamScopeIdByGroupShortName + shortName
}

func PopularHashTagsByStreamTypeAndShortName(scopeType model.ScopeType, shortName string) string {
	return fmt.Sprintf("%s%s-%s", prefixPopularHashTags, scopeType, shortName)
}

func PersonById(id int64) string {
	return prefixPersonById + strconv.FormatInt(id, 10)
}

func OrganizationById(id int64) string {
	return prefixOrganizationById + strconv.FormatInt(id, 10)
}

func OrganizationByShortName(shortName string) string {
	return prefixOrganizationByShortName + shortName
}

func OrganizationRecursiveChildren(id int64) string {
	return prefixOrganizationRecursiveChildren + strconv.FormatInt(id, 10)
}

func GroupsFollowedByPerson(personId int64) string {
	return prefixGroupsFollowedByPerson + strconv.FormatInt(personId, 10)
}

func StarredByPersonId(personId int64) string {
	return prefixStarredByPersonId + strconv.FormatInt(personId, 10)
}

func ActivityById(id int64) string {
	return prefixActivityById + strconv.FormatInt(id, 10)
}

func CommentById(id int64) string {
	return prefixCommentById + strconv.FormatInt(id, 10)
}
