package model

import "github.com/google/uuid"

// Action keys understood by the async task runner.
const ACTION_DELETE_CACHE_KEYS string = "deleteCacheKeys"
const ACTION_DELETE_IDS_FROM_LISTS string = "deleteIdsFromLists"
const ACTION_INDEX_PERSON string = "indexPerson"
const ACTION_INDEX_GROUP string = "indexGroup"
const ACTION_INDEX_ORGANIZATION string = "indexOrganization"
const ACTION_INDEX_ACTIVITY string = "indexActivity"
const ACTION_DELETE_FROM_SEARCH_INDEX string = "deleteFromSearchIndex"
const ACTION_CREATE_NOTIFICATIONS string = "createNotifications"

// UserActionRequest describes one follow-up task to be executed asynchronously
// after the synchronous request completes. Immutable once created; equality is
// structural on ActionKey and Params.
type UserActionRequest struct {
	TaskId    string         `json:"taskId"`
	ActionKey string         `json:"actionKey"`
	Params    map[string]any `json:"params"`
}

func NewUserActionRequest(actionKey string, params map[string]any) UserActionRequest {
	return UserActionRequest{
		TaskId:    uuid.NewString(),
		ActionKey: actionKey,
		Params:    params,
	}
}
