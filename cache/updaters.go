package cache

// DeleteKeysMapper removes a set of keys from cache. Safe to run repeatedly;
// deleting an absent key is a no-op.
type DeleteKeysMapper struct {
	cache Cache
}

func NewDeleteKeysMapper(cache Cache) *DeleteKeysMapper {
	return &DeleteKeysMapper{cache: cache}
}

func (m *DeleteKeysMapper) Execute(keys []string) error {
	return m.cache.Delete(keys...)
}

// AddGroupFollowerMapper synchronously updates the cached follower list of a
// group and the cached followed-groups list of a person, so that the new
// relationship is visible to an immediately following read.
type AddGroupFollowerMapper struct {
	cache Cache
}

func NewAddGroupFollowerMapper(cache Cache) *AddGroupFollowerMapper {
	return &AddGroupFollowerMapper{cache: cache}
}

func (m *AddGroupFollowerMapper) Execute(followerId int64, groupId int64) error {
	if err := m.cache.AddToList(FollowersByGroup(groupId), followerId); err != nil {
		return err
	}
	return m.cache.AddToList(GroupsFollowedByPerson(followerId), groupId)
}

// RemoveIdsFromListsMapper removes the given ids from every listed cache key.
type RemoveIdsFromListsMapper struct {
	cache Cache
}

func NewRemoveIdsFromListsMapper(cache Cache) *RemoveIdsFromListsMapper {
	return &RemoveIdsFromListsMapper{cache: cache}
}

func (m *RemoveIdsFromListsMapper) Execute(keys []string, ids []int64) error {
	for _, key := range keys {
		if err := m.cache.RemoveFromList(key, ids...); err != nil {
			return err
		}
	}
	return nil
}
