package redis

import (
	"context"

	rd "github.com/go-redis/redis/v9"
	"github.com/mohitkumar/streamhub/config"
	"github.com/mohitkumar/streamhub/model"
	"github.com/mohitkumar/streamhub/persistence"
	"github.com/mohitkumar/streamhub/util"
)

const GROUP string = "GROUP"
const GROUP_FOLLOWERS string = "GROUP_FOLLOWERS"
const GROUP_COORDINATORS string = "GROUP_COORDINATORS"
const GROUP_ACTIVITIES string = "GROUP_ACTIVITIES"
const GROUP_COMMENTS string = "GROUP_COMMENTS"
const GROUPS_OF_PERSON string = "GROUPS_OF_PERSON"

type redisGroupDao struct {
	*baseDao
	groupEncDec util.EncoderDecoder[model.Group]
}

var _ persistence.GroupDao = new(redisGroupDao)

func NewRedisGroupDao(conf config.RedisConfig) *redisGroupDao {
	return &redisGroupDao{
		baseDao:     newBaseDao(conf),
		groupEncDec: util.NewJsonEncoderDecoder[model.Group](),
	}
}

func (dao *redisGroupDao) Save(group model.Group) error {
	data, err := dao.groupEncDec.Encode(group)
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := dao.redisClient.Set(ctx, dao.getNamespaceKey(GROUP, formatId(group.Id)), data, 0).Err(); err != nil {
		return persistence.StorageLayerError{Message: err.Error()}
	}
	if len(group.CoordinatorIds) > 0 {
		members := make([]any, len(group.CoordinatorIds))
		for i, id := range group.CoordinatorIds {
			members[i] = formatId(id)
		}
		if err := dao.redisClient.SAdd(ctx, dao.getNamespaceKey(GROUP_COORDINATORS, formatId(group.Id)), members...).Err(); err != nil {
			return persistence.StorageLayerError{Message: err.Error()}
		}
	}
	return nil
}

func (dao *redisGroupDao) FindById(id int64) (*model.Group, error) {
	ctx := context.Background()
	val, err := dao.redisClient.Get(ctx, dao.getNamespaceKey(GROUP, formatId(id))).Result()
	if err == rd.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}
	return dao.groupEncDec.Decode([]byte(val))
}

func (dao *redisGroupDao) FollowerIds(groupId int64) ([]int64, error) {
	return dao.setMembers(GROUP_FOLLOWERS, groupId)
}

func (dao *redisGroupDao) CoordinatorIds(groupId int64) ([]int64, error) {
	return dao.setMembers(GROUP_COORDINATORS, groupId)
}

func (dao *redisGroupDao) AddFollower(followerId int64, groupId int64) error {
	ctx := context.Background()
	if err := dao.redisClient.SAdd(ctx, dao.getNamespaceKey(GROUP_FOLLOWERS, formatId(groupId)), formatId(followerId)).Err(); err != nil {
		return persistence.StorageLayerError{Message: err.Error()}
	}
	if err := dao.redisClient.SAdd(ctx, dao.getNamespaceKey(GROUPS_OF_PERSON, formatId(followerId)), formatId(groupId)).Err(); err != nil {
		return persistence.StorageLayerError{Message: err.Error()}
	}
	return nil
}

func (dao *redisGroupDao) RemoveFollower(followerId int64, groupId int64) error {
	ctx := context.Background()
	if err := dao.redisClient.SRem(ctx, dao.getNamespaceKey(GROUP_FOLLOWERS, formatId(groupId)), formatId(followerId)).Err(); err != nil {
		return persistence.StorageLayerError{Message: err.Error()}
	}
	if err := dao.redisClient.SRem(ctx, dao.getNamespaceKey(GROUPS_OF_PERSON, formatId(followerId)), formatId(groupId)).Err(); err != nil {
		return persistence.StorageLayerError{Message: err.Error()}
	}
	return nil
}

func (dao *redisGroupDao) RemoveCoordinator(groupId int64, personId int64) error {
	ctx := context.Background()
	if err := dao.redisClient.SRem(ctx, dao.getNamespaceKey(GROUP_COORDINATORS, formatId(groupId)), formatId(personId)).Err(); err != nil {
		return persistence.StorageLayerError{Message: err.Error()}
	}
	return nil
}

func (dao *redisGroupDao) DeleteActivity(groupId int64) (*model.BulkActivityDeleteResponse, error) {
	activityIds, err := dao.setMembers(GROUP_ACTIVITIES, groupId)
	if err != nil {
		return nil, err
	}
	commentIds, err := dao.setMembers(GROUP_COMMENTS, groupId)
	if err != nil {
		return nil, err
	}
	ctx := context.Background()
	keys := []string{
		dao.getNamespaceKey(GROUP_ACTIVITIES, formatId(groupId)),
		dao.getNamespaceKey(GROUP_COMMENTS, formatId(groupId)),
	}
	if err := dao.redisClient.Del(ctx, keys...).Err(); err != nil {
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}
	return &model.BulkActivityDeleteResponse{
		ActivityIds:                  activityIds,
		CommentIds:                   commentIds,
		StarredActivityIdsByPersonId: map[int64][]int64{},
	}, nil
}

func (dao *redisGroupDao) RemoveFollowers(groupId int64) ([]int64, error) {
	followerIds, err := dao.setMembers(GROUP_FOLLOWERS, groupId)
	if err != nil {
		return nil, err
	}
	ctx := context.Background()
	for _, followerId := range followerIds {
		if err := dao.redisClient.SRem(ctx, dao.getNamespaceKey(GROUPS_OF_PERSON, formatId(followerId)), formatId(groupId)).Err(); err != nil {
			return nil, persistence.StorageLayerError{Message: err.Error()}
		}
	}
	if err := dao.redisClient.Del(ctx, dao.getNamespaceKey(GROUP_FOLLOWERS, formatId(groupId))).Err(); err != nil {
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}
	return followerIds, nil
}

func (dao *redisGroupDao) Delete(groupId int64) (*model.DeleteGroupResponse, error) {
	group, err := dao.FindById(groupId)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, persistence.StorageLayerError{Message: "group not found"}
	}
	ctx := context.Background()
	keys := []string{
		dao.getNamespaceKey(GROUP, formatId(groupId)),
		dao.getNamespaceKey(GROUP_COORDINATORS, formatId(groupId)),
	}
	if err := dao.redisClient.Del(ctx, keys...).Err(); err != nil {
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}
	return &model.DeleteGroupResponse{
		GroupId:        group.Id,
		GroupShortName: group.ShortName,
		StreamScopeId:  group.StreamScopeId,
	}, nil
}

func (dao *redisGroupDao) setMembers(kind string, id int64) ([]int64, error) {
	ctx := context.Background()
	members, err := dao.redisClient.SMembers(ctx, dao.getNamespaceKey(kind, formatId(id))).Result()
	if err != nil {
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}
	ids, err := toInt64s(members)
	if err != nil {
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}
	return ids, nil
}
