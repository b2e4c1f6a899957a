package redis

import (
	"context"

	rd "github.com/go-redis/redis/v9"
	"github.com/mohitkumar/streamhub/config"
	"github.com/mohitkumar/streamhub/model"
	"github.com/mohitkumar/streamhub/persistence"
	"github.com/mohitkumar/streamhub/util"
)

const ORGANIZATION string = "ORGANIZATION"
const ORGANIZATION_CHILDREN string = "ORGANIZATION_CHILDREN"
const ORGANIZATION_PEOPLE string = "ORGANIZATION_PEOPLE"
const ORGANIZATION_RELATED_PEOPLE string = "ORGANIZATION_RELATED_PEOPLE"
const PERSON_ACTIVITIES string = "PERSON_ACTIVITIES"

type redisOrganizationDao struct {
	*baseDao
	orgEncDec util.EncoderDecoder[model.Organization]
}

var _ persistence.OrganizationDao = new(redisOrganizationDao)

func NewRedisOrganizationDao(conf config.RedisConfig) *redisOrganizationDao {
	return &redisOrganizationDao{
		baseDao:   newBaseDao(conf),
		orgEncDec: util.NewJsonEncoderDecoder[model.Organization](),
	}
}

func (dao *redisOrganizationDao) Save(org model.Organization) error {
	data, err := dao.orgEncDec.Encode(org)
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := dao.redisClient.Set(ctx, dao.getNamespaceKey(ORGANIZATION, formatId(org.Id)), data, 0).Err(); err != nil {
		return persistence.StorageLayerError{Message: err.Error()}
	}
	if org.ParentOrganizationId != 0 {
		parentChildren := dao.getNamespaceKey(ORGANIZATION_CHILDREN, formatId(org.ParentOrganizationId))
		if err := dao.redisClient.SAdd(ctx, parentChildren, formatId(org.Id)).Err(); err != nil {
			return persistence.StorageLayerError{Message: err.Error()}
		}
	}
	return nil
}

func (dao *redisOrganizationDao) FindById(id int64) (*model.Organization, error) {
	ctx := context.Background()
	val, err := dao.redisClient.Get(ctx, dao.getNamespaceKey(ORGANIZATION, formatId(id))).Result()
	if err == rd.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}
	return dao.orgEncDec.Decode([]byte(val))
}

func (dao *redisOrganizationDao) MovePeople(req model.MoveOrganizationPeopleRequest) (*model.MoveOrganizationPeopleResponse, error) {
	ctx := context.Background()
	sourceKey := dao.getNamespaceKey(ORGANIZATION_PEOPLE, req.SourceShortName)
	destKey := dao.getNamespaceKey(ORGANIZATION_PEOPLE, req.DestinationShortName)

	members, err := dao.redisClient.SMembers(ctx, sourceKey).Result()
	if err != nil {
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}
	personIds, err := toInt64s(members)
	if err != nil {
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}

	movedActivityIds := make([]int64, 0)
	for _, personId := range personIds {
		if err := dao.redisClient.SMove(ctx, sourceKey, destKey, formatId(personId)).Err(); err != nil {
			return nil, persistence.StorageLayerError{Message: err.Error()}
		}
		activityIds, err := dao.personActivityIds(personId)
		if err != nil {
			return nil, err
		}
		movedActivityIds = append(movedActivityIds, activityIds...)
	}
	return &model.MoveOrganizationPeopleResponse{
		MovedPersonIds:   personIds,
		MovedActivityIds: movedActivityIds,
	}, nil
}

func (dao *redisOrganizationDao) RelatedPersonIds(orgId int64) ([]int64, error) {
	ctx := context.Background()
	members, err := dao.redisClient.SMembers(ctx, dao.getNamespaceKey(ORGANIZATION_RELATED_PEOPLE, formatId(orgId))).Result()
	if err != nil {
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}
	ids, err := toInt64s(members)
	if err != nil {
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}
	return ids, nil
}

func (dao *redisOrganizationDao) Delete(orgId int64) (*model.DeleteOrganizationResponse, error) {
	org, err := dao.FindById(orgId)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, persistence.StorageLayerError{Message: "organization not found"}
	}
	ctx := context.Background()
	keys := []string{
		dao.getNamespaceKey(ORGANIZATION, formatId(orgId)),
		dao.getNamespaceKey(ORGANIZATION_CHILDREN, formatId(orgId)),
		dao.getNamespaceKey(ORGANIZATION_PEOPLE, org.ShortName),
		dao.getNamespaceKey(ORGANIZATION_RELATED_PEOPLE, formatId(orgId)),
	}
	if err := dao.redisClient.Del(ctx, keys...).Err(); err != nil {
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}
	if org.ParentOrganizationId != 0 {
		parentChildren := dao.getNamespaceKey(ORGANIZATION_CHILDREN, formatId(org.ParentOrganizationId))
		if err := dao.redisClient.SRem(ctx, parentChildren, formatId(orgId)).Err(); err != nil {
			return nil, persistence.StorageLayerError{Message: err.Error()}
		}
	}
	return &model.DeleteOrganizationResponse{
		OrganizationId: org.Id,
		ShortName:      org.ShortName,
		StreamScopeId:  org.StreamScopeId,
	}, nil
}

func (dao *redisOrganizationDao) UpdateStatistics(orgIds []int64) error {
	ctx := context.Background()
	for _, orgId := range orgIds {
		org, err := dao.FindById(orgId)
		if err != nil {
			return err
		}
		if org == nil {
			continue
		}
		childCount, err := dao.redisClient.SCard(ctx, dao.getNamespaceKey(ORGANIZATION_CHILDREN, formatId(orgId))).Result()
		if err != nil {
			return persistence.StorageLayerError{Message: err.Error()}
		}
		employeeCount, err := dao.redisClient.SCard(ctx, dao.getNamespaceKey(ORGANIZATION_PEOPLE, org.ShortName)).Result()
		if err != nil {
			return persistence.StorageLayerError{Message: err.Error()}
		}
		org.ChildOrganizationCount = int(childCount)
		org.DescendantEmployeeCount = int(employeeCount)
		if err := dao.Save(*org); err != nil {
			return err
		}
	}
	return nil
}

func (dao *redisOrganizationDao) Node(id int64) (*model.OrganizationNode, error) {
	org, err := dao.FindById(id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, persistence.StorageLayerError{Message: "organization not found"}
	}
	return &model.OrganizationNode{
		Id:       org.Id,
		ParentId: org.ParentOrganizationId,
	}, nil
}

func (dao *redisOrganizationDao) Children(parentId int64) ([]model.OrganizationNode, error) {
	ctx := context.Background()
	members, err := dao.redisClient.SMembers(ctx, dao.getNamespaceKey(ORGANIZATION_CHILDREN, formatId(parentId))).Result()
	if err != nil {
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}
	childIds, err := toInt64s(members)
	if err != nil {
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}
	nodes := make([]model.OrganizationNode, 0, len(childIds))
	for _, childId := range childIds {
		nodes = append(nodes, model.OrganizationNode{Id: childId, ParentId: parentId})
	}
	return nodes, nil
}

func (dao *redisOrganizationDao) personActivityIds(personId int64) ([]int64, error) {
	ctx := context.Background()
	members, err := dao.redisClient.SMembers(ctx, dao.getNamespaceKey(PERSON_ACTIVITIES, formatId(personId))).Result()
	if err != nil {
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}
	ids, err := toInt64s(members)
	if err != nil {
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}
	return ids, nil
}
