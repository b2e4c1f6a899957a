package redis

import (
	"context"

	rd "github.com/go-redis/redis/v9"
	"github.com/mohitkumar/streamhub/config"
	"github.com/mohitkumar/streamhub/model"
	"github.com/mohitkumar/streamhub/persistence"
	"github.com/mohitkumar/streamhub/util"
)

const PERSON string = "PERSON"

type redisPersonDao struct {
	*baseDao
	personEncDec util.EncoderDecoder[model.Person]
}

var _ persistence.PersonDao = new(redisPersonDao)

func NewRedisPersonDao(conf config.RedisConfig) *redisPersonDao {
	return &redisPersonDao{
		baseDao:      newBaseDao(conf),
		personEncDec: util.NewJsonEncoderDecoder[model.Person](),
	}
}

func (dao *redisPersonDao) Save(person model.Person) error {
	data, err := dao.personEncDec.Encode(person)
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := dao.redisClient.Set(ctx, dao.getNamespaceKey(PERSON, formatId(person.Id)), data, 0).Err(); err != nil {
		return persistence.StorageLayerError{Message: err.Error()}
	}
	return nil
}

func (dao *redisPersonDao) FindById(id int64) (*model.Person, error) {
	ctx := context.Background()
	val, err := dao.redisClient.Get(ctx, dao.getNamespaceKey(PERSON, formatId(id))).Result()
	if err == rd.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}
	return dao.personEncDec.Decode([]byte(val))
}
