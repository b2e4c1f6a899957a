package execution

import (
	"fmt"

	"github.com/mohitkumar/streamhub/action"
	"github.com/mohitkumar/streamhub/cache"
	"github.com/mohitkumar/streamhub/model"
	"github.com/mohitkumar/streamhub/persistence"
	"github.com/mohitkumar/streamhub/util"
)

// GetPersonExecution is a read-through person lookup: cache first, primary
// store on miss, repopulating the cache with whatever the store returned. A
// cache failure degrades to a store read instead of failing the request.
type GetPersonExecution struct {
	personDao    persistence.PersonDao
	cacheTier    cache.Cache
	personEncDec util.EncoderDecoder[model.Person]
}

var _ action.ExecutionStrategy = new(GetPersonExecution)

func NewGetPersonExecution(personDao persistence.PersonDao, cacheTier cache.Cache) *GetPersonExecution {
	return &GetPersonExecution{
		personDao:    personDao,
		cacheTier:    cacheTier,
		personEncDec: util.NewJsonEncoderDecoder[model.Person](),
	}
}

func (ex *GetPersonExecution) Execute(ctx *action.ActionContext) (any, error) {
	personId, ok := ctx.Params.(int64)
	if !ok {
		return nil, fmt.Errorf("get person expects an int64 person id, got %T", ctx.Params)
	}

	key := cache.PersonById(personId)
	if cached, found, err := ex.cacheTier.Get(key); err == nil && found {
		person, err := ex.personEncDec.Decode([]byte(cached))
		if err == nil {
			return person, nil
		}
	}

	person, err := ex.personDao.FindById(personId)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, action.NotFoundError{Entity: "person", Id: personId}
	}
	if data, err := ex.personEncDec.Encode(*person); err == nil {
		_ = ex.cacheTier.Set(key, string(data))
	}
	return person, nil
}
