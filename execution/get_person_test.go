package execution

import (
	"testing"

	"github.com/mohitkumar/streamhub/action"
	"github.com/mohitkumar/streamhub/cache"
	"github.com/mohitkumar/streamhub/model"
	"github.com/stretchr/testify/require"
)

type fakePersonDao struct {
	people map[int64]model.Person
	finds  int
}

func (f *fakePersonDao) Save(person model.Person) error {
	f.people[person.Id] = person
	return nil
}

func (f *fakePersonDao) FindById(id int64) (*model.Person, error) {
	f.finds++
	p, ok := f.people[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func TestGetPersonPopulatesCacheOnMiss(t *testing.T) {
	dao := &fakePersonDao{people: map[int64]model.Person{
		9: {Id: 9, AccountId: "jdoe", DisplayName: "J. Doe"},
	}}
	memCache := cache.NewMemoryCache()
	ex := NewGetPersonExecution(dao, memCache)

	result, err := ex.Execute(action.NewActionContext(int64(9), action.Principal{}))
	require.NoError(t, err)
	require.Equal(t, "jdoe", result.(*model.Person).AccountId)
	require.Equal(t, 1, dao.finds)

	// the cached copy serves the second read
	result, err = ex.Execute(action.NewActionContext(int64(9), action.Principal{}))
	require.NoError(t, err)
	require.Equal(t, "jdoe", result.(*model.Person).AccountId)
	require.Equal(t, 1, dao.finds)

	_, found, err := memCache.Get(cache.PersonById(9))
	require.NoError(t, err)
	require.True(t, found)
}

func TestGetPersonNotFound(t *testing.T) {
	dao := &fakePersonDao{people: map[int64]model.Person{}}
	ex := NewGetPersonExecution(dao, cache.NewMemoryCache())

	_, err := ex.Execute(action.NewActionContext(int64(42), action.Principal{}))
	var notFound action.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "person", notFound.Entity)
}
