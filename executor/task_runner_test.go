package executor

import (
	"sync"
	"testing"

	"github.com/mohitkumar/streamhub/metadata"
	"github.com/mohitkumar/streamhub/model"
	"github.com/mohitkumar/streamhub/queue"
	"github.com/mohitkumar/streamhub/util"
	"github.com/stretchr/testify/require"
)

type fakeScriptStorage struct {
	defs map[string]metadata.ScriptTaskDef
}

func (f *fakeScriptStorage) SaveScriptTask(def metadata.ScriptTaskDef) error {
	f.defs[def.Name] = def
	return nil
}

func (f *fakeScriptStorage) DeleteScriptTask(name string) error {
	delete(f.defs, name)
	return nil
}

func (f *fakeScriptStorage) GetScriptTask(name string) (*metadata.ScriptTaskDef, error) {
	def, ok := f.defs[name]
	if !ok {
		return nil, nil
	}
	return &def, nil
}

func newRunner(t *testing.T, q queue.Queue, registry *Registry, scriptTasks metadata.Storage) *TaskRunner {
	t.Helper()
	wg := &sync.WaitGroup{}
	return NewTaskRunner(q, registry, scriptTasks, 10, 1, wg)
}

func TestTaskSurvivesQueueRoundTrip(t *testing.T) {
	q := queue.NewMemoryQueue()
	submitter := NewQueueSubmitter(q)

	req := model.NewUserActionRequest(model.ACTION_DELETE_CACHE_KEYS, map[string]any{
		"keys": []string{"GroupById:1", "EveryoneActivityIds"},
	})
	require.NoError(t, submitter.Submit(req))

	messages, err := q.Pop(10)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	decoded, err := util.NewJsonEncoderDecoder[model.UserActionRequest]().Decode([]byte(messages[0]))
	require.NoError(t, err)
	require.Equal(t, req.TaskId, decoded.TaskId)
	require.Equal(t, req.ActionKey, decoded.ActionKey)
	keys, err := stringSliceParam(decoded.Params, "keys")
	require.NoError(t, err)
	require.Equal(t, []string{"GroupById:1", "EveryoneActivityIds"}, keys)
}

func TestHandleDispatchesToRegisteredHandler(t *testing.T) {
	registry := NewRegistry()
	var handled map[string]any
	registry.Register("custom", func(params map[string]any) error {
		handled = params
		return nil
	})
	runner := newRunner(t, queue.NewMemoryQueue(), registry, nil)

	req := model.NewUserActionRequest("custom", map[string]any{"id": int64(9)})
	require.NoError(t, runner.handle(req))
	require.Equal(t, req.Params, handled)
}

func TestHandleFallsBackToScriptTask(t *testing.T) {
	storage := &fakeScriptStorage{defs: map[string]metadata.ScriptTaskDef{
		"auditDelete": {
			Name:        "auditDelete",
			Script:      "if ($.entity !== 'group' || $.id !== 9) { throw 'unexpected input'; }",
			InputParams: map[string]any{"entity": "group", "id": "$.id"},
		},
	}}
	runner := newRunner(t, queue.NewMemoryQueue(), NewRegistry(), storage)

	req := model.NewUserActionRequest("auditDelete", map[string]any{"id": 9})
	require.NoError(t, runner.handle(req))
}

func TestHandleUnknownActionKey(t *testing.T) {
	runner := newRunner(t, queue.NewMemoryQueue(), NewRegistry(), &fakeScriptStorage{defs: map[string]metadata.ScriptTaskDef{}})

	req := model.NewUserActionRequest("nobody-home", map[string]any{})
	err := runner.handle(req)
	require.Error(t, err)
	require.Contains(t, err.Error(), "nobody-home")
}
