package metadata

// ScriptTaskDef is an operator-registered follow-up task handler: a javascript
// snippet run by the task runner for a custom action key. InputParams may
// contain $-prefixed jsonpath expressions resolved against the task params.
type ScriptTaskDef struct {
	Name        string         `json:"name"`
	Script      string         `json:"script"`
	InputParams map[string]any `json:"inputParams"`
}

type Storage interface {
	SaveScriptTask(def ScriptTaskDef) error
	DeleteScriptTask(name string) error
	GetScriptTask(name string) (*ScriptTaskDef, error)
}
