package executor

import (
	"encoding/json"
	"fmt"

	"github.com/dop251/goja"
	"github.com/mohitkumar/streamhub/logger"
	"github.com/mohitkumar/streamhub/metadata"
	"github.com/mohitkumar/streamhub/util"
	"go.uber.org/zap"
)

// runScriptTask executes an operator-registered javascript task handler. The
// task params are resolved into the declared input params, bound to $ and the
// script is evaluated with a fresh vm per run.
func runScriptTask(def *metadata.ScriptTaskDef, taskParams map[string]any) error {
	logger.Info("running script task", zap.String("task", def.Name))
	input := util.ResolveParams(taskParams, def.InputParams)
	data, err := json.Marshal(input)
	if err != nil {
		return err
	}
	expression := fmt.Sprintf("var $ = %s;\n", data)
	expression = expression + def.Script
	vm := goja.New()
	if _, err := vm.RunString(expression); err != nil {
		return fmt.Errorf("error executing javascript %w", err)
	}
	return nil
}
