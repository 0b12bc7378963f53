package executor

import (
	"encoding/json"
	"fmt"
	"strconv"

	language "github.com/hanpama/bloggraph/internal/language"
)

// valueFromAST converts an AST value to a Go value, substituting variables
// from the request.
func valueFromAST(state *executionState, value *language.Value) any {
	if value == nil {
		return nil
	}
	if value.Kind == language.Variable {
		return state.variableValues[value.Raw]
	}
	return astValueToGo(value)
}

func astValueToGo(value *language.Value) any {
	switch value.Kind {
	case language.IntValue:
		iv, _ := strconv.Atoi(value.Raw)
		return iv
	case language.FloatValue:
		fv, _ := strconv.ParseFloat(value.Raw, 64)
		return fv
	case language.StringValue:
		return value.Raw
	case language.BooleanValue:
		return value.Raw == "true"
	case language.NullValue:
		return nil
	default:
		return value.Raw
	}
}

// coerceIDValue coerces a root id argument to an integer. Inline literals
// must be Int-typed; any other literal kind is a type mismatch even when its
// text looks numeric. Variables carry JSON values and go through
// coerceVariableInt.
func coerceIDValue(state *executionState, value *language.Value) (int, error) {
	if value.Kind == language.Variable {
		return coerceVariableInt(state.variableValues[value.Raw])
	}
	if value.Kind != language.IntValue {
		return 0, fmt.Errorf("Int cannot represent %s", value.String())
	}
	return strconv.Atoi(value.Raw)
}

// coerceVariableInt coerces a variable-supplied id. JSON numbers decode as
// float64 and pass only when integral. Strings never coerce to Int.
func coerceVariableInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		if v == float64(int(v)) {
			return int(v), nil
		}
	case json.Number:
		if iv, err := v.Int64(); err == nil {
			return int(iv), nil
		}
	}
	return 0, fmt.Errorf("Int cannot represent %v (%T)", value, value)
}
