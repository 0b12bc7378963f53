package executor

import (
	"context"
	"fmt"

	language "github.com/hanpama/bloggraph/internal/language"
	registry "github.com/hanpama/bloggraph/internal/registry"
)

// queryRootName is the type name selections on the query root are collected
// against; it only exists for __typename and fragment type conditions.
const queryRootName = "Query"

// executionState holds per-request state. The registry and store behind it
// are shared and read-only, so states never coordinate with each other.
type executionState struct {
	registry       *registry.Registry
	document       *language.QueryDocument
	variableValues map[string]any
	errors         []Error
}

func (state *executionState) addError(code, message string, path Path) {
	state.errors = append(state.errors, Error{
		Message:    message,
		Path:       path,
		Extensions: map[string]any{"code": code},
	})
}

// Executor resolves parsed query documents against a registry.
type Executor struct {
	registry *registry.Registry
}

func New(reg *registry.Registry) *Executor {
	return &Executor{registry: reg}
}

// ExecuteRequest resolves one operation of the document and returns the
// response tree plus any per-field errors. Resolution is synchronous and
// CPU-bound against the in-memory store; it never suspends, so ctx is not
// consulted mid-resolution. Cancellation policy belongs to the transport.
func (e *Executor) ExecuteRequest(
	_ context.Context,
	document *language.QueryDocument,
	operationName string,
	variableValues map[string]any,
) *ExecutionResult {
	operation := getOperation(document, operationName)
	if operation == nil {
		return &ExecutionResult{Errors: []Error{{Message: "operation not found"}}}
	}
	if operation.Operation != language.Query {
		return &ExecutionResult{Errors: []Error{{
			Message: fmt.Sprintf("unsupported operation type: %s", operation.Operation),
		}}}
	}
	if variableValues == nil {
		variableValues = map[string]any{}
	}

	state := &executionState{
		registry:       e.registry,
		document:       document,
		variableValues: variableValues,
	}

	data := make(map[string]any)
	for _, collected := range collectFields(state, queryRootName, operation.SelectionSet).orderedFields() {
		field := collected.Fields[0]
		path := Path{collected.ResponseName}

		if field.Name == "__typename" {
			data[collected.ResponseName] = queryRootName
			continue
		}

		root, ok := e.registry.Root(field.Name)
		if !ok {
			state.addError(CodeUnknownOperation,
				fmt.Sprintf("Unknown operation '%s'", field.Name), path)
			continue
		}

		id, err := rootIDArgument(state, field)
		if err != nil {
			state.addError(CodeInvalidArgumentType, err.Error(), path)
			data[collected.ResponseName] = nil
			continue
		}

		entity := root.Lookup(id)
		if entity == nil {
			// Not found is a successfully resolved null, never an error.
			data[collected.ResponseName] = nil
			continue
		}
		data[collected.ResponseName] = executeSelectionSet(
			state, root.Type, mergeSelectionSets(collected.Fields), entity, path)
	}

	return &ExecutionResult{Data: data, Errors: state.errors}
}

// rootIDArgument extracts and coerces the integer id argument of a root
// operation.
func rootIDArgument(state *executionState, field *language.Field) (int, error) {
	for _, arg := range field.Arguments {
		if arg.Name != "id" {
			continue
		}
		raw := valueFromAST(state, arg.Value)
		if raw == nil {
			return 0, fmt.Errorf("argument 'id' of operation '%s' cannot be null", field.Name)
		}
		id, err := coerceIDValue(state, arg.Value)
		if err != nil {
			return 0, fmt.Errorf("argument 'id' of operation '%s': %v", field.Name, err)
		}
		return id, nil
	}
	return 0, fmt.Errorf("argument 'id' of operation '%s' of required type Int was not provided", field.Name)
}

// executeSelectionSet materializes one entity against a selection set,
// recursing through relationship fields. Sibling fields are independent: an
// unknown field records an error and the rest still resolve.
func executeSelectionSet(state *executionState, typeName string, selectionSet language.SelectionSet, entity any, path Path) map[string]any {
	typ := state.registry.Type(typeName)
	result := make(map[string]any)

	for _, collected := range collectFields(state, typeName, selectionSet).orderedFields() {
		field := collected.Fields[0]
		fieldPath := appendPath(path, collected.ResponseName)

		if field.Name == "__typename" {
			result[collected.ResponseName] = typ.Name
			continue
		}

		if extract, ok := typ.ScalarField(field.Name); ok {
			result[collected.ResponseName] = extract(entity)
			continue
		}

		if rel, ok := typ.RelationshipField(field.Name); ok {
			sub := mergeSelectionSets(collected.Fields)
			result[collected.ResponseName] = resolveRelationship(state, rel, sub, entity, fieldPath)
			continue
		}

		state.addError(CodeUnknownField,
			fmt.Sprintf("Cannot query field '%s' on type '%s'", field.Name, typ.Name), fieldPath)
	}

	return result
}

func resolveRelationship(state *executionState, rel *registry.Relationship, selectionSet language.SelectionSet, entity any, path Path) any {
	switch rel.Cardinality {
	case registry.Many:
		related := rel.ResolveMany(entity)
		out := make([]any, len(related))
		for i, item := range related {
			out[i] = executeSelectionSet(state, rel.Target, selectionSet, item, appendPath(path, i))
		}
		return out
	default:
		related := rel.ResolveOne(entity)
		if related == nil {
			return nil
		}
		return executeSelectionSet(state, rel.Target, selectionSet, related, path)
	}
}

func getOperation(document *language.QueryDocument, operationName string) *language.OperationDefinition {
	if operationName == "" && len(document.Operations) == 1 {
		return document.Operations[0]
	}
	return document.Operations.ForName(operationName)
}

func appendPath(path Path, elem PathElement) Path {
	newPath := make(Path, len(path)+1)
	copy(newPath, path)
	newPath[len(path)] = elem
	return newPath
}
