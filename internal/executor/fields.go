package executor

import (
	language "github.com/hanpama/bloggraph/internal/language"
)

// collectedFieldMap groups selections by response name while preserving the
// order they first appear in the query.
type collectedFieldMap struct {
	fields []collectedField
	index  map[string]int
}

type collectedField struct {
	ResponseName string
	Fields       []*language.Field
}

func newCollectedFieldMap() *collectedFieldMap {
	return &collectedFieldMap{index: make(map[string]int)}
}

func (cfm *collectedFieldMap) add(responseName string, field *language.Field) {
	if idx, ok := cfm.index[responseName]; ok {
		cfm.fields[idx].Fields = append(cfm.fields[idx].Fields, field)
		return
	}
	cfm.index[responseName] = len(cfm.fields)
	cfm.fields = append(cfm.fields, collectedField{
		ResponseName: responseName,
		Fields:       []*language.Field{field},
	})
}

func (cfm *collectedFieldMap) orderedFields() []collectedField {
	return cfm.fields
}

// collectFields flattens a selection set into ordered field groups, expanding
// fragments and honoring @skip/@include.
func collectFields(state *executionState, typeName string, selectionSet language.SelectionSet) *collectedFieldMap {
	grouped := newCollectedFieldMap()
	visitedFragments := make(map[string]bool)
	collectFieldsImpl(state, typeName, selectionSet, grouped, visitedFragments)
	return grouped
}

func collectFieldsImpl(state *executionState, typeName string, selectionSet language.SelectionSet, grouped *collectedFieldMap, visitedFragments map[string]bool) {
	for _, selection := range selectionSet {
		switch sel := selection.(type) {
		case *language.Field:
			if !shouldIncludeNode(state, sel.Directives) {
				continue
			}
			responseName := sel.Alias
			if responseName == "" {
				responseName = sel.Name
			}
			grouped.add(responseName, sel)

		case *language.InlineFragment:
			if !shouldIncludeNode(state, sel.Directives) {
				continue
			}
			// Only concrete type conditions exist in this schema.
			if sel.TypeCondition != "" && sel.TypeCondition != typeName {
				continue
			}
			collectFieldsImpl(state, typeName, sel.SelectionSet, grouped, visitedFragments)

		case *language.FragmentSpread:
			if !shouldIncludeNode(state, sel.Directives) {
				continue
			}
			if visitedFragments[sel.Name] {
				continue
			}
			visitedFragments[sel.Name] = true

			fragment := state.document.Fragments.ForName(sel.Name)
			if fragment == nil {
				continue
			}
			if fragment.TypeCondition != "" && fragment.TypeCondition != typeName {
				continue
			}
			if !shouldIncludeNode(state, fragment.Directives) {
				continue
			}
			collectFieldsImpl(state, typeName, fragment.SelectionSet, grouped, visitedFragments)
		}
	}
}

func shouldIncludeNode(state *executionState, directives language.DirectiveList) bool {
	if skip := directives.ForName("skip"); skip != nil {
		if v, ok := directiveIfArgument(state, skip); ok && v {
			return false
		}
	}
	if include := directives.ForName("include"); include != nil {
		if v, ok := directiveIfArgument(state, include); ok && !v {
			return false
		}
	}
	return true
}

func directiveIfArgument(state *executionState, directive *language.Directive) (bool, bool) {
	for _, arg := range directive.Arguments {
		if arg.Name != "if" {
			continue
		}
		v, ok := valueFromAST(state, arg.Value).(bool)
		return v, ok
	}
	return false, false
}

// mergeSelectionSets merges the nested selections of duplicate fields that
// were grouped under one response name.
func mergeSelectionSets(fields []*language.Field) language.SelectionSet {
	var merged language.SelectionSet
	for _, f := range fields {
		merged = append(merged, f.SelectionSet...)
	}
	return merged
}
