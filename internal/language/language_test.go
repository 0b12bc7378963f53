package language

import "testing"

func TestParseQuery(t *testing.T) {
	doc, err := ParseQuery(`{ user(id: 1) { name posts { title } } }`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Operations) != 1 {
		t.Fatalf("expected one operation, got %d", len(doc.Operations))
	}
	root := doc.Operations[0].SelectionSet
	if len(root) != 1 {
		t.Fatalf("expected one root selection, got %d", len(root))
	}
	field, ok := root[0].(*Field)
	if !ok || field.Name != "user" {
		t.Fatalf("unexpected root selection: %#v", root[0])
	}
	if len(field.Arguments) != 1 || field.Arguments[0].Name != "id" {
		t.Fatalf("unexpected arguments: %#v", field.Arguments)
	}
}

func TestParseQuerySyntaxError(t *testing.T) {
	_, err := ParseQuery(`{ user(id: 1) { name `)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if _, ok := err.(*Error); !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
}
