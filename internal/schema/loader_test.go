package schema_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/garnizeh/trivia/internal/schema"
)

func TestNewLoader_Embedded(t *testing.T) {
	l, err := schema.NewLoader()
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	names := l.Names()
	want := []string{schema.CreateQuestion, schema.Quiz, schema.SearchQuestions}
	if len(names) != len(want) {
		t.Fatalf("expected schemas %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected schemas %v, got %v", want, names)
		}
	}
}

func TestValidate(t *testing.T) {
	l, err := schema.NewLoader()
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	ctx := context.Background()

	tests := []struct {
		name    string
		schema  string
		body    string
		wantErr bool
	}{
		{name: "create full", schema: schema.CreateQuestion, body: `{"question":"q","answer":"a","category":1,"difficulty":3}`},
		{name: "create string category", schema: schema.CreateQuestion, body: `{"question":"q","answer":"a","category":"4","difficulty":"2"}`},
		{name: "create empty object", schema: schema.CreateQuestion, body: `{}`},
		{name: "create empty category", schema: schema.CreateQuestion, body: `{"category":""}`},
		{name: "create non numeric category", schema: schema.CreateQuestion, body: `{"category":"science"}`, wantErr: true},
		{name: "create numeric question", schema: schema.CreateQuestion, body: `{"question":12}`, wantErr: true},
		{name: "create array body", schema: schema.CreateQuestion, body: `[1,2]`, wantErr: true},
		{name: "create malformed", schema: schema.CreateQuestion, body: `{"question":`, wantErr: true},
		{name: "create empty body", schema: schema.CreateQuestion, body: ``, wantErr: true},
		{name: "search term", schema: schema.SearchQuestions, body: `{"searchTerm":"title"}`},
		{name: "search missing term", schema: schema.SearchQuestions, body: `{}`},
		{name: "search numeric term", schema: schema.SearchQuestions, body: `{"searchTerm":5}`, wantErr: true},
		{name: "quiz full", schema: schema.Quiz, body: `{"quiz_category":{"id":1,"type":"Science"},"previous_questions":[1,2]}`},
		{name: "quiz null category", schema: schema.Quiz, body: `{"quiz_category":null,"previous_questions":[]}`},
		{name: "quiz string id", schema: schema.Quiz, body: `{"quiz_category":{"id":"0"}}`},
		{name: "quiz bad previous", schema: schema.Quiz, body: `{"previous_questions":["x"]}`, wantErr: true},
		{name: "quiz bad category", schema: schema.Quiz, body: `{"quiz_category":7}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := l.Validate(ctx, tt.schema, []byte(tt.body))
			if tt.wantErr {
				var verr *schema.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected *ValidationError, got %v", err)
				}
				if verr.Error() == "" {
					t.Fatalf("expected a descriptive error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidate_UnknownSchema(t *testing.T) {
	l, err := schema.NewLoader()
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	err = l.Validate(context.Background(), "nope", []byte(`{}`))
	if err == nil {
		t.Fatalf("expected error for unknown schema")
	}
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		t.Fatalf("unknown schema must not be reported as a validation error")
	}
}

func TestNewLoaderFS_BadSchema(t *testing.T) {
	fsys := fstest.MapFS{
		"s/good.json": {Data: []byte(`{"type":"object"}`)},
		"s/bad.json":  {Data: []byte(`{"type":`)},
	}
	if _, err := schema.NewLoaderFS(fsys, "s"); err == nil {
		t.Fatalf("expected compile error for malformed schema")
	}
}

func TestReload(t *testing.T) {
	fsys := fstest.MapFS{
		"s/one.json": {Data: []byte(`{"type":"object"}`)},
		"s/note.txt": {Data: []byte(`ignored`)},
	}
	l, err := schema.NewLoaderFS(fsys, "s")
	if err != nil {
		t.Fatalf("NewLoaderFS: %v", err)
	}
	if _, ok := l.GetSchema("one"); !ok {
		t.Fatalf("expected schema one loaded")
	}

	fsys["s/two.json"] = &fstest.MapFile{Data: []byte(`{"type":"array"}`)}
	if err := l.Reload(fsys, "s"); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if got := l.Names(); len(got) != 2 {
		t.Fatalf("expected 2 schemas after reload, got %v", got)
	}
}
