package codebase

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/introspect/element"
	"github.com/dhamidi/introspect/query"
)

const baseYAML = `
- name: com.example.Base
  visibility: public
  fields:
    - {name: id, type: {name: long}, visibility: private}
  methods:
    - {name: getId, returnType: {name: long}, visibility: public}
    - name: setId
      visibility: public
      parameters:
        - {name: id, type: {name: long}}
`

const personJSON = `{
  "name": "com.example.Person",
  "superClass": "com.example.Base",
  "visibility": "public",
  "fields": [
    {"name": "nickname", "type": {"name": "java.lang.String"}, "visibility": "public"}
  ],
  "methods": [
    {"name": "greet", "returnType": {"name": "java.lang.String"}, "visibility": "public",
     "parameters": [{"name": "other", "type": {"name": "com.example.Person"}}]},
    {"name": "helper", "visibility": "private"}
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestCodebase(t *testing.T) (*Codebase, string) {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", baseYAML)
	writeFile(t, dir, "model/person.json", personJSON)

	cb, err := New(dir, DefaultSettings())
	require.NoError(t, err)
	require.NoError(t, cb.ScanAll())
	return cb, dir
}

func names(elements []element.Element) []string {
	result := make([]string, len(elements))
	for i, el := range elements {
		result[i] = el.Declaring().Name + "." + el.Name()
	}
	return result
}

func TestScanAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", baseYAML)
	writeFile(t, dir, "model/person.json", personJSON)
	broken := writeFile(t, dir, "broken.json", "{not json")
	config := writeFile(t, dir, "introspect.yaml", "cache_size: 8\n")
	writeFile(t, dir, "notes.txt", "ignored")
	hidden := writeFile(t, dir, ".git/models/hidden.yaml", "name: com.example.Hidden\n")

	cb, err := New(dir, DefaultSettings())
	require.NoError(t, err)
	require.NoError(t, cb.ScanAll())

	var classNames []string
	for _, cm := range cb.AllClasses() {
		classNames = append(classNames, cm.Name)
	}
	assert.ElementsMatch(t, []string{"com.example.Base", "com.example.Person"}, classNames)

	info := cb.GetFile(broken)
	require.NotNil(t, info)
	assert.Error(t, info.LoadErr)
	assert.Empty(t, info.Classes)

	assert.Nil(t, cb.GetFile(config))
	assert.Nil(t, cb.GetFile(filepath.Join(dir, "notes.txt")))
	assert.Nil(t, cb.GetFile(hidden))
	assert.Nil(t, cb.FindClass("com.example.Hidden"))
}

func TestFindClass(t *testing.T) {
	cb, _ := newTestCodebase(t)

	cm := cb.FindClass("com.example.Person")
	require.NotNil(t, cm)
	assert.Equal(t, "Person", cm.SimpleName)
	assert.Equal(t, "com.example", cm.Package)
	assert.Nil(t, cb.FindClass("com.example.Missing"))
}

func TestMembers(t *testing.T) {
	cb, _ := newTestCodebase(t)

	members, err := cb.Members("com.example.Person", query.Members())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"com.example.Base.getId",
		"com.example.Base.setId",
		"com.example.Base.id",
		"com.example.Person.greet",
		"com.example.Person.helper",
		"com.example.Person.nickname",
	}, names(members))

	declared, err := cb.Members("com.example.Person", query.Methods().OnlyDeclared())
	require.NoError(t, err)
	assert.Equal(t, []string{"com.example.Person.greet", "com.example.Person.helper"}, names(declared))
}

func TestClassNotFound(t *testing.T) {
	cb, _ := newTestCodebase(t)

	_, err := cb.Members("com.example.Missing", query.Members())
	assert.ErrorIs(t, err, ErrClassNotFound)

	_, err = cb.Properties("com.example.Missing")
	assert.ErrorIs(t, err, ErrClassNotFound)

	_, err = cb.Completions("com.example.Missing")
	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestProperties(t *testing.T) {
	cb, _ := newTestCodebase(t)

	props, err := cb.Properties("com.example.Person")
	require.NoError(t, err)
	require.Len(t, props, 2)

	assert.Equal(t, "id", props[0].Name())
	assert.Equal(t, "long", props[0].Type().String())
	assert.Equal(t, element.AccessMethod, props[0].ReadAccess())
	assert.Equal(t, element.AccessMethod, props[0].WriteAccess())

	assert.Equal(t, "nickname", props[1].Name())
	assert.Equal(t, element.AccessField, props[1].ReadAccess())
	assert.Equal(t, element.AccessField, props[1].WriteAccess())
}

func TestPropertiesWith(t *testing.T) {
	cb, _ := newTestCodebase(t)

	cfg := DefaultSettings().Properties
	cfg.AccessKinds = []element.AccessKind{element.AccessMethod}
	props, err := cb.PropertiesWith("com.example.Person", cfg)
	require.NoError(t, err)
	require.Len(t, props, 1)
	assert.Equal(t, "id", props[0].Name())

	// The session policy is unchanged.
	props, err = cb.Properties("com.example.Person")
	require.NoError(t, err)
	assert.Len(t, props, 2)
}

func TestCompletions(t *testing.T) {
	cb, _ := newTestCodebase(t)

	items, err := cb.Completions("com.example.Person")
	require.NoError(t, err)

	type item struct {
		label string
		kind  CompletionKind
		text  string
	}
	var got []item
	for _, it := range items {
		got = append(got, item{it.Label, it.Kind, it.InsertText})
	}
	assert.Equal(t, []item{
		{"getId", CompletionKindMethod, "getId()"},
		{"setId", CompletionKindMethod, "setId(${1:id})"},
		{"greet", CompletionKindMethod, "greet(${1:other})"},
		{"nickname", CompletionKindField, "nickname"},
		{"id", CompletionKindProperty, "id"},
		{"nickname", CompletionKindProperty, "nickname"},
	}, got)
}

func TestCompletionKindString(t *testing.T) {
	assert.Equal(t, "method", CompletionKindMethod.String())
	assert.Equal(t, "field", CompletionKindField.String())
	assert.Equal(t, "property", CompletionKindProperty.String())
}

func TestLoadAndRemoveFile(t *testing.T) {
	cb, dir := newTestCodebase(t)

	extra := writeFile(t, dir, "extra.yaml", "name: com.example.Extra\nsuperClass: com.example.Person\n")
	require.NoError(t, cb.LoadFile(extra))
	require.NotNil(t, cb.FindClass("com.example.Extra"))

	props, err := cb.Properties("com.example.Extra")
	require.NoError(t, err)
	assert.Len(t, props, 2)

	require.NoError(t, cb.RemoveFile(extra))
	assert.Nil(t, cb.FindClass("com.example.Extra"))
	assert.Nil(t, cb.GetFile(extra))
}

func TestWatcherPoll(t *testing.T) {
	cb, dir := newTestCodebase(t)

	changes := 0
	w := NewFileWatcher(cb, OnChange(func() { changes++ }))

	// The first poll records every file it sees.
	assert.True(t, w.Poll())
	assert.False(t, w.Poll())
	assert.Equal(t, 1, changes)

	extra := writeFile(t, dir, "extra.yaml", "name: com.example.Extra\n")
	writeFile(t, dir, ".hidden/ignored.yaml", "name: com.example.Hidden\n")
	assert.True(t, w.Poll())
	assert.NotNil(t, cb.FindClass("com.example.Extra"))
	assert.Nil(t, cb.FindClass("com.example.Hidden"))

	writeFile(t, dir, "extra.yaml", "name: com.example.Renamed\n")
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(extra, later, later))
	assert.True(t, w.Poll())
	assert.Nil(t, cb.FindClass("com.example.Extra"))
	assert.NotNil(t, cb.FindClass("com.example.Renamed"))

	require.NoError(t, os.Remove(extra))
	assert.True(t, w.Poll())
	assert.Nil(t, cb.FindClass("com.example.Renamed"))
	assert.Equal(t, 4, changes)
}

func TestWatcherStartStop(t *testing.T) {
	cb, _ := newTestCodebase(t)

	changed := make(chan struct{}, 1)
	w := NewFileWatcher(cb, WithPollInterval(10*time.Millisecond), OnChange(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}))
	w.Start()

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never reported the initial scan")
	}
	w.Stop()
}
