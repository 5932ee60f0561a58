// Package codebase is an analysis session over a directory of class model
// files. It owns one hierarchy walker and one property resolver and
// serializes access to them.
package codebase

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/introspect/bean"
	"github.com/dhamidi/introspect/element"
	"github.com/dhamidi/introspect/java"
	"github.com/dhamidi/introspect/query"
	"github.com/dhamidi/introspect/walker"
)

var ErrClassNotFound = errors.New("class not found")

// Settings configures the engine a Codebase runs.
type Settings struct {
	CacheSize      int
	ExcludeClasses []string
	Properties     bean.Config
}

func DefaultSettings() Settings {
	return Settings{
		CacheSize:  walker.DefaultCacheSize,
		Properties: bean.DefaultConfig(),
	}
}

type Codebase struct {
	mu       sync.Mutex
	rootDir  string
	settings Settings
	files    map[string]*FileInfo
	fe       *java.Frontend
	walker   *walker.Walker
	resolver *bean.Resolver
	log      commonlog.Logger
}

type FileInfo struct {
	Path    string
	Classes []*java.ClassModel
	LoadErr error
}

func New(rootDir string, settings Settings) (*Codebase, error) {
	c := &Codebase{
		rootDir:  rootDir,
		settings: settings,
		files:    make(map[string]*FileInfo),
		log:      commonlog.GetLogger("introspect.codebase"),
	}
	if err := c.rebuildLocked(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

// ScanAll loads every model file below the root directory. Files that fail
// to load are recorded with their error and skipped.
func (c *Codebase) ScanAll() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := filepath.WalkDir(c.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if isHiddenDir(c.rootDir, path, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if isModelFile(path) {
			c.loadFileLocked(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan %s: %w", c.rootDir, err)
	}
	return c.rebuildLocked()
}

// ConfigFileNames are skipped when scanning for model files.
var ConfigFileNames = []string{"introspect.yaml", "introspect.yml"}

// isHiddenDir reports a dot directory below root. Scans and polls skip them.
func isHiddenDir(root, path, name string) bool {
	return path != root && strings.HasPrefix(name, ".")
}

func isModelFile(path string) bool {
	if _, ok := java.FormatForPath(path); !ok {
		return false
	}
	return !slices.Contains(ConfigFileNames, filepath.Base(path))
}

// LoadFile loads or reloads a single model file.
func (c *Codebase) LoadFile(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.loadFileLocked(path); err != nil {
		return err
	}
	return c.rebuildLocked()
}

func (c *Codebase) loadFileLocked(path string) error {
	models, err := java.LoadModels(path)
	c.files[path] = &FileInfo{Path: path, Classes: models, LoadErr: err}
	if err != nil {
		c.log.Warningf("skipping %s: %s", path, err)
		return err
	}
	c.log.Debugf("loaded %d classes from %s", len(models), path)
	return nil
}

func (c *Codebase) RemoveFile(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
	return c.rebuildLocked()
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.files[path]
}

// rebuildLocked recreates the class path and a fresh engine. Cached
// conversions refer to the old models and cannot be reused.
func (c *Codebase) rebuildLocked() error {
	paths := make([]string, 0, len(c.files))
	for path := range c.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	cp := java.NewClassPath()
	for _, path := range paths {
		cp.Add(c.files[path].Classes...)
	}
	fe := java.NewFrontend(cp, java.WithExcludedClasses(c.settings.ExcludeClasses...))
	w, err := walker.New(fe, walker.WithCacheSize(c.settings.CacheSize))
	if err != nil {
		return err
	}
	c.fe = fe
	c.walker = w
	c.resolver = bean.NewResolver(c.settings.Properties, fe)
	c.log.Infof("class path holds %d classes from %d files", len(cp.Classes()), len(paths))
	return nil
}

func (c *Codebase) AllClasses() []*java.ClassModel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fe.ClassPath().Classes()
}

func (c *Codebase) FindClass(name string) *java.ClassModel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fe.ClassPath().Find(name)
}

// Members returns the elements of the named class matching q.
func (c *Codebase) Members(className string, q query.Query) ([]element.Element, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cls := c.fe.ClassPath().Find(className)
	if cls == nil {
		return nil, fmt.Errorf("%w: %s", ErrClassNotFound, className)
	}
	return c.walker.Enclosed(cls, q)
}

// Properties resolves the bean properties of the named class.
func (c *Codebase) Properties(className string) ([]*element.Property, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.propertiesLocked(className, c.resolver)
}

// PropertiesWith resolves bean properties under a policy other than the
// session's.
func (c *Codebase) PropertiesWith(className string, cfg bean.Config) ([]*element.Property, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.propertiesLocked(className, bean.NewResolver(cfg, c.fe))
}

func (c *Codebase) propertiesLocked(className string, r *bean.Resolver) ([]*element.Property, error) {
	cls := c.fe.ClassPath().Find(className)
	if cls == nil {
		return nil, fmt.Errorf("%w: %s", ErrClassNotFound, className)
	}
	in, err := BeanInput(c.walker, c.fe, cls)
	if err != nil {
		return nil, fmt.Errorf("properties of %s: %w", className, err)
	}
	return r.Properties(in), nil
}

// BeanInput collects the methods and fields of cls, ancestors first, as
// the property resolver expects them.
func BeanInput(w *walker.Walker, fe *java.Frontend, cls *java.ClassModel) (bean.Input, error) {
	in := bean.Input{Class: fe.ClassElement(cls)}

	methods, err := w.Enclosed(cls, query.Methods())
	if err != nil {
		return in, err
	}
	for _, el := range methods {
		if m, ok := el.(*element.Method); ok {
			in.Methods = append(in.Methods, m)
		}
	}

	fields, err := w.Enclosed(cls, query.Fields())
	if err != nil {
		return in, err
	}
	for _, el := range fields {
		if f, ok := el.(*element.Field); ok {
			in.Fields = append(in.Fields, f)
		}
	}
	return in, nil
}

type CompletionKind int

const (
	CompletionKindMethod CompletionKind = iota
	CompletionKindField
	CompletionKindProperty
)

func (k CompletionKind) String() string {
	switch k {
	case CompletionKindMethod:
		return "method"
	case CompletionKindField:
		return "field"
	}
	return "property"
}

type CompletionItem struct {
	Label      string
	Kind       CompletionKind
	Detail     string
	InsertText string
}

// Completions lists what code outside the class can use on an instance:
// public instance methods and fields, inherited ones included, followed by
// the readable bean properties.
func (c *Codebase) Completions(className string) ([]CompletionItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cls := c.fe.ClassPath().Find(className)
	if cls == nil {
		return nil, fmt.Errorf("%w: %s", ErrClassNotFound, className)
	}

	members, err := c.walker.Enclosed(cls, query.Members().OnlyInstance().OnlyAccessible(nil))
	if err != nil {
		return nil, err
	}
	var items []CompletionItem
	for _, el := range members {
		switch m := el.(type) {
		case *element.Method:
			items = append(items, CompletionItem{
				Label:      m.Name(),
				Kind:       CompletionKindMethod,
				Detail:     m.String(),
				InsertText: formatMethodInsert(m),
			})
		case *element.Field:
			items = append(items, CompletionItem{
				Label:      m.Name(),
				Kind:       CompletionKindField,
				Detail:     m.Type().String(),
				InsertText: m.Name(),
			})
		}
	}

	props, err := c.propertiesLocked(className, c.resolver)
	if err != nil {
		return nil, err
	}
	for _, p := range props {
		if !p.IsReadable() {
			continue
		}
		items = append(items, CompletionItem{
			Label:      p.Name(),
			Kind:       CompletionKindProperty,
			Detail:     p.Type().String(),
			InsertText: p.Name(),
		})
	}
	return items, nil
}

func formatMethodInsert(m *element.Method) string {
	params := m.Parameters()
	if len(params) == 0 {
		return m.Name() + "()"
	}
	placeholders := make([]string, len(params))
	for i, p := range params {
		name := p.Name
		if name == "" {
			name = p.Type.String()
		}
		placeholders[i] = "${" + strconv.Itoa(i+1) + ":" + name + "}"
	}
	return m.Name() + "(" + strings.Join(placeholders, ", ") + ")"
}
