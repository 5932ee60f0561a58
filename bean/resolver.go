// Package bean synthesizes bean properties from the getters, setters and
// fields of one class.
//
// Methods and fields are expected ancestor first, as produced by a hierarchy
// walk. Later entries for the same property name take precedence over
// earlier ones unless a policy rule says otherwise.
package bean

import (
	"slices"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/introspect/element"
)

// Input is everything the resolver looks at for one class.
type Input struct {
	Class   *element.Class
	Methods []*element.Method
	Fields  []*element.Field
	// PropertyFields names fields the caller declares as property fields
	// regardless of their visibility.
	PropertyFields []string
}

// Record accumulates the state of one property while resolving.
type Record struct {
	Name        string
	Type        element.Type
	HasType     bool
	Getter      *element.Method
	Setter      *element.Method
	Field       *element.Field
	ReadAccess  element.AccessKind
	WriteAccess element.AccessKind
	Excluded    bool

	fieldWritable bool
}

type Resolver struct {
	cfg   Config
	types element.TypeSystem
	log   commonlog.Logger
}

func NewResolver(cfg Config, types element.TypeSystem) *Resolver {
	return &Resolver{
		cfg:   cfg,
		types: types,
		log:   commonlog.GetLogger("introspect.bean"),
	}
}

func (r *Resolver) Config() Config { return r.cfg }

// Properties resolves in with the default factory.
func (r *Resolver) Properties(in Input) []*element.Property {
	return Resolve(r, in, func(rec *Record) *element.Property {
		return NewProperty(in.Class, rec)
	})
}

// Resolve folds the methods and fields of in into bean properties and
// passes every surviving record to create. The result keeps first discovery
// order and never contains two properties of the same name.
func Resolve[T any](r *Resolver, in Input, create func(*Record) T) []T {
	rs := newRecordSet()
	if r.cfg.allows(element.AccessMethod) {
		for _, m := range in.Methods {
			r.method(rs, in.Class, m)
		}
	}
	for _, f := range in.Fields {
		r.field(rs, in, f)
	}

	var result []T
	for _, rec := range rs.records {
		r.finish(rec)
		if rec.ReadAccess == element.AccessNone && rec.WriteAccess == element.AccessNone {
			continue
		}
		if rec.Excluded {
			r.log.Debugf("excluding property %s", rec.Name)
			continue
		}
		result = append(result, create(rec))
	}
	return result
}

type recordSet struct {
	records []*Record
	byName  map[string]*Record
}

func newRecordSet() *recordSet {
	return &recordSet{byName: make(map[string]*Record)}
}

func (rs *recordSet) get(name string) *Record {
	if rec, ok := rs.byName[name]; ok {
		return rec
	}
	rec := &Record{Name: name}
	rs.byName[name] = rec
	rs.records = append(rs.records, rec)
	return rec
}

func (r *Resolver) inRole(anns []element.Annotation) bool {
	if r.cfg.IncludeRoleMembers {
		return false
	}
	for _, name := range r.cfg.RoleAnnotations {
		if element.HasAnnotation(anns, name) {
			return true
		}
	}
	return false
}

func (r *Resolver) method(rs *recordSet, class *element.Class, m *element.Method) {
	if m.IsStatic() && !r.cfg.AllowStaticProperties {
		return
	}
	if r.inRole(m.Annotations()) {
		return
	}
	name := m.Name()
	params := m.Parameters()

	if class != nil && class.IsRecord() && len(params) == 0 && class.IsRecordComponent(name) {
		rec := rs.get(name)
		rec.Type = m.ReturnType()
		rec.HasType = true
		rec.Getter = m
		rec.ReadAccess = element.AccessMethod
		return
	}

	if len(params) == 0 && !m.ReturnType().IsVoid() {
		prefix, ok := matchPrefix(name, r.cfg.ReadPrefixes)
		if !ok && m.ReturnType().IsBoolean() {
			prefix, ok = matchPrefix(name, r.cfg.BooleanReadPrefixes)
		}
		if ok {
			r.getter(rs.get(r.propertyName(m, prefix, r.cfg.ReaderName)), m)
			return
		}
	}

	prefix, ok := matchPrefix(name, r.cfg.WritePrefixes)
	if !ok {
		return
	}
	switch {
	case len(params) == 1:
	case len(params) == 0 && r.cfg.AllowSetterWithZeroArgs:
	case len(params) > 1 && r.cfg.AllowSetterWithMultipleArgs:
	default:
		return
	}
	r.setter(rs.get(r.propertyName(m, prefix, r.cfg.WriterName)), m)
}

func (r *Resolver) propertyName(m *element.Method, prefix string, custom NameResolver) string {
	if custom != nil {
		if name, ok := custom(m); ok {
			return name
		}
	}
	return PropertyName(m.Name(), prefix)
}

func (r *Resolver) getter(rec *Record, m *element.Method) {
	t := m.ReturnType()
	if rec.HasType && r.cfg.RequireMatchingTypes && !r.types.IsAssignable(t, rec.Type) {
		r.log.Debugf("ignoring getter %s of %s: %s is not assignable to %s", m.Name(), m.Declaring(), t, rec.Type)
		return
	}
	rec.Getter = m
	rec.Type = t
	rec.HasType = true
	rec.ReadAccess = element.AccessMethod
}

// setterType is the type a setter writes. Zero-argument setters act as
// boolean flags.
func setterType(m *element.Method) element.Type {
	params := m.Parameters()
	if len(params) == 0 {
		return element.Named("boolean")
	}
	return params[0].Type
}

func (r *Resolver) moreGeneral(a, b element.Type) bool {
	return !a.Equal(b) && r.types.IsAssignable(b, a) && !r.types.IsAssignable(a, b)
}

// setter applies the setter tie-break rules. A candidate that cannot accept
// the type already known from a getter is ignored. Otherwise a strictly more
// general parameter type wins in either direction. For equal or unrelated
// parameter types the first setter seen on a declaring type wins, and a
// setter on a subtype of the previous setter's declaring type replaces it.
func (r *Resolver) setter(rec *Record, m *element.Method) {
	t := setterType(m)
	if r.cfg.RequireMatchingTypes && rec.HasType && (rec.Setter == nil || rec.Getter != nil) && !r.types.IsAssignable(rec.Type, t) {
		r.log.Debugf("ignoring setter %s of %s: %s does not accept %s", m.Name(), m.Declaring(), t, rec.Type)
		return
	}
	if rec.Setter == nil {
		r.acceptSetter(rec, m, t)
		return
	}

	existing := rec.Setter
	existingType := setterType(existing)
	switch {
	case r.moreGeneral(t, existingType):
		r.log.Debugf("setter %s(%s) replaces %s(%s): wider parameter type", m.Name(), t, existing.Name(), existingType)
		r.acceptSetter(rec, m, t)
	case r.moreGeneral(existingType, t):
		r.log.Debugf("keeping setter %s(%s) of %s over narrower %s", existing.Name(), existingType, existing.Declaring(), t)
	case existing.Declaring().Erasure().Equal(m.Declaring().Erasure()):
		r.log.Debugf("keeping first setter %s(%s) declared by %s", existing.Name(), existingType, existing.Declaring())
	case r.types.IsAssignable(m.Declaring().Erasure(), existing.Declaring().Erasure()):
		r.log.Debugf("setter %s of %s overrides the one of %s", m.Name(), m.Declaring(), existing.Declaring())
		r.acceptSetter(rec, m, t)
	}
}

func (r *Resolver) acceptSetter(rec *Record, m *element.Method, t element.Type) {
	rec.Setter = m
	rec.WriteAccess = element.AccessMethod
	if rec.Getter == nil {
		rec.Type = t
		rec.HasType = true
	}
}

func (r *Resolver) fieldAccessible(class *element.Class, f *element.Field) bool {
	switch r.cfg.Visibility {
	case VisibilityAny:
		return true
	case VisibilityPublic:
		return f.Visibility() == element.VisibilityPublic
	}
	if f.Visibility() == element.VisibilityPublic {
		return true
	}
	return class != nil && f.Visibility() != element.VisibilityPrivate && f.Package() == class.Package()
}

func (r *Resolver) field(rs *recordSet, in Input, f *element.Field) {
	if f.IsStatic() && !r.cfg.AllowStaticProperties {
		return
	}
	if r.inRole(f.Annotations()) {
		return
	}
	name := f.Name()
	accessible := r.cfg.allows(element.AccessField) &&
		(slices.Contains(in.PropertyFields, name) || r.fieldAccessible(in.Class, f))
	writable := accessible && !f.IsFinal()

	rec := rs.get(name)
	rec.Field = f
	rec.fieldWritable = writable
	t := f.Type()
	if accessible && rec.ReadAccess == element.AccessNone {
		if !rec.HasType || r.types.IsAssignable(t, rec.Type) {
			rec.ReadAccess = element.AccessField
		}
	}
	if writable && rec.WriteAccess == element.AccessNone {
		if !rec.HasType || r.types.IsAssignable(rec.Type, t) {
			rec.WriteAccess = element.AccessField
		}
	}
	if !rec.HasType {
		rec.Type = t
		rec.HasType = true
	}
}

// finish settles the type and exclusion state of rec once every method and
// field has been seen.
func (r *Resolver) finish(rec *Record) {
	if r.cfg.RequireMatchingTypes && rec.Getter != nil && rec.Setter != nil {
		getterType := rec.Getter.ReturnType()
		if !r.types.IsAssignable(getterType, setterType(rec.Setter)) {
			r.log.Debugf("dropping setter of %s: %s does not accept %s", rec.Name, setterType(rec.Setter), getterType)
			rec.Setter = nil
			rec.WriteAccess = element.AccessNone
			if rec.fieldWritable && rec.Field != nil && r.types.IsAssignable(getterType, rec.Field.Type()) {
				rec.WriteAccess = element.AccessField
			}
			rec.Type = getterType
		}
	}

	switch {
	case rec.WriteAccess == element.AccessField && rec.Field != nil && !rec.Field.Type().Equal(rec.Type):
		rec.Type = rec.Field.Type()
	case rec.WriteAccess == element.AccessMethod && rec.Setter != nil:
		rec.Type = setterType(rec.Setter)
	case rec.Field != nil && rec.Getter != nil && rec.Field.Type().Equal(rec.Getter.ReturnType()):
		if rec.Field.Type().AnnotationCount() > rec.Getter.ReturnType().AnnotationCount() {
			rec.Type = rec.Field.Type()
		} else {
			rec.Type = rec.Getter.ReturnType()
		}
	}

	rec.Excluded = r.excludedByName(rec.Name) || r.excludedByAnnotation(rec) || missingAccess(rec)
}

func (r *Resolver) excludedByName(name string) bool {
	if len(r.cfg.Includes) > 0 && !slices.Contains(r.cfg.Includes, name) {
		return true
	}
	return slices.Contains(r.cfg.Excludes, name)
}

func (r *Resolver) excludedByAnnotation(rec *Record) bool {
	for _, name := range r.cfg.ExcludedAnnotations {
		if rec.Field != nil && rec.Field.HasAnnotation(name) {
			return true
		}
		if rec.Getter != nil && rec.Getter.HasAnnotation(name) {
			return true
		}
		if rec.Setter != nil && rec.Setter.HasAnnotation(name) {
			return true
		}
	}
	return false
}

// missingAccess reports an access side that names an accessor kind whose
// member was not retained.
func missingAccess(rec *Record) bool {
	switch {
	case rec.ReadAccess == element.AccessMethod && rec.Getter == nil:
		return true
	case rec.WriteAccess == element.AccessMethod && rec.Setter == nil:
		return true
	case rec.ReadAccess == element.AccessField && rec.Field == nil:
		return true
	case rec.WriteAccess == element.AccessField && rec.Field == nil:
		return true
	}
	return false
}

// NewProperty builds the public property element for a resolved record.
func NewProperty(class *element.Class, rec *Record) *element.Property {
	info := element.Info{
		Name:       rec.Name,
		Visibility: element.VisibilityPublic,
	}
	for _, el := range []element.Element{fieldElement(rec.Field), methodElement(rec.Getter), methodElement(rec.Setter)} {
		if el == nil {
			continue
		}
		if info.Native == nil {
			info.Native = el.Native()
			info.Declaring = el.Declaring()
			info.Package = el.Package()
		}
		info.Annotations = append(info.Annotations, el.Annotations()...)
	}
	if class != nil {
		info.Declaring = class.Type()
		info.Package = class.Package()
	}
	return element.NewProperty(info, rec.Type, rec.Getter, rec.Setter, rec.Field, rec.ReadAccess, rec.WriteAccess)
}

// fieldElement and methodElement avoid storing typed nil pointers in an
// element.Element interface.
func fieldElement(f *element.Field) element.Element {
	if f == nil {
		return nil
	}
	return f
}

func methodElement(m *element.Method) element.Element {
	if m == nil {
		return nil
	}
	return m
}
