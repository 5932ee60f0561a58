// Package walker enumerates the members visible in a class hierarchy.
//
// A walk collects one level of raw members per class or interface, ordered
// from the most ancestral type to the analyzed class, converts every raw
// member to a typed element exactly once and folds the levels together,
// dropping members that a more derived declaration hides or overrides.
//
// A Walker is not safe for concurrent use. Callers analyzing classes in
// parallel use one Walker per goroutine or synchronize externally.
package walker

import (
	"fmt"
	"slices"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/introspect/element"
	"github.com/dhamidi/introspect/query"
)

type Walker struct {
	fe          Frontend
	cache       *conversionCache
	conversions int
	log         commonlog.Logger
}

type options struct {
	cacheSize int
	log       commonlog.Logger
}

type Option func(*options)

// WithCacheSize bounds the conversion cache. Non-positive sizes select
// DefaultCacheSize.
func WithCacheSize(n int) Option {
	return func(o *options) { o.cacheSize = n }
}

func WithLogger(log commonlog.Logger) Option {
	return func(o *options) { o.log = log }
}

func New(fe Frontend, opts ...Option) (*Walker, error) {
	o := options{
		cacheSize: DefaultCacheSize,
		log:       commonlog.GetLogger("introspect.walker"),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cacheSize <= 0 {
		o.cacheSize = DefaultCacheSize
	}
	cache, err := newConversionCache(o.cacheSize)
	if err != nil {
		return nil, err
	}
	return &Walker{fe: fe, cache: cache, log: o.log}, nil
}

// CacheLen returns the number of cached conversions.
func (w *Walker) CacheLen() int { return w.cache.len() }

// Conversions returns how often the front end was asked to convert a node.
func (w *Walker) Conversions() int { return w.conversions }

// Evictions returns how many cache entries were evicted to make room.
func (w *Walker) Evictions() int { return w.cache.evictions }

// Enclosed returns the elements of class matching q, ancestors first.
// Members redeclared by a more derived type appear at the position of the
// most derived declaration.
func (w *Walker) Enclosed(class element.Node, q query.Query) ([]element.Element, error) {
	if class == nil || w.fe.Excluded(class) {
		return nil, nil
	}
	levels := w.levels(class, q, make(map[element.Node]bool))
	accepted, err := w.fold(levels, q)
	if err != nil {
		return nil, err
	}
	return w.filter(accepted, q)
}

// levels returns the raw members of class and its ancestors, one level per
// type, most ancestral first. onPath guards against cyclic models.
func (w *Walker) levels(class element.Node, q query.Query, onPath map[element.Node]bool) [][]element.Node {
	if class == nil || onPath[class] || w.fe.Excluded(class) {
		return nil
	}
	onPath[class] = true
	defer delete(onPath, class)

	var levels [][]element.Node
	if !q.IsOnlyDeclared() && q.Kind() != element.KindConstructor {
		if super, ok := w.fe.SuperClass(class); ok {
			levels = append(levels, w.levels(super, q, onPath)...)
		}
		for _, iface := range w.fe.Interfaces(class) {
			levels = append(levels, w.levels(iface, q, onPath)...)
		}
	}

	var own []element.Node
	for _, m := range w.fe.EnclosedMembers(class, q) {
		if q.MatchesName(w.fe.ElementName(m)) {
			own = append(own, m)
		}
	}
	return append(levels, own)
}

func (w *Walker) fold(levels [][]element.Node, q query.Query) ([]element.Element, error) {
	var accepted []element.Element
	seen := make(map[element.Node]bool)
	for depth, level := range levels {
		derived := depth == len(levels)-1
		var added []element.Element
	members:
		for _, node := range level {
			if !q.IsIncludeDuplicates() {
				if seen[node] {
					continue
				}
				seen[node] = true
			}
			el, err := w.convert(q.Kind(), node)
			if err != nil {
				return nil, err
			}
			// Constructors are not inherited.
			if el.Kind() == element.KindConstructor && !derived {
				continue
			}
			for i := 0; i < len(accepted); i++ {
				prev := accepted[i]
				if prev.Name() != el.Name() {
					continue
				}
				if w.replaces(q, el, prev) {
					accepted = slices.Delete(accepted, i, i+1)
					i--
					continue
				}
				if w.replaces(q, prev, el) {
					continue members
				}
			}
			added = append(added, el)
		}
		accepted = append(accepted, added...)
	}
	return accepted, nil
}

// replaces reports whether newer makes older invisible under q.
func (w *Walker) replaces(q query.Query, newer, older element.Element) bool {
	nk, pk := newer.Kind(), older.Kind()
	if !q.IsIncludeHidden() && nk == pk && (nk == element.KindField || nk == element.KindMethod) {
		if w.fe.Hides(newer, older) {
			return true
		}
	}
	if !q.IsIncludeOverridden() && overridable(nk) && overridable(pk) {
		return w.fe.Overrides(newer, older)
	}
	return false
}

func overridable(k element.Kind) bool {
	return k == element.KindMethod || k == element.KindProperty
}

func (w *Walker) convert(kind element.Kind, node element.Node) (element.Element, error) {
	if el, ok := w.cache.get(kind, node); ok {
		if kind.Accepts(el.Kind()) {
			return el, nil
		}
		w.log.Debugf("cached %s for %s does not satisfy %s, converting again", el.Kind(), el.Name(), kind)
		w.cache.remove(kind, node)
	}

	el, err := w.fe.ToElement(node, kind)
	w.conversions++
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", w.fe.ElementName(node), err)
	}
	if el == nil {
		return nil, fmt.Errorf("convert %s: %w", w.fe.ElementName(node), element.ErrUnknownElement)
	}

	if !kind.Accepts(el.Kind()) {
		// Returned for the caller to reject, but never cached under a key it
		// cannot serve.
		return el, nil
	}
	w.store(kind, node, el)
	if kind.IsComposite() && kind != el.Kind() {
		if _, ok := w.cache.get(el.Kind(), node); !ok {
			w.store(el.Kind(), node, el)
		}
	}
	return el, nil
}

func (w *Walker) store(kind element.Kind, node element.Node, el element.Element) {
	if evicted := w.cache.put(kind, node, el); evicted {
		w.log.Debugf("conversion cache full, evicted oldest entry before %s %s", kind, el.Name())
	}
}

// filter applies the remaining predicates of q in a fixed order: instance
// or static, abstract or concrete, accessibility, modifiers, names,
// annotations and finally types.
func (w *Walker) filter(elements []element.Element, q query.Query) ([]element.Element, error) {
	result := make([]element.Element, 0, len(elements))
	for _, el := range elements {
		if q.IsOnlyInstance() && el.IsStatic() {
			continue
		}
		if q.IsOnlyStatic() && !el.IsStatic() {
			continue
		}
		if q.IsOnlyAbstract() && !el.IsAbstract() {
			continue
		}
		if q.IsOnlyConcrete() && el.IsAbstract() {
			continue
		}
		if q.IsOnlyAccessible() && !element.IsAccessible(el, q.AccessibleFrom(), w.fe) {
			continue
		}
		if !q.MatchesModifiers(el.Modifiers()) {
			continue
		}
		if !q.MatchesName(el.Name()) {
			continue
		}
		if !q.MatchesAnnotations(el.Annotations()) {
			continue
		}
		if q.HasTypePredicates() {
			t, err := element.SubjectType(el)
			if err != nil {
				return nil, fmt.Errorf("filter %s: %w", el.Name(), err)
			}
			if !q.MatchesType(t) {
				continue
			}
		}
		result = append(result, el)
	}
	return result, nil
}
