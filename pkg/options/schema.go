package options

import (
	"sync"

	bulmaerrors "github.com/alexisbeaulieu97/bulmakit/pkg/errors"
)

// declMu serializes declarations against each other and against merges.
var declMu sync.RWMutex

// Schema is the option schema of one component type. A schema owns the options
// declared on it, includes reusable option sets and may extend a parent schema.
// Option names must be unique across that whole chain.
type Schema struct {
	name       string
	parent     *Schema
	children   []*Schema
	own        *OptionSet
	includes   []*OptionSet
	abstract   bool
	allowExtra bool
	validators *Registry
	version    uint64

	memoMu    sync.Mutex
	memo      *Resolved
	memoStamp uint64
}

// SchemaOption configures a schema at creation.
type SchemaOption func(*Schema)

// Extends makes the schema inherit every option resolved by parent.
func Extends(parent *Schema) SchemaOption {
	return func(s *Schema) { s.parent = parent }
}

// Abstract marks the schema as a base that refuses option declarations.
func Abstract() SchemaOption {
	return func(s *Schema) { s.abstract = true }
}

// AllowExtra permits keys that no option declares.
func AllowExtra() SchemaOption {
	return func(s *Schema) { s.allowExtra = true }
}

// WithValidators sets the registry used to resolve named validators.
func WithValidators(r *Registry) SchemaOption {
	return func(s *Schema) { s.validators = r }
}

// NewSchema creates a schema for the named component.
func NewSchema(name string, opts ...SchemaOption) *Schema {
	s := &Schema{name: name, own: NewOptionSet(name)}
	for _, apply := range opts {
		apply(s)
	}
	if s.parent != nil {
		declMu.Lock()
		s.parent.children = append(s.parent.children, s)
		declMu.Unlock()
	}
	return s
}

// Name returns the component name.
func (s *Schema) Name() string { return s.name }

// Parent returns the extended schema, or nil.
func (s *Schema) Parent() *Schema { return s.parent }

// IsAbstract reports whether the schema is an abstract base.
func (s *Schema) IsAbstract() bool { return s.abstract }

// AllowExtraOptions permits undeclared keys for this schema and every schema
// extending it.
func (s *Schema) AllowExtraOptions() {
	declMu.Lock()
	defer declMu.Unlock()
	s.allowExtra = true
}

// ExtraOptionsAllowed reports whether undeclared keys are accepted.
func (s *Schema) ExtraOptionsAllowed() bool {
	declMu.RLock()
	defer declMu.RUnlock()
	for cur := s; cur != nil; cur = cur.parent {
		if cur.allowExtra {
			return true
		}
	}
	return false
}

// Validators returns the registry named validators are resolved against.
func (s *Schema) Validators() *Registry {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.validators != nil {
			return cur.validators
		}
	}
	return DefaultValidators
}

// Include composes option sets into the schema. Every option of every set must
// be new to the schema's chain, its descendants and the other sets. Nothing is
// included when any of them collides.
func (s *Schema) Include(sets ...*OptionSet) error {
	declMu.Lock()
	defer declMu.Unlock()

	pending := make(map[string]string)
	for _, set := range sets {
		for _, opt := range set.list() {
			if s.abstract {
				return bulmaerrors.NewAbstractComponentError(opt.AccessorName(), s.name)
			}
			if existing, ok := s.conflict(opt.name); ok {
				return bulmaerrors.NewDuplicateOptionError(opt.AccessorName(), s.name, existing.owner)
			}
			if owner, ok := pending[opt.name]; ok {
				return bulmaerrors.NewDuplicateOptionError(opt.AccessorName(), s.name, owner)
			}
			pending[opt.name] = set.name
		}
	}

	for _, set := range sets {
		s.includes = append(s.includes, set)
		set.includers = append(set.includers, s)
	}
	s.version++
	return nil
}

// MustInclude is like Include but panics on error.
func (s *Schema) MustInclude(sets ...*OptionSet) *Schema {
	if err := s.Include(sets...); err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) declare(opt *Option) error {
	declMu.Lock()
	defer declMu.Unlock()

	if s.abstract {
		return bulmaerrors.NewAbstractComponentError(opt.AccessorName(), s.name)
	}
	if existing, ok := s.conflict(opt.name); ok {
		return bulmaerrors.NewDuplicateOptionError(opt.AccessorName(), s.name, existing.owner)
	}

	s.own.insert(opt)
	return nil
}

// find looks name up along the chain: own options, included sets, then the parent.
func (s *Schema) find(name string) (*Option, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if opt, ok := cur.own.lookup(name); ok {
			return opt, true
		}
		for _, set := range cur.includes {
			if opt, ok := set.lookup(name); ok {
				return opt, true
			}
		}
	}
	return nil, false
}

// conflict finds name anywhere it would clash with a new declaration on s:
// up the chain or in any schema extending s.
func (s *Schema) conflict(name string) (*Option, bool) {
	if opt, ok := s.find(name); ok {
		return opt, true
	}
	return s.findBelow(name)
}

// findBelow looks name up in every descendant's own options and included sets.
func (s *Schema) findBelow(name string) (*Option, bool) {
	for _, child := range s.children {
		if opt, ok := child.own.lookup(name); ok {
			return opt, true
		}
		for _, set := range child.includes {
			if opt, ok := set.lookup(name); ok {
				return opt, true
			}
		}
		if opt, ok := child.findBelow(name); ok {
			return opt, true
		}
	}
	return nil, false
}

// Resolved returns every option available to the schema, merged across the
// parent chain and included sets. The result is memoized until an option is
// declared somewhere along that chain.
func (s *Schema) Resolved() *Resolved {
	declMu.RLock()
	defer declMu.RUnlock()

	s.memoMu.Lock()
	defer s.memoMu.Unlock()

	stamp := s.stamp()
	if s.memo != nil && s.memoStamp == stamp {
		return s.memo
	}

	r := &Resolved{index: make(map[string]*Option)}
	s.collect(r)
	s.memo, s.memoStamp = r, stamp
	return r
}

// stamp sums the declaration counters along the chain. Counters only grow, so
// any declaration changes the sum.
func (s *Schema) stamp() uint64 {
	var sum uint64
	for cur := s; cur != nil; cur = cur.parent {
		sum += cur.version + cur.own.version
		for _, set := range cur.includes {
			sum += set.version
		}
	}
	return sum
}

// collect appends options root ancestor first, included sets before own options.
func (s *Schema) collect(r *Resolved) {
	if s.parent != nil {
		s.parent.collect(r)
	}
	for _, set := range s.includes {
		for _, opt := range set.list() {
			r.add(opt)
		}
	}
	for _, opt := range s.own.list() {
		r.add(opt)
	}
}

// Resolved is an ordered, read-only view of a schema's options.
type Resolved struct {
	order []*Option
	index map[string]*Option
}

func (r *Resolved) add(opt *Option) {
	if _, ok := r.index[opt.name]; ok {
		return
	}
	r.index[opt.name] = opt
	r.order = append(r.order, opt)
}

// Len returns the number of options.
func (r *Resolved) Len() int { return len(r.order) }

// Lookup returns the option with the given name.
func (r *Resolved) Lookup(name string) (*Option, bool) {
	opt, ok := r.index[name]
	return opt, ok
}

// Names returns option names in resolution order.
func (r *Resolved) Names() []string {
	names := make([]string, 0, len(r.order))
	for _, opt := range r.order {
		names = append(names, opt.name)
	}
	return names
}

// Options returns the options in resolution order.
func (r *Resolved) Options() []*Option {
	return append([]*Option(nil), r.order...)
}
