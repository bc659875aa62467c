package options

import bulmaerrors "github.com/alexisbeaulieu97/bulmakit/pkg/errors"

// Declarer is implemented by everything options can be declared on: schemas
// and reusable option sets.
type Declarer interface {
	Name() string
	declare(opt *Option) error
}

// OptionSet is a named group of options that schemas include by composition,
// for example the class-name or data-attribute options shared by many components.
type OptionSet struct {
	name      string
	order     []string
	own       map[string]*Option
	includers []*Schema
	version   uint64
}

// NewOptionSet creates an empty option set.
func NewOptionSet(name string) *OptionSet {
	return &OptionSet{name: name, own: make(map[string]*Option)}
}

// Name returns the set name.
func (s *OptionSet) Name() string { return s.name }

// Options returns the options declared on the set in declaration order.
func (s *OptionSet) Options() []*Option {
	declMu.RLock()
	defer declMu.RUnlock()
	return s.list()
}

func (s *OptionSet) list() []*Option {
	out := make([]*Option, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.own[name])
	}
	return out
}

func (s *OptionSet) lookup(name string) (*Option, bool) {
	opt, ok := s.own[name]
	return opt, ok
}

func (s *OptionSet) insert(opt *Option) {
	opt.owner = s.name
	s.own[opt.name] = opt
	s.order = append(s.order, opt.name)
	s.version++
}

func (s *OptionSet) declare(opt *Option) error {
	declMu.Lock()
	defer declMu.Unlock()

	if existing, ok := s.lookup(opt.name); ok {
		return bulmaerrors.NewDuplicateOptionError(opt.AccessorName(), s.name, existing.owner)
	}
	for _, includer := range s.includers {
		if existing, ok := includer.conflict(opt.name); ok {
			return bulmaerrors.NewDuplicateOptionError(opt.AccessorName(), s.name, existing.owner)
		}
	}

	s.insert(opt)
	return nil
}
