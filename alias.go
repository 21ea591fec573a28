package jstype

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"git.fractalqb.de/fractalqb/eloc"
	"gopkg.in/yaml.v3"
)

// Aliases maps alias names to types. Aliases keep the order in which names
// were set; Match and Simplify use the first alias in that order whose type
// is Equal to the type in question. The zero value is an empty dictionary.
type Aliases struct {
	names []string
	types []Type
}

// Set sets the type of alias name. If name is already set, it keeps its
// position.
func (as *Aliases) Set(name string, t Type) *Aliases {
	KindOf(t)
	for i, n := range as.names {
		if n == name {
			as.types[i] = t
			return as
		}
	}
	as.names = append(as.names, name)
	as.types = append(as.types, t)
	return as
}

func (as *Aliases) Len() int {
	if as == nil {
		return 0
	}
	return len(as.names)
}

func (as *Aliases) Get(name string) Type {
	if as == nil {
		return nil
	}
	for i, n := range as.names {
		if n == name {
			return as.types[i]
		}
	}
	return nil
}

func (as *Aliases) Match(t Type) (string, bool) {
	if as == nil {
		return "", false
	}
	for i, at := range as.types {
		if Equal(at, t) {
			return as.names[i], true
		}
	}
	return "", false
}

func (as *Aliases) All() iter.Seq2[string, Type] {
	return func(yield func(string, Type) bool) {
		if as == nil {
			return
		}
		for i, n := range as.names {
			if !yield(n, as.types[i]) {
				return
			}
		}
	}
}

// Simplify replaces every sub-structure of t that is Equal to an alias'
// type by the alias name. Matching is done top-down, i.e. the largest
// matching structure is replaced.
func Simplify(t Type, as *Aliases) Type {
	if as.Len() == 0 {
		return t
	}
	return as.simplify(t)
}

func (as *Aliases) simplify(t Type) Type {
	if name, ok := as.Match(t); ok {
		return Scalar(name)
	}
	switch t := t.(type) {
	case Empty, Scalar:
		return t
	case List:
		res := make(List, len(t))
		for i, m := range t {
			res[i] = as.simplify(m)
		}
		return res
	case OneOf:
		res := make(OneOf, len(t))
		for i, v := range t {
			res[i] = as.simplify(v)
		}
		return res
	case Record:
		res := make(Record, len(t))
		for i, f := range t {
			res[i] = Field{Name: f.Name, Type: as.simplify(f.Type)}
		}
		return res
	}
	panic(invalidType(t))
}

// LoadAliases reads aliases from a YAML mapping of alias names to example
// values. The type of each alias is inferred from its example using cfg,
// while cfg.Aliases is ignored. An empty document yields no aliases.
//
//	Point: {x: 1, y: 2}
//	Tags: ["a", "b"]
func LoadAliases(r io.Reader, cfg *Config) (*Aliases, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return new(Aliases), nil
		}
		return nil, eloc.At(err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return new(Aliases), nil
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, eloc.Errorf("aliases must be a mapping, line %d", root.Line)
	}
	icfg := cfg.inferOnly()
	res := new(Aliases)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		var example any
		if err := val.Decode(&example); err != nil {
			return nil, eloc.Errorf("alias '%s': %w", key.Value, err)
		}
		res.Set(key.Value, Infer(icfg, example))
	}
	return res, nil
}

// RecurringAliases names all composite sub-structures of t that occur at
// least minCount times. Names are prefix followed by a sequence number, ordered
// by Compare of the types.
func RecurringAliases(t Type, prefix string, minCount int) *Aliases {
	dh := make(DedupHash)
	dh.Add(t)
	res := new(Aliases)
	for i, r := range dh.Recurring(minCount) {
		res.Set(fmt.Sprintf("%s%d", prefix, i+1), r.Type)
	}
	return res
}
