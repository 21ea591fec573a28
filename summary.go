package jstype

import (
	"fmt"
	"io"

	"git.fractalqb.de/fractalqb/tetrta"
)

type SummaryConfig struct {
	TreeStyle *tetrta.TreeStyle
}

// Summary prints types as a tree with one node per line.
type Summary struct {
	w    io.Writer
	tree tetrta.Tree
	SummaryConfig
}

func NewSummary(w io.Writer, cfg *SummaryConfig) *Summary {
	res := &Summary{w: w}
	if cfg != nil {
		res.SummaryConfig = *cfg
		res.tree.Style = cfg.TreeStyle
	}
	return res
}

func (s *Summary) Print(t Type) error {
	return s.printIndet(t, true)
}

func (s *Summary) printIndet(t Type, last bool) (err error) {
	if last {
		io.WriteString(s.w, s.tree.Last(nil))
	} else {
		io.WriteString(s.w, s.tree.Next(nil))
	}
	switch t := t.(type) {
	case Empty:
		_, err = fmt.Fprintln(s.w, EmptyLabel)
	case Scalar:
		_, err = fmt.Fprintln(s.w, ScalarLabel(t))
	case List:
		err = s.list(t)
	case Record:
		err = s.record(t)
	case OneOf:
		err = s.oneOf(t)
	default:
		err = invalidType(t)
	}
	return err
}

const EmptyLabel = "Empty"

func ScalarLabel(t Scalar) string { return string(t) }

func ListLabel(l List) string {
	if len(l) == 0 {
		return "List without elements"
	}
	return fmt.Sprintf("List of %d", len(l))
}

func (s *Summary) list(l List) error {
	if len(l) == 0 {
		_, err := fmt.Fprintln(s.w, ListLabel(l))
		return err
	}
	fmt.Fprintf(s.w, "%s:\n", ListLabel(l))
	return s.children(l)
}

func RecordLabel(r Record) string {
	return fmt.Sprintf("Record with %d fields", len(r))
}

func (s *Summary) record(r Record) error {
	fmt.Fprintf(s.w, "%s:\n", RecordLabel(r))
	s.tree.Descend()
	defer s.tree.Ascend(1)
	for i, f := range r {
		var pf string
		if i == len(r)-1 {
			pf = s.tree.Last(nil)
		} else {
			pf = s.tree.Next(nil)
		}
		fmt.Fprintf(s.w, "%s#%-2d \"%s\":\n", pf, i+1, f.Name)
		s.tree.Descend()
		err := s.printIndet(f.Type, true)
		s.tree.Ascend(1)
		if err != nil {
			return err
		}
	}
	return nil
}

func OneOfLabel(u OneOf) string {
	return fmt.Sprintf("OneOf %d variants", len(u))
}

func (s *Summary) oneOf(u OneOf) error {
	fmt.Fprintf(s.w, "%s:\n", OneOfLabel(u))
	return s.children(u)
}

func (s *Summary) children(ts []Type) error {
	s.tree.Descend()
	defer s.tree.Ascend(1)
	for i, t := range ts {
		if err := s.printIndet(t, i == len(ts)-1); err != nil {
			return err
		}
	}
	return nil
}
