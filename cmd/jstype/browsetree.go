/*
A tool to infer the structural type of a set of example JSON values.
Copyright (C) 2025  Marcus Perlick

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package main

import (
	"fmt"
	"strings"

	"git.fractalqb.de/fractalqb/jstype"
	"github.com/rivo/tview"
)

type lbFmtFunc func(string) string

// searchBuild collects the tree nodes of record fields by field name.
type searchBuild = map[string][]*tview.TreeNode

func browseTree(t jstype.Type, lff lbFmtFunc, srb searchBuild) (res *tview.TreeNode) {
	switch t := t.(type) {
	case jstype.Empty:
		res = tview.NewTreeNode(" " + lff(jstype.EmptyLabel))
		initRef(res, nil, t)
	case jstype.Scalar:
		res = tview.NewTreeNode(" " + lff(jstype.ScalarLabel(t)))
		initRef(res, nil, t)
	case jstype.List:
		res = browseList(t, lff, srb)
	case jstype.Record:
		res = browseRecord(t, lff, srb)
	case jstype.OneOf:
		res = browseOneOf(t, lff, srb)
	default:
		res = tview.NewTreeNode(lff(fmt.Sprintf("Unsupported type: %T", t)))
		res.SetSelectable(false)
	}
	return res
}

func browseList(l jstype.List, lff lbFmtFunc, srb searchBuild) (res *tview.TreeNode) {
	if len(l) == 0 {
		res = tview.NewTreeNode(" " + lff(jstype.ListLabel(l)))
		initRef(res, nil, l)
		return res
	}
	res = tview.NewTreeNode("┬ " + lff(jstype.ListLabel(l)) + ":")
	initRef(res, nil, l)
	for _, m := range l {
		res.AddChild(browseTree(m, noFmt, srb))
	}
	return res
}

func browseRecord(r jstype.Record, lff lbFmtFunc, srb searchBuild) (res *tview.TreeNode) {
	fldNode := stdFolder(lff(jstype.RecordLabel(r)))
	res = tview.NewTreeNode(fldNode.label(true))
	initRef(res, &fldNode, r)
	var sb strings.Builder
	for _, f := range r {
		fmt.Fprintf(&sb, "[::b]\"%s\"[::-]:", f.Name)
		fldMember := folder{
			text:  sb.String(),
			open:  "┯ ",
			close: "━ ",
		}
		sb.Reset()
		nm := tview.NewTreeNode(fldMember.label(true))
		initRef(nm, &fldMember, f.Name)
		nm.AddChild(browseTree(f.Type, noFmt, srb))
		fldMember.fold(nm)
		res.AddChild(nm)
		srb[f.Name] = append(srb[f.Name], nm)
	}
	fldNode.fold(res)
	return res
}

func browseOneOf(u jstype.OneOf, lff lbFmtFunc, srb searchBuild) (res *tview.TreeNode) {
	fldNode := stdFolder(lff(jstype.OneOfLabel(u)) + ":")
	res = tview.NewTreeNode(fldNode.label(true))
	initRef(res, &fldNode, u)
	for _, v := range u {
		res.AddChild(browseTree(v, noFmt, srb))
	}
	fldNode.fold(res)
	return res
}

type folder struct {
	open, close, text string
}

func stdFolder(text string) folder {
	return folder{
		open:  "▼ ",
		close: "▶ ",
		text:  text,
	}
}

func (f *folder) label(open bool) string {
	if open {
		return f.open + f.text
	}
	return f.close + f.text
}

func (f *folder) fold(n *tview.TreeNode) {
	n.SetSelectable(true)
	n.SetSelectedFunc(func() {
		n.SetExpanded(!n.IsExpanded())
		n.SetText(f.label(n.IsExpanded()))
	})
}

func noFmt(s string) string { return s }

// nodePath renders the path to the last node of p in JSONPath notation.
func nodePath(p []*tview.TreeNode) string {
	var sb strings.Builder
	sb.WriteByte('$')
	for i, n := range p {
		switch info := getInfo(n).(type) {
		case string:
			fmt.Fprintf(&sb, ".%s", info)
		case jstype.List:
			if i < len(p)-1 {
				sb.WriteString("[*]")
			}
		}
	}
	return sb.String()
}

type ref struct {
	fld  *folder
	info any
}

func initRef(n *tview.TreeNode, f *folder, info any) {
	n.SetReference(ref{f, info})
}

func getFolder(n *tview.TreeNode) *folder {
	tmp := n.GetReference()
	if tmp == nil {
		return nil
	}
	r, ok := tmp.(ref)
	if ok {
		return r.fld
	}
	return nil
}

func getInfo(n *tview.TreeNode) any {
	tmp := n.GetReference()
	if tmp == nil {
		return nil
	}
	r, ok := tmp.(ref)
	if ok {
		return r.info
	}
	return nil
}

func treeSetExpand(n *tview.TreeNode, exp bool) {
	if f := getFolder(n); f != nil {
		n.SetExpanded(exp)
		n.SetText(f.label(exp))
	}
	for _, c := range n.GetChildren() {
		treeSetExpand(c, exp)
	}
}

// expandPath unfolds all nodes on the path to make its last node visible.
func expandPath(path []*tview.TreeNode) {
	for _, n := range path[:max(len(path)-1, 0)] {
		if !n.IsExpanded() {
			n.SetExpanded(true)
			if f := getFolder(n); f != nil {
				n.SetText(f.label(true))
			}
		}
	}
}
