package main

import (
	"maps"
	"slices"
	"strings"
	"testing"

	"git.fractalqb.de/fractalqb/jstype"
	"github.com/rivo/tview"
)

var testType = jstype.Record{
	{Name: "user", Type: jstype.Record{
		{Name: "user_name", Type: jstype.TypeString},
		{Name: "tags", Type: jstype.List{jstype.TypeString}},
	}},
	{Name: "items", Type: jstype.List{jstype.Record{
		{Name: "name", Type: jstype.OneOf{jstype.TypeString, jstype.TypeNull}},
	}}},
}

func TestBrowseTree(t *testing.T) {
	srb := make(searchBuild)
	root := browseTree(testType, noFmt, srb)
	if txt := root.GetText(); txt != "▼ Record with 2 fields" {
		t.Errorf("root text '%s'", txt)
	}
	if n := len(root.GetChildren()); n != 2 {
		t.Fatalf("root has %d children", n)
	}
	names := slices.Sorted(maps.Keys(srb))
	if want := []string{"items", "name", "tags", "user", "user_name"}; !slices.Equal(names, want) {
		t.Errorf("search names %v", names)
	}

	name := srb["name"][0]
	tree := tview.NewTreeView().SetRoot(root)
	path := tree.GetPath(name)
	if p := nodePath(path); p != "$.items[*].name" {
		t.Errorf("path '%s'", p)
	}
	if p := nodePath(tree.GetPath(root)); p != "$" {
		t.Errorf("root path '%s'", p)
	}
}

func TestBrowseTree_fold(t *testing.T) {
	root := browseTree(testType, noFmt, make(searchBuild))
	treeSetExpand(root, false)
	if root.IsExpanded() || !strings.HasPrefix(root.GetText(), "▶ ") {
		t.Errorf("root not folded: '%s'", root.GetText())
	}
	user := root.GetChildren()[0]
	tree := tview.NewTreeView().SetRoot(root)
	path := tree.GetPath(user.GetChildren()[0])
	expandPath(path)
	if !root.IsExpanded() || !user.IsExpanded() {
		t.Error("path not expanded")
	}
	if !strings.HasPrefix(root.GetText(), "▼ ") || !strings.HasPrefix(user.GetText(), "┯ ") {
		t.Errorf("labels not updated: '%s' '%s'", root.GetText(), user.GetText())
	}
}

func TestSearchNodes(t *testing.T) {
	srb := make(searchBuild)
	browseTree(testType, noFmt, srb)
	names := slices.Sorted(maps.Keys(srb))
	hits := searchNodes(names, srb, "usnm")
	if len(hits) != 1 || hits[0] != srb["user_name"][0] {
		t.Errorf("unexpected hits %v", hits)
	}
	if hits := searchNodes(names, srb, ""); hits != nil {
		t.Errorf("empty pattern hits %v", hits)
	}
	if hits := searchNodes(names, srb, "xyz"); len(hits) != 0 {
		t.Errorf("no match expected, got %v", hits)
	}
}

func TestHelpViews(t *testing.T) {
	hvs := helpViews()
	if len(hvs) != 2 {
		t.Fatalf("%d help views", len(hvs))
	}
	for i, topic := range []string{"Navigate", "Search"} {
		if hvs[i].topic != topic {
			t.Errorf("help page %d topic '%s', want '%s'", i+1, hvs[i].topic, topic)
		}
	}
	for _, h := range hvs {
		if h.txtRows < 3 || h.txtCols < 3 {
			t.Errorf("help size %dx%d", h.txtCols, h.txtRows)
		}
	}
}

func TestHelpTopic(t *testing.T) {
	for file, want := range map[string]string{
		"1-navigate.txt": "Navigate",
		"2-search.txt":   "Search",
		"keys.txt":       "Keys",
		"3-.txt":         "Help",
	} {
		if got := helpTopic(file); got != want {
			t.Errorf("topic of '%s' is '%s', want '%s'", file, got, want)
		}
	}
}

func TestNewHelpView(t *testing.T) {
	h := newHelpView("Search", []byte("/ : search\nn : next match\n"))
	if h.txtRows != 4 {
		t.Errorf("%d rows", h.txtRows)
	}
	if h.txtCols != 22 {
		t.Errorf("%d columns", h.txtCols)
	}
}
