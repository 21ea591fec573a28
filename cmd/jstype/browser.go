package main

import (
	"fmt"
	"log"
	"maps"
	"slices"

	"git.fractalqb.de/fractalqb/jstype"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sahilm/fuzzy"
)

const (
	pgTree   = "tree"
	pgStat   = "stat"
	pgSearch = "search"
)

type browser struct {
	app  *tview.Application
	data *tview.TreeNode
	tree *tview.TreeView
	help []*helpView
	pags *tview.Pages
	path *tview.TextView
	foot *tview.Pages
	stat *tview.TextView
	find *tview.InputField

	names   []string
	srb     searchBuild
	hits    []*tview.TreeNode
	hitIdx  int
	helpIdx int
}

func newBrowser(typ jstype.Type, samples int) *browser {
	srb := make(searchBuild)
	data := browseTree(typ, func(s string) string {
		return fmt.Sprintf("%d × %s", samples, s)
	}, srb)
	b := &browser{
		app:   tview.NewApplication(),
		data:  data,
		tree:  tview.NewTreeView().SetRoot(data).SetCurrentNode(data),
		help:  helpViews(),
		pags:  tview.NewPages(),
		path:  tview.NewTextView(),
		foot:  tview.NewPages(),
		stat:  tview.NewTextView().SetText("Press ? for help, / to search"),
		find:  tview.NewInputField().SetLabel("/"),
		names: slices.Sorted(maps.Keys(srb)),
		srb:   srb,
	}

	b.tree.SetInputCapture(b.treeInput)
	b.tree.SetChangedFunc(func(node *tview.TreeNode) {
		b.path.SetText(nodePath(b.tree.GetPath(node)))
	})

	for i, h := range b.help {
		h.SetInputCapture(b.helpInput)
		b.pags.AddPage(helpPage(i), modal(h, h.txtCols, h.txtRows), true, false)
	}
	b.pags.AddPage(pgTree, b.tree, true, true)

	b.path.SetTextStyle(tcell.StyleDefault.Reverse(true).Bold(true))
	b.stat.SetTextStyle(tcell.StyleDefault.Reverse(true))
	b.find.SetDoneFunc(b.searchDone)

	b.foot.AddPage(pgSearch, b.find, true, false).
		AddPage(pgStat, b.stat, true, true)
	return b
}

func helpPage(i int) string { return fmt.Sprintf("help%d", i) }

func (b *browser) run() {
	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.path, 1, 0, false).
		AddItem(b.pags, 0, 1, true).
		AddItem(b.foot, 1, 0, false)
	err := b.app.
		SetRoot(flex, true).
		SetFocus(b.tree).
		Run()
	if err != nil {
		log.Fatal(err)
	}
}

func (b *browser) treeInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Rune() {
	case 'r':
		siblSetExpand(b.tree, true)
		return nil
	case 'm':
		siblSetExpand(b.tree, false)
		return nil
	case 'R':
		treeSetExpand(b.tree.GetCurrentNode(), true)
		return nil
	case 'M':
		treeSetExpand(b.tree.GetCurrentNode(), false)
		return nil
	case '/':
		b.find.SetText("")
		b.foot.SwitchToPage(pgSearch)
		b.app.SetFocus(b.find)
		return nil
	case 'n':
		b.nextHit(1)
		return nil
	case 'N':
		b.nextHit(-1)
		return nil
	case '?':
		if len(b.help) > 0 {
			b.showHelp(0)
		}
		return nil
	}
	return event
}

func (b *browser) helpInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyLeft:
		b.showHelp((b.helpIdx + len(b.help) - 1) % len(b.help))
	case tcell.KeyRight:
		b.showHelp((b.helpIdx + 1) % len(b.help))
	case tcell.KeyEscape:
		b.pags.HidePage(helpPage(b.helpIdx))
		b.app.SetFocus(b.tree)
	}
	return nil
}

func (b *browser) showHelp(i int) {
	b.pags.HidePage(helpPage(b.helpIdx))
	b.helpIdx = i
	b.pags.ShowPage(helpPage(i))
	b.app.SetFocus(b.help[i])
}

func (b *browser) searchDone(key tcell.Key) {
	if key == tcell.KeyEnter {
		b.hits = searchNodes(b.names, b.srb, b.find.GetText())
		b.hitIdx = -1
		b.nextHit(1)
	}
	b.foot.SwitchToPage(pgStat)
	b.app.SetFocus(b.tree)
}

func (b *browser) nextHit(step int) {
	if len(b.hits) == 0 {
		b.stat.SetText("No match")
		return
	}
	b.hitIdx = (b.hitIdx + step + len(b.hits)) % len(b.hits)
	hit := b.hits[b.hitIdx]
	path := b.tree.GetPath(hit)
	expandPath(path)
	b.tree.SetCurrentNode(hit)
	b.path.SetText(nodePath(path))
	b.stat.SetText(fmt.Sprintf("Match %d/%d (n / N)", b.hitIdx+1, len(b.hits)))
}

// searchNodes fuzzy matches pattern against names and returns the field
// nodes of the matching names, best match first.
func searchNodes(names []string, srb searchBuild, pattern string) (res []*tview.TreeNode) {
	if pattern == "" {
		return nil
	}
	for _, m := range fuzzy.Find(pattern, names) {
		res = append(res, srb[m.Str]...)
	}
	return res
}

func siblSetExpand(b *tview.TreeView, exp bool) {
	path := b.GetPath(b.GetCurrentNode())
	if len(path) < 2 {
		return
	}
	parent := path[len(path)-2]
	for _, c := range parent.GetChildren() {
		if f := getFolder(c); f != nil {
			c.SetExpanded(exp)
			c.SetText(f.label(exp))
		}
	}
}

func modal(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}
