package main

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"path"
	"strings"
	"unicode/utf8"

	"git.fractalqb.de/fractalqb/eloc/must"
	"github.com/rivo/tview"
)

// Help pages are the files in help/, ordered by name. A file name has the
// form <n>-<topic>.txt; the topic becomes part of the page title.
//
//go:embed help
var help embed.FS

type helpView struct {
	*tview.TextView
	topic            string
	txtRows, txtCols int
}

func helpViews() []*helpView {
	hfs := must.RetCtx(help.ReadDir("help")).Msg("list help texts")
	res := make([]*helpView, 0, len(hfs))
	for _, hf := range hfs {
		txt := must.RetCtx(help.ReadFile(path.Join("help", hf.Name()))).Msg("help file")
		res = append(res, newHelpView(helpTopic(hf.Name()), txt))
	}
	for i, h := range res {
		h.SetBorder(true).SetTitle(fmt.Sprintf(" %s %d/%d (🠈 🠊 ESC) ", h.topic, i+1, len(res)))
	}
	return res
}

func helpTopic(file string) string {
	topic := strings.TrimSuffix(file, path.Ext(file))
	if _, t, ok := strings.Cut(topic, "-"); ok {
		topic = t
	}
	if topic == "" {
		return "Help"
	}
	return strings.ToUpper(topic[:1]) + topic[1:]
}

// newHelpView sizes the view to fit txt inside a border.
func newHelpView(topic string, txt []byte) *helpView {
	res := &helpView{
		TextView: tview.NewTextView().SetText(string(txt)),
		topic:    topic,
		txtRows:  2,
		txtCols:  utf8.RuneCountInString(topic) + 16,
	}
	scn := bufio.NewScanner(bytes.NewReader(txt))
	for scn.Scan() {
		res.txtRows++
		res.txtCols = max(res.txtCols, utf8.RuneCount(scn.Bytes())+2)
	}
	return res
}
