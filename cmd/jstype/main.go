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
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"git.fractalqb.de/fractalqb/eloc"
	"git.fractalqb.de/fractalqb/jstype"
	"git.fractalqb.de/fractalqb/tetrta"
	"gopkg.in/yaml.v3"
)

var (
	cfg        jstype.Config
	fTreeStyle = "draw"
	fIndent    = "  "
	fAuto      int
	fTree      bool
	fTypes     bool
	fBrowse    bool
	fArgs      string
	fOut       string
	fSchema    string
	fAliases   string
	fTypedef   string
)

const (
	envJstypeTree   = "JSTYPE_TREE"
	envJstypeIndent = "JSTYPE_INDENT"
)

func init() {
	if v, ok := os.LookupEnv(envJstypeTree); ok {
		fTreeStyle = v
	}
	if v, ok := os.LookupEnv(envJstypeIndent); ok {
		fIndent = v
	}
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprint(w, "Infer the type of example JSON or YAML values.\n\n")
	fmt.Fprintln(w, `Usage: jstype [flags] <JSON/YAML file>...
FLAGS:`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.StringVar(&fTreeStyle, "tree-style", fTreeStyle,
		"Select style for tree printing from: ascii, draw, items; Env: "+envJstypeTree+"\n")
	flag.StringVar(&fIndent, "indent", fIndent,
		"Indentation of annotations; Env: "+envJstypeIndent+"\n")
	flag.BoolVar(&fTree, "tree", fTree, "Print the type as tree")
	flag.BoolVar(&fTypes, "types", fTypes, "Print recurring types")
	flag.BoolVar(&fBrowse, "browse", fBrowse, "Browse the type interactively")
	flag.StringVar(&fArgs, "a", fArgs,
		"Read args from file ('-' reads from stdin)")
	flag.StringVar(&fOut, "o", fOut,
		"Print result to file ('-' writes to stdout)")
	flag.StringVar(&fSchema, "schema", fSchema, "Generate JSON Schema file")
	flag.StringVar(&fAliases, "aliases", fAliases,
		"Read aliases from YAML file that maps names to example values")
	flag.IntVar(&fAuto, "auto", fAuto,
		"Define aliases for types that occur at least `N` times")
	flag.StringVar(&fTypedef, "typedef", fTypedef,
		"Print the type as @typedef comment with `NAME`")
	flag.Parse()

	var (
		typ        jstype.Type = jstype.Empty{}
		samples, n int
		err        error
	)
	switch {
	case fArgs == "-":
		typ, samples = readArgs(os.Stdin, typ)
	case fArgs != "":
		typ, samples = readArgsFile(fArgs, typ)
	case len(flag.Args()) > 0:
		for _, arg := range flag.Args() {
			if typ, n, err = readFile(arg, typ); err != nil {
				log.Fatal(err)
			}
			samples += n
		}
	default:
		dec := json.NewDecoder(os.Stdin)
		dec.UseNumber()
		if typ, samples, err = read(dec, typ); err != nil {
			log.Fatal(err)
		}
	}

	aliases, err := loadAliases(fAliases, fAuto, typ)
	if err != nil {
		log.Fatal(err)
	}

	if fSchema != "" {
		if err := writeSchema(fSchema, typ); err != nil {
			log.Fatal(err)
		}
	}

	if fBrowse {
		newBrowser(typ, samples).run()
		return
	}

	var w io.Writer = os.Stdout
	if fOut != "" && fOut != "-" {
		tmp, err := os.Create(fOut)
		if err != nil {
			log.Fatal(err)
		}
		defer tmp.Close()
		w = tmp
	}
	if err := output(w, typ, aliases, samples); err != nil {
		log.Fatal(err)
	}
}

func output(w io.Writer, typ jstype.Type, aliases *jstype.Aliases, samples int) error {
	style := jstype.AnnotationStyle{Indent: fIndent, Newline: "\n"}
	simple := jstype.Simplify(typ, aliases)
	switch {
	case fTree:
		head := fmt.Sprintf("Inferred from %d samples:", samples)
		fmt.Fprintln(w, head)
		fmt.Fprintln(w, strings.Repeat("=", len(head)))
		sum := jstype.NewSummary(w, &jstype.SummaryConfig{
			TreeStyle: treeStyle(fTreeStyle),
		})
		if err := sum.Print(simple); err != nil {
			return err
		}
	case fTypedef != "":
		for name, t := range aliases.All() {
			fmt.Fprintln(w, style.Typedef(name, jstype.Simplify(t, without(aliases, name))))
		}
		fmt.Fprintln(w, style.Typedef(fTypedef, simple))
	default:
		for name, t := range aliases.All() {
			fmt.Fprintf(w, "%s = %s\n", name, style.Render(jstype.Simplify(t, without(aliases, name)), 0))
		}
		fmt.Fprintln(w, style.Render(simple, 0))
	}
	if fTypes {
		printRecurring(w, &style, typ)
	}
	return nil
}

func treeStyle(name string) *tetrta.TreeStyle {
	switch name {
	case "a", "ascii":
		return tetrta.ASCIITree()
	case "d", "draw":
		return tetrta.BoxDrawTree()
	case "i", "items":
		return tetrta.ItemTree()
	}
	return nil
}

// without returns a copy of as that does not contain alias name.
func without(as *jstype.Aliases, name string) *jstype.Aliases {
	res := new(jstype.Aliases)
	for n, t := range as.All() {
		if n != name {
			res.Set(n, t)
		}
	}
	return res
}

func printRecurring(w io.Writer, style *jstype.AnnotationStyle, typ jstype.Type) {
	dedup := make(jstype.DedupHash)
	dedup.Add(typ)
	rs := dedup.Recurring(2)
	fmt.Fprintf(w, "\nFound %d recurring types\n", len(rs))
	for _, r := range rs {
		head := fmt.Sprintf("\nOccurs %d times:", r.Count)
		fmt.Fprintln(w, head)
		fmt.Fprintln(w, strings.Repeat("-", len(head)-1))
		fmt.Fprintln(w, style.Render(r.Type, 0))
	}
}

func loadAliases(file string, auto int, typ jstype.Type) (*jstype.Aliases, error) {
	res := new(jstype.Aliases)
	if file != "" {
		r, err := os.Open(file)
		if err != nil {
			return nil, eloc.At(err)
		}
		defer r.Close()
		if res, err = jstype.LoadAliases(r, &cfg); err != nil {
			return nil, eloc.Errorf("aliases file '%s': %w", file, err)
		}
	}
	if auto > 0 {
		for n, t := range jstype.RecurringAliases(typ, "Type", auto).All() {
			if _, ok := res.Match(t); !ok && res.Get(n) == nil {
				res.Set(n, t)
			}
		}
	}
	return res, nil
}

func writeSchema(file string, typ jstype.Type) error {
	f, err := os.Create(file)
	if err != nil {
		return eloc.At(err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "   ")
	if err := enc.Encode(jstype.JSONSchema(typ)); err != nil {
		return eloc.At(err)
	}
	return nil
}

func readArgsFile(file string, typ jstype.Type) (jstype.Type, int) {
	r, err := os.Open(file)
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()
	return readArgs(r, typ)
}

func readArgs(r io.Reader, typ jstype.Type) (_ jstype.Type, samples int) {
	var (
		n   int
		err error
	)
	scn := bufio.NewScanner(r)
	for scn.Scan() {
		file := scn.Text()
		if typ, n, err = readFile(file, typ); err != nil {
			log.Fatal(err)
		}
		samples += n
	}
	return typ, samples
}

type decoder interface{ Decode(any) error }

func read(dec decoder, typ jstype.Type) (jstype.Type, int, error) {
	samples := 0
	for {
		var jv any
		err := dec.Decode(&jv)
		switch {
		case errors.Is(err, io.EOF):
			return typ, samples, nil
		case err != nil:
			return typ, samples, eloc.Errorf("sample %d: %w", samples+1, err)
		}
		typ = jstype.Concat(typ, jstype.Infer(&cfg, jv))
		samples++
	}
}

func readFile(name string, typ jstype.Type) (_ jstype.Type, n int, err error) {
	rd, err := os.Open(name)
	if err != nil {
		return nil, 0, eloc.At(err)
	}
	defer rd.Close()
	log.Println("read file", name)
	switch filepath.Ext(name) {
	case ".yml", ".yaml":
		return read(yaml.NewDecoder(rd), typ)
	}
	dec := json.NewDecoder(rd)
	dec.UseNumber()
	return read(dec, typ)
}
