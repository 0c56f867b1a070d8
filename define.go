package main

import (
	"context"
	"io"
	"strings"

	"github.com/meddict/meddict-tui/internal/dictionary"
	"github.com/meddict/meddict-tui/internal/session"
	"github.com/meddict/meddict-tui/views/lookup"
)

// runDefine performs a single lookup and prints the outcome to w. It returns
// the process exit code.
func runDefine(dict lookup.Dictionary, term string, w io.Writer) int {
	term = strings.TrimSpace(term)
	res, err := dict.Define(context.Background(), term)
	if err != nil {
		r.Fprintf(w, "%s (%v)\n", session.MsgFetchFailed, err)
		return 1
	}
	printResult(w, res)
	return 0
}

func printResult(w io.Writer, res *dictionary.Result) {
	switch res.Kind {
	case dictionary.ResultDefinitions:
		g.Fprintf(w, "Definitions for %q:\n", res.Term)
		if hw := res.Entry.DisplayHeadword(); hw != "" {
			label := hw
			if res.Entry.FunctionalLabel != "" {
				label += " (" + res.Entry.FunctionalLabel + ")"
			}
			y.Fprintln(w, label)
		}
		for _, def := range res.Definitions {
			io.WriteString(w, "  - "+def+"\n")
		}
	case dictionary.ResultRelated:
		y.Fprintf(w, "Related terms for %q:\n", res.Term)
		for _, t := range res.RelatedTerms {
			io.WriteString(w, "  - "+t+"\n")
		}
	default:
		r.Fprintln(w, session.MsgNotFound)
	}
}
