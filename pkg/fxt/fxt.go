// Package fxt has fmt helpers for line oriented output.
package fxt

import (
	"fmt"
	"io"
)

func Fprintfln(w io.Writer, tmpl string, a ...interface{}) {
	fmt.Fprintf(w, tmpl+"\n", a...)
}

