// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftest assembles small PDF files for tests. Objects are numbered
// from 1 in the order given; object 1 must be the document catalog.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// Stream returns the body of a stream object with dict entries and data. The
// /Length entry is filled in.
func Stream(dict string, data []byte) string {
	return fmt.Sprintf("<< %s /Length %d >>\nstream\n%s\nendstream", dict, len(data), data)
}

// Build returns a PDF document holding objs with a cross-reference table.
func Build(objs ...string) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objs))
	for i, body := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objs)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return buf.Bytes()
}

// Write builds a document from objs into a file under t.TempDir and returns
// its path.
func Write(t testing.TB, objs ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(path, Build(objs...), 0o644); err != nil {
		t.Fatalf("writing PDF: %v", err)
	}
	return path
}
