package lsp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDiagnose(t *testing.T) {
	tests := []struct {
		text    string
		want    int
		start   protocol.Position
		end     protocol.Position
		message string
	}{
		{text: `question[q.x] EQ 1`, want: 0},
		{
			text:    `question[q.x] XYZ 1`,
			want:    1,
			start:   protocol.Position{Line: 0, Character: 14},
			end:     protocol.Position{Line: 0, Character: 17},
			message: `unexpected "XYZ"`,
		},
		{
			text:    `question[q.ü] XYZ 1`,
			want:    1,
			start:   protocol.Position{Line: 0, Character: 14},
			end:     protocol.Position{Line: 0, Character: 17},
			message: `unexpected "XYZ"`,
		},
		{
			text:    `question[q] EQ "😀" XYZ`,
			want:    1,
			start:   protocol.Position{Line: 0, Character: 20},
			end:     protocol.Position{Line: 0, Character: 23},
			message: `unexpected "XYZ"`,
		},
		{
			text:    "question[a] EQ 1 AND\n  (question[b] EQ",
			want:    1,
			start:   protocol.Position{Line: 1, Character: 17},
			end:     protocol.Position{Line: 1, Character: 17},
			message: "unexpected end of input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := diagnose(tt.text)
			if len(got) != tt.want {
				t.Fatalf("got %d diagnostics, want %d", len(got), tt.want)
			}
			if tt.want == 0 {
				return
			}
			d := got[0]
			if d.Range.Start != tt.start || d.Range.End != tt.end {
				t.Errorf("range = %+v, want %+v-%+v", d.Range, tt.start, tt.end)
			}
			if d.Message != tt.message {
				t.Errorf("message = %q, want %q", d.Message, tt.message)
			}
			if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
				t.Error("severity is not error")
			}
		})
	}
}

func TestOffsetAndPosition(t *testing.T) {
	text := "ab\ncde\n\nf"
	tests := []struct {
		pos    protocol.Position
		offset int
	}{
		{protocol.Position{Line: 0, Character: 0}, 0},
		{protocol.Position{Line: 1, Character: 2}, 5},
		{protocol.Position{Line: 3, Character: 0}, 8},
	}

	for _, tt := range tests {
		if got := offsetAt(text, tt.pos); got != tt.offset {
			t.Errorf("offsetAt(%+v) = %d, want %d", tt.pos, got, tt.offset)
		}
		if got := positionAt(text, tt.offset); got != tt.pos {
			t.Errorf("positionAt(%d) = %+v, want %+v", tt.offset, got, tt.pos)
		}
	}

	wide := "a😀b\nü!"
	wideTests := []struct {
		pos    protocol.Position
		offset int
	}{
		{protocol.Position{Line: 0, Character: 1}, 1},
		{protocol.Position{Line: 0, Character: 3}, 5},
		{protocol.Position{Line: 1, Character: 0}, 7},
		{protocol.Position{Line: 1, Character: 1}, 9},
	}
	for _, tt := range wideTests {
		if got := offsetAt(wide, tt.pos); got != tt.offset {
			t.Errorf("offsetAt(%q, %+v) = %d, want %d", wide, tt.pos, got, tt.offset)
		}
		if got := positionAt(wide, tt.offset); got != tt.pos {
			t.Errorf("positionAt(%q, %d) = %+v, want %+v", wide, tt.offset, got, tt.pos)
		}
	}

	if got := offsetAt(text, protocol.Position{Line: 9, Character: 0}); got != len(text) {
		t.Errorf("offset past the last line = %d, want %d", got, len(text))
	}
}

func TestHover(t *testing.T) {
	text := "question[a] IN [1, \"x\"]\nAND question[b] EQ true"

	tests := []struct {
		pos  protocol.Position
		want string
	}{
		{protocol.Position{Line: 0, Character: 3}, "question `a` is one of `[1, \"x\"]`"},
		{protocol.Position{Line: 1, Character: 1}, "`AND` of 2 questions"},
		{protocol.Position{Line: 1, Character: 8}, "question `b` equals `true`"},
	}

	for _, tt := range tests {
		h := hover(text, tt.pos)
		if h == nil {
			t.Errorf("no hover at %+v", tt.pos)
			continue
		}
		content := h.Contents.(protocol.MarkupContent)
		if content.Value != tt.want {
			t.Errorf("hover at %+v = %q, want %q", tt.pos, content.Value, tt.want)
		}
	}

	if h := hover("question[a] EQ", protocol.Position{}); h != nil {
		t.Error("hover on invalid document")
	}
}

func TestHoverNonASCII(t *testing.T) {
	text := `question[ä] IN ["x"] OR question[b] EQ 1`

	tests := []struct {
		pos  protocol.Position
		want string
	}{
		{protocol.Position{Line: 0, Character: 0}, "question `ä` is one of `[\"x\"]`"},
		{protocol.Position{Line: 0, Character: 24}, "question `b` equals `1`"},
	}

	for _, tt := range tests {
		h := hover(text, tt.pos)
		if h == nil {
			t.Fatalf("no hover at %+v", tt.pos)
		}
		if got := h.Contents.(protocol.MarkupContent).Value; got != tt.want {
			t.Errorf("hover at %+v = %q, want %q", tt.pos, got, tt.want)
		}
	}

	h := hover(text, protocol.Position{Line: 0, Character: 24})
	want := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 24},
		End:   protocol.Position{Line: 0, Character: 40},
	}
	if h.Range == nil || *h.Range != want {
		t.Errorf("range = %+v, want %+v", h.Range, want)
	}
}

func TestDocumentLifecycle(t *testing.T) {
	ls := NewServer("test")

	var published []protocol.PublishDiagnosticsParams
	ctx := &glsp.Context{
		Notify: func(method string, params any) {
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				published = append(published, params.(protocol.PublishDiagnosticsParams))
			}
		},
	}

	uri := "file:///tmp/rule.showif"
	err := ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: "question[a] EQ"},
	})
	if err != nil {
		t.Fatalf("did open: %v", err)
	}

	err = ls.textDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "question[a] EQ 1"}},
	})
	if err != nil {
		t.Fatalf("did change: %v", err)
	}

	h, err := ls.textDocumentHover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Character: 2},
		},
	})
	if err != nil || h == nil {
		t.Fatalf("hover = %v, %v", h, err)
	}

	if err := ls.textDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}); err != nil {
		t.Fatalf("did close: %v", err)
	}

	counts := make([]int, len(published))
	for i, p := range published {
		if p.URI != uri {
			t.Errorf("published for %s", p.URI)
		}
		if p.Diagnostics == nil {
			t.Errorf("notification %d has nil diagnostics", i)
		}
		counts[i] = len(p.Diagnostics)
	}
	if diff := cmp.Diff([]int{1, 0, 0}, counts); diff != "" {
		t.Errorf("diagnostic counts mismatch (-want +got):\n%s", diff)
	}

	if _, ok := ls.document(uri); ok {
		t.Error("document still tracked after close")
	}
}
