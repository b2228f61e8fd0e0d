package format

import (
	"bytes"
	"encoding"
	"encoding/json"
	"sort"
	"strings"
	"testing"

	"github.com/dhamidi/showif/showif"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func mustParse(t *testing.T, text string) showif.Expr {
	t.Helper()
	e, err := showif.Parse(text)
	if err != nil {
		t.Fatalf("parse %q: %v", text, err)
	}
	return e
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(mustParse(t, `question[q.x] EQ "Yes"`)); err != nil {
		t.Fatalf("encode: %v", err)
	}

	want := `{
  "type": "rule",
  "question": "q.x",
  "values": [
    "Yes"
  ],
  "pos": 0,
  "text": "question[q.x] EQ \"Yes\""
}
`
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestEmptyValues(t *testing.T) {
	expr := mustParse(t, `question[q.x] IN []`)

	var js bytes.Buffer
	if err := NewJSONEncoder(&js).Encode(expr); err != nil {
		t.Fatalf("encode json: %v", err)
	}
	if !strings.Contains(js.String(), `"values": []`) {
		t.Errorf("empty value list missing from JSON output:\n%s", js.String())
	}

	var ym bytes.Buffer
	if err := NewYAMLEncoder(&ym).Encode(expr); err != nil {
		t.Fatalf("encode yaml: %v", err)
	}
	if !strings.Contains(ym.String(), "values: []") {
		t.Errorf("empty value list missing from YAML output:\n%s", ym.String())
	}
}

func TestNodeShapes(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(mustParse(t, `question[a] EQ 1 AND question[b] IN []`)); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var root map[string]any
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, buf.String())
	}

	if diff := cmp.Diff([]string{"left", "operator", "pos", "right", "text", "type"}, keys(root)); diff != "" {
		t.Errorf("binary node keys (-want +got):\n%s", diff)
	}
	right := root["right"].(map[string]any)
	if diff := cmp.Diff([]string{"pos", "question", "text", "type", "values"}, keys(right)); diff != "" {
		t.Errorf("rule node keys (-want +got):\n%s", diff)
	}
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func TestYAMLEncoder(t *testing.T) {
	var buf bytes.Buffer
	expr := mustParse(t, `question[a] IN [1, true] OR (question[b] EQ 'x' AND question[c] EQ 2)`)
	if err := NewYAMLEncoder(&buf).Encode(expr); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var got struct {
		Type     string
		Operator string
		Left     struct {
			Question string
			Values   []any
		}
		Right struct {
			Type     string
			Operator string
			Text     string
		}
	}
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, buf.String())
	}

	if got.Type != "binaryExpression" || got.Operator != "OR" {
		t.Errorf("root = %s %s, want binaryExpression OR", got.Type, got.Operator)
	}
	if got.Left.Question != "a" || len(got.Left.Values) != 2 || got.Left.Values[1] != true {
		t.Errorf("left = %+v", got.Left)
	}
	if got.Right.Operator != "AND" || got.Right.Text != "(question[b] EQ 'x' AND question[c] EQ 2)" {
		t.Errorf("right = %+v", got.Right)
	}
}

func TestEncodersHoldNoExpression(t *testing.T) {
	for _, name := range []string{"json", "yaml"} {
		var buf bytes.Buffer
		enc, err := New(name, &buf)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		if _, ok := enc.(encoding.TextMarshaler); ok {
			t.Errorf("%s encoder implements encoding.TextMarshaler", name)
		}

		for _, text := range []string{`question[a] EQ 1`, `question[b] EQ 2`} {
			if err := enc.Encode(mustParse(t, text)); err != nil {
				t.Fatalf("%s encode %q: %v", name, text, err)
			}
		}
		for _, q := range []string{"a", "b"} {
			if !strings.Contains(buf.String(), "question["+q+"]") {
				t.Errorf("%s output missing question %s:\n%s", name, q, buf.String())
			}
		}
	}
}

func TestNew(t *testing.T) {
	for _, name := range []string{"json", "yaml"} {
		if _, err := New(name, &bytes.Buffer{}); err != nil {
			t.Errorf("New(%q): %v", name, err)
		}
	}
	if _, err := New("xml", &bytes.Buffer{}); err == nil {
		t.Error("New(xml) succeeded")
	}
}
