// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	for _, id := range Ids() {
		iss := Lookup(id)
		if iss == nil {
			t.Fatalf("Lookup(%d) = nil", id)
		}
		if iss.Id() != id {
			t.Errorf("Lookup(%d).Id() = %d", id, iss.Id())
		}
		if strings.TrimSpace(string(iss.MarkdownMsg())) == "" {
			t.Errorf("issue %d has empty markdown", id)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if got := Lookup(Id(0)); got != nil {
		t.Errorf("Lookup(0) = %v, want nil", got)
	}
	if got := Lookup(Id(9999)); got != nil {
		t.Errorf("Lookup(9999) = %v, want nil", got)
	}
}

func TestIdsSorted(t *testing.T) {
	ids := Ids()
	if len(ids) != len(issuesById) {
		t.Fatalf("Ids() returned %d ids, catalog has %d", len(ids), len(issuesById))
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("Ids() not in ascending order: %v", ids)
		}
	}
}

func TestRenderUsesGlamour(t *testing.T) {
	orig := render
	defer func() { render = orig }()

	var gotStyle string
	render = func(in string, stylePath string) (string, error) {
		gotStyle = stylePath
		return "RENDERED:" + in, nil
	}

	out, err := Lookup(HookFailedId).Render("dark")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if gotStyle != "dark" {
		t.Errorf("style = %q, want dark", gotStyle)
	}
	if !strings.HasPrefix(out, "RENDERED:") {
		t.Errorf("Render() = %q, want stubbed output", out)
	}
}

func TestMarkdownMentionsRemedy(t *testing.T) {
	tests := []struct {
		id   Id
		want string
	}{
		{InterpreterNotFoundId, "--python"},
		{VersionNotFoundId, "__version__"},
		{DistfileNotFoundId, "pydist init"},
		{DistfileParseErrorId, "--force"},
		{NoFilesMatchedId, "pydist files"},
		{HookFailedId, "--verbose"},
	}

	for _, tt := range tests {
		md := string(Lookup(tt.id).MarkdownMsg())
		if !strings.Contains(md, tt.want) {
			t.Errorf("issue %d markdown should mention %q", tt.id, tt.want)
		}
	}
}
