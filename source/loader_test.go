package source

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/tgmarkup/core"
	"github.com/gaurav-prasanna/tgmarkup/core/extract"
	"github.com/gaurav-prasanna/tgmarkup/core/reduce"
	"github.com/google/go-cmp/cmp"
)

const welcome = `
text:
  kind: fragment
  children:
    - "Hello, "
    - kind: b
      children:
        - world
        - kind: i
          children: "!"
reply_markup:
  kind: keyboard
  inline: true
  children:
    - kind: row
      children:
        - kind: button
          callbackData: hi
          children: Wave
        - kind: button
          webApp: {url: "https://example.com/app"}
          children: App
`

func TestParse_Document(t *testing.T) {
	doc, err := Parse([]byte(welcome))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	msg, err := doc.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	if got := msg.Text.String(); got != "Hello, world!" {
		t.Errorf("text = %q", got)
	}
	wantEntities := []core.Entity{
		{Type: core.EntityBold, Offset: 7, Length: 6},
		{Type: core.EntityItalic, Offset: 12, Length: 1},
	}
	if diff := cmp.Diff(wantEntities, msg.Text.Entities()); diff != "" {
		t.Errorf("entities mismatch (-want +got):\n%s", diff)
	}

	data, err := json.Marshal(extract.Keyboard(msg.Keyboard))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"inline_keyboard":[[{"text":"Wave","callback_data":"hi"},{"text":"App","web_app":{"url":"https://example.com/app"}}]]}`
	if string(data) != want {
		t.Errorf("markup =\n%s\nwant\n%s", data, want)
	}
}

func TestParse_SingleElementJSON(t *testing.T) {
	doc, err := Parse([]byte(`{"kind":"a","href":"https://example.com","children":["link ",42]}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.ReplyMarkup != nil {
		t.Error("ReplyMarkup set for a single element document")
	}
	msg, err := doc.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if msg.Text.String() != "link 42" {
		t.Errorf("text = %q, want %q", msg.Text.String(), "link 42")
	}
	want := []core.Entity{{Type: core.EntityTextLink, Length: 7, URL: "https://example.com"}}
	if diff := cmp.Diff(want, msg.Text.Entities()); diff != "" {
		t.Errorf("entities mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_ScalarAndListText(t *testing.T) {
	doc, err := Parse([]byte(`just text`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	msg, _ := doc.Compile()
	if msg.Text.String() != "just text" {
		t.Errorf("text = %q", msg.Text.String())
	}

	doc, err = Parse([]byte("text: [a, {kind: br}, b]\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	msg, _ = doc.Compile()
	if msg.Text.String() != "a\nb" {
		t.Errorf("text = %q", msg.Text.String())
	}
}

func TestParse_ReplyKeyboard(t *testing.T) {
	doc, err := Parse([]byte(`
reply_markup:
  kind: keyboard
  oneTime: true
  placeholder: Pick one
  children:
    - kind: row
      children:
        - {kind: button, requestLocation: true, children: Geo}
        - {kind: button, requestPoll: quiz, children: Quiz}
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	msg, err := doc.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	data, _ := json.Marshal(extract.Keyboard(msg.Keyboard))
	want := `{"keyboard":[[{"text":"Geo","request_location":true},{"text":"Quiz","request_poll":{"type":"quiz"}}]],` +
		`"one_time_keyboard":true,"input_field_placeholder":"Pick one"}`
	if string(data) != want {
		t.Errorf("markup =\n%s\nwant\n%s", data, want)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", ``, "empty document"},
		{"syntax", "text: [unclosed", "parse"},
		{"kind not string", `{kind: 3}`, "kind must be a string"},
		{"child without kind", `{kind: b, children: [{x: 1}]}`, "child mapping without kind"},
		{"top-level key", `{txt: hi}`, "unexpected top-level key"},
		{"markup scalar", `{reply_markup: hi}`, "expected an element mapping"},
		{"top-level list", `[a, b]`, "mapping or a string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestParse_UnknownKindKeepsText(t *testing.T) {
	doc, err := Parse([]byte(`{kind: fragment, children: ["a", {kind: blink, children: [{kind: b, children: b}]}]}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	msg, err := doc.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if got := msg.Text.String(); got != "ab" {
		t.Errorf("text = %q, want ab", got)
	}
	want := []core.Entity{{Type: core.EntityBold, Offset: 1, Length: 1}}
	if diff := cmp.Diff(want, msg.Text.Entities()); diff != "" {
		t.Errorf("entities mismatch (-want +got):\n%s", diff)
	}
}

func TestCompile_FalsyAttributesDoNotWin(t *testing.T) {
	doc, err := Parse([]byte(`
reply_markup:
  kind: keyboard
  inline: true
  children:
    - kind: row
      children:
        - {kind: button, callbackData: false, url: "https://x", children: Go}
        - {kind: button, copyText: 0, children: Zero}
        - {kind: button, webApp: {url: 5}, loginUrl: {url: "https://login"}, children: Login}
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	msg, err := doc.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	data, err := json.Marshal(extract.Keyboard(msg.Keyboard))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"inline_keyboard":[[{"text":"Go","url":"https://x"},{"text":"Login","login_url":{"url":"https://login"}}]]}`
	if string(data) != want {
		t.Errorf("markup =\n%s\nwant\n%s", data, want)
	}
}

func TestCompile_FalsePlaceholderOmitted(t *testing.T) {
	doc, err := Parse([]byte(`{reply_markup: {kind: keyboard, placeholder: false, children: [{kind: row, children: [{kind: button, children: Hi}]}]}}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	msg, err := doc.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	data, _ := json.Marshal(extract.Keyboard(msg.Keyboard))
	if want := `{"keyboard":[[{"text":"Hi"}]]}`; string(data) != want {
		t.Errorf("markup = %s, want %s", data, want)
	}
}

func TestCompile_WrongRoot(t *testing.T) {
	doc, err := Parse([]byte(`{text: {kind: keyboard}}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := doc.Compile(); !errors.Is(err, reduce.ErrNotText) {
		t.Errorf("err = %v, want ErrNotText", err)
	}

	doc, _ = Parse([]byte(`{reply_markup: {kind: b}}`))
	if _, err := doc.Compile(); !errors.Is(err, reduce.ErrNotKeyboard) {
		t.Errorf("err = %v, want ErrNotKeyboard", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "welcome.yaml")
	if err := os.WriteFile(path, []byte(welcome), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Path != path || doc.Text == nil || doc.ReplyMarkup == nil {
		t.Errorf("doc = %+v", doc)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}
}
