package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/gaurav-prasanna/tgmarkup/config"
	"github.com/gaurav-prasanna/tgmarkup/core"
)

const doc = `
text:
  kind: fragment
  children: ["Hi ", {kind: b, children: there}]
reply_markup:
  kind: keyboard
  inline: true
  children:
    - {kind: row, children: [{kind: button, callbackData: ok, children: OK}]}
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true
	for _, k := range []string{"TGMARKUP_BOT_TOKEN", "TGMARKUP_CHAT_ID", "LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	flagAll, flagJSON, flagHTML, flagMarkdown, flagPDF = false, false, false, false, false
	flagOutputDir, flagLogLevel = "", ""
	flagChatID = 0

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	if !slices.Contains(args, "--env") {
		args = append(args, "--env", filepath.Join(t.TempDir(), "none.env"))
	}
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvert_JSON(t *testing.T) {
	src := writeDoc(t, t.TempDir(), "hello.yaml", doc)
	out := t.TempDir()

	stdout, _, err := execute(t, "convert", src, "--json", "--output_dir", out)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.Contains(stdout, "Written:") {
		t.Errorf("stdout = %q", stdout)
	}

	data, err := os.ReadFile(filepath.Join(out, "hello.json"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var got struct {
		Text        string          `json:"text"`
		Entities    []core.Entity   `json:"entities"`
		ReplyMarkup json.RawMessage `json:"reply_markup"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Text != "Hi there" || len(got.Entities) != 1 || got.Entities[0].Offset != 3 {
		t.Errorf("output = %+v", got)
	}
	var markup map[string]any
	json.Unmarshal(got.ReplyMarkup, &markup)
	if _, ok := markup["inline_keyboard"]; !ok {
		t.Errorf("reply_markup = %s", got.ReplyMarkup)
	}
}

func TestConvert_AllMirrorsTree(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "a.yaml", doc)
	writeDoc(t, root, "menu/b.json", `{"kind":"i","children":"x"}`)
	out := t.TempDir()

	if _, _, err := execute(t, "convert", root, "--all", "--html", "--output_dir", out); err != nil {
		t.Fatalf("convert --all: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(out, "menu", "b.html"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "<i>x</i>" {
		t.Errorf("b.html = %q", got)
	}
	if _, err := os.Stat(filepath.Join(out, "a.html")); err != nil {
		t.Errorf("a.html missing: %v", err)
	}
}

func TestConvert_AllReportsFailures(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "good.yaml", doc)
	writeDoc(t, root, "bad.yaml", `{kind: 3}`)

	_, stderr, err := execute(t, "convert", root, "--all", "--markdown", "--output_dir", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "1/2 documents failed") {
		t.Errorf("err = %v", err)
	}
	if !strings.Contains(stderr, "kind must be a string") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestValidateFlags(t *testing.T) {
	reset := func() { flagJSON, flagHTML, flagMarkdown, flagPDF = false, false, false, false }
	defer reset()

	reset()
	if err := validateFlags(); err == nil {
		t.Error("no format accepted")
	}
	flagJSON, flagPDF = true, true
	if err := validateFlags(); err == nil || !strings.Contains(err.Error(), "only one output format") {
		t.Errorf("err = %v", err)
	}

	for _, set := range []*bool{&flagJSON, &flagHTML, &flagMarkdown, &flagPDF} {
		reset()
		*set = true
		if err := validateFlags(); err != nil {
			t.Errorf("validateFlags: %v", err)
		}
		r, err := selectRenderer()
		if err != nil || r == nil {
			t.Errorf("selectRenderer = %v, %v", r, err)
		}
	}
}

type fakeSender struct {
	chatID int64
	msg    *core.Message
}

func (f *fakeSender) Send(_ context.Context, chatID int64, msg *core.Message) (int64, error) {
	f.chatID, f.msg = chatID, msg
	return 99, nil
}

func TestSend(t *testing.T) {
	fake := &fakeSender{}
	orig := newSender
	var gotToken string
	newSender = func(c *config.Config) core.Sender {
		gotToken = c.BotToken
		return fake
	}
	defer func() { newSender = orig }()

	src := writeDoc(t, t.TempDir(), "hello.yaml", doc)
	envFile := writeDoc(t, t.TempDir(), "bot.env", "TGMARKUP_BOT_TOKEN=123:ABC\n")

	stdout, _, err := execute(t, "send", src, "--chat_id", "42", "--env", envFile)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if gotToken != "123:ABC" || fake.chatID != 42 {
		t.Errorf("token/chat = %q/%d", gotToken, fake.chatID)
	}
	if fake.msg == nil || fake.msg.Text.String() != "Hi there" || fake.msg.Keyboard == nil {
		t.Errorf("msg = %+v", fake.msg)
	}
	if !strings.Contains(stdout, "Sent message 99 to chat 42") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestSend_RequiresToken(t *testing.T) {
	src := writeDoc(t, t.TempDir(), "hello.yaml", doc)
	_, _, err := execute(t, "send", src, "--chat_id", "42")
	if err == nil || !strings.Contains(err.Error(), "TGMARKUP_BOT_TOKEN") {
		t.Errorf("err = %v", err)
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(stdout) != "tgmarkup "+Version {
		t.Errorf("stdout = %q", stdout)
	}
}
