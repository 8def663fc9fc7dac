package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GoNLP/internal/value"
)

// run executes the root command in a clean directory and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(append(args, "--log-level", "error"))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCmd()
	assert.Equal(t, "gonlp", cmd.Use)

	for _, name := range []string{"config", "log-level", "log-format", "namespace"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "flag %q should exist", name)
	}

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"serve", "modules", "invoke", "version"})
}

func TestServeCommand_Flags(t *testing.T) {
	cmd := newServeCommand()
	assert.NotNil(t, cmd.Flags().Lookup("host"))
	assert.NotNil(t, cmd.Flags().Lookup("port"))
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "GoNLP "+Version+"\n", out)
}

func TestModulesCommand(t *testing.T) {
	out, err := run(t, "", "modules", "--namespace", "text")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[1], "text.AnalyzeSentiment")
	assert.Contains(t, lines[3], "{maxKeywords: Int, text: String}")
}

func TestInvokeCommand_Inline(t *testing.T) {
	out, err := run(t, "", "invoke", "AnalyzeSentiment", `{text: "good good bad"}`)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "positive", got["label"])
	assert.InDelta(t, 1.0/3.0, got["score"], 1e-9)
}

func TestInvokeCommand_Stdin(t *testing.T) {
	out, err := run(t, "text: cat dog cat bird\nmaxKeywords: 2\n", "invoke", "nlp.sentiment.ExtractKeywords", "-f", "-")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []any{"cat", "dog"}, got["keywords"])
}

func TestInvokeCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"text": "el perro y la casa"}`), 0o644))

	out, err := run(t, "", "invoke", "DetectLanguage", "--file", path, "--wire")
	require.NoError(t, err)

	v, err := value.Unmarshal([]byte(out))
	require.NoError(t, err)
	p, err := value.AsProduct(v)
	require.NoError(t, err)
	lang, err := p.StringField("language")
	require.NoError(t, err)
	assert.Equal(t, "spanish", lang)
}

func TestInvokeCommand_Errors(t *testing.T) {
	_, err := run(t, "", "invoke", "Translate", `{text: hi}`)
	assert.ErrorContains(t, err, "module not found")

	_, err = run(t, "", "invoke", "ExtractKeywords", `{text: hi}`)
	assert.ErrorIs(t, err, value.ErrShape)

	_, err = run(t, "", "invoke", "ExtractKeywords", `{text: hi, maxKeywords: 5.0}`)
	assert.ErrorIs(t, err, value.ErrShape)

	_, err = run(t, "", "invoke", "AnalyzeSentiment")
	assert.ErrorContains(t, err, "no input given")

	_, err = run(t, "", "invoke", "AnalyzeSentiment", `{text: hi}`, "-f", "x.yaml")
	assert.ErrorContains(t, err, "not both")
}

func TestConfigFileFlag(t *testing.T) {
	_, err := run(t, "", "modules", "--config", "missing.yaml")
	assert.Error(t, err)
}
