package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tmxconv/internal/config"
)

func TestPromptMissing_AsksOnlyForEmpty(t *testing.T) {
	settings := config.ConvertSettings{RootDir: "/data", TargetLang: "fr"}
	in := strings.NewReader(" en \ntsv, csv\n")
	var out bytes.Buffer

	require.NoError(t, promptMissing(&settings, in, &out))

	assert.Equal(t, "/data", settings.RootDir)
	assert.Equal(t, "en", settings.SourceLang)
	assert.Equal(t, "fr", settings.TargetLang)
	assert.Equal(t, "tsv, csv", settings.Formats)

	assert.NotContains(t, out.String(), "directory location")
	assert.Contains(t, out.String(), "Enter the source language code: ")
	assert.NotContains(t, out.String(), "target language")
	assert.Contains(t, out.String(), "output format(s)")
}

func TestPromptMissing_LastLineWithoutNewline(t *testing.T) {
	settings := config.ConvertSettings{RootDir: "/data", SourceLang: "en", TargetLang: "fr"}
	require.NoError(t, promptMissing(&settings, strings.NewReader("bitext"), &bytes.Buffer{}))
	assert.Equal(t, "bitext", settings.Formats)
}

func TestPromptMissing_EOF(t *testing.T) {
	settings := config.ConvertSettings{}
	err := promptMissing(&settings, strings.NewReader(""), &bytes.Buffer{})
	assert.Error(t, err)
}

// resetCommand clears flag values and env settings left over from an
// earlier Execute in the same process.
func resetCommand(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TMXCONV_CONFIG", "TMXCONV_SOURCE_LANG", "TMXCONV_TARGET_LANG", "TMXCONV_FORMATS", "TMXCONV_OUTPUT_DIR", "TMXCONV_ROOT_DIR"} {
		t.Setenv(key, "")
	}
	reset := func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
	convertCmd.Flags().VisitAll(reset)
	rootCmd.PersistentFlags().VisitAll(reset)
}

func TestConvertCommand(t *testing.T) {
	resetCommand(t)

	root := t.TempDir()
	tmxData := `<tmx><body><tu><tuv xml:lang="en-US"><seg>Hello</seg></tuv><tuv xml:lang="fr"><seg>Bonjour</seg></tuv></tu></body></tmx>`
	require.NoError(t, os.WriteFile(filepath.Join(root, "memory.tmx"), []byte(tmxData), 0o644))

	var out, errOut bytes.Buffer
	rootCmd.SetArgs([]string{"convert", root, "--source", "en"})
	rootCmd.SetIn(strings.NewReader("fr\ntxt,xml\n"))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)

	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(filepath.Join(root, "output", "memory_txt.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Hello\tBonjour\n", string(data))

	assert.Contains(t, out.String(), "Conversion completed successfully.")
	assert.Contains(t, errOut.String(), "unsupported output format")
	assert.Contains(t, errOut.String(), "run_id=")
}

func TestConvertCommand_FailedFileReturnsError(t *testing.T) {
	resetCommand(t)

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "broken.tmx"), []byte("<tmx><body><tu>"), 0o644))

	var out, errOut bytes.Buffer
	rootCmd.SetArgs([]string{"convert", root, "-s", "en", "-t", "fr", "-f", "txt"})
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 files failed")

	assert.NotContains(t, out.String(), "Conversion completed successfully.")
	assert.Contains(t, errOut.String(), "parse failed")
	assert.NoFileExists(t, filepath.Join(root, "output", "broken_txt.txt"))
}
