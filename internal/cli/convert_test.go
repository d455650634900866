package cli_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/unitconv/internal/cli"
	"github.com/rshade/unitconv/internal/config"
	"github.com/rshade/unitconv/pkg/measure"
)

// setupCLITest isolates a test from the user's configuration and environment.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	for _, key := range []string{
		config.EnvOutputFormat, config.EnvPrecision, config.EnvLogLevel,
		config.EnvLogFormat, config.EnvDefaultCategory,
	} {
		t.Setenv(key, "")
	}
	t.Setenv(config.EnvLogLevel, "error")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// execute runs the root command with args and returns stdout and the error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvert_Table(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "kilometers to meters", args: []string{"1", "km", "meters"}, want: "1,000 meters"},
		{name: "fahrenheit to celsius", args: []string{"212", "F", "C", "--category", "temperature"}, want: "100 degrees Celsius"},
		{name: "hours to minutes", args: []string{"1", "hour", "minutes"}, want: "60 minutes"},
		{name: "kilograms to grams", args: []string{"1", "kg", "g"}, want: "1,000 grams"},
		{name: "singular result", args: []string{"1000", "m", "km"}, want: "1 kilometer"},
		{name: "precision flag", args: []string{"1", "m", "mi", "--precision", "6"}, want: "0.000621 miles"},
		{name: "negative amount", args: []string{"--", "-40", "celsius", "fahrenheit"}, want: "-40 degrees Fahrenheit"},
		{name: "grouped amount", args: []string{"1,500", "g", "kg"}, want: "1.5 kilograms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)
			out, err := execute(t, append([]string{"convert"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestConvert_JSON(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "convert", "1", "mile", "km", "--precision", "6", "--output", "json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1.0, got["amount"])
	assert.Equal(t, "distance", got["category"])
	assert.Equal(t, "miles", got["from"])
	assert.Equal(t, "kilometers", got["to"])
	assert.InDelta(t, 1.609344, got["value"], 1e-12)
	assert.Equal(t, "1.609344 kilometers", got["formatted"])
}

func TestConvert_NDJSON(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "convert", "3", "h", "s", "-o", "ndjson")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"formatted":"10,800 seconds"`)
}

func TestConvert_ConfigPrecisionAndFormat(t *testing.T) {
	setupCLITest(t)
	t.Setenv(config.EnvPrecision, "1")

	out, err := execute(t, "convert", "1", "ft", "m")
	require.NoError(t, err)
	assert.Equal(t, "0.3 meters\n", out)

	config.ResetGlobalConfigForTest()
	t.Setenv(config.EnvOutputFormat, "json")
	out, err = execute(t, "convert", "1", "ft", "m")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "mixed categories", args: []string{"1", "km", "grams"}, wantErr: measure.ErrIncompatibleUnits},
		{name: "unknown source", args: []string{"1", "furlongs", "m"}, wantErr: measure.ErrUnknownUnit},
		{name: "unknown destination", args: []string{"1", "m", "cubits"}, wantErr: measure.ErrUnknownUnit},
		{name: "bad amount", args: []string{"lots", "m", "km"}, wantErr: measure.ErrInvalidAmount},
		{name: "bad category", args: []string{"1", "m", "km", "--category", "volume"}, wantErr: measure.ErrUnknownCategory},
		{name: "unit outside category", args: []string{"1", "m", "km", "--category", "mass"}, wantErr: measure.ErrUnknownUnit},
		{name: "negative precision falls back to config", args: []string{"1", "m", "km", "--precision", "-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)
			_, err := execute(t, append([]string{"convert"}, tt.args...)...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, cli.IsUsageError(err))
		})
	}
}

func TestConvert_UnsupportedOutput(t *testing.T) {
	setupCLITest(t)
	_, err := execute(t, "convert", "1", "m", "km", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
	assert.False(t, cli.IsUsageError(err))
}

func TestConvert_WrongArgCount(t *testing.T) {
	setupCLITest(t)
	_, err := execute(t, "convert", "1", "m")
	require.Error(t, err)
}

func TestParseOutputFormat(t *testing.T) {
	setupCLITest(t)

	got, err := cli.ParseOutputFormat("")
	require.NoError(t, err)
	assert.Equal(t, cli.OutputTable, got)

	got, err = cli.ParseOutputFormat("NDJSON")
	require.NoError(t, err)
	assert.Equal(t, cli.OutputNDJSON, got)

	_, err = cli.ParseOutputFormat("yaml")
	assert.Error(t, err)
}
