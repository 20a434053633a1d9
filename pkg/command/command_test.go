package command

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tj/assert"
)

// run feeds a script to a fresh runner and returns the produced output.
func run(t *testing.T, cfg Config, script ...string) string {
	t.Helper()
	var out bytes.Buffer
	r := New(cfg, &out)
	err := r.Run(strings.NewReader(strings.Join(script, "\n")))
	assert.NoError(t, err)
	return out.String()
}

// intervalLines extracts the rendered interval lists from the output.
func intervalLines(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if i := strings.Index(line, "Intervals: "); i != -1 {
			lines = append(lines, line[i+len("Intervals: "):])
		}
	}
	return lines
}

func TestRunScenarios(t *testing.T) {
	cases := map[string]struct {
		script   []string
		expected []string
	}{
		"BuildUpAndMerge": {
			script: []string{
				"add 1 5",
				"remove 2 3",
				"add 6 8",
				"remove 4 7",
				"add 2 7",
				"exit",
			},
			expected: []string{
				"[[1, 5]]",
				"[[1, 2], [3, 5]]",
				"[[1, 2], [3, 5], [6, 8]]",
				"[[1, 2], [3, 4], [7, 8]]",
				"[[1, 8]]",
			},
		},
		"NonTouchingStayApart": {
			script: []string{
				"add 1 3",
				"add 4 6",
				"exit",
			},
			expected: []string{
				"[[1, 3]]",
				"[[1, 3], [4, 6]]",
			},
		},
		"ClearAndDisplay": {
			script: []string{
				"add 1 5",
				"clear",
				"displayList",
				"exit",
			},
			expected: []string{
				"[[1, 5]]",
				"[]",
				"[]",
			},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			output := run(t, Config{}, tc.script...)
			assert.Equal(t, tc.expected, intervalLines(output))
		})
	}
}

func TestInvalidInputLeavesSetUnchanged(t *testing.T) {
	cases := map[string]struct {
		command string
	}{
		"InvertedRange":   {command: "add 5 2"},
		"ZeroLength":      {command: "remove 3 3"},
		"NonInteger":      {command: "add x 2"},
		"MissingArgument": {command: "add 1"},
		"NoArguments":     {command: "remove"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			output := run(t, Config{},
				"add 1 5",
				tc.command,
				"displayList",
				"exit",
			)
			assert.True(t, strings.Contains(output, "Error - "), "expected an error line in %q", output)
			assert.Equal(t, []string{"[[1, 5]]", "[[1, 5]]"}, intervalLines(output))
		})
	}
}

func TestDebugToggle(t *testing.T) {
	output := run(t, Config{},
		"enableDebugging",
		"add 1 5",
		"disableDebugging",
		"add 7 9",
		"exit",
	)
	assert.True(t, strings.Contains(output, "Debugging mode enabled"))
	assert.True(t, strings.Contains(output, "Debugging mode disabled"))
	assert.Equal(t, 1, strings.Count(output, "Intervals list: "), "only the add under debug logs the raw list")
}

func TestDebugFromConfig(t *testing.T) {
	output := run(t, Config{Debug: true}, "add 1 5", "exit")
	assert.True(t, strings.Contains(output, "Intervals list: "))
}

func TestHelpAndUnknownCommand(t *testing.T) {
	output := run(t, Config{}, "help", "exit")
	assert.True(t, strings.Contains(output, "add <from> <to>"))

	output = run(t, Config{}, "bogus", "exit")
	assert.True(t, strings.Contains(output, "Unknown command: bogus"))
	assert.True(t, strings.Contains(output, "add <from> <to>"))
}

func TestPrompt(t *testing.T) {
	output := run(t, Config{Prompt: "intervals> "}, "exit")
	assert.True(t, strings.HasPrefix(output, "intervals> "))

	// Empty prompt falls back to the default.
	output = run(t, Config{}, "exit")
	assert.True(t, strings.HasPrefix(output, "> "))
}

func TestRunStopsAtEOF(t *testing.T) {
	var out bytes.Buffer
	r := New(Config{}, &out)
	err := r.Run(strings.NewReader("add 1 5\n"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"[[1, 5]]"}, intervalLines(out.String()))
}
