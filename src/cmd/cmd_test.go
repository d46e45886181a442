package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortdemo/src/sort"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := NewApp()
	var buf bytes.Buffer
	app.Writer = &buf
	app.ErrWriter = &buf
	err := app.Run(append([]string{"sortdemo"}, args...))
	return buf.String(), err
}

func TestRunDefault(t *testing.T) {
	out, err := runApp(t, "run", "--verify")
	require.NoError(t, err)
	want := "Original array: 4 3 9 1 4 7 \n" +
		"Bubble sort: 1 3 4 4 7 9 \n" +
		"Quick sort: 1 3 4 4 7 9 \n" +
		"Insertion sort: 1 3 4 4 7 9 \n"
	assert.Equal(t, want, out)
}

func TestRunArgs(t *testing.T) {
	out, err := runApp(t, "run", "-a", "insertion", "-a", "bubble", "--early-exit", "--", "-3", "10", "-7")
	require.NoError(t, err)
	want := "Original array: -3 10 -7 \n" +
		"Insertion sort: -7 -3 10 \n" +
		"Bubble sort (early exit): -7 -3 10 \n"
	assert.Equal(t, want, out)
}

func TestRunShowTree(t *testing.T) {
	out, err := runApp(t, "run", "-a", "quick", "--show-tree")
	require.NoError(t, err)
	want := "Original array: 4 3 9 1 4 7 \n" +
		"Quick sort: 1 3 4 4 7 9 \n" +
		".\n" +
		"└── [0..5] pivot=9\n" +
		"    └── [0..4] pivot=7\n" +
		"        └── [0..3] pivot=3\n" +
		"            └── [2..3] pivot=4\n"
	assert.Equal(t, want, out)
}

func TestRunErrors(t *testing.T) {
	_, err := runApp(t, "run", "4", "x")
	assert.ErrorContains(t, err, "argument 2")

	_, err = runApp(t, "run", "-a", "merge")
	assert.ErrorIs(t, err, sort.ErrUnknownAlgorithm)
}

func TestRunHistory(t *testing.T) {
	url := "sqlite3://" + filepath.Join(t.TempDir(), "runs.db")
	_, err := runApp(t, "-m", url, "run", "3", "2", "1")
	require.NoError(t, err)

	out, err := runApp(t, "-m", url, "history")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "insertion")
	assert.Contains(t, lines[2], "bubble")
	for _, line := range lines {
		assert.Contains(t, line, "n=3")
		assert.Contains(t, line, "sorted=true")
		assert.True(t, strings.HasSuffix(strings.TrimSpace(line), "1 2 3"), line)
	}

	out, err = runApp(t, "-m", url, "history", "-a", "Quick", "--limit", "5")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, "quick")

	_, err = runApp(t, "history")
	assert.ErrorContains(t, err, "needs --meta-url")
}

func TestBench(t *testing.T) {
	out, err := runApp(t, "bench", "-n", "10", "-n", "0", "--seed", "3", "-a", "quick")
	require.NoError(t, err)
	assert.Contains(t, out, "n=10\n")
	assert.Contains(t, out, "n=0\n")
	assert.NotContains(t, out, "n=1,000")
	assert.Equal(t, 2, strings.Count(out, "Quick sort:"))

	_, err = runApp(t, "bench", "-n", "-1")
	assert.ErrorContains(t, err, "invalid size")
}

func TestList(t *testing.T) {
	out, err := runApp(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "bubble     Bubble sort\nquick      Quick sort\ninsertion  Insertion sort\n", out)
}

func TestPrintVector(t *testing.T) {
	var buf bytes.Buffer
	printVector(&buf, nil)
	printVector(&buf, []int{5})
	assert.Equal(t, "\n5 \n", buf.String())
}

func TestSetupLogLevel(t *testing.T) {
	_, err := runApp(t, "--quiet", "list")
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())

	_, err = runApp(t, "--verbose", "list")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	_, err = runApp(t, "list")
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

type brokenCloser struct{}

func (brokenCloser) Close() error { return errors.New("disk gone") }

func TestCloseStoreLogsError(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(os.Stderr)

	closeStore(brokenCloser{})
	assert.Contains(t, buf.String(), "close run store: disk gone")
}
