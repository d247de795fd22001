package provider

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/trackersearch/internal/errmsg"
	"github.com/llehouerou/trackersearch/internal/icons"
	"github.com/llehouerou/trackersearch/internal/tracker"
)

type fakeSearcher struct {
	results []tracker.Result
	err     error
	terms   [][]string
}

func (f *fakeSearcher) Normalize(_ context.Context, terms []string) ([]tracker.Result, error) {
	f.terms = append(f.terms, terms)
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func (f *fakeSearcher) ParseLine(line string) tracker.Result {
	return tracker.ParseLine(line, tracker.GuesserFunc(func(path string) (string, bool) {
		if strings.HasSuffix(path, ".pdf") {
			return "application/pdf", false
		}
		return tracker.ContentTypeOctetStream, true
	}))
}

type fakeOpener struct {
	opened  []string
	ran     [][]string
	openErr error
	runErr  error
}

func (f *fakeOpener) Open(path string) error {
	f.opened = append(f.opened, path)
	return f.openErr
}

func (f *fakeOpener) Run(command string, args ...string) error {
	f.ran = append(f.ran, append([]string{command}, args...))
	return f.runErr
}

type fakeReporter struct {
	ops []errmsg.Op
}

func (f *fakeReporter) Report(op errmsg.Op, _ string, _ error) error {
	f.ops = append(f.ops, op)
	return nil
}

func TestNormalize(t *testing.T) {
	s := &fakeSearcher{results: []tracker.Result{{ID: "a"}, {ID: "b"}}}
	p := New(s, &fakeOpener{})

	results, err := p.Normalize(context.Background(), []string{"report"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, IDs(results))
	assert.Equal(t, [][]string{{"report"}}, s.terms)
}

func TestNormalize_ErrorIsReported(t *testing.T) {
	queryErr := errors.New("query index: not found")
	rep := &fakeReporter{}
	p := New(&fakeSearcher{err: queryErr}, &fakeOpener{}, WithReporter(rep))

	_, err := p.Normalize(context.Background(), []string{"x"})
	require.ErrorIs(t, err, queryErr)
	assert.Equal(t, []errmsg.Op{errmsg.OpSearch}, rep.ops)
}

func TestSubsearch_IgnoresPrevious(t *testing.T) {
	s := &fakeSearcher{results: []tracker.Result{{ID: "fresh"}}}
	p := New(s, &fakeOpener{})

	results, err := p.Subsearch(context.Background(), []string{"stale-1", "stale-2"}, []string{"rep", "2024"})
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, IDs(results))
	assert.Equal(t, [][]string{{"rep", "2024"}}, s.terms, "index must be queried again with the new terms")
}

func TestIDs_Empty(t *testing.T) {
	ids := IDs(nil)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestDescribe(t *testing.T) {
	icons.Init("none")
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	dir := t.TempDir()
	file := filepath.Join(dir, "report.pdf")
	require.NoError(t, os.WriteFile(file, make([]byte, 2048), 0o600))
	require.NoError(t, os.Chtimes(file, now.Add(-3*time.Hour), now.Add(-3*time.Hour)))

	p := New(&fakeSearcher{}, &fakeOpener{})
	p.now = func() time.Time { return now }

	id := "  file://" + file
	meta := p.Describe(id)

	assert.Equal(t, id, meta.ID)
	assert.Equal(t, "report.pdf", meta.Name)
	assert.Equal(t, file+" · 2.0 KiB · 3 hours ago", meta.Description)
	assert.Equal(t, ". GThemedIcon application-pdf x-office-document text-x-generic", meta.GIcon)
	assert.Equal(t, "report.pdf", meta.Label)
}

func TestDescribe_Directory(t *testing.T) {
	icons.Init("none")
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	p := New(&fakeSearcher{}, &fakeOpener{})
	p.now = func() time.Time { return now }
	p.stat = func(string) (fs.FileInfo, error) {
		return fakeInfo{dir: true, mod: now.Add(-48 * time.Hour)}, nil
	}

	meta := p.Describe("file:///home/user/Projects")

	assert.Equal(t, "Projects", meta.Name)
	assert.Equal(t, "/home/user/Projects · 2 days ago", meta.Description)
	assert.Equal(t, ". GThemedIcon inode-directory folder text-x-generic", meta.GIcon)
	assert.Equal(t, "Projects/", meta.Label)
}

func TestDescribe_MissingFile(t *testing.T) {
	p := New(&fakeSearcher{}, &fakeOpener{})
	p.stat = func(string) (fs.FileInfo, error) { return nil, fs.ErrNotExist }

	meta := p.Describe("file:///gone/notes.txt")
	assert.Equal(t, "/gone/notes.txt", meta.Description)
}

func TestDescribe_NoPath(t *testing.T) {
	p := New(&fakeSearcher{}, &fakeOpener{})

	meta := p.Describe("garbage")
	assert.Equal(t, "garbage", meta.Name)
	assert.Empty(t, meta.Description)
	assert.NotEmpty(t, meta.GIcon)
}

func TestDescribe_SameIDSameMeta(t *testing.T) {
	p := New(&fakeSearcher{}, &fakeOpener{})
	p.stat = func(string) (fs.FileInfo, error) { return nil, fs.ErrNotExist }

	id := "file:///home/user/My%20Docs/a%20b.pdf"
	assert.Equal(t, p.Describe(id), p.Describe(id))
	assert.Equal(t, "a b.pdf", p.Describe(id).Name)
}

func TestActivate(t *testing.T) {
	o := &fakeOpener{}
	p := New(&fakeSearcher{}, o)

	require.NoError(t, p.Activate(context.Background(), "file:///home/user/My%20Docs/a.pdf"))
	assert.Equal(t, []string{"/home/user/My Docs/a.pdf"}, o.opened)
}

func TestActivate_FailureIsReported(t *testing.T) {
	openErr := errors.New("xdg-open: executable file not found")
	rep := &fakeReporter{}
	p := New(&fakeSearcher{}, &fakeOpener{openErr: openErr}, WithReporter(rep))

	err := p.Activate(context.Background(), "file:///tmp/a.pdf")
	require.ErrorIs(t, err, openErr)
	assert.Contains(t, err.Error(), "a.pdf")
	assert.Equal(t, []errmsg.Op{errmsg.OpOpenResult}, rep.ops)
}

func TestActivate_CanceledContext(t *testing.T) {
	o := &fakeOpener{}
	p := New(&fakeSearcher{}, o)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, p.Activate(ctx, "file:///tmp/a.pdf"), context.Canceled)
	assert.Empty(t, o.opened)
}

func TestLaunchSearch(t *testing.T) {
	o := &fakeOpener{}
	p := New(&fakeSearcher{}, o, WithLaunchSearch("nautilus --search"))

	require.NoError(t, p.LaunchSearch(context.Background(), []string{"report", "2024"}))
	assert.Equal(t, [][]string{{"nautilus --search", "report", "2024"}}, o.ran)
}

func TestLaunchSearch_NotConfigured(t *testing.T) {
	o := &fakeOpener{}
	p := New(&fakeSearcher{}, o, WithLaunchSearch("  "))

	require.NoError(t, p.LaunchSearch(context.Background(), []string{"report"}))
	assert.Empty(t, o.ran)
}

func TestLaunchSearch_FailureIsReported(t *testing.T) {
	runErr := errors.New("boom")
	rep := &fakeReporter{}
	p := New(&fakeSearcher{}, &fakeOpener{runErr: runErr}, WithLaunchSearch("nautilus"), WithReporter(rep))

	require.ErrorIs(t, p.LaunchSearch(context.Background(), nil), runErr)
	assert.Equal(t, []errmsg.Op{errmsg.OpLaunchSearch}, rep.ops)
}

type fakeInfo struct {
	dir  bool
	size int64
	mod  time.Time
}

func (f fakeInfo) Name() string       { return "fake" }
func (f fakeInfo) Size() int64        { return f.size }
func (f fakeInfo) Mode() fs.FileMode  { return 0 }
func (f fakeInfo) ModTime() time.Time { return f.mod }
func (f fakeInfo) IsDir() bool        { return f.dir }
func (f fakeInfo) Sys() any           { return nil }
