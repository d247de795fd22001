// Package provider implements the search provider contract shared by the
// shell service and the terminal overlay: run a query, describe a result,
// activate a result.
package provider

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/trackersearch/internal/errmsg"
	"github.com/llehouerou/trackersearch/internal/icons"
	"github.com/llehouerou/trackersearch/internal/tracker"
)

// Searcher runs index queries and parses result identifiers.
type Searcher interface {
	Normalize(ctx context.Context, terms []string) ([]tracker.Result, error)
	ParseLine(line string) tracker.Result
}

// Opener starts external programs.
type Opener interface {
	Open(path string) error
	Run(command string, args ...string) error
}

// Reporter shows failures to the user.
type Reporter interface {
	Report(op errmsg.Op, subject string, err error) error
}

// ResultMeta is what a shell displays for one result.
type ResultMeta struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	GIcon       string `json:"gicon"`
	Label       string `json:"-"` // name with its glyph, for terminals
}

// Provider answers search requests.
type Provider struct {
	searcher     Searcher
	opener       Opener
	reporter     Reporter
	launchSearch string
	logger       *slog.Logger

	stat func(string) (fs.FileInfo, error)
	now  func() time.Time
}

// Option configures a Provider.
type Option func(*Provider)

// WithReporter sets where activation and query failures are reported.
func WithReporter(r Reporter) Option {
	return func(p *Provider) {
		p.reporter = r
	}
}

// WithLaunchSearch sets the command run with the terms by LaunchSearch.
func WithLaunchSearch(command string) Option {
	return func(p *Provider) {
		p.launchSearch = strings.TrimSpace(command)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a Provider.
func New(searcher Searcher, opener Opener, opts ...Option) *Provider {
	p := &Provider{
		searcher: searcher,
		opener:   opener,
		logger:   slog.New(slog.DiscardHandler),
		stat:     os.Stat,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Normalize runs a query for terms.
func (p *Provider) Normalize(ctx context.Context, terms []string) ([]tracker.Result, error) {
	results, err := p.searcher.Normalize(ctx, terms)
	if err != nil {
		p.logger.Error("search failed", "terms", terms, "err", err)
		p.report(errmsg.OpSearch, strings.Join(terms, " "), err)
		return nil, err
	}
	p.logger.Debug("search", "terms", terms, "count", len(results))
	return results, nil
}

// Subsearch refines a previous search. The index is queried again; previous
// results are not reused.
func (p *Provider) Subsearch(ctx context.Context, _ []string, terms []string) ([]tracker.Result, error) {
	return p.Normalize(ctx, terms)
}

// IDs returns the identifiers of results, in order.
func IDs(results []tracker.Result) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	return ids
}

// Describe returns the display metadata of the result identified by id.
func (p *Provider) Describe(id string) ResultMeta {
	return p.DescribeResult(p.searcher.ParseLine(id))
}

// DescribeResult returns the display metadata of r.
func (p *Provider) DescribeResult(r tracker.Result) ResultMeta {
	return ResultMeta{
		ID:          r.ID,
		Name:        r.Filename,
		Description: p.description(r),
		GIcon:       icons.GIcon(icons.Names(r.ContentType)),
		Label:       icons.FormatName(r.Filename, r.ContentType),
	}
}

func (p *Provider) description(r tracker.Result) string {
	if r.Path == "" {
		return ""
	}
	info, err := p.stat(r.Path)
	if err != nil {
		return r.Path
	}

	parts := []string{r.Path}
	if !info.IsDir() {
		parts = append(parts, humanize.IBytes(uint64(max(info.Size(), 0))))
	}
	if mod := info.ModTime(); !mod.IsZero() {
		parts = append(parts, humanize.RelTime(mod, p.now(), "ago", "from now"))
	}
	return strings.Join(parts, " · ")
}

// Activate opens the result identified by id with the default application.
func (p *Provider) Activate(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r := p.searcher.ParseLine(id)
	if err := p.opener.Open(r.Path); err != nil {
		err = fmt.Errorf("open %q: %w", r.Filename, err)
		p.logger.Error("activate failed", "id", id, "path", r.Path, "err", err)
		p.report(errmsg.OpOpenResult, r.Filename, err)
		return err
	}
	p.logger.Debug("activated", "id", id, "path", r.Path)
	return nil
}

// LaunchSearch opens the configured search application with terms. Without
// a configured command it does nothing.
func (p *Provider) LaunchSearch(ctx context.Context, terms []string) error {
	if p.launchSearch == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.opener.Run(p.launchSearch, terms...); err != nil {
		p.logger.Error("launch search failed", "command", p.launchSearch, "terms", terms, "err", err)
		p.report(errmsg.OpLaunchSearch, "", err)
		return err
	}
	return nil
}

func (p *Provider) report(op errmsg.Op, subject string, err error) {
	if p.reporter == nil {
		return
	}
	if notifyErr := p.reporter.Report(op, subject, err); notifyErr != nil {
		p.logger.Debug("notification failed", "err", notifyErr)
	}
}
