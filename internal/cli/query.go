package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/llehouerou/trackersearch/internal/provider"
	"github.com/llehouerou/trackersearch/internal/tracker"
	"github.com/llehouerou/trackersearch/internal/ui/styles"
)

// jsonResult is one result of `query --json`.
type jsonResult struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	Path        string `json:"path"`
	Extension   string `json:"extension"`
	ContentType string `json:"content_type"`
	Description string `json:"description,omitempty"`
	GIcon       string `json:"gicon,omitempty"`
}

func (a *app) queryCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "query [terms...]",
		Short: "Print the files matching terms",
		Long: `Run one index query and print the normalized results in index order.

The first output line of tracker-search is skipped and at most max_results
lines are read, so at most max_results-1 files are printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.newProvider(a.logger, false)
			results, err := p.Normalize(cmd.Context(), args)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), p, results)
			}
			if len(results) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "No matches")
				return nil
			}
			return writeText(cmd.OutOrStdout(), p, results)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func writeJSON(w io.Writer, p *provider.Provider, results []tracker.Result) error {
	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		meta := p.DescribeResult(r)
		out = append(out, jsonResult{
			ID:          r.ID,
			Filename:    r.Filename,
			Path:        r.Path,
			Extension:   r.Extension,
			ContentType: r.ContentType,
			Description: meta.Description,
			GIcon:       meta.GIcon,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeText(w io.Writer, p *provider.Provider, results []tracker.Result) error {
	s := styles.T().S()
	for _, r := range results {
		meta := p.DescribeResult(r)
		line := s.Title.Render(meta.Label)
		if r.Extension != "" {
			line += " " + s.Badge.Render(r.Extension)
		}
		line += "  " + s.Muted.Render(r.ContentType)
		if meta.Description != "" {
			line += "  " + s.Muted.Render(meta.Description)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
