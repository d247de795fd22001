// Package shellsearch exports a search provider to the desktop shell over
// the session bus (org.gnome.Shell.SearchProvider2).
package shellsearch

import (
	"context"
	"errors"
	"log/slog"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"

	"github.com/llehouerou/trackersearch/internal/provider"
	"github.com/llehouerou/trackersearch/internal/tracker"
)

const (
	// Interface is the D-Bus interface the shell calls.
	Interface = "org.gnome.Shell.SearchProvider2"

	introspectableInterface = "org.freedesktop.DBus.Introspectable"
)

// ErrNameTaken is returned when another process owns the bus name.
var ErrNameTaken = errors.New("bus name already taken")

// SearchProvider answers the shell's requests.
type SearchProvider interface {
	Normalize(ctx context.Context, terms []string) ([]tracker.Result, error)
	Subsearch(ctx context.Context, previous, terms []string) ([]tracker.Result, error)
	Describe(id string) provider.ResultMeta
	Activate(ctx context.Context, id string) error
	LaunchSearch(ctx context.Context, terms []string) error
}

// searchObject is the exported object. Method names and signatures are the
// wire contract.
type searchObject struct {
	ctx      context.Context
	provider SearchProvider
	logger   *slog.Logger
}

// GetInitialResultSet runs a new search. Failures yield no results.
func (o *searchObject) GetInitialResultSet(terms []string) ([]string, *dbus.Error) {
	results, err := o.provider.Normalize(o.ctx, terms)
	if err != nil {
		o.logger.Warn("initial search failed", "terms", terms, "err", err)
		return []string{}, nil
	}
	return provider.IDs(results), nil
}

// GetSubsearchResultSet refines a search. Failures yield no results.
func (o *searchObject) GetSubsearchResultSet(previous, terms []string) ([]string, *dbus.Error) {
	results, err := o.provider.Subsearch(o.ctx, previous, terms)
	if err != nil {
		o.logger.Warn("subsearch failed", "terms", terms, "err", err)
		return []string{}, nil
	}
	return provider.IDs(results), nil
}

// GetResultMetas describes each id, in order.
func (o *searchObject) GetResultMetas(ids []string) ([]map[string]dbus.Variant, *dbus.Error) {
	metas := make([]map[string]dbus.Variant, 0, len(ids))
	for _, id := range ids {
		metas = append(metas, metaVariants(o.provider.Describe(id)))
	}
	return metas, nil
}

// ActivateResult opens one result.
func (o *searchObject) ActivateResult(id string, _ []string, _ uint32) *dbus.Error {
	if err := o.provider.Activate(o.ctx, id); err != nil {
		return dbus.MakeFailedError(err)
	}
	return nil
}

// LaunchSearch opens the search application for terms.
func (o *searchObject) LaunchSearch(terms []string, _ uint32) *dbus.Error {
	if err := o.provider.LaunchSearch(o.ctx, terms); err != nil {
		return dbus.MakeFailedError(err)
	}
	return nil
}

// metaVariants converts meta into the a{sv} dictionary the shell reads.
// Keys without a value are left out.
func metaVariants(meta provider.ResultMeta) map[string]dbus.Variant {
	m := map[string]dbus.Variant{
		"id":   dbus.MakeVariant(meta.ID),
		"name": dbus.MakeVariant(meta.Name),
	}
	if meta.Description != "" {
		m["description"] = dbus.MakeVariant(meta.Description)
	}
	if meta.GIcon != "" {
		m["gicon"] = dbus.MakeVariant(meta.GIcon)
	}
	return m
}

func introspectNode() *introspect.Node {
	in := func(name, typ string) introspect.Arg {
		return introspect.Arg{Name: name, Type: typ, Direction: "in"}
	}
	out := func(name, typ string) introspect.Arg {
		return introspect.Arg{Name: name, Type: typ, Direction: "out"}
	}
	return &introspect.Node{
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			{
				Name: Interface,
				Methods: []introspect.Method{
					{Name: "GetInitialResultSet", Args: []introspect.Arg{in("terms", "as"), out("results", "as")}},
					{Name: "GetSubsearchResultSet", Args: []introspect.Arg{
						in("previous_results", "as"), in("terms", "as"), out("results", "as"),
					}},
					{Name: "GetResultMetas", Args: []introspect.Arg{in("identifiers", "as"), out("metas", "aa{sv}")}},
					{Name: "ActivateResult", Args: []introspect.Arg{
						in("identifier", "s"), in("terms", "as"), in("timestamp", "u"),
					}},
					{Name: "LaunchSearch", Args: []introspect.Arg{in("terms", "as"), in("timestamp", "u")}},
				},
			},
		},
	}
}
