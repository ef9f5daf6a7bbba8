// internal/cmdcheck/checker.go
package cmdcheck

import (
	"context"
	"fmt"
	"sort"

	"github.com/containerd/errdefs"
	"github.com/sirupsen/logrus"

	"pepkit/internal/logutil"
	"pepkit/pkg/api"
)

// Checker validates PATH availability of the executables a pipeline config
// references. All probing happens in New; the resulting Checker is a
// read-only record of the outcome.
type Checker struct {
	Path string

	log               *logrus.Logger
	records           map[string][]api.CommandStatusV1
	failuresBySection map[string][]string
	failures          map[string]struct{}
	validated         int
}

type options struct {
	sections []string
	skip     []string
	log      *logrus.Logger
}

// Option customizes a Checker run.
type Option func(*options)

// WithSections restricts validation to the named config sections.
func WithSections(names ...string) Option {
	return func(o *options) { o.sections = append(o.sections, names...) }
}

// SkipSections excludes the named config sections from validation.
func SkipSections(names ...string) Option {
	return func(o *options) { o.skip = append(o.skip, names...) }
}

// WithLogger routes the checker's logging.
func WithLogger(log *logrus.Logger) Option {
	return func(o *options) { o.log = log }
}

// New loads the config at path and probes every command in the selected
// sections. Sections named but absent from the file are skipped with a log
// line, matching lenient config conventions.
func New(ctx context.Context, path string, opts ...Option) (*Checker, error) {
	var o options
	for _, apply := range opts {
		apply(&o)
	}
	if o.log == nil {
		o.log = logutil.Discard()
	}

	conf, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	sections := selectSections(conf, o.sections, o.skip)
	o.log.WithFields(logrus.Fields{
		"config":   path,
		"sections": len(sections),
	}).Info("validating commands")

	c := &Checker{
		Path:              path,
		log:               o.log,
		records:           map[string][]api.CommandStatusV1{},
		failuresBySection: map[string][]string{},
		failures:          map[string]struct{}{},
	}
	for _, section := range sections {
		cmds, ok := conf[section]
		if !ok {
			o.log.WithField("section", section).Info("no such section in config, skipping")
			continue
		}
		for _, cmd := range cmds {
			c.record(section, cmd, IsCallable(ctx, cmd.Cmd))
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

func (c *Checker) record(section string, cmd Command, ok bool) {
	c.records[section] = append(c.records[section], api.CommandStatusV1{
		Name:    cmd.Name,
		Command: cmd.Cmd,
		OK:      ok,
	})
	c.validated++
	if !ok {
		c.failuresBySection[section] = append(c.failuresBySection[section], cmd.Cmd)
		c.failures[cmd.Cmd] = struct{}{}
	}
	c.log.WithFields(logrus.Fields{
		"section": section,
		"command": cmd.Cmd,
		"name":    cmd.Name,
		"ok":      ok,
	}).Debug("probed command")
}

// Failed reports whether any probed command was not callable. It errors
// when nothing was validated at all; deciding whether validation is
// relevant stays with the caller.
func (c *Checker) Failed() (bool, error) {
	if c.validated == 0 {
		return false, fmt.Errorf("no commands validated: %w", errdefs.ErrFailedPrecondition)
	}
	return len(c.failures) > 0, nil
}

// Status returns pass/fail per command, nested under section.
func (c *Checker) Status() map[string]map[string]bool {
	out := make(map[string]map[string]bool, len(c.records))
	for s, recs := range c.records {
		inner := make(map[string]bool, len(recs))
		for _, r := range recs {
			inner[r.Command] = r.OK
		}
		out[s] = inner
	}
	return out
}

// FailuresBySection returns the failed command strings per section.
func (c *Checker) FailuresBySection() map[string][]string {
	out := make(map[string][]string, len(c.failuresBySection))
	for s, cmds := range c.failuresBySection {
		out[s] = append([]string(nil), cmds...)
	}
	return out
}

// Failures returns the distinct failed commands, sorted.
func (c *Checker) Failures() []string {
	out := make([]string, 0, len(c.failures))
	for cmd := range c.failures {
		out = append(out, cmd)
	}
	sort.Strings(out)
	return out
}

// Report flattens the outcome into the stable schema, with sections sorted
// for deterministic output; commands keep config order within a section.
func (c *Checker) Report() api.CheckReportV1 {
	rep := api.CheckReportV1{
		Config: c.Path,
		OK:     c.validated > 0 && len(c.failures) == 0,
	}
	if len(c.failures) > 0 {
		rep.Failures = c.Failures()
	}

	sections := make([]string, 0, len(c.records))
	for s := range c.records {
		sections = append(sections, s)
	}
	sort.Strings(sections)
	for _, s := range sections {
		rep.Sections = append(rep.Sections, api.SectionReportV1{
			Name:     s,
			Commands: append([]api.CommandStatusV1(nil), c.records[s]...),
		})
	}
	return rep
}

func selectSections(conf map[string][]Command, include, skip []string) []string {
	var names []string
	if len(include) > 0 {
		names = append(names, include...)
	} else {
		for s := range conf {
			names = append(names, s)
		}
	}
	excluded := make(map[string]struct{}, len(skip))
	for _, s := range skip {
		excluded[s] = struct{}{}
	}
	out := names[:0]
	for _, s := range names {
		if _, drop := excluded[s]; !drop {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
