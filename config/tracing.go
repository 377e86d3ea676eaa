package config

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// ConfigureTracing sets up the global tracers from a configuration. Trace
// levels are taken from c.Tracing.Levels, the key "root" addressing the root
// tracer. It returns a teardown function which detaches the tracers again.
func ConfigureTracing(c *Config) (func(), error) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tracing.RegisterTraceAdapter("logrus", logrusadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(c, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return func() {}, fmt.Errorf("failed to configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Debugf("tracing configured with adapter %q", c.Tracing.Adapter)
	return trace2go.Teardown, nil
}

// SetTraceLevel overrides the trace level of a tracer, e.g. from a command
// line flag. It has to be called before ConfigureTracing.
func (c *Config) SetTraceLevel(key, level string) {
	if c.Tracing.Levels == nil {
		c.Tracing.Levels = make(map[string]string)
	}
	c.Tracing.Levels[key] = level
}
