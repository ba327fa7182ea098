// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package replicas

import (
	"time"

	"github.com/m3db/m3replica/src/x/instrument"
	"github.com/m3db/m3replica/src/x/log"
)

// Configuration is the configuration for a replica coordinator.
type Configuration struct {
	// PollInterval is how long a readiness round waits for a replica,
	// zero selects the default.
	PollInterval time.Duration `yaml:"pollInterval" validate:"min=0"`

	// AddressSeparator separates addresses in diagnostic messages.
	AddressSeparator *string `yaml:"addressSeparator"`

	// Logging overrides the logger of the instrument options.
	Logging *log.Configuration `yaml:"logging"`
}

// NewOptions creates coordinator options from the configuration.
func (c Configuration) NewOptions(iOpts instrument.Options) (Options, error) {
	if c.Logging != nil {
		logger, err := c.Logging.BuildLogger()
		if err != nil {
			return nil, err
		}
		iOpts = iOpts.SetLogger(logger)
	}

	opts := NewOptions().SetInstrumentOptions(iOpts)
	if c.PollInterval != 0 {
		opts = opts.SetPollInterval(c.PollInterval)
	}
	if c.AddressSeparator != nil {
		opts = opts.SetAddressSeparator(*c.AddressSeparator)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}
