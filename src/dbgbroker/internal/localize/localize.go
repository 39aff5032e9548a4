// Package localize renders user-facing messages from a message catalog.
package localize

import (
	"fmt"

	dbgerrors "github.com/uber/dbgbroker/src/dbgbroker/internal/errors"
	"go.uber.org/config"
	"go.uber.org/fx"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const _configKeyLocale = "debugger.locale"

// KeyCreateDescriptor is the message logged once a transport descriptor is ready.
const KeyCreateDescriptor = "debugger.create.descriptor"

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Localizer maps message keys and positional arguments to user-facing text.
type Localizer interface {
	Sprintf(key string, args ...interface{}) string
	// Error renders err through the catalog when it carries a message key and falls back to err.Error().
	Error(err error) string
}

// Params define values to be used by Localizer.
type Params struct {
	fx.In

	Config config.Provider `optional:"true"`
}

type localizer struct {
	printer *message.Printer
}

// New creates a Localizer for the configured locale, English when unset.
func New(p Params) (Localizer, error) {
	tag := language.English
	if p.Config != nil {
		var raw string
		if err := p.Config.Get(_configKeyLocale).Populate(&raw); err != nil {
			return nil, fmt.Errorf("getting config field %q: %w", _configKeyLocale, err)
		}
		if raw != "" {
			parsed, err := language.Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("parsing locale %q: %w", raw, err)
			}
			tag = parsed
		}
	}

	return NewWithTag(tag)
}

// NewWithTag creates a Localizer for a specific language.
func NewWithTag(tag language.Tag) (Localizer, error) {
	cat, err := newCatalog()
	if err != nil {
		return nil, err
	}

	// The first supported language is the fallback when nothing matches.
	_, index, _ := language.NewMatcher(_supported).Match(tag)
	return &localizer{printer: message.NewPrinter(_supported[index], message.Catalog(cat))}, nil
}

func (l *localizer) Sprintf(key string, args ...interface{}) string {
	return l.printer.Sprintf(key, args...)
}

func (l *localizer) Error(err error) string {
	if err == nil {
		return ""
	}
	if le, ok := dbgerrors.AsLocalizable(err); ok {
		return l.Sprintf(le.MessageKey(), le.MessageArgs()...)
	}
	return err.Error()
}

func newCatalog() (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(_supported[0]))
	for tag, entries := range _messages {
		for key, msg := range entries {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("registering message %q for %s: %w", key, tag, err)
			}
		}
	}
	return b, nil
}
