// Package posix resolves stat-family and raw numbered calls for the host
// architecture. It picks the stat generation once, dispatches each call to
// the matching native entry point and decodes results through the
// architecture's layout catalog.
package posix

import (
	"sync"
	"syscall"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/lunixbochs/goposix/go/arch"
	"github.com/lunixbochs/goposix/go/models"
	"github.com/lunixbochs/goposix/go/native"
)

type POSIX struct {
	lib     native.Library
	arch    *models.Arch
	host    native.HostInfo
	handler Handler
	log     *log.Logger
	config  *models.Config

	once     sync.Once
	forced   *StatDecision
	decision StatDecision

	symbols sync.Map // symbol name -> *native.Symbol
}

type Option func(*POSIX)

func WithLibrary(lib native.Library) Option { return func(p *POSIX) { p.lib = lib } }

func WithHandler(h Handler) Option { return func(p *POSIX) { p.handler = h } }

// WithArch skips host detection.
func WithArch(a *models.Arch) Option { return func(p *POSIX) { p.arch = a } }

func WithHost(h native.HostInfo) Option { return func(p *POSIX) { p.host = h } }

func WithLogger(l *log.Logger) Option { return func(p *POSIX) { p.log = l } }

// WithStatDecision skips the generation probe.
func WithStatDecision(d StatDecision) Option { return func(p *POSIX) { p.forced = &d } }

// WithConfig applies a config's arch, stat version and logging settings.
// Explicit options win over the config.
func WithConfig(c *models.Config) Option { return func(p *POSIX) { p.config = c } }

func New(opts ...Option) (*POSIX, error) {
	p := &POSIX{host: native.Detect()}
	for _, opt := range opts {
		opt(p)
	}
	c := p.config
	if c == nil {
		c = &models.Config{}
	}
	if p.log == nil {
		logger, err := c.Logger()
		if err != nil {
			return nil, err
		}
		p.log = logger
	}
	if p.handler == nil {
		p.handler = NewDefaultHandler(p.log, c.Verbose)
	}
	if p.arch == nil {
		if c.Arch != "" {
			a, err := arch.GetArch(c.Arch)
			if err != nil {
				return nil, errors.Wrap(err, "config arch")
			}
			p.arch = a
		} else if a, err := arch.Host(p.host); err == nil {
			p.arch = a
		} else {
			p.arch = arch.Fallback(p.host.Bits)
			p.handler.Warn(WarnFallbackArch, "%s; using %s layouts without raw syscalls", err, p.arch.Name)
		}
	}
	if p.forced == nil {
		d, ok, err := ParseStatDecision(c.StatVersion)
		if err != nil {
			p.handler.Warn(WarnBadConfig, "ignoring stat_version: %s", err)
		} else if ok {
			p.forced = &d
		}
	}
	if p.lib == nil {
		p.lib = native.LibC()
	}
	return p, nil
}

var (
	defaultOnce  sync.Once
	defaultPOSIX *POSIX
	defaultErr   error
)

// Default returns the process-wide instance for the host, configured from
// the user's config file if there is one.
func Default() (*POSIX, error) {
	defaultOnce.Do(func() {
		c, err := models.LoadConfig()
		if err != nil {
			defaultErr = err
			return
		}
		defaultPOSIX, defaultErr = New(WithConfig(c))
	})
	return defaultPOSIX, defaultErr
}

func (p *POSIX) Arch() *models.Arch { return p.arch }

func (p *POSIX) Host() native.HostInfo { return p.host }

func (p *POSIX) Library() native.Library { return p.lib }

// Decision returns the stat generation, probing on first use.
func (p *POSIX) Decision() StatDecision {
	p.once.Do(func() {
		if p.forced != nil {
			p.decision = *p.forced
			p.log.Debugf("stat generation forced: %s", p.decision)
			return
		}
		p.decision = selectStatGeneration(p.arch, p.lib, p.log)
	})
	return p.decision
}

// resolve looks a symbol up once. Link failures are not cached.
func (p *POSIX) resolve(name string) (*native.Symbol, error) {
	if sym, ok := p.symbols.Load(name); ok {
		return sym.(*native.Symbol), nil
	}
	sym, err := p.lib.Lookup(name)
	if err != nil {
		p.log.WithError(err).Debugf("resolving %s", name)
		return nil, err
	}
	p.symbols.Store(name, sym)
	return sym, nil
}

// fail reports a failed native call through the handler.
func (p *POSIX) fail(errno syscall.Errno, op, arg string) error {
	if p.handler.IsVerbose() {
		p.log.WithFields(log.Fields{"op": op, "arg": arg}).Debugf("%s failed: %s", op, errno)
	}
	if err := p.handler.Error(errno, op, arg); err != nil {
		return err
	}
	return &Error{Errno: errno, Op: op, Arg: arg}
}

func (p *POSIX) unimplemented(op string) error {
	if err := p.handler.Unimplemented(op); err != nil {
		return err
	}
	return &UnimplementedError{Op: op}
}
