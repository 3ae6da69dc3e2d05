package posix

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/lunixbochs/goposix/go/models"
	"github.com/lunixbochs/goposix/go/native"
)

// Generation is the stat interface a platform exposes.
type Generation int

const (
	Uninitialized Generation = iota
	// Modern: versioned __xstat64 family.
	Modern
	// Legacy: plain stat/lstat/fstat.
	Legacy
	// Unsupported: no stat interface at all.
	Unsupported
)

func (g Generation) String() string {
	switch g {
	case Modern:
		return "modern"
	case Legacy:
		return "legacy"
	case Unsupported:
		return "unsupported"
	}
	return "uninitialized"
}

// StatDecision is the outcome of stat generation selection. Version is the
// interface version passed to the versioned calls; Pinned means the
// architecture fixed the outcome without probing.
type StatDecision struct {
	Generation Generation
	Version    int
	Pinned     bool
}

func (d StatDecision) String() string {
	s := fmt.Sprintf("%s (version %d)", d.Generation, d.Version)
	if d.Pinned {
		s += " pinned"
	}
	return s
}

const (
	legacyPinnedVersion = 3
	probeSymbol         = "__xstat64"
	probePath           = "/dev/null"
)

// ParseStatDecision reads a forced generation by name. "" and "auto" mean
// probe, and return ok=false.
func ParseStatDecision(name string) (d StatDecision, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return d, false, nil
	case "modern":
		return StatDecision{Generation: Modern, Version: 0}, true, nil
	case "legacy":
		return StatDecision{Generation: Legacy, Version: 1}, true, nil
	case "unsupported":
		return StatDecision{Generation: Unsupported, Version: -1}, true, nil
	}
	return d, false, errors.Errorf("unknown stat version %q", name)
}

// selectStatGeneration decides once per process which stat interface to
// use. 32-bit profiles and those that pin a version never probe. Otherwise
// a versioned stat of /dev/null decides: a missing symbol means no stat
// interface, a failing call means the legacy calls, and success means the
// versioned calls.
func selectStatGeneration(a *models.Arch, lib native.Library, logger *log.Logger) StatDecision {
	entry := logger.WithFields(log.Fields{"arch": a.Name, "library": lib.Name()})
	if a.Bits == 32 || a.HasPinned {
		version := legacyPinnedVersion
		if a.HasPinned {
			version = a.PinnedStatVersion
		}
		d := StatDecision{Generation: Legacy, Version: version, Pinned: true}
		entry.Debugf("stat generation: %s", d)
		return d
	}
	sym, err := lib.Lookup(probeSymbol)
	if err != nil {
		entry.WithError(err).Debug("stat generation probe: no versioned stat")
		return StatDecision{Generation: Unsupported, Version: -1}
	}
	buf := a.Stat.Alloc()
	if ret, errno := sym.Call(0, probePath, buf); ret < 0 {
		entry.Debugf("stat generation probe: %s(0, %s) failed: %s", probeSymbol, probePath, errno)
		return StatDecision{Generation: Legacy, Version: 1}
	}
	d := StatDecision{Generation: Modern, Version: 0}
	entry.Debugf("stat generation: %s", d)
	return d
}
