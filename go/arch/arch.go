package arch

import (
	"sort"
	"strings"

	"github.com/lunixbochs/fvbommel-util/sortorder"
	"github.com/pkg/errors"

	"github.com/lunixbochs/goposix/go/arch/arm"
	"github.com/lunixbochs/goposix/go/arch/arm64"
	"github.com/lunixbochs/goposix/go/arch/loongarch64"
	"github.com/lunixbochs/goposix/go/arch/m68k"
	"github.com/lunixbochs/goposix/go/arch/mips64"
	"github.com/lunixbochs/goposix/go/arch/ppc64"
	"github.com/lunixbochs/goposix/go/arch/riscv64"
	"github.com/lunixbochs/goposix/go/arch/sparc64"
	"github.com/lunixbochs/goposix/go/arch/x86"
	"github.com/lunixbochs/goposix/go/arch/x86_64"
	"github.com/lunixbochs/goposix/go/models"
	"github.com/lunixbochs/goposix/go/native"
)

var archList = []*models.Arch{
	arm.Arch,
	arm64.Arch,
	loongarch64.Arch,
	m68k.Arch,
	mips64.Arch,
	mips64.ArchLE,
	ppc64.Arch,
	ppc64.ArchLE,
	riscv64.Arch,
	sparc64.Arch,
	x86.Arch,
	x86_64.Arch,
}

// name or alias -> profile
var archMap = make(map[string]*models.Arch)

func register(a *models.Arch) {
	for _, name := range append([]string{a.Name}, a.Aliases...) {
		if _, ok := archMap[name]; ok {
			panic("Duplicate arch " + name)
		}
		archMap[name] = a
	}
}

func init() {
	for _, a := range archList {
		register(a)
	}
}

// GetArch looks up a profile by canonical name or alias.
func GetArch(name string) (*models.Arch, error) {
	a, ok := archMap[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("Arch '%s' not found.", name)
	}
	return a, nil
}

// Names returns the canonical profile names in natural order.
func Names() []string {
	names := make([]string, len(archList))
	for i, a := range archList {
		names[i] = a.Name
	}
	sort.Slice(names, func(i, j int) bool { return sortorder.NaturalLess(names[i], names[j]) })
	return names
}

// All returns every registered profile, sorted like Names.
func All() []*models.Arch {
	out := make([]*models.Arch, 0, len(archList))
	for _, name := range Names() {
		out = append(out, archMap[name])
	}
	return out
}

// Host selects the profile for a detected host. A 32-bit process on a
// 64-bit family (x32, arm on arm64) gets the family's 32-bit profile.
func Host(h native.HostInfo) (*models.Arch, error) {
	a, err := GetArch(h.Arch)
	if err != nil {
		return nil, errors.Wrap(err, "unsupported host")
	}
	if h.Bits == 32 && a.Bits == 64 {
		if a.Compat32 == "" {
			return nil, errors.Errorf("no 32-bit profile for %s", a.Name)
		}
		return GetArch(a.Compat32)
	}
	return a, nil
}

// Fallback is the profile for a host with no profile of its own: the x86
// layouts for its word size, with no syscall table, so raw numbered calls
// are unimplemented.
func Fallback(bits int) *models.Arch {
	base := x86_64.Arch
	if bits == 32 {
		base = x86.Arch
	}
	a := *base
	a.Aliases = nil
	a.Syscalls = nil
	a.SysNames = nil
	return &a
}
