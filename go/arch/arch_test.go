package arch

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunixbochs/goposix/go/arch/x86"
	"github.com/lunixbochs/goposix/go/arch/x86_64"
	"github.com/lunixbochs/goposix/go/models"
	"github.com/lunixbochs/goposix/go/native"
)

type profileRow struct {
	bits     int
	order    binary.ByteOrder
	stat     int
	nsec     bool
	pinned   int // 0: probes
	msghdr   int
	ioprioSe int
	ioprioGe int
}

var profiles = map[string]profileRow{
	"x86":         {32, binary.LittleEndian, 96, true, 3, 28, 289, 290},
	"x86_64":      {64, binary.LittleEndian, 144, true, 0, 56, 251, 252},
	"arm":         {32, binary.LittleEndian, 104, true, 3, 28, 0, 0},
	"arm64":       {64, binary.LittleEndian, 128, true, 0, 56, 30, 31},
	"riscv64":     {64, binary.LittleEndian, 128, true, 0, 56, 30, 31},
	"loongarch64": {64, binary.LittleEndian, 128, true, 0, 56, 30, 31},
	"ppc64":       {64, binary.BigEndian, 144, true, 0, 56, 273, 274},
	"ppc64le":     {64, binary.LittleEndian, 144, true, 0, 56, 273, 274},
	"mips64":      {64, binary.BigEndian, 104, true, 3, 56, 5273, 5274},
	"mips64le":    {64, binary.LittleEndian, 104, true, 3, 56, 5273, 5274},
	"sparc64":     {64, binary.BigEndian, 144, true, 3, 56, 196, 218},
	"m68k":        {32, binary.BigEndian, 64, false, 3, 28, 0, 0},
}

func TestProfiles(t *testing.T) {
	require.Len(t, All(), len(profiles))
	for name, row := range profiles {
		a, err := GetArch(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, a.Name)
		assert.Equal(t, row.bits, a.Bits, name)
		assert.Equal(t, row.order, a.Order, name)
		assert.Equal(t, row.order, a.Stat.Order, name)
		assert.Equal(t, row.stat, a.Stat.Size, name)
		assert.Equal(t, row.nsec, a.Nanoseconds(), name)
		assert.Equal(t, row.msghdr, a.MsgHdr.Size, name)
		assert.Equal(t, row.bits/8*4, a.Tms.Size, name)
		if row.pinned != 0 {
			assert.True(t, a.HasPinned, name)
			assert.Equal(t, row.pinned, a.PinnedStatVersion, name)
		} else {
			assert.False(t, a.HasPinned, name)
		}
		set, okSet := a.Syscalls.Lookup("ioprio_set")
		get, okGet := a.Syscalls.Lookup("ioprio_get")
		if row.ioprioSe == 0 {
			assert.False(t, okSet || okGet, name)
		} else {
			assert.Equal(t, row.ioprioSe, set, name)
			assert.Equal(t, row.ioprioGe, get, name)
		}
	}
}

func TestStatLogicalFields(t *testing.T) {
	for _, a := range All() {
		logical := a.Stat.Logical()
		for _, name := range models.StatFields {
			nsec := false
			for _, n := range models.StatNsecFields {
				nsec = nsec || n == name
			}
			if nsec && !a.Nanoseconds() {
				assert.NotContains(t, logical, name, a.Name)
				continue
			}
			assert.Contains(t, logical, name, a.Name)
		}
		// padding never surfaces as a logical field
		for _, f := range a.Stat.Fields {
			if f.Padding {
				assert.NotContains(t, logical, f.Name, a.Name)
			}
		}
		assert.Len(t, logical, len(a.Stat.Logical()))
	}
}

func TestStatFieldsInBounds(t *testing.T) {
	for _, a := range All() {
		end := 0
		for _, f := range a.Stat.Fields {
			assert.Equal(t, end, f.Offset, "%s.%s", a.Name, f.Name)
			end = f.Offset + f.Size
		}
		assert.Equal(t, a.Stat.Size, end, a.Name)
	}
}

func TestAliases(t *testing.T) {
	cases := map[string]string{
		"amd64":    "x86_64",
		"X64":      "x86_64",
		"i686":     "x86",
		"386":      "x86",
		"aarch64":  "arm64",
		"loong64":  "loongarch64",
		"sparcv9":  "sparc64",
		"ppc64el":  "ppc64le",
		"mips64el": "mips64le",
	}
	for alias, name := range cases {
		a, err := GetArch(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, name, a.Name, alias)
	}
	_, err := GetArch("vax")
	assert.Error(t, err)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Equal(t, "arm", names[0])
	assert.Contains(t, names, "x86_64")
	// natural order puts arm before arm64
	assert.Less(t, indexOf(names, "arm"), indexOf(names, "arm64"))
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

func TestHost(t *testing.T) {
	a, err := Host(native.HostInfo{Arch: "amd64", Bits: 64, OS: "linux"})
	require.NoError(t, err)
	assert.Equal(t, "x86_64", a.Name)

	a, err = Host(native.HostInfo{Arch: "amd64", Bits: 32, OS: "linux"})
	require.NoError(t, err)
	assert.Equal(t, "x86", a.Name)

	a, err = Host(native.HostInfo{Arch: "arm64", Bits: 32, OS: "linux"})
	require.NoError(t, err)
	assert.Equal(t, "arm", a.Name)

	_, err = Host(native.HostInfo{Arch: "riscv64", Bits: 32, OS: "linux"})
	assert.Error(t, err)

	_, err = Host(native.HostInfo{Arch: "s390x", Bits: 64, OS: "linux"})
	assert.Error(t, err)

	fb := Fallback(64)
	assert.Equal(t, x86_64.Arch.Stat, fb.Stat)
	assert.Nil(t, fb.Syscalls)
	_, ok := fb.Syscalls.Lookup("ioprio_get")
	assert.False(t, ok)
	assert.NotNil(t, x86_64.Arch.Syscalls, "fallback must not modify the registered profile")

	fb = Fallback(32)
	assert.Equal(t, x86.Arch.Stat, fb.Stat)
	assert.True(t, fb.HasPinned)

	// whatever we run on should resolve to a profile
	if h := native.Detect(); h.OS == "linux" {
		if _, err := GetArch(h.Arch); err == nil {
			_, err = Host(h)
			assert.NoError(t, err)
		}
	}
}

func TestSyscallNames(t *testing.T) {
	a, err := GetArch("x86")
	require.NoError(t, err)
	assert.Equal(t, "ioprio_get", a.SyscallName(290))
	assert.Equal(t, "syscall_99999", a.SyscallName(99999))

	a, err = GetArch("x86_64")
	require.NoError(t, err)
	assert.Equal(t, "ioprio_set", a.SyscallName(251))
}
