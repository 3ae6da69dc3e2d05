package models

import (
	"encoding/binary"
	"fmt"
)

// Logical FileStat fields, in canonical order. Every stat layout carries
// all of them except the *Nsec fields, which some kernels never had.
const (
	StatDev       = "Dev"
	StatIno       = "Ino"
	StatMode      = "Mode"
	StatNlink     = "Nlink"
	StatUid       = "Uid"
	StatGid       = "Gid"
	StatRdev      = "Rdev"
	StatSize      = "Size"
	StatBlksize   = "Blksize"
	StatBlocks    = "Blocks"
	StatAtime     = "Atime"
	StatAtimeNsec = "AtimeNsec"
	StatMtime     = "Mtime"
	StatMtimeNsec = "MtimeNsec"
	StatCtime     = "Ctime"
	StatCtimeNsec = "CtimeNsec"
)

var StatFields = []string{
	StatDev, StatIno, StatMode, StatNlink, StatUid, StatGid, StatRdev,
	StatSize, StatBlksize, StatBlocks,
	StatAtime, StatAtimeNsec, StatMtime, StatMtimeNsec, StatCtime, StatCtimeNsec,
}

var StatNsecFields = []string{StatAtimeNsec, StatMtimeNsec, StatCtimeNsec}

// Arch is the profile of one architecture/ABI: its binary layouts and the
// numbers of syscalls that have no stable libc wrapper.
type Arch struct {
	Name    string
	Aliases []string
	Bits    int
	Order   binary.ByteOrder
	// Compat32 names the profile used by a 32-bit process on this family.
	Compat32 string

	Stat   *Layout
	MsgHdr *Layout
	Tms    *Layout

	Syscalls *SyscallTable
	// kernel names for raw syscall numbers, used for tracing only
	SysNames map[int]string

	// PinnedStatVersion is the stat interface version for architectures
	// that skip the generation probe.
	PinnedStatVersion int
	HasPinned         bool
}

func (a *Arch) String() string {
	return fmt.Sprintf("<Arch %s/%d>", a.Name, a.Bits)
}

// SyscallName names a raw syscall number for logs.
func (a *Arch) SyscallName(nr int) string {
	if name, ok := a.SysNames[nr]; ok {
		return name
	}
	if a.Syscalls != nil {
		if name, ok := a.Syscalls.Name(nr); ok {
			return name
		}
	}
	return fmt.Sprintf("syscall_%d", nr)
}

// Nanoseconds reports whether the stat layout has sub-second timestamps.
func (a *Arch) Nanoseconds() bool {
	for _, name := range StatNsecFields {
		if !a.Stat.Has(name) {
			return false
		}
	}
	return true
}
