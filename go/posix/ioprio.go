package posix

// linux/ioprio.h
const (
	IOPRIO_WHO_PROCESS = 1
	IOPRIO_WHO_PGRP    = 2
	IOPRIO_WHO_USER    = 3

	IOPRIO_CLASS_NONE = 0
	IOPRIO_CLASS_RT   = 1
	IOPRIO_CLASS_BE   = 2
	IOPRIO_CLASS_IDLE = 3

	ioprioClassShift = 13
	ioprioPrioMask   = 1<<ioprioClassShift - 1
)

func IoprioPrioValue(class, data int) int { return class<<ioprioClassShift | data }

func IoprioClass(prio int) int { return prio >> ioprioClassShift }

func IoprioData(prio int) int { return prio & ioprioPrioMask }

// IoprioGet returns the I/O priority of a process, group or user.
// A failed call returns -1, the raw syscall(2) result, together with an
// error that unwraps to the errno; callers that only want the raw int can
// ignore the error. Architectures without the call in their ABI table
// return -1 and an unimplemented error without entering the kernel.
func (p *POSIX) IoprioGet(which, who int) (int, error) {
	return p.numbered("ioprio_get", uintptr(which), uintptr(who), 0)
}

// IoprioSet follows the same result convention as IoprioGet.
func (p *POSIX) IoprioSet(which, who, prio int) (int, error) {
	return p.numbered("ioprio_set", uintptr(which), uintptr(who), uintptr(prio))
}

// numbered issues a syscall that has no libc wrapper by its number on the
// active architecture. The raw result comes back unchanged; a failure also
// carries an error from the handler.
func (p *POSIX) numbered(op string, a1, a2, a3 uintptr) (int, error) {
	nr, ok := p.arch.Syscalls.Lookup(op)
	if !ok {
		return -1, p.unimplemented(op)
	}
	sym, err := p.resolve("syscall")
	if err != nil {
		return -1, p.unimplemented(op)
	}
	ret, errno := sym.Call(nr, a1, a2, a3)
	p.log.Debugf("syscall(%s, %#x, %#x, %#x) = %d", p.arch.SyscallName(nr), a1, a2, a3, ret)
	if ret < 0 {
		return ret, p.fail(errno, op, "")
	}
	return ret, nil
}
