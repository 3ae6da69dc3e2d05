package models

import "sort"

// SyscallTable maps kernel syscall names to numbers for one architecture.
type SyscallTable struct {
	nums  map[string]int
	names map[int]string
}

func NewSyscallTable(nums map[string]int) *SyscallTable {
	t := &SyscallTable{nums: make(map[string]int), names: make(map[int]string)}
	for name, nr := range nums {
		t.nums[name] = nr
		t.names[nr] = name
	}
	return t
}

func (t *SyscallTable) Lookup(name string) (int, bool) {
	if t == nil {
		return 0, false
	}
	nr, ok := t.nums[name]
	return nr, ok
}

func (t *SyscallTable) Name(nr int) (string, bool) {
	if t == nil {
		return "", false
	}
	name, ok := t.names[nr]
	return name, ok
}

// Names returns the syscall names in the table, sorted.
func (t *SyscallTable) Names() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.nums))
	for name := range t.nums {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
