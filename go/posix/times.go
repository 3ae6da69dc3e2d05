package posix

// Times is struct tms plus the elapsed clock returned by times(2), all in
// clock ticks.
type Times struct {
	Utime   int64
	Stime   int64
	Cutime  int64
	Cstime  int64
	Elapsed int64
}

func (p *POSIX) Times() (*Times, error) {
	sym, err := p.resolve("times")
	if err != nil {
		return nil, p.unimplemented("times")
	}
	buf := p.arch.Tms.Alloc()
	ret, errno := sym.Call(buf)
	if ret < 0 {
		return nil, p.fail(errno, "times", "")
	}
	rec, err := p.arch.Tms.Decode(buf)
	if err != nil {
		return nil, err
	}
	return &Times{
		Utime:   rec.Int("Utime"),
		Stime:   rec.Int("Stime"),
		Cutime:  rec.Int("Cutime"),
		Cstime:  rec.Int("Cstime"),
		Elapsed: int64(ret),
	}, nil
}
