package posix

import (
	"fmt"
	"os"
	"time"

	"github.com/lunixbochs/goposix/go/models"
)

// file type bits of st_mode
const (
	S_IFMT   = 0170000
	S_IFSOCK = 0140000
	S_IFLNK  = 0120000
	S_IFREG  = 0100000
	S_IFBLK  = 0060000
	S_IFDIR  = 0040000
	S_IFCHR  = 0020000
	S_IFIFO  = 0010000
)

// FileStat is one decoded stat record. It is a snapshot owned by the
// caller and never changes after the call returns.
type FileStat struct {
	rec *models.Record
}

func (s *FileStat) Dev() uint64   { return s.rec.Uint(models.StatDev) }
func (s *FileStat) Ino() uint64   { return s.rec.Uint(models.StatIno) }
func (s *FileStat) Mode() uint32  { return uint32(s.rec.Uint(models.StatMode)) }
func (s *FileStat) Nlink() uint64 { return s.rec.Uint(models.StatNlink) }
func (s *FileStat) Uid() uint32   { return uint32(s.rec.Uint(models.StatUid)) }
func (s *FileStat) Gid() uint32   { return uint32(s.rec.Uint(models.StatGid)) }
func (s *FileStat) Rdev() uint64  { return s.rec.Uint(models.StatRdev) }
func (s *FileStat) Size() int64   { return s.rec.Int(models.StatSize) }

func (s *FileStat) BlockSize() int64 { return s.rec.Int(models.StatBlksize) }
func (s *FileStat) Blocks() int64    { return s.rec.Int(models.StatBlocks) }

func (s *FileStat) Atime() int64 { return s.rec.Int(models.StatAtime) }
func (s *FileStat) Mtime() int64 { return s.rec.Int(models.StatMtime) }
func (s *FileStat) Ctime() int64 { return s.rec.Int(models.StatCtime) }

// The nanosecond accessors return 0 on layouts without sub-second times.
func (s *FileStat) ATimeNanoSecs() int64 { return s.rec.Int(models.StatAtimeNsec) }
func (s *FileStat) MTimeNanoSecs() int64 { return s.rec.Int(models.StatMtimeNsec) }
func (s *FileStat) CTimeNanoSecs() int64 { return s.rec.Int(models.StatCtimeNsec) }

func (s *FileStat) HasNanoseconds() bool { return s.rec.Has(models.StatMtimeNsec) }

// Layout names the layout the record was decoded with.
func (s *FileStat) Layout() string { return s.rec.Layout().Name }

func (s *FileStat) IsDir() bool     { return s.Mode()&S_IFMT == S_IFDIR }
func (s *FileStat) IsRegular() bool { return s.Mode()&S_IFMT == S_IFREG }
func (s *FileStat) IsSymlink() bool { return s.Mode()&S_IFMT == S_IFLNK }

func (s *FileStat) ModTime() time.Time { return time.Unix(s.Mtime(), s.MTimeNanoSecs()) }

// FileMode converts st_mode to an os.FileMode.
func (s *FileStat) FileMode() os.FileMode {
	mode := os.FileMode(s.Mode() & 0777)
	switch s.Mode() & S_IFMT {
	case S_IFDIR:
		mode |= os.ModeDir
	case S_IFLNK:
		mode |= os.ModeSymlink
	case S_IFIFO:
		mode |= os.ModeNamedPipe
	case S_IFSOCK:
		mode |= os.ModeSocket
	case S_IFCHR:
		mode |= os.ModeDevice | os.ModeCharDevice
	case S_IFBLK:
		mode |= os.ModeDevice
	}
	if s.Mode()&04000 != 0 {
		mode |= os.ModeSetuid
	}
	if s.Mode()&02000 != 0 {
		mode |= os.ModeSetgid
	}
	if s.Mode()&01000 != 0 {
		mode |= os.ModeSticky
	}
	return mode
}

func (s *FileStat) String() string {
	return fmt.Sprintf("{dev=%#x ino=%d mode=%s nlink=%d uid=%d gid=%d size=%d mtime=%s}",
		s.Dev(), s.Ino(), s.FileMode(), s.Nlink(), s.Uid(), s.Gid(), s.Size(), s.ModTime().UTC().Format(time.RFC3339Nano))
}
