package models

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"reflect"
	"strings"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"
)

// Field is one entry of a layout descriptor.
type Field struct {
	Name    string
	Type    string
	Offset  int
	Size    int
	Padding bool
}

func (f Field) String() string {
	if f.Padding {
		return fmt.Sprintf("%#04x %-12s pad[%d]", f.Offset, "-", f.Size)
	}
	return fmt.Sprintf("%#04x %-12s %s", f.Offset, f.Name, f.Type)
}

// Layout describes a fixed-size binary record matching a kernel struct.
// Layouts are built once at init and are read-only afterwards.
type Layout struct {
	Name    string
	Order   binary.ByteOrder
	PtrBits int
	Size    int
	Fields  []Field

	typ     reflect.Type
	logical []string
	index   map[string]int // logical name -> struct field index
	slot    map[string]int // logical name -> position in Record.vals
}

// NewLayout builds a descriptor from proto, a struct (or pointer to one)
// carrying struc tags. Padding slots must use the struc "pad" type.
func NewLayout(name string, proto interface{}, order binary.ByteOrder, ptrBits int) (*Layout, error) {
	typ := reflect.TypeOf(proto)
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, errors.Errorf("layout %s: %s is not a struct", name, typ)
	}
	l := &Layout{
		Name:    name,
		Order:   order,
		PtrBits: ptrBits,
		typ:     typ,
		index:   make(map[string]int),
		slot:    make(map[string]int),
	}
	opts := l.options()
	offset := 0
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if sf.PkgPath != "" {
			// struc ignores private fields, so do we
			continue
		}
		size, err := fieldSize(sf, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "layout %s: field %s", name, sf.Name)
		}
		f := Field{
			Name:    sf.Name,
			Type:    fieldType(sf, ptrBits),
			Offset:  offset,
			Size:    size,
			Padding: isPad(sf),
		}
		if !f.Padding {
			l.index[sf.Name] = i
			l.slot[sf.Name] = len(l.logical)
			l.logical = append(l.logical, sf.Name)
		}
		l.Fields = append(l.Fields, f)
		offset += size
	}
	total, err := struc.SizeofWithOptions(reflect.New(typ).Interface(), opts)
	if err != nil {
		return nil, errors.Wrapf(err, "layout %s", name)
	}
	if total != offset {
		return nil, errors.Errorf("layout %s: descriptor size %d != struc size %d", name, offset, total)
	}
	l.Size = total
	return l, nil
}

// MustLayout is NewLayout for package-level catalog entries.
func MustLayout(name string, proto interface{}, order binary.ByteOrder, ptrBits int) *Layout {
	l, err := NewLayout(name, proto, order, ptrBits)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *Layout) options() *struc.Options {
	return &struc.Options{Order: l.Order, PtrSize: l.PtrBits}
}

// Logical returns the ordered non-padding field names.
func (l *Layout) Logical() []string {
	out := make([]string, len(l.logical))
	copy(out, l.logical)
	return out
}

func (l *Layout) Has(name string) bool {
	_, ok := l.index[name]
	return ok
}

// Alloc returns a zeroed buffer sized for one record.
func (l *Layout) Alloc() []byte {
	return make([]byte, l.Size)
}

// Decode unpacks one record from buf.
func (l *Layout) Decode(buf []byte) (*Record, error) {
	if len(buf) < l.Size {
		return nil, errors.Errorf("layout %s: short buffer (%d < %d)", l.Name, len(buf), l.Size)
	}
	val := reflect.New(l.typ)
	if err := struc.UnpackWithOptions(bytes.NewReader(buf[:l.Size]), val.Interface(), l.options()); err != nil {
		return nil, errors.Wrap(err, "struc.Unpack() failed")
	}
	rec := &Record{layout: l, vals: make([]uint64, len(l.logical))}
	elem := val.Elem()
	for i, name := range l.logical {
		rec.vals[i] = fieldBits(elem.Field(l.index[name]))
	}
	return rec, nil
}

// Encode packs logical values into a record. Names missing from vals are
// written as zero; names unknown to the layout are an error.
func (l *Layout) Encode(vals map[string]uint64) ([]byte, error) {
	val := reflect.New(l.typ)
	elem := val.Elem()
	for name, v := range vals {
		i, ok := l.index[name]
		if !ok {
			return nil, errors.Errorf("layout %s has no field %s", l.Name, name)
		}
		setBits(elem.Field(i), v)
	}
	var buf bytes.Buffer
	if err := struc.PackWithOptions(&buf, val.Interface(), l.options()); err != nil {
		return nil, errors.Wrap(err, "struc.Pack() failed")
	}
	return buf.Bytes(), nil
}

func (l *Layout) String() string {
	lines := []string{fmt.Sprintf("%s (%d bytes, %d-bit, %s)", l.Name, l.Size, l.PtrBits, l.Order)}
	for _, f := range l.Fields {
		lines = append(lines, "  "+f.String())
	}
	return strings.Join(lines, "\n")
}

// Record is one decoded record. Values are stored as raw 64-bit patterns;
// signed fields are sign-extended.
type Record struct {
	layout *Layout
	vals   []uint64
}

func (r *Record) Layout() *Layout { return r.layout }

func (r *Record) Has(name string) bool { return r.layout.Has(name) }

// Uint returns the named field, or zero if the layout lacks it.
func (r *Record) Uint(name string) uint64 {
	if i, ok := r.layout.slot[name]; ok {
		return r.vals[i]
	}
	return 0
}

func (r *Record) Int(name string) int64 {
	return int64(r.Uint(name))
}

func fieldSize(sf reflect.StructField, opts *struc.Options) (int, error) {
	one := reflect.StructOf([]reflect.StructField{{
		Name: sf.Name,
		Type: sf.Type,
		Tag:  sf.Tag,
	}})
	return struc.SizeofWithOptions(reflect.New(one).Interface(), opts)
}

func isPad(sf reflect.StructField) bool {
	tag := strings.Split(sf.Tag.Get("struc"), ",")[0]
	return strings.HasSuffix(tag, "pad")
}

func fieldType(sf reflect.StructField, ptrBits int) string {
	if tag := strings.Split(sf.Tag.Get("struc"), ",")[0]; tag != "" {
		return tag
	}
	switch sf.Type {
	case reflect.TypeOf(struc.Size_t(0)):
		return fmt.Sprintf("uint%d", ptrBits)
	case reflect.TypeOf(struc.Off_t(0)):
		return fmt.Sprintf("int%d", ptrBits)
	}
	return sf.Type.String()
}

func fieldBits(v reflect.Value) uint64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint()
	}
	return 0
}

func setBits(v reflect.Value, bits uint64) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(int64(bits))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.SetUint(bits)
	}
}
