package native

import (
	"fmt"
	"reflect"
	"strings"
	"syscall"
	"unicode"
	"unicode/utf8"

	"github.com/lunixbochs/argjoy"
	"github.com/pkg/errors"
)

// ErrLinkFailure matches every *LinkError.
var ErrLinkFailure = errors.New("symbol not found")

// LinkError reports a symbol that cannot be resolved in a library. It is
// distinct from a call that ran and failed.
type LinkError struct {
	Library string
	Symbol  string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("%s: undefined symbol: %s", e.Library, e.Symbol)
}

func (e *LinkError) Is(target error) bool { return target == ErrLinkFailure }

// Library resolves native symbols by name.
type Library interface {
	Name() string
	Lookup(symbol string) (*Symbol, error)
}

// Symbol is a resolved native function with a fixed signature.
type Symbol struct {
	Name    string
	Library string

	fn     reflect.Value
	in     []reflect.Type
	argjoy *argjoy.Argjoy
}

// Call invokes the symbol. Arguments are converted to the declared
// parameter types; a mismatch panics, as a bad native signature would
// crash. Results follow libc: -1 and an errno on failure, otherwise the
// raw return value.
func (s *Symbol) Call(args ...interface{}) (int, syscall.Errno) {
	if len(args) != len(s.in) {
		panic(fmt.Sprintf("calling %s: wanted %d args, got %d", s.Name, len(s.in), len(args)))
	}
	converted, err := s.argjoy.Convert(s.in, false, args)
	if err != nil {
		panic(fmt.Sprintf("calling %s(): %s", s.Name, err))
	}
	out := s.fn.Call(converted)
	ret := int(out[0].Int())
	if ret < 0 {
		return -1, syscall.Errno(-ret)
	}
	return ret, 0
}

func (s *Symbol) String() string {
	return fmt.Sprintf("%s%s", s.Name, strings.TrimPrefix(s.fn.Type().String(), "func"))
}

// MethodLibrary is a Library whose symbols are the exported methods of a
// Go value. Each method returns a raw kernel-style int (negative errno on
// failure); its name maps to a snake_case symbol.
type MethodLibrary struct {
	name    string
	symbols map[string]*Symbol
	argjoy  argjoy.Argjoy
}

// Without hides symbols from a MethodLibrary, as an older or newer libc
// would.
func Without(symbols ...string) func(*MethodLibrary) {
	return func(l *MethodLibrary) {
		for _, sym := range symbols {
			delete(l.symbols, symbolKey(sym))
		}
	}
}

func camelToSnakeCase(name string) string {
	var words []string
	last := 0
	for i, c := range name {
		if unicode.IsUpper(c) {
			if i > 0 {
				words = append(words, name[last:i])
			}
			last = i
		}
	}
	words = append(words, name[last:])
	return strings.ToLower(strings.Join(words, "_"))
}

// glibc-internal entry points like __xstat64 are bound without their
// leading underscores.
func symbolKey(symbol string) string {
	return strings.TrimLeft(symbol, "_")
}

var intType = reflect.TypeOf(0)

func NewLibrary(name string, impl interface{}, opts ...func(*MethodLibrary)) *MethodLibrary {
	l := &MethodLibrary{name: name, symbols: make(map[string]*Symbol)}
	l.argjoy.Register(assignArg)
	l.argjoy.Register(argjoy.IntToInt)
	instance := reflect.ValueOf(impl)
	typ := instance.Type()
	for i := 0; i < typ.NumMethod(); i++ {
		method := typ.Method(i)
		if r, size := utf8.DecodeRuneInString(method.Name); size <= 0 || !unicode.IsUpper(r) {
			continue
		}
		fn := instance.Method(i)
		ft := fn.Type()
		if ft.NumOut() != 1 || ft.Out(0) != intType {
			// not a native entry point
			continue
		}
		in := make([]reflect.Type, ft.NumIn())
		for j := range in {
			in[j] = ft.In(j)
		}
		sym := camelToSnakeCase(method.Name)
		l.symbols[sym] = &Symbol{
			Name:    sym,
			Library: name,
			fn:      fn,
			in:      in,
			argjoy:  &l.argjoy,
		}
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *MethodLibrary) Name() string { return l.name }

func (l *MethodLibrary) Lookup(symbol string) (*Symbol, error) {
	if sym, ok := l.symbols[symbolKey(symbol)]; ok {
		return sym, nil
	}
	return nil, &LinkError{Library: l.name, Symbol: symbol}
}

// Symbols lists the resolvable symbol names.
func (l *MethodLibrary) Symbols() []string {
	out := make([]string, 0, len(l.symbols))
	for name := range l.symbols {
		out = append(out, name)
	}
	return out
}

// assignArg passes a caller value through when it already fits the
// declared parameter. Integer kinds are left to argjoy.IntToInt.
func assignArg(arg interface{}, vals []interface{}) error {
	dst := reflect.ValueOf(arg).Elem()
	src := reflect.ValueOf(vals[0])
	if !src.IsValid() || !src.Type().AssignableTo(dst.Type()) {
		return argjoy.NoMatch
	}
	dst.Set(src)
	return nil
}
