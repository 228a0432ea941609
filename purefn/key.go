package purefn

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// Arg is a single component of a cache key.
//
// The set of implementations is closed: Nil, Bool, Int, Uint, Float, Complex,
// Str, Tuple and Typed. Any Arg is a valid key component, so building a key out
// of Args never fails. Dynamic values are converted with Normalize.
type Arg interface {
	appendKey(b []byte) []byte
}

type (
	Nil     struct{}
	Bool    bool
	Int     int64
	Uint    uint64
	Float   float64
	Complex complex128
	Str     string
	// Tuple is an immutable composite. Its elements are encoded when the key is
	// built, so mutating the slice afterwards does not affect stored keys.
	Tuple []Arg
	// Typed carries the Go type of a value, which keeps int64(2) apart from
	// int(2) the same way == does on interface values. Types are told apart by
	// identity, not by name: two local types both printed as main.T differ.
	Typed struct {
		Type  reflect.Type
		Value Arg
	}
)

// Keyer lets a custom type choose its own canonical key component.
type Keyer interface {
	MemoArg() Arg
}

const (
	tagNil     byte = 'n'
	tagBool    byte = 'b'
	tagInt     byte = 'i'
	tagUint    byte = 'u'
	tagFloat   byte = 'f'
	tagComplex byte = 'c'
	tagStr     byte = 's'
	tagTuple   byte = 't'
	tagTyped   byte = 'T'
)

var canonicalNaN = math.Float64bits(math.NaN())

func floatBits(f float64) uint64 {
	switch {
	case math.IsNaN(f):
		return canonicalNaN
	case f == 0:
		// folds -0.0 into +0.0
		return 0
	default:
		return math.Float64bits(f)
	}
}

func (Nil) appendKey(b []byte) []byte { return append(b, tagNil) }

func (v Bool) appendKey(b []byte) []byte {
	if v {
		return append(b, tagBool, 1)
	}
	return append(b, tagBool, 0)
}

func (v Int) appendKey(b []byte) []byte {
	return binary.BigEndian.AppendUint64(append(b, tagInt), uint64(v))
}

func (v Uint) appendKey(b []byte) []byte {
	return binary.BigEndian.AppendUint64(append(b, tagUint), uint64(v))
}

func (v Float) appendKey(b []byte) []byte {
	return binary.BigEndian.AppendUint64(append(b, tagFloat), floatBits(float64(v)))
}

func (v Complex) appendKey(b []byte) []byte {
	b = binary.BigEndian.AppendUint64(append(b, tagComplex), floatBits(real(v)))
	return binary.BigEndian.AppendUint64(b, floatBits(imag(v)))
}

func (v Str) appendKey(b []byte) []byte {
	b = binary.AppendUvarint(append(b, tagStr), uint64(len(v)))
	return append(b, v...)
}

func (v Tuple) appendKey(b []byte) []byte {
	b = binary.AppendUvarint(append(b, tagTuple), uint64(len(v)))
	for _, a := range v {
		b = appendArg(b, a)
	}
	return b
}

func (v Typed) appendKey(b []byte) []byte {
	var name string
	if v.Type != nil {
		name = v.Type.String()
	}
	b = binary.AppendUvarint(append(b, tagTyped), typeID(v.Type))
	// the name only serves Key.String
	b = binary.AppendUvarint(b, uint64(len(name)))
	b = append(b, name...)
	return appendArg(b, v.Value)
}

// typeIDs numbers types in the order they are first seen. IDs are process
// local, like the keys built from them.
var typeIDs = struct {
	sync.Mutex
	ids map[reflect.Type]uint64
}{ids: make(map[reflect.Type]uint64)}

func typeID(t reflect.Type) uint64 {
	if t == nil {
		return 0
	}
	typeIDs.Lock()
	defer typeIDs.Unlock()
	id, ok := typeIDs.ids[t]
	if !ok {
		id = uint64(len(typeIDs.ids)) + 1
		typeIDs.ids[t] = id
	}
	return id
}

func appendArg(b []byte, a Arg) []byte {
	if a == nil {
		return Nil{}.appendKey(b)
	}
	return a.appendKey(b)
}

// Key is the canonical form of an ordered argument list.
// Keys are comparable with == and usable as map keys.
type Key struct {
	enc   string
	arity int
}

// KeyOf builds a key from already tagged arguments.
func KeyOf(args ...Arg) Key {
	var b []byte
	for _, a := range args {
		b = appendArg(b, a)
	}
	return Key{enc: string(b), arity: len(args)}
}

// Normalize converts call arguments into a Key.
// It fails with ErrUnhashable if any argument, or any element nested in it,
// is a slice, map, func, channel or pointer.
func Normalize(args ...any) (Key, error) {
	tagged := make([]Arg, len(args))
	for i, v := range args {
		a, err := ArgOf(v)
		if err != nil {
			return Key{}, fmt.Errorf("argument %d: %w", i, err)
		}
		tagged[i] = a
	}
	return KeyOf(tagged...), nil
}

// ArgOf converts a single dynamic value into its tagged form.
func ArgOf(v any) (Arg, error) {
	switch v := v.(type) {
	case nil:
		return Nil{}, nil
	case Arg:
		return v, nil
	case Keyer:
		return memoArg(v)
	case bool:
		return Bool(v), nil
	case int:
		return Int(v), nil
	case uint:
		return Uint(v), nil
	case float64:
		return Float(v), nil
	case complex128:
		return Complex(v), nil
	case string:
		return Str(v), nil
	}
	return argOfValue(reflect.ValueOf(v))
}

// memoArg rejects nil pointers, whose MemoArg would dereference nil.
func memoArg(k Keyer) (Arg, error) {
	if rv := reflect.ValueOf(k); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, fmt.Errorf("%w: nil %v", ErrUnhashable, rv.Type())
	}
	return k.MemoArg(), nil
}

// bareTypes are the predeclared types ArgOf maps without a type name.
var bareTypes = map[reflect.Type]bool{
	reflect.TypeFor[bool]():       true,
	reflect.TypeFor[int]():        true,
	reflect.TypeFor[uint]():       true,
	reflect.TypeFor[float64]():    true,
	reflect.TypeFor[complex128](): true,
	reflect.TypeFor[string]():     true,
}

func argOfValue(rv reflect.Value) (Arg, error) {
	t := rv.Type()
	if rv.CanInterface() {
		if k, ok := rv.Interface().(Keyer); ok {
			return memoArg(k)
		}
	}

	var inner Arg
	switch t.Kind() {
	case reflect.Bool:
		inner = Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		inner = Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		inner = Uint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		inner = Float(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		inner = Complex(rv.Complex())
	case reflect.String:
		inner = Str(rv.String())
	case reflect.Interface:
		if rv.IsNil() {
			return Nil{}, nil
		}
		return argOfValue(rv.Elem())
	case reflect.Array:
		tuple := make(Tuple, rv.Len())
		for i := range tuple {
			a, err := argOfValue(rv.Index(i))
			if err != nil {
				return nil, err
			}
			tuple[i] = a
		}
		inner = tuple
	case reflect.Struct:
		tuple := make(Tuple, rv.NumField())
		for i := range tuple {
			a, err := argOfValue(rv.Field(i))
			if err != nil {
				return nil, fmt.Errorf("field %s of %v: %w", t.Field(i).Name, t, err)
			}
			tuple[i] = a
		}
		inner = tuple
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnhashable, t)
	}
	if bareTypes[t] {
		return inner, nil
	}
	return Typed{Type: t, Value: inner}, nil
}

// Arity returns the number of arguments the key was built from.
func (k Key) Arity() int {
	return k.arity
}

// Hash returns the xxhash64 digest of the canonical encoding.
func (k Key) Hash() uint64 {
	return xxhash.Sum64String(k.enc)
}

// String renders the key as an argument list, e.g. (1, 2.5, "a").
func (k Key) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	rest := k.enc
	for i := 0; i < k.arity; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		rest = render(&sb, rest)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Short renders the key like String when that takes at most limit bytes.
// Longer renderings are cut and suffixed with the key hash, so distinct
// large keys stay distinguishable in log lines.
func (k Key) Short(limit int) string {
	s := k.String()
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return fmt.Sprintf("%s...#%016x", s[:cut], k.Hash())
}

// render writes the first encoded component of enc and returns what follows it.
func render(sb *strings.Builder, enc string) string {
	tag, enc := enc[0], enc[1:]
	switch tag {
	case tagNil:
		sb.WriteString("nil")
		return enc
	case tagBool:
		sb.WriteString(strconv.FormatBool(enc[0] == 1))
		return enc[1:]
	case tagInt:
		sb.WriteString(strconv.FormatInt(int64(binary.BigEndian.Uint64([]byte(enc[:8]))), 10))
		return enc[8:]
	case tagUint:
		sb.WriteString(strconv.FormatUint(binary.BigEndian.Uint64([]byte(enc[:8])), 10))
		return enc[8:]
	case tagFloat:
		f := math.Float64frombits(binary.BigEndian.Uint64([]byte(enc[:8])))
		sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
		return enc[8:]
	case tagComplex:
		re := math.Float64frombits(binary.BigEndian.Uint64([]byte(enc[:8])))
		im := math.Float64frombits(binary.BigEndian.Uint64([]byte(enc[8:16])))
		sb.WriteString(strconv.FormatComplex(complex(re, im), 'g', -1, 128))
		return enc[16:]
	case tagStr:
		n, w := binary.Uvarint([]byte(enc))
		s := enc[w : w+int(n)]
		sb.WriteString(strconv.Quote(s))
		return enc[w+int(n):]
	case tagTuple:
		n, w := binary.Uvarint([]byte(enc))
		enc = enc[w:]
		sb.WriteByte('[')
		for i := 0; i < int(n); i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			enc = render(sb, enc)
		}
		sb.WriteByte(']')
		return enc
	case tagTyped:
		_, w := binary.Uvarint([]byte(enc))
		enc = enc[w:]
		n, w := binary.Uvarint([]byte(enc))
		sb.WriteString(enc[w : w+int(n)])
		sb.WriteByte('(')
		enc = render(sb, enc[w+int(n):])
		sb.WriteByte(')')
		return enc
	default:
		panic(fmt.Sprintf("corrupt key encoding: tag %q", tag))
	}
}
