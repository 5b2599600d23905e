package word

// indexMagnitudeMax is 64^2 - 1 = 4095, the largest magnitude an Index
// register can hold.
const indexMagnitudeMax = 4095

// An Index is a sign plus two Bytes: the representation of the I1..I6
// registers and of index-modification values in effective-address
// computation. Its range is ±4,095.
type Index struct {
	Sign  Sign
	Bytes [2]Byte
}

var (
	ZeroIndex = Index{Sign: Plus}
	MaxIndex  = Index{Sign: Plus, Bytes: [2]Byte{MaxByte, MaxByte}}
	MinIndex  = Index{Sign: Minus, Bytes: [2]Byte{MaxByte, MaxByte}}
)

// Magnitude returns the unsigned value of the Index's bytes.
func (x Index) Magnitude() int {
	return x.Bytes[0].Value()*byteRadix + x.Bytes[1].Value()
}

// Int returns the Index's signed numeric value.
func (x Index) Int() int {
	return x.Sign.Value() * x.Magnitude()
}

// IndexFromInt builds an Index whose Int() equals v, failing with a
// RangeError outside ±4095.
func IndexFromInt(v int) (Index, error) {
	if v > indexMagnitudeMax {
		return Index{}, overflow("Index", v)
	}
	if v < -indexMagnitudeMax {
		return Index{}, underflow("Index", v)
	}
	return IndexFromMagnitude(SignFromInt(v), abs(v)), nil
}

// IndexFromMagnitude builds an Index with an explicit Sign, the
// two-byte counterpart of WordFromMagnitude: the Sign is not inferred
// from the magnitude, so a negative zero can be built.
func IndexFromMagnitude(sign Sign, magnitude int) Index {
	return Index{Sign: sign, Bytes: [2]Byte{
		Byte(magnitude / byteRadix % byteRadix),
		Byte(magnitude % byteRadix),
	}}
}

// AsWord extends the Index to a field-selectable Word by placing its
// two bytes in positions 4 and 5 (the low-order end), zero elsewhere,
// with the Index's own sign. COMPARE uses this to run an I-register
// comparison through the same signed-integer comparison as A and X.
func (x Index) AsWord() Word {
	return Word{Sign: x.Sign, Bytes: [5]Byte{0, 0, 0, x.Bytes[0], x.Bytes[1]}}
}
