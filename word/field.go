package word

// A FieldSpec selects a contiguous slice of a Word's positions 0..5,
// where position 0 is the sign and 1..5 are the five Bytes (b1..b5).
// It is the shared primitive behind every load, store, arithmetic, and
// compare instruction that reads or writes "a field" of a word.
type FieldSpec struct {
	L, R int
}

// Valid reports whether 0 <= L <= R <= 5, the only legal range.
func (f FieldSpec) Valid() bool {
	return f.L >= 0 && f.L <= f.R && f.R <= 5
}

// Byte packs the FieldSpec into the single-byte encoding 8*L+R used by
// the F field of an instruction word.
func (f FieldSpec) Byte() Byte {
	return Byte(8*f.L + f.R)
}

// FieldSpecFromByte unpacks a field byte into L and R. The result is
// not validated; callers that need a memory-field spec should check
// Valid() before using it, since F is also reused as a plain subcode
// for shift/jump/address-transfer instructions.
func FieldSpecFromByte(b Byte) FieldSpec {
	v := b.Value()
	return FieldSpec{L: v / 8, R: v % 8}
}

// Select returns the bytes of w in positions f.L..f.R, right-justified
// into the low end of the result with zeros above. If f.L is 0 the
// sign of the slice is carried along; otherwise the result is
// unconditionally Plus, per the MIX field-selection rule.
func Select(w Word, f FieldSpec) Word {
	var selected []Byte
	if f.L == 0 {
		selected = w.Bytes[0:f.R] // sign + bytes 1..R
	} else {
		selected = w.Bytes[f.L-1 : f.R]
	}

	var result Word
	copy(result.Bytes[5-len(selected):], selected)
	if f.L == 0 {
		result.Sign = w.Sign
	} else {
		result.Sign = Plus
	}
	return result
}

// StoreField is the inverse of Select: it writes the low R-L+1 bytes
// of src into positions f.L..f.R of dst, leaving positions outside the
// field untouched. If f.L is 0 it also overwrites dst's sign with
// src's sign.
func StoreField(dst, src Word, f FieldSpec) Word {
	count := f.R - f.L + 1
	result := dst
	if f.L == 0 {
		result.Sign = src.Sign
		if f.R > 0 {
			copy(result.Bytes[0:f.R], src.Bytes[5-f.R:])
		}
	} else {
		copy(result.Bytes[f.L-1:f.R], src.Bytes[5-count:])
	}
	return result
}
