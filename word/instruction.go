package word

// maxInstructionAddress is the largest |A| an instruction word's
// address field can carry (12 bits, same range as Index/JumpAddress).
const maxInstructionAddress = 4095

// Instruction is the decoded form of a word holding a MIX instruction:
// a signed address, an index specifier (0 = no indexing, 1..6 = I1..I6),
// a field byte (reused either as a FieldSpec or as a family-specific
// subcode), and an opcode.
type Instruction struct {
	Sign    Sign
	Address int // signed, |Address| <= 4095
	Index   int // 0..6
	Field   Byte
	Code    Byte
}

// NewInstruction packs an instruction's parts into a Word, the inverse
// of DecodeInstruction. It validates each part independently and reports which
// one is out of range, mirroring the original MIX assembler's
// constructor.
func NewInstruction(sign Sign, address, index, field, code int) (Word, error) {
	if address < -maxInstructionAddress || address > maxInstructionAddress {
		return Word{}, &InstructionError{Kind: BadAddress, Value: address}
	}
	if index < 0 || index > 6 {
		return Word{}, &InstructionError{Kind: BadIndex, Value: index}
	}
	if field < 0 || field > int(MaxByte) {
		return Word{}, &InstructionError{Kind: BadField, Value: field}
	}
	if code < 0 || code > int(MaxByte) {
		return Word{}, &InstructionError{Kind: BadCode, Value: code}
	}
	mag := abs(address)
	return Word{
		Sign: sign,
		Bytes: [5]Byte{
			Byte(mag / byteRadix),
			Byte(mag % byteRadix),
			Byte(index),
			Byte(field),
			Byte(code),
		},
	}, nil
}

// DecodeInstruction splits a word into its instruction parts. It fails
// if the index specifier byte (b3) carries a value outside 0..6, the
// only part of the encoding that is unconditionally invalid rather
// than family-dependent.
func DecodeInstruction(w Word) (Instruction, error) {
	index := w.Bytes[2].Value()
	if index < 0 || index > 6 {
		return Instruction{}, &InstructionError{Kind: BadIndex, Value: index}
	}
	address := w.Sign.Value() * (w.Bytes[0].Value()*byteRadix + w.Bytes[1].Value())
	return Instruction{
		Sign:    w.Sign,
		Address: address,
		Index:   index,
		Field:   w.Bytes[3],
		Code:    w.Bytes[4],
	}, nil
}
