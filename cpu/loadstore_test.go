package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mix/word"
)

func TestLoadWholeWord(t *testing.T) {
	c := New()
	v, err := word.WordFromInt(-1234)
	assert.NoError(t, err)
	assert.NoError(t, c.Mem.Write(2000, v))

	instr(t, c, 0, word.Plus, 2000, 0, fullField(t), 8) // LDA 2000
	run(t, c, 0)

	assert.Equal(t, -1234, c.A.Int())
}

func TestLoadNegFlipsSignEvenOnZero(t *testing.T) {
	c := New()
	assert.NoError(t, c.Mem.Write(2000, word.ZeroWord))

	instr(t, c, 0, word.Plus, 2000, 0, fullField(t), 16) // LDAN 2000
	run(t, c, 0)

	assert.Equal(t, word.Minus, c.A.Sign)
	assert.Equal(t, 0, c.A.Magnitude())
}

func TestLoadIntoIndexRegisterOutOfRangeErrors(t *testing.T) {
	c := New()
	big, err := word.WordFromInt(5000) // exceeds Index's +-4095 range
	assert.NoError(t, err)
	assert.NoError(t, c.Mem.Write(2000, big))

	instr(t, c, 0, word.Plus, 2000, 0, fullField(t), 9) // LD1 2000
	c.PC = 0
	c.Running = true
	err = c.HandleNextInstruction()
	assert.Error(t, err)
}

func TestLoadPartialFieldRightJustifies(t *testing.T) {
	c := New()
	v, err := word.WordFromInt(17_314_053) // bytes 1 2 3 4 5
	assert.NoError(t, err)
	assert.NoError(t, c.Mem.Write(2000, v))

	f := word.FieldSpec{L: 2, R: 3}.Byte().Value()
	instr(t, c, 0, word.Plus, 2000, 0, f, 8) // LDA 2000(2:3)
	run(t, c, 0)

	// bytes 2,3 of 17_314_053 are 2 and 3, field is unsigned (L != 0).
	assert.Equal(t, word.Plus, c.A.Sign)
	assert.Equal(t, 2*64+3, c.A.Magnitude())
}

func TestStoreWholeWordOverwritesMemory(t *testing.T) {
	c := New()
	a, err := word.WordFromInt(42)
	assert.NoError(t, err)
	c.A = a
	assert.NoError(t, c.Mem.Write(2000, word.MaxWord))

	instr(t, c, 0, word.Plus, 2000, 0, fullField(t), 24) // STA 2000
	run(t, c, 0)

	got, err := c.Mem.Read(2000)
	assert.NoError(t, err)
	assert.Equal(t, 42, got.Int())
}

func TestStorePartialFieldLeavesRestUntouched(t *testing.T) {
	c := New()
	a, err := word.WordFromInt(-9999999)
	assert.NoError(t, err)
	c.A = a
	original := word.MaxWord
	assert.NoError(t, c.Mem.Write(2000, original))

	f := word.FieldSpec{L: 4, R: 5}.Byte().Value()
	instr(t, c, 0, word.Plus, 2000, 0, f, 24) // STA 2000(4:5)
	run(t, c, 0)

	got, err := c.Mem.Read(2000)
	assert.NoError(t, err)
	assert.Equal(t, original.Sign, got.Sign)
	assert.Equal(t, original.Bytes[0], got.Bytes[0])
	assert.Equal(t, original.Bytes[1], got.Bytes[1])
	assert.Equal(t, original.Bytes[2], got.Bytes[2])
	// bytes 4 and 5 now carry A's low two bytes.
	assert.Equal(t, a.Bytes[3], got.Bytes[3])
	assert.Equal(t, a.Bytes[4], got.Bytes[4])
}

func TestStjStoresFullJumpAddressAsPlusWord(t *testing.T) {
	c := New()
	j, err := word.JumpAddressFromInt(777)
	assert.NoError(t, err)
	c.J = j
	assert.NoError(t, c.Mem.Write(2000, word.MinWord))

	instr(t, c, 0, word.Plus, 2000, 0, fullField(t), 32) // STJ 2000
	run(t, c, 0)

	got, err := c.Mem.Read(2000)
	assert.NoError(t, err)
	assert.Equal(t, 777, got.Int())
	assert.Equal(t, word.Plus, got.Sign)
}

func TestStzWritesPositiveZero(t *testing.T) {
	c := New()
	assert.NoError(t, c.Mem.Write(2000, word.MinWord))

	instr(t, c, 0, word.Plus, 2000, 0, fullField(t), 33) // STZ 2000
	run(t, c, 0)

	got, err := c.Mem.Read(2000)
	assert.NoError(t, err)
	assert.Equal(t, 0, got.Int())
	assert.Equal(t, word.Plus, got.Sign)
}
