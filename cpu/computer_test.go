package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mix/word"
)

func TestHaltStopsExecutionAndStartResumes(t *testing.T) {
	c := New()
	instr(t, c, 0, word.Plus, 0, 0, 2, 5) // HLT
	a, err := word.WordFromInt(7)
	assert.NoError(t, err)
	assert.NoError(t, c.Mem.Write(1, a))
	instr(t, c, 2, word.Plus, 1, 0, fullField(t), 8) // LDA 1, at address 2

	assert.NoError(t, c.Start())
	assert.False(t, c.Running)
	assert.Equal(t, 1, c.PC)

	// a halted machine does not advance on a further call...
	assert.NoError(t, c.HandleNextInstruction())
	assert.Equal(t, 1, c.PC)

	// ...but resumes via Start; PC is moved past the data word at 1 first.
	c.PC = 2
	assert.NoError(t, c.Start())
	assert.True(t, c.Running)
	assert.Equal(t, 7, c.A.Int())
}

func TestInvalidFieldForJumpReturnsErrorWithoutCorruptingState(t *testing.T) {
	c := New()
	w, err := word.NewInstruction(word.Plus, 1000, 0, 15, 39) // field 15 is undefined for JUMP
	assert.NoError(t, err)
	assert.NoError(t, c.Mem.Write(0, w))
	c.A = word.MaxWord

	c.PC = 0
	c.Running = true
	err = c.HandleNextInstruction()

	assert.Error(t, err)
	assert.Equal(t, word.MaxWord, c.A)
	assert.Equal(t, 1, c.PC) // the jump itself never happened
}

func TestInvalidFieldForHaltReturnsError(t *testing.T) {
	c := New()
	w, err := word.NewInstruction(word.Plus, 0, 0, 1, 5) // HLT with F=1, undefined
	assert.NoError(t, err)
	assert.NoError(t, c.Mem.Write(0, w))

	c.PC = 0
	c.Running = true
	err = c.HandleNextInstruction()

	assert.Error(t, err)
	assert.True(t, c.Running)
}

func TestIndexedAddressingAddsIndexRegister(t *testing.T) {
	c := New()
	idx, err := word.IndexFromInt(5)
	assert.NoError(t, err)
	c.I2 = idx
	v, err := word.WordFromInt(99)
	assert.NoError(t, err)
	assert.NoError(t, c.Mem.Write(105, v)) // 100 + I2(5)

	instr(t, c, 0, word.Plus, 100, 2, fullField(t), 8) // LDA 100,2
	run(t, c, 0)

	assert.Equal(t, 99, c.A.Int())
}

func TestDecodeRejectsInvalidIndexSpecifier(t *testing.T) {
	c := New()
	w := word.Word{Sign: word.Plus, Bytes: [5]word.Byte{0, 0, 7, 5, 8}} // index=7 invalid
	assert.NoError(t, c.Mem.Write(0, w))

	c.PC = 0
	c.Running = true
	err := c.HandleNextInstruction()
	assert.Error(t, err)
}
