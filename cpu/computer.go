package cpu

import (
	"github.com/golang/glog"

	"mix/mem"
	"mix/word"
)

// Computer owns all machine state exclusively: the register file,
// main memory, the overflow toggle, the comparison indicator, the
// program counter, and the running flag. Handlers borrow it mutably
// for the duration of a single instruction; nothing outside a step is
// shared, so there is no concurrency story to speak of.
type Computer struct {
	Registers

	Mem        *mem.Memory
	Overflow   bool
	Comparison ComparisonIndicator
	PC         int
	Running    bool

	IO Device
}

// New returns a zeroed Computer: all registers zero, memory zero,
// overflow off, comparison indicator Off, PC 0, not running.
func New() *Computer {
	return &Computer{
		Mem: mem.New(),
		IO:  NoDevice{},
	}
}

// Start sets the running flag and executes one instruction, so that a
// machine halted mid-program can be resumed with a single call.
func (c *Computer) Start() error {
	c.Running = true
	return c.HandleNextInstruction()
}

// HandleNextInstruction fetches the word at PC, advances PC, and
// dispatches it. It is a no-op if the machine is not running.
func (c *Computer) HandleNextInstruction() error {
	if !c.Running {
		return nil
	}
	w, err := c.Mem.Read(c.PC)
	if err != nil {
		glog.Errorf("cpu: fetch at pc=%d: %v", c.PC, err)
		return err
	}
	c.PC++
	return c.HandleInstruction(w)
}

// HandleInstruction decodes and executes a single instruction word,
// bypassing the fetch/PC-increment step. Tests use this pervasively to
// drive a handler directly.
func (c *Computer) HandleInstruction(w word.Word) error {
	decoded, err := c.decode(w)
	if err != nil {
		glog.Errorf("cpu: decode pc=%d: %v", c.PC, err)
		return err
	}

	handler := dispatchTable[decoded.Code.Value()]
	if handler == nil {
		err := &InvalidOpcodeError{Code: byte(decoded.Code.Value())}
		glog.Errorf("cpu: %v", err)
		return err
	}

	prevOverflow := c.Overflow
	if err := handler(c, decoded); err != nil {
		glog.Errorf("cpu: opcode %d: %v", decoded.Code.Value(), err)
		return err
	}
	if c.Overflow && !prevOverflow {
		glog.V(1).Infof("cpu: overflow set by opcode %d", decoded.Code.Value())
	}
	if !c.Running {
		glog.V(1).Infof("cpu: halted at pc=%d", c.PC)
	}
	return nil
}
