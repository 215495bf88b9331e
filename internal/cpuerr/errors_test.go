package cpuerr

import (
	"errors"
	"testing"
)

func TestBusFaultAsTarget(t *testing.T) {
	var err error = &BusFault{Addr: 0x1234, Op: "read"}
	var bf *BusFault
	if !errors.As(err, &bf) {
		t.Fatalf("expected errors.As to find *BusFault")
	}
	if bf.Addr != 0x1234 || bf.Op != "read" {
		t.Fatalf("unexpected fields: %+v", bf)
	}
}

func TestUnknownOpcodeMessage(t *testing.T) {
	err := &UnknownOpcode{PC: 0x0150, Opcode: 0xFD}
	want := "unknown opcode 0xfd at pc=0x0150"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}
