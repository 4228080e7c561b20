package vcnl4200

import (
	"errors"
	"testing"
)

var allFields = []field{
	fieldALSShutdown,
	fieldALSIntEnable,
	fieldALSPersistence,
	fieldALSIntChannel,
	fieldALSIntegration,
	fieldPSShutdown,
	fieldPSIntegration,
	fieldPSPersistence,
	fieldPSDuty,
	fieldPSInterrupt,
	fieldPSHD,
	fieldPSSunCancel,
	fieldPSSunImmunity,
	fieldPSTrigger,
	fieldPSActiveForce,
	fieldPSSmartPers,
	fieldPSMultiPulse,
	fieldPSLEDCurrent,
	fieldSunPolarity,
	fieldPSBoostSunlight,
	fieldPSIntLogic,
}

func TestFieldMasks(t *testing.T) {
	tests := []struct {
		f    field
		want uint16
	}{
		{fieldALSShutdown, 0x0001},
		{fieldALSPersistence, 0x000C},
		{fieldALSIntChannel, 0x0020},
		{fieldALSIntegration, 0x00C0},
		{fieldPSIntegration, 0x000E},
		{fieldPSPersistence, 0x0030},
		{fieldPSDuty, 0x00C0},
		{fieldPSInterrupt, 0x0300},
		{fieldPSHD, 0x0800},
		{fieldPSMultiPulse, 0x0060},
		{fieldPSLEDCurrent, 0x0700},
		{fieldSunPolarity, 0x0800},
		{fieldPSBoostSunlight, 0x1000},
		{fieldPSIntLogic, 0x8000},
	}
	for _, tt := range tests {
		if got := tt.f.mask(); got != tt.want {
			t.Errorf("%s: mask = 0x%04x, want 0x%04x", tt.f.name, got, tt.want)
		}
	}
}

// Fields sharing a register must not overlap, otherwise a write to one
// corrupts the other.
func TestFieldMasksDisjoint(t *testing.T) {
	for i, a := range allFields {
		for _, b := range allFields[i+1:] {
			if a.reg != b.reg {
				continue
			}
			if a.mask()&b.mask() != 0 {
				t.Errorf("%s and %s overlap in register 0x%02x", a.name, b.name, a.reg)
			}
		}
	}
}

func TestFieldEncodeDecode(t *testing.T) {
	for _, f := range allFields {
		max := uint16(1)<<f.width - 1
		for v := uint16(0); v <= max; v++ {
			enc := f.encode(v)
			if enc&^f.mask() != 0 {
				t.Errorf("%s: encode(%d) = 0x%04x sets bits outside mask 0x%04x",
					f.name, v, enc, f.mask())
			}
			if got := f.decode(enc); got != v {
				t.Errorf("%s: decode(encode(%d)) = %d", f.name, v, got)
			}
			// Decoding must ignore every bit outside the field.
			if got := f.decode(enc | ^f.mask()); got != v {
				t.Errorf("%s: decode with noise = %d, want %d", f.name, got, v)
			}
		}
	}
}

// Writing one field must preserve every sibling sharing the register.
func TestWriteFieldPreservesSiblings(t *testing.T) {
	for _, f := range allFields {
		b := newRegBus()
		b.regs[f.reg] = 0xFFFF
		d := newTestDev(b)

		if err := d.writeField(f, 0); err != nil {
			t.Fatalf("%s: %v", f.name, err)
		}
		if got, want := b.regs[f.reg], uint16(0xFFFF)&^f.mask(); got != want {
			t.Errorf("%s: register = 0x%04x, want 0x%04x", f.name, got, want)
		}
	}
}

func TestWriteFieldRejectsOverflow(t *testing.T) {
	b := newRegBus()
	d := newTestDev(b)

	err := d.writeField(fieldPSDuty, 4) // width 2, max 3
	var ise *InvalidSettingError
	if !errors.As(err, &ise) {
		t.Fatalf("got %T, want *InvalidSettingError", err)
	}
	if len(b.ops) != 0 {
		t.Errorf("rejected write still issued %d transactions", len(b.ops))
	}
}
