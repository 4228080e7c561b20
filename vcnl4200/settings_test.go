package vcnl4200

import (
	"errors"
	"testing"
)

func TestEnumRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		legal []uint16
		set   func(*Dev, uint16) error
		get   func(*Dev) (uint16, string, error)
	}{
		{
			"als integration time", []uint16{0, 1, 2, 3},
			func(d *Dev, v uint16) error { return d.SetALSIntegrationTime(ALSIntegrationTime(v)) },
			func(d *Dev) (uint16, string, error) {
				s, err := d.ALSIntegrationTime()
				return uint16(s), s.String(), err
			},
		},
		{
			"als persistence", []uint16{0, 1, 2, 3},
			func(d *Dev, v uint16) error { return d.SetALSPersistence(ALSPersistence(v)) },
			func(d *Dev) (uint16, string, error) {
				s, err := d.ALSPersistence()
				return uint16(s), s.String(), err
			},
		},
		{
			"ps duty", []uint16{0, 1, 2, 3},
			func(d *Dev, v uint16) error { return d.SetPSDuty(PSDuty(v)) },
			func(d *Dev) (uint16, string, error) {
				s, err := d.PSDuty()
				return uint16(s), s.String(), err
			},
		},
		{
			"ps integration time", []uint16{0, 1, 2, 3, 4, 5},
			func(d *Dev, v uint16) error { return d.SetPSIntegrationTime(PSIntegrationTime(v)) },
			func(d *Dev) (uint16, string, error) {
				s, err := d.PSIntegrationTime()
				return uint16(s), s.String(), err
			},
		},
		{
			"ps persistence", []uint16{0, 1, 2, 3},
			func(d *Dev, v uint16) error { return d.SetPSPersistence(PSPersistence(v)) },
			func(d *Dev) (uint16, string, error) {
				s, err := d.PSPersistence()
				return uint16(s), s.String(), err
			},
		},
		{
			"ps interrupt mode", []uint16{0, 1, 2, 3},
			func(d *Dev, v uint16) error { return d.SetPSInterruptMode(PSInterruptMode(v)) },
			func(d *Dev) (uint16, string, error) {
				s, err := d.PSInterruptMode()
				return uint16(s), s.String(), err
			},
		},
		{
			"led current", []uint16{0, 1, 2, 3, 4, 5, 6, 7},
			func(d *Dev, v uint16) error { return d.SetLEDCurrent(LEDCurrent(v)) },
			func(d *Dev) (uint16, string, error) {
				s, err := d.LEDCurrent()
				return uint16(s), s.String(), err
			},
		},
		{
			"ps multi pulse", []uint16{0, 1, 2, 3},
			func(d *Dev, v uint16) error { return d.SetPSMultiPulse(PSMultiPulse(v)) },
			func(d *Dev) (uint16, string, error) {
				s, err := d.PSMultiPulse()
				return uint16(s), s.String(), err
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newRegBus()
			d := newTestDev(b)
			for _, v := range tt.legal {
				if err := tt.set(d, v); err != nil {
					t.Fatalf("set %d: %v", v, err)
				}
				got, name, err := tt.get(d)
				if err != nil {
					t.Fatalf("get after set %d: %v", v, err)
				}
				if got != v {
					t.Errorf("round trip %d -> %d", v, got)
				}
				if name == unknownSetting {
					t.Errorf("legal value %d stringifies as %q", v, name)
				}
			}
		})
	}
}

func TestInvalidSettingRejected(t *testing.T) {
	tests := []struct {
		name string
		set  func(*Dev) error
	}{
		{"als integration time 4", func(d *Dev) error { return d.SetALSIntegrationTime(4) }},
		{"ps integration time 6", func(d *Dev) error { return d.SetPSIntegrationTime(6) }},
		{"ps integration time 7", func(d *Dev) error { return d.SetPSIntegrationTime(7) }},
		{"ps interrupt mode 7", func(d *Dev) error { return d.SetPSInterruptMode(7) }},
		{"led current 8", func(d *Dev) error { return d.SetLEDCurrent(8) }},
		{"ps duty 4", func(d *Dev) error { return d.SetPSDuty(4) }},
		{"ps multi pulse 9", func(d *Dev) error { return d.SetPSMultiPulse(9) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newRegBus()
			d := newTestDev(b)
			err := tt.set(d)
			var ise *InvalidSettingError
			if !errors.As(err, &ise) {
				t.Fatalf("got %T (%v), want *InvalidSettingError", err, err)
			}
			// Validation happens before any bus transaction.
			if len(b.ops) != 0 {
				t.Errorf("rejected setting still issued %d transactions", len(b.ops))
			}
		})
	}
}

// Undocumented raw values read back as unknown instead of failing: the
// register can legally hold them, e.g. after a reset.
func TestUnknownRawDecodes(t *testing.T) {
	b := newRegBus()
	b.regs[regPSConf12] = fieldPSIntegration.encode(6)
	d := newTestDev(b)

	v, err := d.PSIntegrationTime()
	if err != nil {
		t.Fatal(err)
	}
	if v != 6 {
		t.Errorf("raw value = %d, want 6", v)
	}
	if s := v.String(); s != unknownSetting {
		t.Errorf("String() = %q, want %q", s, unknownSetting)
	}
}

func TestBoolToggles(t *testing.T) {
	tests := []struct {
		name string
		set  func(*Dev, bool) error
		get  func(*Dev) (bool, error)
	}{
		{"als shutdown", (*Dev).SetALSShutdown, (*Dev).ALSShutdown},
		{"ps shutdown", (*Dev).SetPSShutdown, (*Dev).PSShutdown},
		{"ps sun cancellation", (*Dev).SetPSSunCancellation, (*Dev).PSSunCancellation},
		{"ps sunlight double immunity", (*Dev).SetPSSunlightDoubleImmunity, (*Dev).PSSunlightDoubleImmunity},
		{"ps active force", (*Dev).SetPSActiveForce, (*Dev).PSActiveForce},
		{"ps smart persistence", (*Dev).SetPSSmartPersistence, (*Dev).PSSmartPersistence},
		{"sun protect polarity", (*Dev).SetSunProtectPolarity, (*Dev).SunProtectPolarity},
		{"ps boost sunlight capability", (*Dev).SetPSBoostSunlightCapability, (*Dev).PSBoostSunlightCapability},
		{"ps interrupt logic mode", (*Dev).SetPSInterruptLogicMode, (*Dev).PSInterruptLogicMode},
		{"ps hd", (*Dev).SetPSHD, (*Dev).PSHD},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newRegBus()
			d := newTestDev(b)
			for _, on := range []bool{true, false, true} {
				if err := tt.set(d, on); err != nil {
					t.Fatal(err)
				}
				got, err := tt.get(d)
				if err != nil {
					t.Fatal(err)
				}
				if got != on {
					t.Errorf("round trip %v -> %v", on, got)
				}
			}
		})
	}
}

// Duty cycle and persistence share PS_CONF12; writing one must not move
// the other.
func TestDisjointFieldsSameRegister(t *testing.T) {
	b := newRegBus()
	d := newTestDev(b)

	if err := d.SetPSPersistence(PSPersistence4); err != nil {
		t.Fatal(err)
	}
	if err := d.SetPSDuty(PSDuty1280); err != nil {
		t.Fatal(err)
	}

	p, err := d.PSPersistence()
	if err != nil {
		t.Fatal(err)
	}
	if p != PSPersistence4 {
		t.Errorf("persistence = %v after duty write, want %v", p, PSPersistence4)
	}
	du, err := d.PSDuty()
	if err != nil {
		t.Fatal(err)
	}
	if du != PSDuty1280 {
		t.Errorf("duty = %v, want %v", du, PSDuty1280)
	}
}

func TestThresholdRoundTrip(t *testing.T) {
	b := newRegBus()
	d := newTestDev(b)

	if err := d.SetPSHighThreshold(0x1234); err != nil {
		t.Fatal(err)
	}
	if err := d.SetPSLowThreshold(0x0042); err != nil {
		t.Fatal(err)
	}
	if err := d.SetPSCancellationLevel(0x00FF); err != nil {
		t.Fatal(err)
	}

	if v, err := d.PSHighThreshold(); err != nil || v != 0x1234 {
		t.Errorf("PSHighThreshold() = %#x, %v", v, err)
	}
	if v, err := d.PSLowThreshold(); err != nil || v != 0x0042 {
		t.Errorf("PSLowThreshold() = %#x, %v", v, err)
	}
	if v, err := d.PSCancellationLevel(); err != nil || v != 0x00FF {
		t.Errorf("PSCancellationLevel() = %#x, %v", v, err)
	}
}
