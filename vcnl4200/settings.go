package vcnl4200

// unknownSetting is what enumerated settings stringify to when a register
// holds a raw value outside the documented enumeration. The sensor can
// legally report such values, so reads never fail on them; writes reject
// them with InvalidSettingError.
const unknownSetting = "unknown"

// ALSIntegrationTime selects the ambient light conversion time. Longer
// integration gives higher resolution at a lower refresh rate.
type ALSIntegrationTime uint8

const (
	ALSIntegration50ms  ALSIntegrationTime = 0x00
	ALSIntegration100ms ALSIntegrationTime = 0x01
	ALSIntegration200ms ALSIntegrationTime = 0x02
	ALSIntegration400ms ALSIntegrationTime = 0x03
)

var alsIntegrationNames = map[ALSIntegrationTime]string{
	ALSIntegration50ms:  "50ms",
	ALSIntegration100ms: "100ms",
	ALSIntegration200ms: "200ms",
	ALSIntegration400ms: "400ms",
}

func (t ALSIntegrationTime) String() string {
	if s, ok := alsIntegrationNames[t]; ok {
		return s
	}
	return unknownSetting
}

// ALSPersistence is the number of consecutive out-of-threshold ALS
// conversions required before the interrupt asserts.
type ALSPersistence uint8

const (
	ALSPersistence1 ALSPersistence = 0x00
	ALSPersistence2 ALSPersistence = 0x01
	ALSPersistence4 ALSPersistence = 0x02
	ALSPersistence8 ALSPersistence = 0x03
)

var alsPersistenceNames = map[ALSPersistence]string{
	ALSPersistence1: "1",
	ALSPersistence2: "2",
	ALSPersistence4: "4",
	ALSPersistence8: "8",
}

func (p ALSPersistence) String() string {
	if s, ok := alsPersistenceNames[p]; ok {
		return s
	}
	return unknownSetting
}

// PSDuty is the IR LED on/off duty cycle of the proximity sensor.
type PSDuty uint8

const (
	PSDuty160  PSDuty = 0x00 // 1/160
	PSDuty320  PSDuty = 0x01 // 1/320
	PSDuty640  PSDuty = 0x02 // 1/640
	PSDuty1280 PSDuty = 0x03 // 1/1280
)

var psDutyNames = map[PSDuty]string{
	PSDuty160:  "1/160",
	PSDuty320:  "1/320",
	PSDuty640:  "1/640",
	PSDuty1280: "1/1280",
}

func (p PSDuty) String() string {
	if s, ok := psDutyNames[p]; ok {
		return s
	}
	return unknownSetting
}

// PSIntegrationTime is the proximity pulse integration time in multiples of
// T. Raw values 6 and 7 are undocumented; reads report them as unknown.
type PSIntegrationTime uint8

const (
	PSIntegration1T PSIntegrationTime = 0x00
	PSIntegration2T PSIntegrationTime = 0x01
	PSIntegration3T PSIntegrationTime = 0x02
	PSIntegration4T PSIntegrationTime = 0x03
	PSIntegration8T PSIntegrationTime = 0x04
	PSIntegration9T PSIntegrationTime = 0x05
)

var psIntegrationNames = map[PSIntegrationTime]string{
	PSIntegration1T: "1T",
	PSIntegration2T: "2T",
	PSIntegration3T: "3T",
	PSIntegration4T: "4T",
	PSIntegration8T: "8T",
	PSIntegration9T: "9T",
}

func (t PSIntegrationTime) String() string {
	if s, ok := psIntegrationNames[t]; ok {
		return s
	}
	return unknownSetting
}

// PSPersistence is the number of consecutive out-of-threshold proximity
// conversions required before the interrupt asserts.
type PSPersistence uint8

const (
	PSPersistence1 PSPersistence = 0x00
	PSPersistence2 PSPersistence = 0x01
	PSPersistence3 PSPersistence = 0x02
	PSPersistence4 PSPersistence = 0x03
)

var psPersistenceNames = map[PSPersistence]string{
	PSPersistence1: "1",
	PSPersistence2: "2",
	PSPersistence3: "3",
	PSPersistence4: "4",
}

func (p PSPersistence) String() string {
	if s, ok := psPersistenceNames[p]; ok {
		return s
	}
	return unknownSetting
}

// PSInterruptMode selects which threshold crossings assert the proximity
// interrupt.
type PSInterruptMode uint8

const (
	PSInterruptDisabled PSInterruptMode = 0x00
	PSInterruptClose    PSInterruptMode = 0x01
	PSInterruptAway     PSInterruptMode = 0x02
	PSInterruptBoth     PSInterruptMode = 0x03
)

var psInterruptNames = map[PSInterruptMode]string{
	PSInterruptDisabled: "disabled",
	PSInterruptClose:    "close",
	PSInterruptAway:     "away",
	PSInterruptBoth:     "both",
}

func (m PSInterruptMode) String() string {
	if s, ok := psInterruptNames[m]; ok {
		return s
	}
	return unknownSetting
}

// LEDCurrent is the IR LED drive current.
type LEDCurrent uint8

const (
	LEDCurrent50mA  LEDCurrent = 0x00
	LEDCurrent75mA  LEDCurrent = 0x01
	LEDCurrent100mA LEDCurrent = 0x02
	LEDCurrent120mA LEDCurrent = 0x03
	LEDCurrent140mA LEDCurrent = 0x04
	LEDCurrent160mA LEDCurrent = 0x05
	LEDCurrent180mA LEDCurrent = 0x06
	LEDCurrent200mA LEDCurrent = 0x07
)

var ledCurrentNames = map[LEDCurrent]string{
	LEDCurrent50mA:  "50mA",
	LEDCurrent75mA:  "75mA",
	LEDCurrent100mA: "100mA",
	LEDCurrent120mA: "120mA",
	LEDCurrent140mA: "140mA",
	LEDCurrent160mA: "160mA",
	LEDCurrent180mA: "180mA",
	LEDCurrent200mA: "200mA",
}

func (c LEDCurrent) String() string {
	if s, ok := ledCurrentNames[c]; ok {
		return s
	}
	return unknownSetting
}

// PSMultiPulse is the number of IR pulses emitted per proximity
// measurement.
type PSMultiPulse uint8

const (
	PSMultiPulse1 PSMultiPulse = 0x00
	PSMultiPulse2 PSMultiPulse = 0x01
	PSMultiPulse4 PSMultiPulse = 0x02
	PSMultiPulse8 PSMultiPulse = 0x03
)

var psMultiPulseNames = map[PSMultiPulse]string{
	PSMultiPulse1: "1",
	PSMultiPulse2: "2",
	PSMultiPulse4: "4",
	PSMultiPulse8: "8",
}

func (p PSMultiPulse) String() string {
	if s, ok := psMultiPulseNames[p]; ok {
		return s
	}
	return unknownSetting
}

// ALSIntegrationTime returns the current ALS integration time.
func (d *Dev) ALSIntegrationTime() (ALSIntegrationTime, error) {
	v, err := d.readField(fieldALSIntegration)
	return ALSIntegrationTime(v), err
}

func (d *Dev) SetALSIntegrationTime(t ALSIntegrationTime) error {
	if _, ok := alsIntegrationNames[t]; !ok {
		return &InvalidSettingError{Setting: fieldALSIntegration.name, Value: uint16(t)}
	}
	return d.writeField(fieldALSIntegration, uint16(t))
}

// ALSPersistence returns the current ALS interrupt persistence.
func (d *Dev) ALSPersistence() (ALSPersistence, error) {
	v, err := d.readField(fieldALSPersistence)
	return ALSPersistence(v), err
}

func (d *Dev) SetALSPersistence(p ALSPersistence) error {
	if _, ok := alsPersistenceNames[p]; !ok {
		return &InvalidSettingError{Setting: fieldALSPersistence.name, Value: uint16(p)}
	}
	return d.writeField(fieldALSPersistence, uint16(p))
}

// PSDuty returns the current proximity IR LED duty cycle.
func (d *Dev) PSDuty() (PSDuty, error) {
	v, err := d.readField(fieldPSDuty)
	return PSDuty(v), err
}

func (d *Dev) SetPSDuty(p PSDuty) error {
	if _, ok := psDutyNames[p]; !ok {
		return &InvalidSettingError{Setting: fieldPSDuty.name, Value: uint16(p)}
	}
	return d.writeField(fieldPSDuty, uint16(p))
}

// PSIntegrationTime returns the current proximity integration time.
func (d *Dev) PSIntegrationTime() (PSIntegrationTime, error) {
	v, err := d.readField(fieldPSIntegration)
	return PSIntegrationTime(v), err
}

func (d *Dev) SetPSIntegrationTime(t PSIntegrationTime) error {
	if _, ok := psIntegrationNames[t]; !ok {
		return &InvalidSettingError{Setting: fieldPSIntegration.name, Value: uint16(t)}
	}
	return d.writeField(fieldPSIntegration, uint16(t))
}

// PSPersistence returns the current proximity interrupt persistence.
func (d *Dev) PSPersistence() (PSPersistence, error) {
	v, err := d.readField(fieldPSPersistence)
	return PSPersistence(v), err
}

func (d *Dev) SetPSPersistence(p PSPersistence) error {
	if _, ok := psPersistenceNames[p]; !ok {
		return &InvalidSettingError{Setting: fieldPSPersistence.name, Value: uint16(p)}
	}
	return d.writeField(fieldPSPersistence, uint16(p))
}

// PSInterruptMode returns the current proximity interrupt mode.
func (d *Dev) PSInterruptMode() (PSInterruptMode, error) {
	v, err := d.readField(fieldPSInterrupt)
	return PSInterruptMode(v), err
}

func (d *Dev) SetPSInterruptMode(m PSInterruptMode) error {
	if _, ok := psInterruptNames[m]; !ok {
		return &InvalidSettingError{Setting: fieldPSInterrupt.name, Value: uint16(m)}
	}
	return d.writeField(fieldPSInterrupt, uint16(m))
}

// LEDCurrent returns the current IR LED drive current.
func (d *Dev) LEDCurrent() (LEDCurrent, error) {
	v, err := d.readField(fieldPSLEDCurrent)
	return LEDCurrent(v), err
}

func (d *Dev) SetLEDCurrent(c LEDCurrent) error {
	if _, ok := ledCurrentNames[c]; !ok {
		return &InvalidSettingError{Setting: fieldPSLEDCurrent.name, Value: uint16(c)}
	}
	return d.writeField(fieldPSLEDCurrent, uint16(c))
}

// PSMultiPulse returns the current proximity multi pulse setting.
func (d *Dev) PSMultiPulse() (PSMultiPulse, error) {
	v, err := d.readField(fieldPSMultiPulse)
	return PSMultiPulse(v), err
}

func (d *Dev) SetPSMultiPulse(p PSMultiPulse) error {
	if _, ok := psMultiPulseNames[p]; !ok {
		return &InvalidSettingError{Setting: fieldPSMultiPulse.name, Value: uint16(p)}
	}
	return d.writeField(fieldPSMultiPulse, uint16(p))
}

// ALSShutdown reports whether the ambient light sensor block is shut down.
func (d *Dev) ALSShutdown() (bool, error) { return d.readFlag(fieldALSShutdown) }

func (d *Dev) SetALSShutdown(down bool) error { return d.writeFlag(fieldALSShutdown, down) }

// PSShutdown reports whether the proximity sensor block is shut down.
func (d *Dev) PSShutdown() (bool, error) { return d.readFlag(fieldPSShutdown) }

func (d *Dev) SetPSShutdown(down bool) error { return d.writeFlag(fieldPSShutdown, down) }

// PSSunCancellation reports whether sunlight cancellation is on.
func (d *Dev) PSSunCancellation() (bool, error) { return d.readFlag(fieldPSSunCancel) }

func (d *Dev) SetPSSunCancellation(on bool) error { return d.writeFlag(fieldPSSunCancel, on) }

// PSSunlightDoubleImmunity reports whether doubled sunlight immunity is on.
func (d *Dev) PSSunlightDoubleImmunity() (bool, error) { return d.readFlag(fieldPSSunImmunity) }

func (d *Dev) SetPSSunlightDoubleImmunity(on bool) error {
	return d.writeFlag(fieldPSSunImmunity, on)
}

// PSActiveForce reports whether active force mode is on. In active force
// mode the sensor only converts when TriggerProximity is called.
func (d *Dev) PSActiveForce() (bool, error) { return d.readFlag(fieldPSActiveForce) }

func (d *Dev) SetPSActiveForce(on bool) error { return d.writeFlag(fieldPSActiveForce, on) }

// PSSmartPersistence reports whether smart persistence is on.
func (d *Dev) PSSmartPersistence() (bool, error) { return d.readFlag(fieldPSSmartPers) }

func (d *Dev) SetPSSmartPersistence(on bool) error { return d.writeFlag(fieldPSSmartPers, on) }

// SunProtectPolarity reports the polarity of the sunlight protection
// output.
func (d *Dev) SunProtectPolarity() (bool, error) { return d.readFlag(fieldSunPolarity) }

func (d *Dev) SetSunProtectPolarity(high bool) error { return d.writeFlag(fieldSunPolarity, high) }

// PSBoostSunlightCapability reports whether the boosted typical sunlight
// capability is on.
func (d *Dev) PSBoostSunlightCapability() (bool, error) { return d.readFlag(fieldPSBoostSunlight) }

func (d *Dev) SetPSBoostSunlightCapability(on bool) error {
	return d.writeFlag(fieldPSBoostSunlight, on)
}

// PSInterruptLogicMode reports the proximity interrupt output mode: false
// is interrupt mode, true is logic level mode.
func (d *Dev) PSInterruptLogicMode() (bool, error) { return d.readFlag(fieldPSIntLogic) }

func (d *Dev) SetPSInterruptLogicMode(logic bool) error {
	return d.writeFlag(fieldPSIntLogic, logic)
}

// PSHD reports the proximity output resolution: false is 12-bit, true is
// 16-bit.
func (d *Dev) PSHD() (bool, error) { return d.readFlag(fieldPSHD) }

func (d *Dev) SetPSHD(on bool) error { return d.writeFlag(fieldPSHD, on) }

// ALSLowThreshold returns the ALS interrupt low threshold.
func (d *Dev) ALSLowThreshold() (uint16, error) { return d.readReg(regALSThdl) }

// SetALSLowThreshold writes the ALS interrupt low threshold in a single
// 16-bit write.
func (d *Dev) SetALSLowThreshold(v uint16) error { return d.writeReg(regALSThdl, v) }

// ALSHighThreshold returns the ALS interrupt high threshold.
func (d *Dev) ALSHighThreshold() (uint16, error) { return d.readReg(regALSThdh) }

// SetALSHighThreshold writes the ALS interrupt high threshold in a single
// 16-bit write.
func (d *Dev) SetALSHighThreshold(v uint16) error { return d.writeReg(regALSThdh, v) }

// PSCancellationLevel returns the proximity cancellation level subtracted
// from each measurement.
func (d *Dev) PSCancellationLevel() (uint16, error) { return d.readReg(regPSCancLvl) }

func (d *Dev) SetPSCancellationLevel(v uint16) error { return d.writeReg(regPSCancLvl, v) }

// PSLowThreshold returns the proximity interrupt low threshold.
func (d *Dev) PSLowThreshold() (uint16, error) { return d.readReg(regPSThdl) }

func (d *Dev) SetPSLowThreshold(v uint16) error { return d.writeReg(regPSThdl, v) }

// PSHighThreshold returns the proximity interrupt high threshold.
func (d *Dev) PSHighThreshold() (uint16, error) { return d.readReg(regPSThdh) }

func (d *Dev) SetPSHighThreshold(v uint16) error { return d.writeReg(regPSThdh, v) }
