package vcnl4200

// Register command codes from the VCNL4200 datasheet. Every register is one
// 16-bit little-endian word; the configuration registers pack two 8-bit
// blocks (low byte / high byte) into a single word.
const (
	regALSConf   uint8 = 0x00
	regALSThdh   uint8 = 0x01
	regALSThdl   uint8 = 0x02
	regPSConf12  uint8 = 0x03
	regPSConf3MS uint8 = 0x04
	regPSCancLvl uint8 = 0x05
	regPSThdl    uint8 = 0x06
	regPSThdh    uint8 = 0x07
	regPSData    uint8 = 0x08
	regALSData   uint8 = 0x09
	regWhiteData uint8 = 0x0A
	regIntFlag   uint8 = 0x0D
	regID        uint8 = 0x0E
)

// deviceID is the value the ID register reads on a VCNL4200.
const deviceID uint16 = 0x1058

// Interrupt flag bits. All six flags live in the high byte of regIntFlag;
// the low byte is reserved.
const (
	intFlagProxAway   = 0x01 // PS_THDL crossed
	intFlagProxClose  = 0x02 // PS_THDH crossed
	intFlagALSHigh    = 0x10
	intFlagALSLow     = 0x20
	intFlagSunlight   = 0x40 // sunlight protection entered
	intFlagSaturation = 0x80 // proximity code saturated
)

// field locates one bitfield inside a 16-bit register: width bits starting
// at offset, counted from bit 0 of the little-endian word. Fields sharing a
// register never overlap.
type field struct {
	name   string
	reg    uint8
	offset uint8
	width  uint8
}

func (f field) mask() uint16 {
	return (1<<f.width - 1) << f.offset
}

// decode extracts the field from a raw register word, shifted down to bit 0.
func (f field) decode(raw uint16) uint16 {
	return (raw >> f.offset) & (1<<f.width - 1)
}

// encode shifts v into the field's bit range. v must fit in width bits;
// setters validate before calling.
func (f field) encode(v uint16) uint16 {
	return (v << f.offset) & f.mask()
}

// ALS_CONF fields.
var (
	fieldALSShutdown    = field{"als shutdown", regALSConf, 0, 1}
	fieldALSIntEnable   = field{"als interrupt enable", regALSConf, 1, 1}
	fieldALSPersistence = field{"als persistence", regALSConf, 2, 2}
	fieldALSIntChannel  = field{"als interrupt channel", regALSConf, 5, 1}
	fieldALSIntegration = field{"als integration time", regALSConf, 6, 2}
)

// PS_CONF1/2 fields.
var (
	fieldPSShutdown    = field{"ps shutdown", regPSConf12, 0, 1}
	fieldPSIntegration = field{"ps integration time", regPSConf12, 1, 3}
	fieldPSPersistence = field{"ps persistence", regPSConf12, 4, 2}
	fieldPSDuty        = field{"ps duty", regPSConf12, 6, 2}
	fieldPSInterrupt   = field{"ps interrupt mode", regPSConf12, 8, 2}
	fieldPSHD          = field{"ps hd", regPSConf12, 11, 1}
)

// PS_CONF3/MS fields.
var (
	fieldPSSunCancel     = field{"ps sun cancellation", regPSConf3MS, 0, 1}
	fieldPSSunImmunity   = field{"ps sunlight double immunity", regPSConf3MS, 1, 1}
	fieldPSTrigger       = field{"ps trigger", regPSConf3MS, 2, 1}
	fieldPSActiveForce   = field{"ps active force", regPSConf3MS, 3, 1}
	fieldPSSmartPers     = field{"ps smart persistence", regPSConf3MS, 4, 1}
	fieldPSMultiPulse    = field{"ps multi pulse", regPSConf3MS, 5, 2}
	fieldPSLEDCurrent    = field{"led current", regPSConf3MS, 8, 3}
	fieldSunPolarity     = field{"sun protect polarity", regPSConf3MS, 11, 1}
	fieldPSBoostSunlight = field{"ps boost sunlight capability", regPSConf3MS, 12, 1}
	fieldPSIntLogic      = field{"ps interrupt logic mode", regPSConf3MS, 15, 1}
)

// readReg reads a 16-bit register.
func (d *Dev) readReg(reg uint8) (uint16, error) {
	v, err := d.m.ReadUint16(reg)
	if err != nil {
		return 0, &TransportError{Op: "read", Reg: reg, Err: err}
	}
	d.log.Debug().Uint8("reg", reg).Uint16("val", v).Msg("register read")
	return v, nil
}

// writeReg writes a 16-bit register in one transaction, no masking. Used
// for the threshold and cancellation level registers.
func (d *Dev) writeReg(reg uint8, v uint16) error {
	d.log.Debug().Uint8("reg", reg).Uint16("val", v).Msg("register write")
	if err := d.m.WriteUint16(reg, v); err != nil {
		return &TransportError{Op: "write", Reg: reg, Err: err}
	}
	return nil
}

// readField returns the field's current raw value.
func (d *Dev) readField(f field) (uint16, error) {
	raw, err := d.readReg(f.reg)
	if err != nil {
		return 0, err
	}
	return f.decode(raw), nil
}

// writeField replaces the field's bits and leaves the rest of the register
// untouched. This is a read followed by a write, two bus transactions, and
// is not atomic against another user of the same register.
func (d *Dev) writeField(f field, v uint16) error {
	if v >= 1<<f.width {
		return &InvalidSettingError{Setting: f.name, Value: v}
	}
	raw, err := d.readReg(f.reg)
	if err != nil {
		return err
	}
	raw = raw&^f.mask() | f.encode(v)
	return d.writeReg(f.reg, raw)
}

func (d *Dev) readFlag(f field) (bool, error) {
	v, err := d.readField(f)
	return v != 0, err
}

func (d *Dev) writeFlag(f field, on bool) error {
	var v uint16
	if on {
		v = 1
	}
	return d.writeField(f, v)
}
