// Driver for the Vishay VCNL4200 long distance IR proximity and ambient
// light sensor.
package vcnl4200

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/mmr"
	"periph.io/x/host/v3"
)

// DefaultAddress is the sensor's I²C address. The VCNL4200 has no address
// straps, so this only ever differs behind an address translator.
const DefaultAddress uint16 = 0x51

// Dev is one VCNL4200 sensor.
//
// A Dev is not safe for concurrent use: configuration writes are
// read-modify-write over two bus transactions, so callers sharing one Dev
// across goroutines must serialize access themselves.
type Dev struct {
	m   mmr.Dev8
	bus i2c.BusCloser // owned when the Dev opened the bus itself
	log zerolog.Logger
}

// Opts holds the construction options.
type Opts struct {
	// Addr is the I²C address to use.
	Addr uint16
	// Debug logs every register transaction to stderr.
	Debug bool
}

// DefaultOpts works for the VCNL4200 breakout boards.
var DefaultOpts = &Opts{Addr: DefaultAddress}

// New verifies the sensor's identity on the given bus and runs the
// power-on configuration.
func New(bus i2c.Bus) (*Dev, error) {
	return NewWithOpts(bus, *DefaultOpts)
}

// NewWithOpts is New with explicit options.
func NewWithOpts(bus i2c.Bus, opts Opts) (*Dev, error) {
	d := &Dev{
		m: mmr.Dev8{
			Conn:  &i2c.Dev{Bus: bus, Addr: opts.Addr},
			Order: binary.LittleEndian,
		},
		log: zerolog.Nop(),
	}
	if opts.Debug {
		d.EnableDebugging()
	}

	id, err := d.readReg(regID)
	if err != nil {
		return nil, err
	}
	if id != deviceID {
		return nil, fmt.Errorf("vcnl4200: got ID 0x%04x: %w", id, ErrIdentityMismatch)
	}

	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// Open finds the first available I²C bus and returns a sensor on it. The
// returned Dev owns the bus; Close releases it.
func Open() (*Dev, error) {
	return OpenWithOpts(*DefaultOpts)
}

// OpenWithOpts is Open with explicit options.
func OpenWithOpts(opts Opts) (*Dev, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}

	bus, err := i2creg.Open("")
	if err != nil {
		return nil, err
	}

	d, err := NewWithOpts(bus, opts)
	if err != nil {
		bus.Close()
		return nil, err
	}
	d.bus = bus
	return d, nil
}

// EnableDebugging logs every register transaction to stderr.
func (d *Dev) EnableDebugging() {
	d.log = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

// init runs the fixed power-on sequence: both sensor blocks active at their
// fastest settings, ALS thresholds opened to the full range and the ALS
// interrupt off. Any transport failure aborts construction.
func (d *Dev) init() error {
	steps := []struct {
		name string
		run  func() error
	}{
		{"als shutdown", func() error { return d.SetALSShutdown(false) }},
		{"als integration time", func() error { return d.SetALSIntegrationTime(ALSIntegration50ms) }},
		{"als persistence", func() error { return d.SetALSPersistence(ALSPersistence1) }},
		{"als low threshold", func() error { return d.SetALSLowThreshold(0x0000) }},
		{"als high threshold", func() error { return d.SetALSHighThreshold(0xFFFF) }},
		{"als interrupt", func() error { return d.SetALSInterrupt(false, false) }},
		{"ps duty", func() error { return d.SetPSDuty(PSDuty160) }},
		{"ps shutdown", func() error { return d.SetPSShutdown(false) }},
		{"ps integration time", func() error { return d.SetPSIntegrationTime(PSIntegration1T) }},
		{"ps persistence", func() error { return d.SetPSPersistence(PSPersistence1) }},
	}
	for _, s := range steps {
		if err := s.run(); err != nil {
			return &InitError{Step: s.name, Err: err}
		}
	}
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("vcnl4200{%s}", d.m.Conn)
}

// Proximity returns the raw proximity count.
func (d *Dev) Proximity() (uint16, error) {
	return d.readReg(regPSData)
}

// Lux returns the raw ambient light count. Scaling to actual lux depends on
// the configured integration time and is left to the caller.
func (d *Dev) Lux() (uint16, error) {
	return d.readReg(regALSData)
}

// WhiteLight returns the raw white channel count.
func (d *Dev) WhiteLight() (uint16, error) {
	return d.readReg(regWhiteData)
}

// DeviceID returns the ID register contents, 0x1058 on a VCNL4200.
func (d *Dev) DeviceID() (uint16, error) {
	return d.readReg(regID)
}

// SetALSInterrupt enables or disables the ALS threshold interrupt and
// selects the channel it watches: the white channel when whiteChannel is
// true, the ALS channel otherwise.
func (d *Dev) SetALSInterrupt(enabled, whiteChannel bool) error {
	if err := d.writeFlag(fieldALSIntEnable, enabled); err != nil {
		return err
	}
	return d.writeFlag(fieldALSIntChannel, whiteChannel)
}

// TriggerProximity requests a single proximity conversion. Only useful
// when active force mode is on.
func (d *Dev) TriggerProximity() error {
	return d.writeFlag(fieldPSTrigger, true)
}

// IntFlags is the decoded interrupt flag register. The flags are sticky:
// the device holds them until the register is read, and reading clears
// them.
type IntFlags struct {
	ALSHigh         bool // ALS crossed the high threshold
	ALSLow          bool // ALS crossed the low threshold
	ProxClose       bool // proximity crossed the high threshold
	ProxAway        bool // proximity crossed the low threshold
	SunlightProtect bool // sunlight protection active
	Saturation      bool // proximity code saturated
}

// InterruptFlags reads and decodes the interrupt flag register. Only the
// high byte carries flags; the low byte is reserved and ignored.
func (d *Dev) InterruptFlags() (IntFlags, error) {
	raw, err := d.readReg(regIntFlag)
	if err != nil {
		return IntFlags{}, err
	}
	b := uint8(raw >> 8)
	return IntFlags{
		ALSHigh:         b&intFlagALSHigh != 0,
		ALSLow:          b&intFlagALSLow != 0,
		ProxClose:       b&intFlagProxClose != 0,
		ProxAway:        b&intFlagProxAway != 0,
		SunlightProtect: b&intFlagSunlight != 0,
		Saturation:      b&intFlagSaturation != 0,
	}, nil
}

// Halt shuts down both sensor blocks.
func (d *Dev) Halt() error {
	if err := d.SetALSShutdown(true); err != nil {
		return err
	}
	return d.SetPSShutdown(true)
}

// Close halts the sensor and, when the Dev was created through Open,
// releases the bus.
func (d *Dev) Close() error {
	err := d.Halt()
	if d.bus != nil {
		if cerr := d.bus.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
