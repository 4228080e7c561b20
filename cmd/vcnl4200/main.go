// Command vcnl4200 reads a VCNL4200 proximity/ambient light sensor from
// the shell.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/rubiojr/go-vcnl4200/vcnl4200"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	app := &cli.App{
		Name:  "vcnl4200",
		Usage: "read the VCNL4200 proximity and ambient light sensor",
		UsageText: "vcnl4200 [--bus <name>] [--addr <addr>] <command>" +
			"\n\nEXAMPLE:" +
			"\n\tread the sensor once on the first available bus" +
			"\n\t\tvcnl4200 read",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bus", Aliases: []string{"b"}, Value: "", Usage: "I²C bus `NAME` as known to i2creg, empty for the first available"},
			&cli.UintFlag{Name: "addr", Aliases: []string{"a"}, Value: uint(vcnl4200.DefaultAddress), Usage: "I²C `ADDRESS` of the sensor"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log every register transaction"},
		},
		Commands: []*cli.Command{
			{
				Name:  "read",
				Usage: "print proximity, ALS and white channel counts",
				Flags: []cli.Flag{
					&cli.DurationFlag{Name: "interval", Aliases: []string{"i"}, Value: 0, Usage: "repeat every `DURATION`, 0 reads once"},
				},
				Action: readCmd,
			},
			{
				Name:   "config",
				Usage:  "dump the sensor configuration",
				Action: configCmd,
			},
			{
				Name:  "watch",
				Usage: "poll the interrupt flag register and report transitions",
				Flags: []cli.Flag{
					&cli.DurationFlag{Name: "interval", Aliases: []string{"i"}, Value: time.Second, Usage: "poll every `DURATION`"},
				},
				Action: watchCmd,
			},
		},
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("exiting")
	}
}

func openSensor(c *cli.Context) (*vcnl4200.Dev, i2c.BusCloser, error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, err
	}

	bus, err := i2creg.Open(c.String("bus"))
	if err != nil {
		return nil, nil, err
	}

	opts := vcnl4200.Opts{
		Addr:  uint16(c.Uint("addr")),
		Debug: c.Bool("debug"),
	}
	d, err := vcnl4200.NewWithOpts(bus, opts)
	if err != nil {
		bus.Close()
		return nil, nil, err
	}
	return d, bus, nil
}

func readCmd(c *cli.Context) error {
	d, bus, err := openSensor(c)
	if err != nil {
		return err
	}
	defer bus.Close()

	for {
		p, err := d.Proximity()
		if err != nil {
			return err
		}
		a, err := d.Lux()
		if err != nil {
			return err
		}
		w, err := d.WhiteLight()
		if err != nil {
			return err
		}
		fmt.Printf("proximity=%d als=%d white=%d\n", p, a, w)

		interval := c.Duration("interval")
		if interval == 0 {
			return nil
		}
		time.Sleep(interval)
	}
}

func configCmd(c *cli.Context) error {
	d, bus, err := openSensor(c)
	if err != nil {
		return err
	}
	defer bus.Close()

	id, err := d.DeviceID()
	if err != nil {
		return err
	}
	fmt.Printf("device id:               0x%04x\n", id)

	ait, err := d.ALSIntegrationTime()
	if err != nil {
		return err
	}
	fmt.Println("als integration time:   ", ait)

	apers, err := d.ALSPersistence()
	if err != nil {
		return err
	}
	fmt.Println("als persistence:        ", apers)

	alo, err := d.ALSLowThreshold()
	if err != nil {
		return err
	}
	ahi, err := d.ALSHighThreshold()
	if err != nil {
		return err
	}
	fmt.Printf("als thresholds:          %d..%d\n", alo, ahi)

	duty, err := d.PSDuty()
	if err != nil {
		return err
	}
	fmt.Println("ps duty:                ", duty)

	pit, err := d.PSIntegrationTime()
	if err != nil {
		return err
	}
	fmt.Println("ps integration time:    ", pit)

	ppers, err := d.PSPersistence()
	if err != nil {
		return err
	}
	fmt.Println("ps persistence:         ", ppers)

	im, err := d.PSInterruptMode()
	if err != nil {
		return err
	}
	fmt.Println("ps interrupt mode:      ", im)

	led, err := d.LEDCurrent()
	if err != nil {
		return err
	}
	fmt.Println("led current:            ", led)

	mp, err := d.PSMultiPulse()
	if err != nil {
		return err
	}
	fmt.Println("ps multi pulse:         ", mp)

	plo, err := d.PSLowThreshold()
	if err != nil {
		return err
	}
	phi, err := d.PSHighThreshold()
	if err != nil {
		return err
	}
	fmt.Printf("ps thresholds:           %d..%d\n", plo, phi)

	cl, err := d.PSCancellationLevel()
	if err != nil {
		return err
	}
	fmt.Println("ps cancellation level:  ", cl)

	return nil
}

func watchCmd(c *cli.Context) error {
	d, bus, err := openSensor(c)
	if err != nil {
		return err
	}
	defer bus.Close()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	tick := time.NewTicker(c.Duration("interval"))
	defer tick.Stop()

	log.Info().Msg("watching interrupt flags")
	for {
		select {
		case sig := <-quit:
			log.Info().Msgf("got %s signal, stopping", sig)
			return nil
		case <-tick.C:
			flags, err := d.InterruptFlags()
			if err != nil {
				return err
			}
			if flags == (vcnl4200.IntFlags{}) {
				continue
			}
			log.Info().
				Bool("als_high", flags.ALSHigh).
				Bool("als_low", flags.ALSLow).
				Bool("prox_close", flags.ProxClose).
				Bool("prox_away", flags.ProxAway).
				Bool("sunlight_protect", flags.SunlightProtect).
				Bool("saturation", flags.Saturation).
				Msg("interrupt")
		}
	}
}
