package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/beanboi7/chyp8/chyp"
	"github.com/beanboi7/chyp8/emu/audio"
	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/machine"
	"github.com/beanboi7/chyp8/emu/screen"
	"github.com/beanboi7/chyp8/emu/window"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var startCmd = &cobra.Command{
	Use:   "start `path/ROM`",
	Short: "load and start the Emulator",
	Args:  cobra.ExactArgs(1),
	RunE:  Start,
}

func init() {
	flags := startCmd.Flags()
	flags.IntP("clock", "c", 700, "instructions executed per second")
	flags.IntP("timer", "t", 60, "delay and sound timer rate in Hz")
	flags.IntP("fps", "r", 60, "display refresh rate in Hz")
	flags.Float64P("scale", "s", 10, "window pixels per CHIP-8 pixel")
	flags.Uint16P("entry", "e", cpu.ProgramStart, "program load address, 0x600 for ETI 660 programs")
	flags.Int64("seed", 0, "random seed, 0 seeds from the clock")
	flags.String("beep", "", "mp3 file played while the sound timer runs")
	flags.Bool("reset", false, "reset the program instead of halting on a fault")
	flags.Bool("trace", false, "log every executed instruction")

	for _, name := range []string{"clock", "timer", "fps", "scale", "entry", "seed", "beep", "reset", "trace"} {
		cobra.CheckErr(viper.BindPFlag(name, flags.Lookup(name)))
	}
}

// Start loads the ROM and runs it until the window is closed.
// chyp8 start 'path/to/ROM' -r 60
func Start(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(viper.GetViper())
	if err != nil {
		return err
	}
	logger := opts.logger()

	romPath := args[0]
	rom, err := chyp.LoadGame(romPath, opts.Entry)
	if err != nil {
		return err
	}

	fb := screen.New()
	win, err := window.New(fb, opts.Scale, "chyp8 - "+filepath.Base(romPath))
	if err != nil {
		return err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	emu, err := cpu.NewEMU(cpu.Peripherals{
		Display: fb,
		Keypad:  win,
		Random:  cpu.NewRandom(seed),
	}, opts.Entry)
	if err != nil {
		return err
	}
	if err := emu.LoadProgram(rom); err != nil {
		return fmt.Errorf("loading %s: %w", romPath, err)
	}

	m, err := machine.New(emu, win, newBuzzer(logger, opts.Beep), logger, opts.machineConfig())
	if err != nil {
		return err
	}

	logger.Info("Starting emulation",
		log.String("rom", romPath),
		log.Int("size", len(rom)),
		log.Hex("entry", opts.Entry),
		log.Int("clock", opts.Clock))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return m.Run(ctx)
}

// newBuzzer returns nil when no audio device is available, the machine
// then runs silent.
func newBuzzer(logger *log.Logger, beepFile string) machine.Buzzer {
	var (
		buzzer *audio.Buzzer
		err    error
	)
	if beepFile != "" {
		buzzer, err = audio.NewFromFile(beepFile)
	} else {
		buzzer, err = audio.New()
	}
	if err != nil {
		logger.Warn("Audio disabled", log.Err(err))
		return nil
	}
	return buzzer
}
