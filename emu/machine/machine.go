// Package machine drives the VM: it paces instruction execution and
// timer decay at independent rates and connects the frontend.
package machine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/retroenv/retrogolib/log"
)

// VM is the subset of the CHIP-8 engine used by the driver.
type VM interface {
	Step() error
	Fetch() (cpu.Instruction, error)
	TickTimers()
	Reset()
	State() cpu.State
	PC() uint16
	SoundActive() bool
}

// Frontend presents the display and collects input once per frame.
type Frontend interface {
	Closed() bool
	Refresh()
}

// Buzzer is switched on while the sound timer is non-zero.
type Buzzer interface {
	SetActive(on bool)
}

// Config sets the pacing of the driver loop.
type Config struct {
	ClockSpeed   int // instructions per second
	TimerRate    int // timer decrements per second
	FrameRate    int // frontend refreshes per second
	ResetOnFault bool
	Trace        bool
}

// DefaultConfig returns the conventional CHIP-8 pacing.
func DefaultConfig() Config {
	return Config{
		ClockSpeed: 700,
		TimerRate:  60,
		FrameRate:  60,
	}
}

var errInvalidRate = errors.New("rate must be positive")

// Machine runs a VM frame by frame.
type Machine struct {
	vm       VM
	frontend Frontend
	buzzer   Buzzer
	logger   *log.Logger
	cfg      Config

	cycleAcc int
	timerAcc int
	steps    int
	frames   int
}

// New returns a driver for the VM. The buzzer is optional.
func New(vm VM, frontend Frontend, buzzer Buzzer, logger *log.Logger, cfg Config) (*Machine, error) {
	if cfg.ClockSpeed <= 0 || cfg.TimerRate <= 0 || cfg.FrameRate <= 0 {
		return nil, fmt.Errorf("clock %d, timer %d, frame %d: %w",
			cfg.ClockSpeed, cfg.TimerRate, cfg.FrameRate, errInvalidRate)
	}
	if buzzer == nil {
		buzzer = silent{}
	}

	return &Machine{
		vm:       vm,
		frontend: frontend,
		buzzer:   buzzer,
		logger:   logger,
		cfg:      cfg,
	}, nil
}

// RunFrame executes the instructions and timer ticks due in one frame
// and refreshes the frontend. Stepping stops early while the VM waits
// for a key, the key is polled once per frame.
func (m *Machine) RunFrame() error {
	m.cycleAcc += m.cfg.ClockSpeed
	steps := m.cycleAcc / m.cfg.FrameRate
	m.cycleAcc %= m.cfg.FrameRate

	for range steps {
		if err := m.step(); err != nil {
			return err
		}
		if m.vm.State() == cpu.AwaitingKey {
			break
		}
	}

	m.timerAcc += m.cfg.TimerRate
	for m.timerAcc >= m.cfg.FrameRate {
		m.vm.TickTimers()
		m.timerAcc -= m.cfg.FrameRate
	}

	m.buzzer.SetActive(m.vm.SoundActive())
	m.frontend.Refresh()
	m.frames++
	return nil
}

// Run executes frames at the configured frame rate until the context
// is cancelled or the frontend is closed. A fault halts the machine
// unless it is configured to reset on faults.
func (m *Machine) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(m.cfg.FrameRate))
	defer ticker.Stop()

	for !m.frontend.Closed() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if err := m.RunFrame(); err != nil {
			if !m.cfg.ResetOnFault {
				m.logger.Error("Emulation halted", log.Err(err))
				m.buzzer.SetActive(false)
				return err
			}

			m.logger.Warn("Resetting after fault", log.Err(err))
			m.vm.Reset()
			m.cycleAcc, m.timerAcc = 0, 0
		}
	}

	m.buzzer.SetActive(false)
	m.logger.Debug("Frontend closed",
		log.Int("frames", m.frames),
		log.Int("steps", m.steps))
	return nil
}

// Steps returns the number of executed instructions.
func (m *Machine) Steps() int {
	return m.steps
}

func (m *Machine) step() error {
	running := m.vm.State() == cpu.Running
	if m.cfg.Trace && running {
		if instr, err := m.vm.Fetch(); err == nil {
			m.logger.Debug("Executing",
				log.Hex("pc", m.vm.PC()),
				log.String("instruction", instr.String()))
		}
	}

	if err := m.vm.Step(); err != nil {
		return err
	}
	// polling the keypad executes nothing
	if running {
		m.steps++
	}
	return nil
}

type silent struct{}

func (silent) SetActive(bool) {}
