package jeebie

import (
	"fmt"
	"io/ioutil"
	"log/slog"
	"sync"

	"github.com/dmgcore/emu/jeebie/corelog"
	"github.com/dmgcore/emu/jeebie/cpu"
	"github.com/dmgcore/emu/jeebie/memory"
	"github.com/dmgcore/emu/jeebie/video"
)

// DebuggerState represents the current debugger mode
type DebuggerState int

const (
	DebuggerRunning   DebuggerState = iota // Normal execution
	DebuggerPaused                         // Paused, waiting for commands
	DebuggerStep                           // Execute one instruction then pause
	DebuggerStepFrame                      // Execute one frame then pause
)

// Emulator represents the root struct and entry point for running the emulation
type Emulator struct {
	cpu *cpu.CPU
	gpu *video.GPU
	mem *memory.MMU

	// Debugger state
	debuggerState    DebuggerState
	debuggerMutex    sync.RWMutex
	stepRequested    bool
	frameRequested   bool
	instructionCount uint64
	frameCount       uint64

	completion completionDetector
}

// completionDetector drives RunUntilComplete: test ROMs written for
// automated running typically signal completion by jumping to a tight
// loop once they're done, rather than exiting. We run frames until
// either a frame cap is hit or the CPU's PC has been parked on the
// same address across minLoopCount consecutive frames.
type completionDetector struct {
	maxFrames    uint64
	minLoopCount int
	lastPC       uint16
	loopCount    int
}

func (e *Emulator) init(mem *memory.MMU) {
	e.cpu = cpu.New(mem)
	e.gpu = video.NewGpu(mem)
	e.mem = mem

	mem.SetTimerSeed(0xABCC)
	// The PPU rides the same per-access tick chain as the timer and DMA,
	// so mode transitions land at the same sub-instruction granularity
	// as everything else the bus drives.
	mem.SetVideo(e.gpu)
}

// SetLogger injects the logger the emulator core (memory bus and PPU)
// uses for diagnostic output, in place of the global default logger.
// Call before RunUntilFrame/RunUntilComplete to take effect from the
// first tick.
func (e *Emulator) SetLogger(l *corelog.Logger) {
	e.mem.SetLogger(l)
	e.gpu.SetLogger(l)
}

// New creates a new emulator instance
func New() *Emulator {
	e := &Emulator{}
	e.init(memory.NewWithCartridge(memory.NewCartridge()))

	return e
}

// NewWithFile creates a new emulator instance and loads the file specified into it.
func NewWithFile(path string) (*Emulator, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	slog.Debug("Loaded ROM data", "size", len(data))

	e := &Emulator{}
	e.init(memory.NewWithCartridge(memory.NewCartridgeWithData(data)))

	return e, nil
}

func (e *Emulator) RunUntilFrame() {
	e.debuggerMutex.RLock()
	state := e.debuggerState
	e.debuggerMutex.RUnlock()

	// Handle paused state - don't execute anything
	if state == DebuggerPaused {
		return
	}

	// Handle step instruction - execute one instruction then pause
	if state == DebuggerStep {
		e.debuggerMutex.Lock()
		if e.stepRequested {
			e.stepRequested = false
			e.debuggerMutex.Unlock()

			// Execute one CPU instruction
			oldPC := e.cpu.GetPC()
			e.cpu.Tick()
			e.instructionCount++

			// Log the executed instruction
			slog.Debug("Step executed", "pc", fmt.Sprintf("0x%04X", oldPC), "new_pc", fmt.Sprintf("0x%04X", e.cpu.GetPC()))

			// Pause after execution
			e.SetDebuggerState(DebuggerPaused)
		} else {
			e.debuggerMutex.Unlock()
		}
		return
	}

	// Handle step frame - execute one frame then pause
	if state == DebuggerStepFrame {
		e.debuggerMutex.Lock()
		frameRequested := e.frameRequested
		if frameRequested {
			e.frameRequested = false
		}
		e.debuggerMutex.Unlock()

		if frameRequested {
			// Execute one full frame
			total := 0
			for {
				cycles := e.cpu.Tick()
				e.instructionCount++
				total += cycles

				if total >= 70224 {
					break
				}
			}
			e.frameCount++
			slog.Debug("Frame step completed", "frame", e.frameCount, "instructions", e.instructionCount)
			e.SetDebuggerState(DebuggerPaused)
		}
		return
	}

	// Normal execution (DebuggerRunning)
	total := 0
	for {
		cycles := e.cpu.Tick()
		e.instructionCount++

		total += cycles

		if total >= 70224 {
			e.frameCount++
			// Log every 60 frames (once per second at 60 FPS) only when running
			if e.frameCount%60 == 0 {
				slog.Debug("Frame completed", "frame", e.frameCount, "pc", fmt.Sprintf("0x%04X", e.cpu.GetPC()))
			}
			return
		}
	}
}

// ConfigureCompletionDetection sets the bounds RunUntilComplete uses to
// decide a test ROM is done: a hard frame cap, and a number of
// consecutive frames the CPU must idle on the same PC. A zero
// minLoopCount disables loop detection and relies on maxFrames alone.
func (e *Emulator) ConfigureCompletionDetection(maxFrames uint64, minLoopCount int) {
	e.completion = completionDetector{
		maxFrames:    maxFrames,
		minLoopCount: minLoopCount,
	}
}

// RunUntilComplete runs frames until the completion detector configured
// via ConfigureCompletionDetection considers the ROM finished.
func (e *Emulator) RunUntilComplete() {
	e.completion.loopCount = 0
	e.completion.lastPC = e.cpu.GetPC()

	for {
		e.RunUntilFrame()

		if e.completion.maxFrames > 0 && e.frameCount >= e.completion.maxFrames {
			return
		}

		if e.completion.minLoopCount <= 0 {
			continue
		}

		pc := e.cpu.GetPC()
		if pc == e.completion.lastPC {
			e.completion.loopCount++
			if e.completion.loopCount >= e.completion.minLoopCount {
				return
			}
		} else {
			e.completion.lastPC = pc
			e.completion.loopCount = 0
		}
	}
}

func (e *Emulator) GetCurrentFrame() *video.FrameBuffer {
	return e.gpu.GetFrameBuffer()
}

func (e *Emulator) HandleKeyPress(key memory.JoypadKey) {
	e.mem.HandleKeyPress(key)
}

func (e *Emulator) HandleKeyRelease(key memory.JoypadKey) {
	e.mem.HandleKeyRelease(key)
}

func (e *Emulator) GetCPU() *cpu.CPU {
	return e.cpu
}

// Debugger control methods
func (e *Emulator) SetDebuggerState(state DebuggerState) {
	e.debuggerMutex.Lock()
	defer e.debuggerMutex.Unlock()
	e.debuggerState = state
	slog.Debug("Debugger state changed", "state", state)
}

func (e *Emulator) GetDebuggerState() DebuggerState {
	e.debuggerMutex.RLock()
	defer e.debuggerMutex.RUnlock()
	return e.debuggerState
}

func (e *Emulator) DebuggerPause() {
	e.SetDebuggerState(DebuggerPaused)
	slog.Info("Emulator paused")
}

func (e *Emulator) DebuggerResume() {
	e.SetDebuggerState(DebuggerRunning)
	slog.Info("Emulator resumed")
}

func (e *Emulator) DebuggerStepInstruction() {
	e.debuggerMutex.Lock()
	defer e.debuggerMutex.Unlock()
	e.stepRequested = true
	e.debuggerState = DebuggerStep
	slog.Info("Step instruction requested")
}

func (e *Emulator) DebuggerStepFrame() {
	e.debuggerMutex.Lock()
	defer e.debuggerMutex.Unlock()
	e.frameRequested = true
	e.debuggerState = DebuggerStepFrame
	slog.Info("Step frame requested")
}

func (e *Emulator) GetInstructionCount() uint64 {
	return e.instructionCount
}

func (e *Emulator) GetFrameCount() uint64 {
	return e.frameCount
}

func (e *Emulator) GetMMU() *memory.MMU {
	return e.mem
}

