package render

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/dmgcore/emu/jeebie"
	"github.com/dmgcore/emu/jeebie/memory"
	"github.com/dmgcore/emu/jeebie/timing"
)

const (
	width  = 160
	height = 144

	gameAreaWidth  = width
	gameAreaHeight = height
	registerHeight = 7
	minTermWidth   = 100
	minTermHeight  = gameAreaHeight + 2
)

var shadeChars = []rune{'█', '▓', '▒', '░'}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// TerminalRenderer drives the emulator and renders each frame to a
// tcell screen, with a CPU register panel for debugging.
type TerminalRenderer struct {
	screen   tcell.Screen
	emulator *jeebie.Emulator
	limiter  timing.Limiter
	running  bool
}

func NewTerminalRenderer(emu *jeebie.Emulator) (*TerminalRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %v", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %v", err)
	}

	slog.Info("Terminal renderer initialized")

	return &TerminalRenderer{
		screen:   screen,
		emulator: emu,
		limiter:  timing.NewAdaptiveLimiter(),
		running:  true,
	}, nil
}

func (t *TerminalRenderer) Run() error {
	defer func() {
		slog.Info("Finishing terminal")
		t.screen.Fini()
	}()

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)

	go t.handleInput()

	frames := make(chan struct{})
	go func() {
		for t.running {
			t.limiter.WaitForNextFrame()
			frames <- struct{}{}
		}
	}()

	for t.running {
		select {
		case <-frames:
			t.emulator.RunUntilFrame()
			t.render()
			t.screen.Show()

		case <-signals:
			t.running = false
			slog.Info("Received signal to stop")
			return nil
		}
	}

	return nil
}

func (t *TerminalRenderer) handleInput() {
	for t.running {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				t.running = false
				return
			case tcell.KeyEnter:
				t.emulator.HandleKeyPress(memory.JoypadStart)
			case tcell.KeyRight:
				t.emulator.HandleKeyPress(memory.JoypadRight)
			case tcell.KeyLeft:
				t.emulator.HandleKeyPress(memory.JoypadLeft)
			case tcell.KeyUp:
				t.emulator.HandleKeyPress(memory.JoypadUp)
			case tcell.KeyDown:
				t.emulator.HandleKeyPress(memory.JoypadDown)
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'a':
					t.emulator.HandleKeyPress(memory.JoypadA)
				case 's':
					t.emulator.HandleKeyPress(memory.JoypadB)
				case 'q':
					t.emulator.HandleKeyPress(memory.JoypadSelect)
				case ' ':
					if t.emulator.GetDebuggerState() == jeebie.DebuggerPaused {
						t.emulator.DebuggerResume()
					} else {
						t.emulator.DebuggerPause()
					}
				case 'n':
					t.emulator.DebuggerStepInstruction()
				case 'f':
					t.emulator.DebuggerStepFrame()
				case 'r':
					t.emulator.DebuggerResume()
				case 'p':
					t.emulator.DebuggerPause()
				}
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func (t *TerminalRenderer) render() {
	termWidth, termHeight := t.screen.Size()

	if termWidth < minTermWidth || termHeight < minTermHeight {
		t.screen.Clear()
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		msg := fmt.Sprintf("Terminal too small! Need at least %dx%d", minTermWidth, minTermHeight)
		for i, ch := range msg {
			t.screen.SetContent(i, termHeight/2, ch, nil, style)
		}
		return
	}

	t.screen.Clear()
	t.drawBorders(termWidth, termHeight)
	t.drawGameBoy()
	t.drawRegisters(termWidth, termHeight)
}

func (t *TerminalRenderer) drawBorders(termWidth, termHeight int) {
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	borderX := min(gameAreaWidth+1, termWidth/2)
	if borderX >= termWidth-10 {
		borderX = termWidth - 10
	}

	for y := 0; y < termHeight; y++ {
		if borderX < termWidth {
			t.screen.SetContent(borderX, y, '│', nil, borderStyle)
		}
	}

	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	title := " Game Boy "
	for i, ch := range title {
		t.screen.SetContent(1+i, 0, ch, nil, titleStyle)
	}

	title = " CPU Registers "
	for i, ch := range title {
		t.screen.SetContent(borderX+2+i, 0, ch, nil, titleStyle)
	}

	if termHeight > 10 {
		helpStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		helpText := "Debug: SPACE=pause/resume N=step P=pause R=resume F=step-frame"
		startX := 1
		maxWidth := min(len(helpText), termWidth-2)
		for i, ch := range helpText[:maxWidth] {
			t.screen.SetContent(startX+i, termHeight-1, ch, nil, helpStyle)
		}
	}
}

func (t *TerminalRenderer) drawGameBoy() {
	fb := t.emulator.GetCurrentFrame()
	frame := fb.ToSlice()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixel := frame[y*width+x]

			shade := 0
			switch pixel {
			case 0x000000FF:
				shade = 0
			case 0x4C4C4CFF:
				shade = 1
			case 0x989898FF:
				shade = 2
			case 0xFFFFFFFF:
				shade = 3
			}

			style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
			char := shadeChars[shade]
			screenX := x
			screenY := y + 1

			if screenX < gameAreaWidth {
				t.screen.SetContent(screenX, screenY, char, nil, style)
			}
		}
	}
}

func (t *TerminalRenderer) drawRegisters(termWidth, termHeight int) {
	cpu := t.emulator.GetCPU()
	startX := gameAreaWidth + 3
	startY := 1

	regStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)

	debugState := t.emulator.GetDebuggerState()
	debugStatus := ""
	debugStyle := regStyle
	switch debugState {
	case jeebie.DebuggerRunning:
		debugStatus = "RUNNING"
		debugStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case jeebie.DebuggerPaused:
		debugStatus = "PAUSED"
		debugStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case jeebie.DebuggerStep:
		debugStatus = "STEP"
		debugStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case jeebie.DebuggerStepFrame:
		debugStatus = "FRAME"
		debugStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	}

	registers := []string{
		fmt.Sprintf("Status: %s", debugStatus),
		fmt.Sprintf("A: 0x%02X  F: 0x%02X [%s]", cpu.GetA(), cpu.GetF(), cpu.GetFlagString()),
		fmt.Sprintf("B: 0x%02X  C: 0x%02X", cpu.GetB(), cpu.GetC()),
		fmt.Sprintf("D: 0x%02X  E: 0x%02X", cpu.GetD(), cpu.GetE()),
		fmt.Sprintf("H: 0x%02X  L: 0x%02X", cpu.GetH(), cpu.GetL()),
		fmt.Sprintf("SP: 0x%04X  PC: 0x%04X", cpu.GetSP(), cpu.GetPC()),
		fmt.Sprintf("Frame: %d  Instr: %d", t.emulator.GetFrameCount(), t.emulator.GetInstructionCount()),
	}

	for i, reg := range registers {
		if startY+i >= registerHeight+1 || startY+i >= termHeight {
			break
		}

		style := regStyle
		if i == 0 {
			style = debugStyle
		}

		x := startX
		for _, ch := range reg {
			if x >= termWidth {
				break
			}
			t.screen.SetContent(x, startY+i, ch, nil, style)
			x++
		}
	}
}
