// Command spectator follows a running duopong game over its spectator feed
// and prints every frame as ASCII art.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/lguibr/asciiring/helpers"
	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/render"
	"golang.org/x/net/websocket"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

func setRawMode(fileDescriptor uintptr) (*unix.Termios, error) {
	terminalSettings, err := unix.IoctlGetTermios(int(fileDescriptor), unix.TCGETS)
	if err != nil {
		return nil, err
	}
	savedTerminalSettings := *terminalSettings
	terminalSettings.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	terminalSettings.Oflag &^= unix.OPOST
	terminalSettings.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	terminalSettings.Cflag &^= unix.CSIZE | unix.PARENB
	terminalSettings.Cflag |= unix.CS8

	if err := unix.IoctlSetTermios(int(fileDescriptor), unix.TCSETS, terminalSettings); err != nil {
		return nil, err
	}
	return &savedTerminalSettings, nil
}

func restore(saved *unix.Termios) {
	_ = unix.IoctlSetTermios(int(os.Stdin.Fd()), unix.TCSETS, saved)
}

// rawLines turns line feeds into CRLF; output post-processing is off in raw
// mode.
func rawLines(text string) string {
	return strings.ReplaceAll(text, "\n", "\r\n")
}

func frameText(snapshot game.Snapshot, cols, rows int, color bool) string {
	if !color {
		return render.Frame(snapshot, cols, rows)
	}
	return snapshot.ScoreText + "\n" + render.RenderToASCII(render.Rasterize(snapshot, cols, rows))
}

// fitFrame picks a frame size for a terminal of width x height characters,
// leaving one line for the score and one for the cursor.
func fitFrame(width, height int) (cols, rows int) {
	cols, rows = width/2, height-2
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

func isQuitByte(b byte) bool {
	switch b {
	case 'q', 'Q', 3, 27:
		return true
	}
	return false
}

func main() {
	addr := flag.String("addr", "localhost:3001", "spectator feed address")
	cols := flag.Int("cols", 0, "frame width in cells (0 fits the terminal)")
	rows := flag.Int("rows", 0, "frame height in cells (0 fits the terminal)")
	color := flag.Bool("color", true, "use ANSI 24-bit colours")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Println("spectator needs an interactive terminal")
		os.Exit(1)
	}
	if *cols == 0 || *rows == 0 {
		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width, height = 128, 38
		}
		fitCols, fitRows := fitFrame(width, height)
		if *cols == 0 {
			*cols = fitCols
		}
		if *rows == 0 {
			*rows = fitRows
		}
	}

	websocketConnection, err := websocket.Dial("ws://"+*addr+"/subscribe", "", "http://localhost/")
	if err != nil {
		fmt.Println("Error connecting to server:", err)
		os.Exit(1)
	}
	defer websocketConnection.Close()

	savedTerminalSettings, err := setRawMode(os.Stdin.Fd())
	if err != nil {
		fmt.Println("Error setting raw mode:", err)
		return
	}
	defer restore(savedTerminalSettings)

	interruptSignalChannel := make(chan os.Signal, 1)
	signal.Notify(interruptSignalChannel, os.Interrupt)
	go func() {
		<-interruptSignalChannel
		restore(savedTerminalSettings)
		os.Exit(0)
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var snapshot game.Snapshot
			if err := websocket.JSON.Receive(websocketConnection, &snapshot); err != nil {
				fmt.Print(rawLines(fmt.Sprintln("Error reading from server:", err)))
				return
			}
			helpers.ClearScreen()
			fmt.Print(rawLines(frameText(snapshot, *cols, *rows, *color)))
		}
	}()

	keys := make(chan byte)
	go func() {
		singleByteBuffer := make([]byte, 1)
		for {
			if _, err := os.Stdin.Read(singleByteBuffer); err != nil {
				return
			}
			keys <- singleByteBuffer[0]
		}
	}()

	for {
		select {
		case <-done:
			return
		case key := <-keys:
			if isQuitByte(key) {
				fmt.Print("Quitting spectator\r\n")
				return
			}
		}
	}
}
