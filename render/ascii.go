package render

import (
	"fmt"
	"strings"

	"github.com/lguibr/duopong/game"
)

// ASCII characters for grayscale, from lighter to darker
const asciiChars = " .,:;i1tfLCG08@"

// Dividing factor to convert RGB color space to grayscale
const grayFactor = 255.0 / float64(len(asciiChars)-1)

// rgbToGray averages the three channels.
func rgbToGray(pixel RGBPixel) uint8 {
	return uint8((uint16(pixel.R) + uint16(pixel.G) + uint16(pixel.B)) / 3)
}

// grayToASCII maps a grayscale value to an ASCII character
func grayToASCII(gray uint8) byte {
	index := int(float64(gray) / grayFactor)
	return asciiChars[index]
}

// rgbToAnsi converts an RGB pixel to an ANSI escape code for that color
func rgbToAnsi(pixel RGBPixel) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", pixel.R, pixel.G, pixel.B)
}

// RenderToASCII converts a [row][col] grid to coloured ASCII. Every pixel is
// written twice so that terminal cells come out roughly square.
func RenderToASCII(pixels [][]RGBPixel) string {
	var ascii strings.Builder
	for _, row := range pixels {
		for _, pixel := range row {
			ansi := rgbToAnsi(pixel)
			char := string(grayToASCII(rgbToGray(pixel)))
			ascii.WriteString(ansi + char + char + "\033[0m") // Reset color after each character
		}
		ascii.WriteString("\n")
	}
	return ascii.String()
}

// RenderToPlainASCII is RenderToASCII without colour escapes.
func RenderToPlainASCII(pixels [][]RGBPixel) string {
	var ascii strings.Builder
	for _, row := range pixels {
		for _, pixel := range row {
			char := grayToASCII(rgbToGray(pixel))
			ascii.WriteByte(char)
			ascii.WriteByte(char)
		}
		ascii.WriteString("\n")
	}
	return ascii.String()
}

// Frame renders a snapshot as plain text: the score centred on the first
// line, then the court rasterized at cols x rows.
func Frame(snapshot game.Snapshot, cols, rows int) string {
	width := cols * 2
	padding := (width - len(snapshot.ScoreText)) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat(" ", padding) + snapshot.ScoreText + "\n" +
		RenderToPlainASCII(Rasterize(snapshot, cols, rows))
}
