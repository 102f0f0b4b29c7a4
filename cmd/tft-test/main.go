package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"iter"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/golang/freetype"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/tft"
	"github.com/BeatGlow/tft/conn"
	"github.com/BeatGlow/tft/draw"
	"github.com/BeatGlow/tft/pixel"
)

func main() {
	spiFlag := flag.String("spi", conn.DefaultSPIConfig.Bus, "SPI port name (default: use first available)")
	hzFlag := flag.Int64("hz", int64(conn.DefaultSPIConfig.Speed/physic.Hertz), "SPI clock in Hz")
	modeFlag := flag.Int("mode", int(conn.DefaultSPIConfig.Mode), "SPI mode")
	dcPinFlag := flag.String("dc", conn.DefaultSPIConfig.DC, "Data/Command GPIO pin (DC)")
	resetPinFlag := flag.String("reset", conn.DefaultSPIConfig.Reset, "Reset GPIO pin")
	blPinFlag := flag.String("bl", conn.DefaultSPIConfig.Backlight, "Backlight GPIO pin")
	widthFlag := flag.Int("width", 240, "Display width")
	heightFlag := flag.Int("height", 320, "Display height")
	xOffsetFlag := flag.Int("xoff", 0, "Display column offset")
	yOffsetFlag := flag.Int("yoff", 0, "Display row offset")
	orientationFlag := flag.String("orientation", "", "Display orientation")
	framesFlag := flag.Int("frames", 0, "Number of gradient frames to draw (default: until interrupted)")
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log := logrus.New()
	if *debugFlag {
		log.SetLevel(logrus.DebugLevel)
		logrus.SetLevel(logrus.DebugLevel)
		tft.SetLogger(log.WithField("pkg", "tft"))
	}

	var orientation tft.Orientation
	switch strings.ToLower(*orientationFlag) {
	case "", "portrait", "0":
		orientation = tft.Portrait
	case "landscape", "90", "right", "cw":
		orientation = tft.Landscape
	case "portrait-reverse", "180", "flip":
		orientation = tft.PortraitReverse
	case "landscape-reverse", "270", "left", "ccw":
		orientation = tft.LandscapeReverse
	default:
		log.Fatalf("invalid orientation %q specified", *orientationFlag)
	}
	log.Infof("using orientation: %s", orientation)

	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	res, err := conn.Open(&conn.SPIConfig{
		Bus:       *spiFlag,
		Mode:      spi.Mode(*modeFlag),
		Speed:     physic.Frequency(*hzFlag) * physic.Hertz,
		DC:        *dcPinFlag,
		Reset:     *resetPinFlag,
		Backlight: *blPinFlag,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer res.Close()
	log.Infof("using connection: %s", res.Bus)

	var (
		rect   = image.Rect(0, 0, *widthFlag, *heightFlag).Add(image.Pt(*xOffsetFlag, *yOffsetFlag))
		driver = tft.NewST7789(orientation, rect)
	)
	canvas, err := tft.New[pixel.RGB565](res.Bus, res.Pins.DC, res.Pins.Reset, res.Pins.Backlight, res.Delay, driver)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("using driver: %s", driver)

	r := canvas.Bounds()
	if err = draw.Fill(canvas, pixel.Black); err != nil {
		log.Fatal(err)
	}

	// Draw box around edge
	if err = draw.Rectangle(canvas, r, pixel.White); err != nil {
		log.Fatal(err)
	}

	if err = drawText(canvas, r); err != nil {
		log.Fatal(err)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	var (
		ticker   = time.NewTicker(50 * time.Millisecond)
		gradient = image.Rect(1, 1, r.Max.X-1, r.Dy()/2)
	)
	defer ticker.Stop()

	log.Info("hit control-c to stop...")
	for offset := 0; *framesFlag == 0 || offset < *framesFlag; offset++ {
		if err = canvas.FillContiguous(gradient, gradientColors(gradient, offset)); err != nil {
			log.Fatal(err)
		}
		if err = draw.Circle(canvas, r.Max.Div(2), r.Dx()/4, pixel.NewRGB565(uint8(offset), 0xff, uint8(-offset))); err != nil {
			log.Fatal(err)
		}

		select {
		case <-interrupt:
			return
		case <-ticker.C:
		}
	}
}

// drawText draws a label in the bundled bitmap font and another in Go Regular.
func drawText(canvas *tft.Canvas[pixel.RGB565], r image.Rectangle) error {
	if err := draw.Text(canvas, image.Pt(6, r.Max.Y-8), basicfont.Face7x13, "ST7789", pixel.Green); err != nil {
		return err
	}

	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return err
	}
	box := image.Rect(6, r.Dy()/2+4, r.Max.X-6, r.Dy()/2+36)
	if err = draw.RoundedBox(canvas, box.Inset(-2), 4, pixel.Blue); err != nil {
		return err
	}
	label := fmt.Sprintf("%dx%d", r.Dx(), r.Dy())
	if err = draw.TrueType(canvas, box, f, 24, label, color.White, color.Black, pixel.RGB565Model); err != nil {
		return err
	}

	// A red square through the image/draw adapter.
	img := canvas.Image()
	draw.Draw(img, image.Rect(6, r.Dy()/2+40, 22, r.Dy()/2+56), image.NewUniform(color.RGBA{R: 0xff, A: 0xff}), image.Point{}, draw.Src)
	return img.Err()
}

func gradientColors(r image.Rectangle, offset int) iter.Seq[pixel.RGB565] {
	return func(yield func(pixel.RGB565) bool) {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if !yield(pixel.NewRGB565(uint8(x+y+offset), uint8(x-y+offset), uint8(x+y-offset))) {
					return
				}
			}
		}
	}
}
