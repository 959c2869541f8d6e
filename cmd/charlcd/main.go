package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/callebjorkell/charlcd/internal/board"
	"github.com/callebjorkell/charlcd/internal/config"
	"github.com/callebjorkell/charlcd/lcd"
)

var (
	app        = kingpin.New("charlcd", "Drive an HD44780 character display")
	debug      = app.Flag("debug", "Turn on debug logging.").Bool()
	colors     = app.Flag("color", "Colorize the log output.").Bool()
	configFile = app.Flag("config", "Display configuration file.").Short('c').Default("lcd.yaml").String()

	printCmd   = app.Command("print", "Write text at the cursor.")
	printClear = printCmd.Flag("clear", "Clear the display before writing.").Bool()
	printText  = printCmd.Arg("text", "Text to write.").Required().String()

	clearCmd = app.Command("clear", "Clear the display.")

	onCmd    = app.Command("on", "Turn the display on.")
	onCursor = onCmd.Flag("cursor", "Cursor to show.").Default("off").Enum("off", "blink", "steady")

	offCmd = app.Command("off", "Turn the display off.")

	version = app.Command("version", "Show current version.")
)

func main() {
	cmd, err := app.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("%v: Try --help\n", err.Error())
		os.Exit(1)
	}

	if *colors {
		log.SetFormatter(&colorFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}
	if *debug {
		log.Info("Enabling debug output...")
		log.SetLevel(log.DebugLevel)
	}

	if cmd == version.FullCommand() {
		showVersion()
		return
	}

	display, err := openDisplay(*configFile)
	if err != nil {
		log.Fatal(err)
	}

	switch cmd {
	case printCmd.FullCommand():
		if *printClear {
			display.Clear()
		}
		display.PutText(*printText)
	case clearCmd.FullCommand():
		display.Clear()
	case onCmd.FullCommand():
		c, err := lcd.ParseCursorState(*onCursor)
		if err != nil {
			log.Fatal(err)
		}
		display.TurnOn(c)
	case offCmd.FullCommand():
		display.TurnOff()
	default:
		kingpin.FatalUsage("Unrecognized command")
	}
}

func openDisplay(path string) (*lcd.Driver, error) {
	conf, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	pins, err := board.Open(conf.Pins)
	if err != nil {
		return nil, err
	}

	return lcd.New(pins, conf.LCD())
}
