package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/pocketboy/internal/boot"
	"github.com/thelolagemann/pocketboy/internal/cartridge"
	"github.com/thelolagemann/pocketboy/internal/gameboy"
	"github.com/thelolagemann/pocketboy/internal/ppu"
	"github.com/thelolagemann/pocketboy/internal/ppu/palette"
	"github.com/thelolagemann/pocketboy/internal/types"
	"github.com/thelolagemann/pocketboy/pkg/audio"
	"github.com/thelolagemann/pocketboy/pkg/display"
	"github.com/thelolagemann/pocketboy/pkg/log"
	"github.com/thelolagemann/pocketboy/pkg/utils"
)

var (
	_ display.Emulator = &session{}
)

// session is the running emulation as seen by the display driver.
type session struct {
	gb     *gameboy.GameBoy
	cancel context.CancelFunc
}

func (s *session) Title() string {
	return s.gb.Title()
}

func (s *session) Close() {
	s.cancel()
}

func main() {
	romFile := flag.String("rom", "", "The rom file to load")
	bootROM := flag.String("boot", "", "The boot rom file to load")
	displayDriver := flag.String("driver", "auto", "The display driver to use. Can be auto, fyne, ebiten, web, terminal or headless")
	debug := flag.Bool("debug", false, "Log every instruction executed")
	frames := flag.Int("frames", 0, "Stop after the given number of frames, 0 runs until closed")
	audioSink := flag.String("audio", "none", "The audio output to use. Can be sdl, oto or none")
	wavFile := flag.String("wav", "", "Record audio to the given wav file")
	plotFile := flag.String("plot", "", "Plot the recorded waveform to the given png on exit")
	screenshot := flag.String("screenshot", "", "Save the last frame to the given bmp on exit")
	stats := flag.String("stats", "", "Serve runtime statistics on the given address")
	paletteName := flag.String("palette", "greyscale", "The palette to render with. Can be greyscale or green")
	speed := flag.Float64("speed", 1, "The speed to run the emulator at, 0 runs unthrottled")
	keepBoot := flag.Bool("keep-boot", false, "Keep the boot rom mapped after it finishes")
	noBios := flag.Bool("no-bios", false, "Start the cartridge with the registers the boot rom leaves")
	modelName := flag.String("model", "dmg", "The model whose boot rom -no-bios stands in for. Can be dmg0, dmg, mgb or sgb")

	display.RegisterFlags()
	flag.Parse()

	var logger = log.New()
	if *debug {
		logger = log.NewWithLevel(logrus.DebugLevel)
	}

	if len(display.InstalledDrivers) == 0 {
		logger.Fatal("No display drivers installed. Please compile with at least one display driver")
	}

	rom, bootImage, err := loadResources(*romFile, *bootROM)
	if err != nil {
		logger.Fatal(err.Error())
	}

	if *stats != "" {
		go func() {
			viewer.SetConfiguration(viewer.WithAddr(*stats))
			statsview.New().Start()
		}()
		logger.Infof("stats server available at http://%s/debug/statsview", *stats)
	}

	opts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.WithPalette(palette.ByName(*paletteName)),
		gameboy.Speed(*speed),
	}
	if bootImage != nil {
		opts = append(opts, gameboy.WithBootROM(bootImage))
	}
	if *noBios {
		model, err := parseModel(*modelName)
		if err != nil {
			logger.Fatal(err.Error())
		}
		opts = append(opts, gameboy.NoBios(), gameboy.AsModel(model))
	}
	if *keepBoot {
		opts = append(opts, gameboy.KeepBootROM())
	}
	if *debug {
		opts = append(opts, gameboy.Debug())
	}

	gb, err := gameboy.NewGameBoy(rom, opts...)
	if err != nil {
		logger.Fatal(err.Error())
	}

	driver := display.GetDriver(*displayDriver)

	// check to make sure the driver is valid
	if driver == nil {
		logger.Fatal("invalid display driver")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// attach gameboy to driver
	driver.Initialize(&session{gb: gb, cancel: cancel})

	sink, recorder, err := openAudio(*audioSink, *wavFile, *plotFile != "", gb.APU.SampleRate())
	if err != nil {
		logger.Errorf("unable to open audio: %v", err)
	}
	audioDone := make(chan error, 1)
	if sink != nil {
		go func() {
			audioDone <- audio.Pump(ctx, gb.APU, sink, time.Millisecond*10)
		}()
	} else {
		audioDone <- nil
	}

	// start gameboy in a goroutine
	raw := make(chan []byte, 1)
	runErr := make(chan error, 1)
	go func() {
		runErr <- gb.Run(ctx, raw)
		close(raw)
	}()

	fb := make(chan []byte, 60)
	last := make(chan []byte, 1)
	go relay(ctx, cancel, raw, fb, last, *frames)

	if err := driver.Start(fb); err != nil {
		logger.Errorf("display driver: %v", err)
	}
	cancel()

	var result error
	if err := <-runErr; err != nil {
		result = multierror.Append(result, err)
	}
	if err := <-audioDone; err != nil {
		result = multierror.Append(result, fmt.Errorf("audio: %w", err))
	}
	if sink != nil {
		if err := sink.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("audio: %w", err))
		}
	}

	if f := <-last; *screenshot != "" && f != nil {
		if err := utils.SaveBMP(*screenshot, utils.FrameImage(f, ppu.ScreenWidth, ppu.ScreenHeight)); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if recorder != nil {
		img, err := audio.PlotWaveform(recorder.Samples(), gb.APU.SampleRate(), 1280, 480)
		if err == nil {
			err = utils.SavePNG(*plotFile, img)
		}
		if err != nil {
			result = multierror.Append(result, err)
		}
	}

	if result != nil {
		logger.Fatal(result.Error())
	}
}

// loadResources loads the cartridge and boot rom, validating both and
// reporting every failure at once.
func loadResources(romFile, bootFile string) ([]byte, []byte, error) {
	var result error

	var rom []byte
	if romFile == "" {
		result = multierror.Append(result, errors.New("no rom file given"))
	} else if b, err := utils.LoadFile(romFile); err != nil {
		result = multierror.Append(result, fmt.Errorf("loading rom: %w", err))
	} else if _, err := cartridge.New(b); err != nil {
		result = multierror.Append(result, fmt.Errorf("loading rom: %w", err))
	} else {
		rom = b
	}

	var bootImage []byte
	if bootFile != "" {
		if b, err := utils.LoadFile(bootFile); err != nil {
			result = multierror.Append(result, fmt.Errorf("loading boot rom: %w", err))
		} else if _, err := boot.LoadBootROM(b); err != nil {
			result = multierror.Append(result, fmt.Errorf("loading boot rom: %w", err))
		} else {
			bootImage = b
		}
	}

	return rom, bootImage, result
}

// openAudio returns the sink samples are pumped to, and the recorder
// keeping them for the waveform plot if one was asked for. A nil sink
// means audio is disabled.
// parseModel returns the model named by s, ignoring case.
func parseModel(s string) (types.Model, error) {
	m := types.StringToModel(s)
	if m == types.Unset {
		return m, fmt.Errorf("unknown model %q", s)
	}
	return m, nil
}

func openAudio(output, wavFile string, record bool, sampleRate int) (audio.Sink, *audio.Recorder, error) {
	var sinks []audio.Sink
	var err error

	switch output {
	case "sdl":
		var s *audio.SDL
		if s, err = audio.OpenSDL(sampleRate); err == nil {
			sinks = append(sinks, s)
		}
	case "oto":
		var o *audio.Oto
		if o, err = audio.OpenOto(sampleRate); err == nil {
			sinks = append(sinks, o)
		}
	case "none", "":
	default:
		err = fmt.Errorf("unknown audio output %q", output)
	}

	if wavFile != "" {
		sinks = append(sinks, audio.NewWAV(wavFile, sampleRate))
	}
	var recorder *audio.Recorder
	if record {
		recorder = &audio.Recorder{}
		sinks = append(sinks, recorder)
	}

	if len(sinks) == 0 {
		return nil, nil, err
	}
	return audio.Multi(sinks...), recorder, err
}

// relay forwards frames to the display, keeping the latest for the
// exit screenshot, and cancels the emulation after limit frames.
func relay(ctx context.Context, cancel context.CancelFunc, in <-chan []byte, out chan<- []byte, last chan<- []byte, limit int) {
	var latest []byte
	n := 0
	for f := range in {
		latest = f
		n++
		select {
		case out <- f:
		case <-ctx.Done():
		}
		if limit > 0 && n >= limit {
			cancel()
		}
	}
	close(out)
	last <- latest
}
