// Package web provides a display driver that streams frames to
// browsers over websockets.
package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/thelolagemann/pocketboy/pkg/display"
	"github.com/thelolagemann/pocketboy/pkg/log"
)

var (
	addr          string
	compression   bool
	quality       int
	framePatching bool
	patchRatio    int
	frameSkipping bool
	cacheSize     int
)

func init() {
	display.Install("web", &Driver{}, []display.DriverOption{
		{Name: "addr", Default: ":8090", Value: &addr, Description: "address to serve the websocket stream on", Type: "string"},
		{Name: "compression", Default: true, Value: &compression, Description: "compress frames with brotli", Type: "bool"},
		{Name: "quality", Default: 7, Value: &quality, Description: "brotli compression quality (0-11)", Type: "int"},
		{Name: "patching", Default: true, Value: &framePatching, Description: "send changed pixels only when few have changed", Type: "bool"},
		{Name: "patch-ratio", Default: 20, Value: &patchRatio, Description: "percentage of changed pixels below which a patch is sent", Type: "int"},
		{Name: "skipping", Default: true, Value: &frameSkipping, Description: "skip frames identical to the last", Type: "bool"},
		{Name: "cache", Default: 64, Value: &cacheSize, Description: "number of encoded frames clients cache", Type: "int"},
	})
}

// Driver serves the frames it is given to every connected client.
type Driver struct {
	emu    display.Emulator
	log    log.Logger
	server *http.Server
	hub    *hub

	stopOnce sync.Once
}

func (d *Driver) Initialize(emu display.Emulator) {
	d.emu = emu
	if d.log == nil {
		d.log = log.New()
	}
}

// Start serves the stream, broadcasting frames until the channel
// is closed or Stop is called.
func (d *Driver) Start(frames <-chan []byte) error {
	if d.log == nil {
		d.log = log.NewNullLogger()
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	d.hub = newHub(newPlayer(max(cacheSize, 1)), settings{
		compression:   compression,
		quality:       quality,
		framePatching: framePatching,
		patchRatio:    patchRatio,
		frameSkipping: frameSkipping,
	}, d.log)
	d.server = &http.Server{Handler: d.hub.handler()}
	go d.hub.run()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- d.server.Serve(ln)
	}()
	d.log.Infof("web: streaming on %s", ln.Addr())

	for {
		select {
		case f, ok := <-frames:
			if !ok {
				return d.Stop()
			}
			d.stream(f)
		case err := <-serveErr:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			if d.emu != nil {
				d.emu.Close()
			}
			return err
		}
	}
}

// stream encodes f and queues the result for every client.
func (d *Driver) stream(f []byte) {
	messages, err := d.hub.player.process(f, d.hub.current())
	if err != nil {
		d.log.Errorf("%v", err)
	}
	for _, m := range messages {
		d.hub.publish(m, nil)
	}
}

func (d *Driver) Stop() error {
	if d.server == nil {
		return nil
	}
	var err error
	d.stopOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()

		d.hub.stop()
		err = d.server.Shutdown(ctx)
	})
	return err
}
