// Command servant runs the demo news API and prints its route manifest.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/alecthomas/kong"

	"github.com/input-output-hk/servant/middleware"
)

type CLI struct {
	Version VersionCmd  `cmd:"" help:"Print version information."`
	Serve   ServeCmd    `cmd:"" help:"Serve the demo news API."`
	Man     ManifestCmd `cmd:"" name:"manifest" help:"Print the demo API's route manifest as JSON."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type ServeCmd struct {
	Addr    string `help:"Address to listen on." default:":8080" short:"a"`
	Verbose bool   `help:"Log at debug level." short:"v"`
}

func (c *ServeCmd) Run() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	app := newDemoApp(logger)

	mux := http.NewServeMux()
	mux.Handle("/servant/manifest", app.ManifestHandler())
	mux.Handle("/", app.Handler())

	logger.Info("listening", slog.String("addr", c.Addr))
	return http.ListenAndServe(c.Addr, middleware.CORS(nil)(mux))
}

type ManifestCmd struct{}

func (c *ManifestCmd) Run() error {
	app := newDemoApp(slog.New(slog.DiscardHandler))
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(app.Manifest())
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("servant"),
		kong.Description("Demo server and tooling for the servant query-parameter combinators."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
