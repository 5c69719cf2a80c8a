package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	route := flag.String("route", "/", "initial route, e.g. /app/users")
	presetDir := flag.String("presets", "presets", "directory for saved presets")
	policy := flag.String("policy", "pertick", "cumulative step policy: pertick or timescaled")
	watch := flag.Bool("watch", false, "reload routes/routes.yaml when it changes")
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("scenedemo")
	ebiten.SetTPS(tps)

	game, err := NewGame(Options{
		Route:     *route,
		PresetDir: *presetDir,
		Policy:    *policy,
		Watch:     *watch,
		Debug:     *debug,
	})
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
