// cmd/tempest_tui/main.go
package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	game "go-tempest/internal/app"
	"go-tempest/internal/config"
	"go-tempest/internal/tui"
	"go-tempest/internal/utils"
	"go-tempest/pkg/web"
)

func main() {
	settings, err := config.LoadSettings(".env")
	if err != nil {
		log.Fatal(err)
	}
	rng := utils.NewPRNGService(settings.Seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	center := web.Point{X: config.CenterX, Y: config.CenterY}
	g := game.NewGame(center, rng, settings.StartLevel)
	renderer := tui.NewRenderer(center)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	const dt = 1.0 / config.TUITickRate
	ticker := time.NewTicker(time.Second / config.TUITickRate)
	defer ticker.Stop()

	paused := false
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch tui.HandleKey(ev.Key(), ev.Rune(), g) {
				case tui.ActionQuit:
					return
				case tui.ActionPause:
					paused = !paused
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			if !paused {
				g.Update(dt)
			}
			renderer.Draw(screen, g.Snapshot())
			screen.Show()
		}
	}
}
