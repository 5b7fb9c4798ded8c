package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/app"
)

func main() {
	a, err := app.NewApp("data")
	if err != nil {
		log.Fatal(err)
	}
	defer a.Shutdown()

	ebiten.SetWindowSize(800, 600)
	ebiten.SetWindowTitle("Asteroid Miner - 敌人子系统")

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
