package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/NAMITJAIN06/bite-learning/internal/app"
)

// @title           Bite Learning API
// @version         1.0
// @description     Короткие обучающие видео: список с фильтрами, загрузка по ссылке, лайки, комментарии, профили авторов.
// @BasePath        /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx)
	if err != nil {
		log.Fatalf("build: %v", err)
	}
	if err := a.Run(ctx); err != nil {
		log.Printf("run: %v", err)
		os.Exit(1)
	}
}
