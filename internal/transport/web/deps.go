package web

import (
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/v1/creator"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/v1/health"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/v1/video"
)

type Services struct {
	Videos   video.Service
	Creators creator.Service
}

type Probes struct {
	Store  health.Pinger
	Mirror health.Pinger // nil, если зеркало выключено
}
