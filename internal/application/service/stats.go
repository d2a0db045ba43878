package service

import "time"

type LookupSource string

const (
	SourceCache  LookupSource = "cache"
	SourceRemote LookupSource = "remote"
)

type LookupStats struct {
	Source   LookupSource
	CacheMs  float64
	RemoteMs float64
}

func convertToMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
