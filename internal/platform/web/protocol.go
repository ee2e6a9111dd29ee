// Package web serves Snake Extreme to browsers over WebSocket.
//
// The protocol uses single-character JSON keys to keep frames small.
// Coordinates are logical pixels rounded to one decimal place.
//
//	Client → Server:
//	  "k" = key      {"t":"k","k":"up"}   (up, down, left, right, start, pause, end, any)
//	  "p" = pointer  {"t":"p","x":12.5,"y":40}
//	  "v" = viewport {"t":"v","w":800,"h":600}
//	Server → Client:
//	  "w" = welcome  {"t":"w","i":"id","m":"snakex","gw":16,"gh":13,"ts":16,"z":3}
//	  "f" = frame    {"t":"f","s":[sprites],"p":score,"h":high,"o":0,"u":0,"mv":0.5,"a":["food"]}
//	  "e" = error    {"t":"e","m":"message"}
package web

import (
	"math"

	"github.com/vovakirdan/snake-extreme/internal/actor"
	"github.com/vovakirdan/snake-extreme/internal/core"
	"github.com/vovakirdan/snake-extreme/internal/grid"
)

// Message type identifiers.
const (
	MsgKey      = "k"
	MsgPointer  = "p"
	MsgViewport = "v"
	MsgWelcome  = "w"
	MsgFrame    = "f"
	MsgError    = "e"
)

// ClientMessage is any message sent by the browser.
type ClientMessage struct {
	Type string  `json:"t"`
	Key  string  `json:"k,omitempty"`
	X    float64 `json:"x,omitempty"`
	Y    float64 `json:"y,omitempty"`
	W    int     `json:"w,omitempty"`
	H    int     `json:"h,omitempty"`
}

// WelcomeMsg describes the level so the client can size its canvas.
// It is sent on connect and again after every viewport change.
type WelcomeMsg struct {
	Type     string  `json:"t"`
	ID       string  `json:"i"`
	Mode     string  `json:"m"`
	Width    int     `json:"gw"`
	Height   int     `json:"gh"`
	TileSize int     `json:"ts"`
	Zoom     float64 `json:"z"` // pixels per logical pixel for the last viewport
}

// SpriteDTO is the compact form of actor.Sprite.
type SpriteDTO struct {
	Name       string  `json:"n"`
	Text       string  `json:"tx,omitempty"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	W          float64 `json:"w"`
	H          float64 `json:"h"`
	Alpha      float64 `json:"a"`
	Scale      float64 `json:"s"`
	Shadow     float64 `json:"sh,omitempty"`
	Silhouette float64 `json:"si,omitempty"`
}

// FrameMsg carries everything the client needs to draw one frame.
type FrameMsg struct {
	Type        string      `json:"t"`
	Sprites     []SpriteDTO `json:"s"`
	Score       int         `json:"p"`
	HighScore   int         `json:"h"`
	GameOver    int         `json:"o"` // 0 or 1
	Paused      int         `json:"u"` // 0 or 1
	MusicVolume float64     `json:"mv"`
	Sounds      []string    `json:"a,omitempty"`
}

// ErrorMsg is sent before the server closes a connection.
type ErrorMsg struct {
	Type    string `json:"t"`
	Message string `json:"m"`
}

// newFrame converts a step result and the visible sprites to a frame message.
func newFrame(res core.StepResult, sprites []actor.Sprite) FrameMsg {
	f := FrameMsg{
		Type:        MsgFrame,
		Sprites:     make([]SpriteDTO, 0, len(sprites)),
		Score:       res.State.Score,
		HighScore:   res.State.HighScore,
		GameOver:    boolInt(res.State.GameOver),
		Paused:      boolInt(res.State.Paused),
		MusicVolume: round1(res.MusicVolume),
	}
	for _, s := range sprites {
		if !s.Visible {
			continue
		}
		f.Sprites = append(f.Sprites, SpriteDTO{
			Name:       s.Name,
			Text:       s.Text,
			X:          round1(s.X),
			Y:          round1(s.Y),
			W:          round1(s.W),
			H:          round1(s.H),
			Alpha:      round2(s.Alpha),
			Scale:      round2(s.Scale),
			Shadow:     round2(s.ShadowScale),
			Silhouette: round2(s.Silhouette),
		})
	}
	for _, snd := range res.Sounds {
		if snd != core.SoundNone {
			f.Sounds = append(f.Sounds, snd.String())
		}
	}
	return f
}

// zoom returns the largest scale that fits the level into a w x h viewport.
func zoom(level grid.Level, w, h int) float64 {
	size := level.PixelSize()
	if w <= 0 || h <= 0 || size.X == 0 || size.Y == 0 {
		return 1
	}
	return round2(math.Min(float64(w)/size.X, float64(h)/size.Y))
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
