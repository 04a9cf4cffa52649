package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/hajimehoshi/go-mp3"
	"github.com/hajimehoshi/oto/v2"
)

// SoundEffect is an enum for different sound types.
type SoundEffect int

const (
	SoundDeal SoundEffect = iota
	SoundDraw
	SoundPair
	SoundWin
	SoundLose
	SoundBackground
)

var (
	otoCtx           *oto.Context
	soundData        = make(map[SoundEffect][]byte)
	lastPlayTimes    = make(map[SoundEffect]time.Time) // Per-sound rate limiting.
	soundLoaded      = false
	soundMutex       sync.Mutex                  // Protects lastPlayTimes and activePlayers.
	soundRateLimit   = 10 * time.Millisecond     // Delay between repeats of the same effect.
	activePlayers    = make(map[oto.Player]bool) // Track active players for cleanup.
	backgroundPlayer oto.Player
)

// initAudio initializes the audio context. This must be called once at startup.
func initAudio() {
	// 44100, 2 channels (stereo), 2 bytes (16-bit) is a standard setting.
	var readyChan chan struct{}
	var err error
	otoCtx, readyChan, err = oto.NewContext(44100, 2, 2)
	if err != nil {
		log.Printf("ERROR: Failed to initialize audio context: %v. Audio will be disabled.", err)
		return
	}
	// The audio context needs a moment to initialize. Must wait for the ready
	// signal before using it, in a goroutine so the UI is not blocked.
	go func() {
		<-readyChan
		soundLoaded = true
		loadAllSounds()
		// Clean up finished audio players in the background.
		go cleanupActivePlayers()
		PlayBackgroundMusic()
	}()
}

// cleanupActivePlayers runs in the background and periodically removes finished
// sound effect players from the activePlayers map to prevent memory leaks.
func cleanupActivePlayers() {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		soundMutex.Lock()
		for player, active := range activePlayers {
			if active && !player.IsPlaying() {
				player.Close()
				delete(activePlayers, player)
			}
		}
		soundMutex.Unlock()
	}
}

// loadAllSounds is called once the audio context is ready. Sounds are
// optional on-disk assets; any that are missing stay silent.
func loadAllSounds() {
	loadSound(SoundDeal, "assets/sounds/deal.mp3")
	loadSound(SoundDraw, "assets/sounds/draw.mp3")
	loadSound(SoundPair, "assets/sounds/pair.mp3")
	loadSound(SoundWin, "assets/sounds/win.mp3")
	loadSound(SoundLose, "assets/sounds/lose.mp3")
	loadSound(SoundBackground, "assets/sounds/background.mp3")
}

// loadSound decodes one mp3 file from disk into memory.
func loadSound(effect SoundEffect, path string) {
	if !soundLoaded {
		return // Audio context failed to initialize.
	}
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return // Sound assets are optional.
	}
	decoder, err := mp3.NewDecoder(bytes.NewReader(fileBytes))
	if err != nil {
		log.Printf("ERROR: Failed to decode mp3 %s: %v", path, err)
		return
	}
	decodedBytes, err := io.ReadAll(decoder)
	if err != nil {
		log.Printf("ERROR: Failed to read decoded mp3 %s: %v", path, err)
		return
	}
	soundData[effect] = decodedBytes
}

// loopingReader is a custom io.Reader that wraps another reader and seeks
// to the beginning when it encounters an io.EOF, creating an infinite loop.
type loopingReader struct {
	reader io.ReadSeeker
}

// Read implements the io.Reader interface for looping playback.
func (lr *loopingReader) Read(p []byte) (n int, err error) {
	n, err = lr.reader.Read(p)
	if err == io.EOF {
		if _, seekErr := lr.reader.Seek(0, io.SeekStart); seekErr != nil {
			return 0, seekErr
		}
		err = nil
	}
	return n, err
}

// PlayBackgroundMusic starts the looping background music.
func PlayBackgroundMusic() {
	if !soundLoaded {
		return
	}
	if backgroundPlayer != nil && backgroundPlayer.IsPlaying() {
		return
	}
	data, ok := soundData[SoundBackground]
	if !ok || len(data) == 0 {
		return // Background music not loaded.
	}
	loopingStream := &loopingReader{reader: bytes.NewReader(data)}
	backgroundPlayer = otoCtx.NewPlayer(loopingStream)
	// Keep the music quiet under the effects.
	backgroundPlayer.SetVolume(0.15)
	backgroundPlayer.Play()
}

// PlaySound plays a pre-loaded sound effect.
func PlaySound(effect SoundEffect) {
	if !soundLoaded {
		return // Audio disabled.
	}
	// The rate limiter is shared between the UI goroutine and engine
	// callbacks, so the maps need the mutex.
	soundMutex.Lock()
	if time.Since(lastPlayTimes[effect]) < soundRateLimit {
		soundMutex.Unlock()
		return
	}
	lastPlayTimes[effect] = time.Now()
	data, ok := soundData[effect]
	if !ok || len(data) == 0 {
		soundMutex.Unlock()
		return // Sound not loaded.
	}
	player := otoCtx.NewPlayer(bytes.NewReader(data))
	// Keep the player reachable until the cleanup goroutine sees it finish.
	activePlayers[player] = true
	soundMutex.Unlock()
	player.Play()
}
