package systems

import (
	"encoding/json"

	cfg "github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/log"
	"github.com/quasilyte/gdata"
)

const (
	settingsKey  = "settings"
	highScoreKey = "highscore"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume float64 `json:"sfxVolume"`
	Muted     bool    `json:"muted"`
}

// SavedHighScore is the best score seen on this machine
type SavedHighScore struct {
	Score int `json:"score"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

var readItem = loadItem

// Without a store the high score still lasts for the session
var (
	sessionHighScore int
	highScoreLoaded  bool
)

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		log.Warn("could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	highScoreLoaded = false
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing has
// been saved yet.
func LoadSettings() (*SavedSettings, error) {
	var settings SavedSettings
	found, err := loadItem(settingsKey, &settings)
	if err != nil || !found {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem(settingsKey, s)
}

// LoadHighScore returns the best score. The store is read once; after that
// the cached value is kept current by SaveHighScore.
func LoadHighScore() int {
	if highScoreLoaded {
		return sessionHighScore
	}

	// One read per store, found or not; DrawMenu asks every frame
	highScoreLoaded = true

	var saved SavedHighScore
	found, err := readItem(highScoreKey, &saved)
	if err != nil || !found {
		return sessionHighScore
	}
	if saved.Score > sessionHighScore {
		sessionHighScore = saved.Score
	}
	return sessionHighScore
}

// SaveHighScore stores score if it beats the current best
func SaveHighScore(score int) {
	if score <= LoadHighScore() {
		return
	}
	sessionHighScore = score
	_ = saveItem(highScoreKey, &SavedHighScore{Score: score})
}

// ApplySavedSettingsGlobal applies settings before any scene exists
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	globalSFXVolume = saved.SFXVolume
	globalMuted = saved.Muted
}

func loadItem(key string, v any) (bool, error) {
	if !gdataInitialized || gdataManager == nil {
		return false, nil
	}

	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Warn("could not load %s: %v", key, err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Warn("could not parse saved %s: %v", key, err)
		return false, err
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Warn("could not serialize %s: %v", key, err)
		return err
	}

	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Warn("could not save %s: %v", key, err)
		return err
	}
	return nil
}
