package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// AudioAsset is a playable file in the sound directory, identified by Name.
type AudioAsset struct {
	Name      string `json:"name"`
	Extension string `json:"extension"` // includes the leading dot, may be empty
}

// FileName returns the asset's basename on disk.
func (a AudioAsset) FileName() string {
	return a.Name + a.Extension
}

func (a AudioAsset) String() string {
	return fmt.Sprintf("name: %s, extension: %s", a.Name, a.Extension)
}

// PlaybackState 播放会话状态
type PlaybackState string

const (
	StatePending PlaybackState = "pending"
	StatePlaying PlaybackState = "playing"
	StateStopped PlaybackState = "stopped"
)

// Requested states.
const (
	CommandOn  = "on"
	CommandOff = "off"
)

// Minutes holds auto_stop_minutes as received. JSON numbers and strings are both accepted;
// validation happens in the orchestrator.
type Minutes string

// UnmarshalJSON accepts 5, "5" and null.
func (m *Minutes) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = Minutes(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("auto_stop_minutes must be a number or string: %w", err)
	}
	*m = Minutes(n.String())
	return nil
}

// Request 一次播放调用的参数
type Request struct {
	State           string  `json:"state"`
	SoundName       *string `json:"sound_name,omitempty"` // nil when not given; "" is looked up like any name
	PlayerPath      string  `json:"player_path,omitempty"`
	AutoStopMinutes Minutes `json:"auto_stop_minutes,omitempty"`
}

// Response is the payload reported back to the caller.
type Response struct {
	SessionID       string        `json:"session_id"`
	State           PlaybackState `json:"state"`
	AvailableSounds []string      `json:"available_sounds"`
	PlayingSound    string        `json:"playing_sound,omitempty"`
	AutoStopMinutes int           `json:"auto_stop_minutes,omitempty"`
}

// PlayerHandle is the single-row table used when the pid is persisted in MySQL.
type PlayerHandle struct {
	ID        uint `gorm:"primaryKey"`
	PID       *int `gorm:"column:pid"`
	UpdatedAt time.Time
}

// TableName 指定表名
func (PlayerHandle) TableName() string {
	return "player_handles"
}
