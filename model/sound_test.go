package model

import (
	"encoding/json"
	"testing"
)

func TestRequestMinutesAcceptsNumberAndString(t *testing.T) {
	tests := []struct {
		body string
		want Minutes
	}{
		{`{"state":"on","auto_stop_minutes":5}`, "5"},
		{`{"state":"on","auto_stop_minutes":"12"}`, "12"},
		{`{"state":"on","auto_stop_minutes":null}`, ""},
		{`{"state":"on"}`, ""},
		{`{"state":"on","auto_stop_minutes":-3}`, "-3"},
		{`{"state":"on","auto_stop_minutes":"abc"}`, "abc"},
	}
	for _, tt := range tests {
		var req Request
		if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
			t.Fatalf("%s: %v", tt.body, err)
		}
		if req.AutoStopMinutes != tt.want {
			t.Errorf("%s: got %q, want %q", tt.body, req.AutoStopMinutes, tt.want)
		}
	}
}

func TestRequestMinutesRejectsOtherTypes(t *testing.T) {
	var req Request
	if err := json.Unmarshal([]byte(`{"auto_stop_minutes":true}`), &req); err == nil {
		t.Error("expected error for boolean auto_stop_minutes")
	}
}

func TestAudioAssetFileName(t *testing.T) {
	a := AudioAsset{Name: "rain", Extension: ".mp3"}
	if a.FileName() != "rain.mp3" {
		t.Errorf("FileName() = %q", a.FileName())
	}
}

func TestRequestSoundNameGivenVersusAbsent(t *testing.T) {
	var absent, empty Request
	if err := json.Unmarshal([]byte(`{"state":"on"}`), &absent); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(`{"state":"on","sound_name":""}`), &empty); err != nil {
		t.Fatal(err)
	}
	if absent.SoundName != nil {
		t.Errorf("absent sound_name decoded as %q", *absent.SoundName)
	}
	if empty.SoundName == nil || *empty.SoundName != "" {
		t.Errorf("explicit empty sound_name lost: %v", empty.SoundName)
	}
}
