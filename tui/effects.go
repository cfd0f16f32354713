package tui

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/kballard/go-shellquote"

	"github.com/zaotai/hearth/internal/models"
)

// sessionDone runs the configured completion side effects off the update
// loop: desktop notification, completion sound, and the user's session
// command. rec is nil for break sessions.
func (m Model) sessionDone(rec *models.Record) tea.Cmd {
	cfg := m.cfg

	return func() tea.Msg {
		if rec != nil {
			slog.Debug("session recorded", slog.String("record", spew.Sdump(*rec)))
		}

		if cfg.Notifications.Enabled {
			title, body := notifyText(rec)

			if err := beeep.Notify(title, body, ""); err != nil {
				return sessionDoneMsg{err: fmt.Errorf("unable to send notification: %w", err)}
			}
		}

		if cfg.Settings.Sound != "" {
			if err := playSound(cfg.Settings.Sound); err != nil {
				return sessionDoneMsg{err: err}
			}
		}

		if cfg.Settings.Cmd != "" {
			if err := runSessionCmd(cfg.Settings.Cmd); err != nil {
				return sessionDoneMsg{err: err}
			}
		}

		return sessionDoneMsg{}
	}
}

func notifyText(rec *models.Record) (title, body string) {
	if rec == nil {
		return "Break over", "Time to get back on the stove"
	}

	return "Pot Ready!", fmt.Sprintf("%s is done cooking", rec.ActivityName)
}

// playSound decodes the sound file by extension and blocks until playback
// completes.
func playSound(soundPath string) error {
	f, err := os.Open(soundPath)
	if err != nil {
		return err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	ext := filepath.Ext(soundPath)

	switch ext {
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		_ = f.Close()
		return fmt.Errorf("unsupported sound file format: %s", ext)
	}

	if err != nil {
		return err
	}

	defer stream.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return err
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		close(done)
	})))

	<-done

	speaker.Clear()

	return nil
}

// runSessionCmd executes the user's arbitrary command in a shell-quoted
// argv with the standard streams attached.
func runSessionCmd(sessionCmd string) error {
	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse session command: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
