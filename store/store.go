package store

import (
	"baghbandi/gamemaster"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// File keeps one saved game at Path.
type File struct {
	Path string
}

func NewFile(path string) *File {
	return &File{Path: path}
}

// Save writes r, replacing any earlier save. The file is written next to
// its destination and renamed so a crash never leaves half a save behind.
func (f *File) Save(r gamemaster.Record) error {
	data, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("creating save directory: %w", err)
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing save: %w", err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("replacing save: %w", err)
	}
	log.Debug().Msgf("game saved to %s", f.Path)
	return nil
}

func (f *File) Load() (gamemaster.Record, error) {
	var r gamemaster.Record
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return r, err
	}
	if err := json.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("decoding save %s: %w", f.Path, err)
	}
	return r, nil
}

func (f *File) Exists() bool {
	_, err := os.Stat(f.Path)
	return err == nil
}

func (f *File) Remove() error {
	err := os.Remove(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Playable reports whether there is a save worth resuming: it decodes and
// both sides still have pieces on the board.
func (f *File) Playable() bool {
	r, err := f.Load()
	if err != nil {
		return false
	}
	return slices.Contains(r.Cells, "A") && slices.Contains(r.Cells, "B")
}

// LoadOrNew restores the saved game into a session built from options, or
// leaves the session at a new game when there is nothing usable to restore.
func (f *File) LoadOrNew(options ...gamemaster.Option) (*gamemaster.Session, bool) {
	s := gamemaster.NewSession(options...)
	r, err := f.Load()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Msg("ignoring unreadable save")
		}
		return s, false
	}
	if err := s.Import(r); err != nil {
		log.Warn().Err(err).Msgf("ignoring corrupt save %s", f.Path)
		return s, false
	}
	return s, true
}
