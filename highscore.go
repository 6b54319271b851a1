package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const defaultScorePath = "data/savegame.json"

type scoreData struct {
	BestScore int `json:"best_score"`
	LastScore int `json:"last_score"`
	Runs      int `json:"runs"`
}

// ScoreFile persists the best score across runs. Persistence lives entirely
// in the shell; the core only emits the final score value.
type ScoreFile struct {
	path string
	log  *zap.Logger
	data scoreData
}

func NewScoreFile(path string, log *zap.Logger) *ScoreFile {
	s := &ScoreFile{path: path, log: log}
	s.load()
	return s
}

func (s *ScoreFile) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("score file unreadable, starting fresh", zap.Error(err))
		}
		return
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		s.log.Warn("score file corrupt, starting fresh", zap.Error(err))
		s.data = scoreData{}
	}
}

// Record stores a finished run's score and writes the file through.
func (s *ScoreFile) Record(score int) {
	s.data.LastScore = score
	s.data.Runs++
	if score > s.data.BestScore {
		s.data.BestScore = score
	}
	if err := s.save(); err != nil {
		s.log.Warn("score save failed", zap.Error(err))
		return
	}
	s.log.Info("score recorded",
		zap.Int("score", score),
		zap.Int("best", s.data.BestScore),
	)
}

func (s *ScoreFile) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

// Best returns the highest recorded score.
func (s *ScoreFile) Best() int {
	return s.data.BestScore
}
