package models

import (
	"errors"
	"fmt"
	"strings"
)

// Result codes accepted when recording a match outcome for player 1.
type ResultCode string

const (
	CodeWin    ResultCode = "V"
	CodeLoss   ResultCode = "D"
	CodeDraw   ResultCode = "N"
	CodeExempt ResultCode = "E"
)

// Canonical result labels, persisted verbatim in JSON files.
const (
	LabelWin    = "victoire"
	LabelLoss   = "défaite"
	LabelDraw   = "nul"
	LabelExempt = "exempt"
)

// Tournament status labels, persisted verbatim in JSON files.
type TournamentStatus string

const (
	StatusPending    TournamentStatus = "En attente"
	StatusInProgress TournamentStatus = "En cours"
	StatusFinished   TournamentStatus = "Terminé"
)

// Result codec errors
var (
	ErrInvalidCode  = errors.New("invalid result code")
	ErrInvalidLabel = errors.New("invalid result label")
)

var codeLabels = map[ResultCode]string{
	CodeWin:    LabelWin,
	CodeLoss:   LabelLoss,
	CodeDraw:   LabelDraw,
	CodeExempt: LabelExempt,
}

var labelPoints = map[string]float64{
	LabelWin:    1.0,
	LabelLoss:   0.0,
	LabelDraw:   0.5,
	LabelExempt: 1.0,
}

// NormalizeCode trims and uppercases a user-supplied result code.
func NormalizeCode(code string) ResultCode {
	return ResultCode(strings.ToUpper(strings.TrimSpace(code)))
}

// IsValidCode reports whether code maps to a canonical result after
// normalization.
func IsValidCode(code string) bool {
	_, ok := codeLabels[NormalizeCode(code)]
	return ok
}

// CodeToLabel resolves a result code to its canonical label.
func CodeToLabel(code string) (string, error) {
	label, ok := codeLabels[NormalizeCode(code)]
	if !ok {
		return "", fmt.Errorf("%w: %q (use V, D, N or E)", ErrInvalidCode, code)
	}
	return label, nil
}

// LabelToPoints resolves a canonical label to the points it awards.
func LabelToPoints(label string) (float64, error) {
	points, ok := labelPoints[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	return points, nil
}
