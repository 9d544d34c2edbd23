package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SiRipo92/chess-manager/internal/validation"
)

// Player is a chess player known to the system. The national ID (two
// letters + five digits, uppercased) is the primary key everywhere:
// rosters, ledgers and match records reference players by it.
//
// MatchHistory is an opaque blob carried for compatibility with older
// files; scoring never reads it (the tournament ledger is the only
// source of truth for points).
type Player struct {
	LastName       string          `json:"last_name"`
	FirstName      string          `json:"first_name"`
	Birthdate      string          `json:"birthdate"`
	NationalID     string          `json:"national_id"`
	DateEnrolled   string          `json:"date_enrolled"`
	TournamentsWon int             `json:"tournaments_won"`
	MatchHistory   json.RawMessage `json:"match_history,omitempty"`
}

// NewPlayer validates all four identity fields, normalizes them (title
// case for names, uppercase for the ID) and stamps the enrollment date
// to today.
func NewPlayer(lastName, firstName, birthdate, nationalID string) (*Player, error) {
	p := &Player{
		DateEnrolled: time.Now().Format(validation.DateFormat),
	}
	if err := p.SetLastName(lastName); err != nil {
		return nil, err
	}
	if err := p.SetFirstName(firstName); err != nil {
		return nil, err
	}
	if err := p.SetBirthdate(birthdate); err != nil {
		return nil, err
	}
	if err := p.SetNationalID(nationalID); err != nil {
		return nil, err
	}
	return p, nil
}

// PlayerFromRecord rebuilds a Player from a stored record without
// re-validating: stored data is trusted, and re-validation would reject
// historical records after rule changes. DateEnrolled round-trips
// unchanged; a missing one defaults to today.
func PlayerFromRecord(rec Player) *Player {
	p := rec
	if p.DateEnrolled == "" {
		p.DateEnrolled = time.Now().Format(validation.DateFormat)
	}
	return &p
}

func (p *Player) SetLastName(name string) error {
	if err := validation.ValidateName(name); err != nil {
		return fmt.Errorf("last_name: %w", err)
	}
	p.LastName = validation.NormalizeName(name)
	return nil
}

func (p *Player) SetFirstName(name string) error {
	if err := validation.ValidateName(name); err != nil {
		return fmt.Errorf("first_name: %w", err)
	}
	p.FirstName = validation.NormalizeName(name)
	return nil
}

func (p *Player) SetBirthdate(birthdate string) error {
	if err := validation.ValidateBirthdate(birthdate); err != nil {
		return fmt.Errorf("birthdate: %w", err)
	}
	p.Birthdate = birthdate
	return nil
}

func (p *Player) SetNationalID(nationalID string) error {
	if err := validation.ValidateNationalID(nationalID); err != nil {
		return fmt.Errorf("national_id: %w", err)
	}
	p.NationalID = validation.NormalizeID(nationalID)
	return nil
}

// FullName returns "FAMILY, First" for display and logs.
func (p *Player) FullName() string {
	return fmt.Sprintf("%s, %s", p.LastName, p.FirstName)
}

// Age computes the player's age in full years as of today.
func (p *Player) Age() int {
	birth, err := time.Parse(validation.DateFormat, p.Birthdate)
	if err != nil {
		return 0
	}
	now := time.Now()
	age := now.Year() - birth.Year()
	// Not yet had the birthday this year
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}
