package seeder

import (
	"encoding/json"
	"fmt"
	"os"
)

// Fixture is a demo data set. Users are referenced by username, questions and
// answers by their fixture key.
type Fixture struct {
	Users     []FixtureUser     `json:"users"`
	Questions []FixtureQuestion `json:"questions"`
	Answers   []FixtureAnswer   `json:"answers"`
	Votes     []FixtureVote     `json:"votes"`
}

// FixtureUser is synced the same way an identity webhook would be.
type FixtureUser struct {
	ExternalID string `json:"external_id"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Email      string `json:"email"`
}

type FixtureQuestion struct {
	Key     string   `json:"key"`
	Author  string   `json:"author"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

type FixtureAnswer struct {
	Key      string `json:"key"`
	Question string `json:"question"`
	Author   string `json:"author"`
	Content  string `json:"content"`
}

// FixtureVote targets exactly one of Question or Answer.
type FixtureVote struct {
	Voter     string `json:"voter"`
	Question  string `json:"question,omitempty"`
	Answer    string `json:"answer,omitempty"`
	Direction string `json:"direction"`
}

// LoadFixture reads a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seeder fixture: %w", err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("seeder fixture: decode %s: %w", path, err)
	}
	return &f, nil
}
