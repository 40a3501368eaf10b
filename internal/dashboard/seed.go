package dashboard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"meeting-scheduler/internal/meeting"
	"meeting-scheduler/internal/model"
)

// DefaultSeed returns the two sample meetings a fresh collection starts with.
func DefaultSeed() []model.Meeting {
	return []model.Meeting{
		mustSeed(seedEntry{
			Title:        "Spotkanie zespołu",
			Description:  "Comiesięczne spotkanie zespołu programistów",
			Date:         "2025-06-05",
			StartTime:    "10:00",
			EndTime:      "11:30",
			Participants: []string{"jan@example.com", "anna@example.com"},
			CreatedBy:    "admin",
		}),
		mustSeed(seedEntry{
			Title:        "Prezentacja projektu",
			Description:  "Prezentacja postępów w projekcie React",
			Date:         "2025-06-07",
			StartTime:    "14:00",
			EndTime:      "15:00",
			Participants: []string{"client@example.com", "manager@example.com"},
			CreatedBy:    "admin",
		}),
	}
}

type seedEntry struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Date         string   `yaml:"date"`
	StartTime    string   `yaml:"start_time"`
	EndTime      string   `yaml:"end_time"`
	Participants []string `yaml:"participants"`
	CreatedBy    string   `yaml:"created_by"`
	Status       string   `yaml:"status"`
}

type seedFile struct {
	Meetings []seedEntry `yaml:"meetings"`
}

func (e seedEntry) meeting() (model.Meeting, error) {
	m, errs := meeting.Build(meeting.Draft{
		Title:        e.Title,
		Description:  e.Description,
		Date:         e.Date,
		StartTime:    e.StartTime,
		EndTime:      e.EndTime,
		Participants: e.Participants,
		Status:       e.Status,
	})
	if !errs.Valid() {
		return model.Meeting{}, fmt.Errorf("%w: %v", meeting.ErrInvalid, errs)
	}
	m.CreatedBy = e.CreatedBy
	if m.CreatedBy == "" {
		m.CreatedBy = "admin"
	}
	return m, nil
}

func mustSeed(e seedEntry) model.Meeting {
	m, err := e.meeting()
	if err != nil {
		panic(err)
	}
	return m
}

// LoadSeed reads meetings from a YAML file of the form
//
//	meetings:
//	  - title: Standup
//	    date: 2025-06-05
//	    start_time: "09:00"
//	    end_time: "09:15"
//	    participants: [jan@example.com]
//
// Every entry must pass draft validation.
func LoadSeed(path string) ([]model.Meeting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed file: %w", err)
	}
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	out := make([]model.Meeting, 0, len(f.Meetings))
	for i, e := range f.Meetings {
		m, err := e.meeting()
		if err != nil {
			return nil, fmt.Errorf("seed file %s: entry %d: %w", path, i, err)
		}
		out = append(out, m)
	}
	return out, nil
}
