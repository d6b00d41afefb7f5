package store

import "github.com/ahsanfayaz52/notekeeper/internal/models"

// Fixtures returns the notes a fresh process starts with.
func Fixtures() []models.Note {
	return []models.Note{
		{
			ID:    "1",
			Title: "Trapper Keeper",
			Color: "purple",
			Issues: []models.Issue{
				{ID: "21", Body: "Finish project"},
				{ID: "22", Body: "Start project"},
				{ID: "23", Body: "Test project"},
				{ID: "24", Body: "Deploy to Heroku"},
			},
		},
		{
			ID:     "2",
			Title:  "This is a great note",
			Color:  "blue",
			Issues: []models.Issue{{ID: "25", Body: "beep boop", Completed: true}},
		},
	}
}
