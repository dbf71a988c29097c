package feed

import "time"

// Story is one row of the story table.
type Story struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Channel   string    `gorm:"size:64;index" json:"channel"`
	Title     string    `gorm:"size:255" json:"title"`
	Position  int       `json:"position"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Equal identifies stories by ID.
func (s Story) Equal(other any) bool {
	switch o := other.(type) {
	case Story:
		return o.ID == s.ID
	case *Story:
		return o != nil && o.ID == s.ID
	}
	return false
}

func (s Story) changed(o Story) bool {
	return s.Title != o.Title || !s.UpdatedAt.Equal(o.UpdatedAt)
}

// Columns lists the columns the story table must provide.
var Columns = []string{"id", "channel", "title", "position", "updated_at"}

// ChannelView is one section of the feed as returned by the API.
type ChannelView struct {
	Index   int     `json:"index"`
	Name    string  `json:"name"`
	Stories []Story `json:"stories"`
}
