package models

// Card is the normalized, internal form of a remote task card.
//
// Cards are fetched per board and tagged with their origin board's
// id and name at aggregation time; the board name is resolved once
// and treated as immutable until the next full refresh.
type Card struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	URL         string       `json:"url,omitempty"`
	Desc        string       `json:"desc"`
	BoardID     string       `json:"board_id"`
	BoardName   string       `json:"board_name"`
	Cover       string       `json:"cover,omitempty"` // color tag, empty when the card has no cover
	Labels      []Label      `json:"labels,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

type Board struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Comment struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Date string `json:"date,omitempty"`
}

// List is a column on a remote board. Only used when creating cards.
type List struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
