package model

import "time"

type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

type Person struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// Message is one email-like document ready for conversion. HTML is the
// body markup; Text is the plain alternative when the source has one.
type Message struct {
	Subject string     `json:"subject,omitempty"`
	From    Person     `json:"from"`
	To      []Person   `json:"to,omitempty"`
	CC      []Person   `json:"cc,omitempty"`
	Date    *time.Time `json:"date,omitempty"`
	Link    string     `json:"link,omitempty"`
	HTML    string     `json:"-"`
	Text    string     `json:"-"`
}

type Card struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	RawDescription string     `json:"raw_description"`
	Link           string     `json:"link,omitempty"`
	Date           *time.Time `json:"date,omitempty"`
}

type Conversion struct {
	Source   string   `json:"source"`
	Engine   string   `json:"engine"`
	Raw      bool     `json:"raw"`
	Disabled []string `json:"disabled,omitempty"`
	Markdown string   `json:"markdown"`
}
