// Package desk is the consuming-side client for the helpdesk API. It
// mirrors what the standard frontend does: explicit user actions call
// the API directly, and a view poller refreshes the visible surface on
// a fixed cadence.
package desk

import "time"

// Ticket is the wire shape of a ticket record.
type Ticket struct {
	ID            uint       `json:"id"`
	OwnerID       uint       `json:"owner_id"`
	SubmitterName string     `json:"submitter_name"`
	Severity      string     `json:"severity"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	OnSiteHelp    bool       `json:"on_site_help"`
	CreatedAt     time.Time  `json:"created_at"`
	ClosedAt      *time.Time `json:"closed_at"`
}

// Message is the wire shape of a chat message.
type Message struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticket_id"`
	SenderID    uint      `json:"sender_id"`
	SenderRole  string    `json:"sender_role"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html,omitempty"`
	ReadByUser  bool      `json:"read_by_user"`
	ReadByTech  bool      `json:"read_by_tech"`
	CreatedAt   time.Time `json:"created_at"`
}

// User is the account shape returned by login.
type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResult carries the access token and the account it belongs to.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Unread is the server-computed unread count for a ticket.
type Unread struct {
	TicketID uint `json:"ticket_id"`
	Unread   int  `json:"unread"`
}

// CountUnread derives the unread count for a viewer role from a full
// message list, the same way the server does. Useful for badge counts
// on surfaces that already hold the message list.
func CountUnread(msgs []Message, viewerRole string) int {
	count := 0
	for _, m := range msgs {
		if m.SenderRole == viewerRole {
			continue
		}
		read := false
		switch viewerRole {
		case "user":
			read = m.ReadByUser
		case "tech":
			read = m.ReadByTech
		}
		if !read {
			count++
		}
	}
	return count
}
