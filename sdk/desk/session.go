package desk

import (
	"context"
	"fmt"
	"sync"
)

// Surface names used by the session's poller.
const (
	surfaceTicketList = "ticket-list"
	surfaceChat       = "chat"
)

// Session is the view context of one signed-in account: the API
// client, the poller, the currently open ticket and the latest polled
// state. It replaces ad hoc global UI state with one owned object.
type Session struct {
	client *Client
	poller *ViewPoller
	user   User

	mu            sync.RWMutex
	tickets       []Ticket
	messages      []Message
	unread        map[uint]int
	currentTicket uint
}

// NewSession logs in and returns a ready session. The poller is
// created but no surface is polling until a view is opened.
func NewSession(ctx context.Context, baseURL, email, password string, opts ...Option) (*Session, error) {
	client := NewClient(baseURL, opts...)

	result, err := client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	poller, err := NewViewPoller()
	if err != nil {
		return nil, err
	}
	poller.Start()

	return &Session{
		client: client,
		poller: poller,
		user:   result.User,
		unread: make(map[uint]int),
	}, nil
}

// User returns the signed-in account.
func (s *Session) User() User {
	return s.user
}

// Client exposes the underlying API client for explicit actions.
func (s *Session) Client() *Client {
	return s.client
}

// OpenTicketList starts polling the ticket listing for the account's
// role: technicians see every ticket, users their own. Unread counts
// are refreshed alongside the listing.
func (s *Session) OpenTicketList(status string) error {
	return s.poller.StartSurface(surfaceTicketList, DefaultListInterval, func(ctx context.Context) error {
		var tickets []Ticket
		var err error

		if s.user.Role == "tech" {
			tickets, err = s.client.ListTickets(ctx, status)
		} else {
			tickets, err = s.client.ListOwnTickets(ctx, status)
		}
		if err != nil {
			return err
		}

		unread := make(map[uint]int, len(tickets))
		for _, t := range tickets {
			u, err := s.client.GetUnread(ctx, t.ID)
			if err != nil {
				continue
			}
			unread[t.ID] = u.Unread
		}

		s.mu.Lock()
		s.tickets = tickets
		s.unread = unread
		s.mu.Unlock()

		return nil
	})
}

// OpenChat starts polling the message log of one ticket. Each poll
// marks the log read before fetching, so a chat the account is looking
// at never accumulates unread messages. Opening a chat replaces any
// chat already open.
func (s *Session) OpenChat(ticketID uint) error {
	s.mu.Lock()
	s.currentTicket = ticketID
	s.mu.Unlock()

	return s.poller.StartSurface(surfaceChat, DefaultChatInterval, func(ctx context.Context) error {
		if err := s.client.MarkRead(ctx, ticketID); err != nil {
			return err
		}

		messages, err := s.client.ListMessages(ctx, ticketID)
		if err != nil {
			return err
		}

		s.mu.Lock()
		if s.currentTicket == ticketID {
			s.messages = messages
			s.unread[ticketID] = 0
		}
		s.mu.Unlock()

		return nil
	})
}

// CloseChat stops polling the open chat.
func (s *Session) CloseChat() {
	s.poller.StopSurface(surfaceChat)

	s.mu.Lock()
	s.currentTicket = 0
	s.messages = nil
	s.mu.Unlock()
}

// Send appends a message to the currently open chat. Unlike polls,
// send failures surface to the caller.
func (s *Session) Send(ctx context.Context, content string) (*Message, error) {
	s.mu.RLock()
	ticketID := s.currentTicket
	s.mu.RUnlock()

	if ticketID == 0 {
		return nil, fmt.Errorf("no chat open")
	}

	return s.client.SendMessage(ctx, ticketID, content)
}

// Tickets returns the last polled ticket listing.
func (s *Session) Tickets() []Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tickets
}

// Messages returns the last polled message log of the open chat.
func (s *Session) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.messages
}

// UnreadCount returns the last known unread count for a ticket.
func (s *Session) UnreadCount(ticketID uint) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unread[ticketID]
}

// Close stops all polling.
func (s *Session) Close() error {
	return s.poller.Stop()
}
