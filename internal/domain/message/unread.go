package message

import "chamados/internal/shared/authorization"

// CountUnread derives the unread count for a viewer role from a full
// message log: messages sent by the other role that the viewer's read
// flag has not covered yet. The count is never stored; it is recomputed
// from the log on every request so it can never diverge from it.
func CountUnread(msgs []*Message, viewerRole authorization.UserRole) int {
	count := 0
	for _, m := range msgs {
		if m.SenderRole() == viewerRole {
			continue
		}
		if !m.ReadBy(viewerRole) {
			count++
		}
	}
	return count
}
