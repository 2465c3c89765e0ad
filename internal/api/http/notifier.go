package http

import (
	"sync"

	"mountainride-backoffice/internal/logger"
	"mountainride-backoffice/internal/repository/rest"
)

type NotificationLevel string

const (
	LevelSuccess NotificationLevel = "success"
	LevelError   NotificationLevel = "error"
)

type Notification struct {
	Level   NotificationLevel
	Message string
}

// Notifier queues messages for the operator until the next rendered page
type Notifier struct {
	mu    sync.Mutex
	queue []Notification
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Success(message string) {
	n.push(Notification{Level: LevelSuccess, Message: message})
}

func (n *Notifier) Error(message string) {
	n.push(Notification{Level: LevelError, Message: message})
}

// Fail reports err to the operator. Requests abandoned by the browser are
// only logged.
func (n *Notifier) Fail(err error) {
	if err == nil {
		return
	}
	if rest.IsCanceled(err) {
		logger.Debug("Request canceled", "error", err)
		return
	}
	n.Error(rest.UserMessage(err))
}

func (n *Notifier) push(note Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.queue = append(n.queue, note)
}

// Drain returns the queued notifications and empties the queue
func (n *Notifier) Drain() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.queue
	n.queue = nil
	return out
}
