package msg

import "github.com/ratel-online/uno/consts"

const recentActions = 3

// ActionLog keeps the last consts.ActionLogSize messages.
type ActionLog struct {
	entries []string
}

func NewActionLog() *ActionLog {
	return &ActionLog{entries: make([]string, 0, consts.ActionLogSize)}
}

func (l *ActionLog) Add(entry string) {
	l.entries = append(l.entries, entry)
	if len(l.entries) > consts.ActionLogSize {
		l.entries = l.entries[len(l.entries)-consts.ActionLogSize:]
	}
}

func (l *ActionLog) Entries() []string {
	return append([]string(nil), l.entries...)
}

// Recent returns the entries shown with the board, oldest first.
func (l *ActionLog) Recent() []string {
	if len(l.entries) <= recentActions {
		return l.Entries()
	}
	return append([]string(nil), l.entries[len(l.entries)-recentActions:]...)
}

func (l *ActionLog) Clear() {
	l.entries = l.entries[:0]
}
