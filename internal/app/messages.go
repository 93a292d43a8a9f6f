package app

// PlayerOpenedMsg reports the outcome of opening the embedded player.
type PlayerOpenedMsg struct {
	URL string
	Err error
}

// NotifiedMsg reports the outcome of a desktop notification.
type NotifiedMsg struct {
	ID  uint32
	Err error
}

// DismissedMsg reports the outcome of closing a recommendation notification.
type DismissedMsg struct {
	ID  uint32
	Err error
}
