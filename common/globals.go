package common

const (
	EventTypeListed = "listed"
	EventTypeSold   = "sold"
)
