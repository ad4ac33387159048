package changefeed

import "nuzlocke-tracker/internal/usecase/shared"

// MemoryFeed is an in-process feed; Publish plays the role of the database trigger.
type MemoryFeed struct {
	*Dispatcher
}

func NewMemoryFeed() *MemoryFeed {
	return &MemoryFeed{Dispatcher: NewDispatcher()}
}

func (f *MemoryFeed) Publish(ev shared.FallenEvent) int {
	return f.Dispatch(ev)
}
