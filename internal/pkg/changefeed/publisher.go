package changefeed

import "context"

// NopPublisher используется с postgres драйвером: об изменениях сообщают триггеры БД.
type NopPublisher struct{}

func NewNopPublisher() NopPublisher {
	return NopPublisher{}
}

func (NopPublisher) PublishChange(context.Context, string) error {
	return nil
}
