package channel

import (
	"battery-delivery/internal/entities"
)

func ToDomain(c *ChannelDB) *entities.Channel {
	if c == nil {
		return nil
	}

	return &entities.Channel{
		ID:        c.ID,
		Name:      c.Name,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromDomainModify(channelModify *entities.ChannelModify) *ChannelModifyDB {
	if channelModify == nil {
		return nil
	}

	return &ChannelModifyDB{
		Name:   channelModify.Name,
		Active: channelModify.Active,
	}
}

func ToDomainList(channelsDB []ChannelDB) []entities.Channel {
	if len(channelsDB) == 0 {
		return []entities.Channel{}
	}

	result := make([]entities.Channel, len(channelsDB))
	for i, channelDB := range channelsDB {
		result[i] = *ToDomain(&channelDB)
	}
	return result
}
