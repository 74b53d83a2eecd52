package entities

type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationWarning NotificationLevel = "warning"
	NotificationError   NotificationLevel = "error"
)

func (l NotificationLevel) String() string {
	return string(l)
}

// Notification сообщение для пользователя (в UI это был toast).
type Notification struct {
	Level   NotificationLevel
	Title   string
	Message string
}

// Имена таблиц, по которым приходят уведомления об изменениях.
const (
	TableDeliveries = "entregas"
	TableChannels   = "canais"
	TableUsers      = "usuarios"
)
