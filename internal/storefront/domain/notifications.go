package domain

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
}

func SuccessNotification(message string) Notification {
	return Notification{Kind: NotificationSuccess, Message: message}
}

func ErrorNotification(message string) Notification {
	return Notification{Kind: NotificationError, Message: message}
}
