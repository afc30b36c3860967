package common

const (
	KEY_HISTORY     = "history:%s:%d"
	KEY_EXPIRATIONS = "expirations:%s"
	KEY_CHAIN       = "chain:%s:%s"
)
