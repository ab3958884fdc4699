package netmock

//go:generate go tool mockgen -typed=false -package netmock -destination conn.go github.com/ghettovoice/httphead/response Conn
