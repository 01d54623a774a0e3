package api

import "github.com/quibble-tools/quibble/api/apitype"

type Sender interface {
	SendToTopic(topic Topic)
	SendCommandToTopic(topic Topic, command apitype.Command)
	SendError(message string, err error)
}

type ErrorCommand struct {
	Message string

	apitype.NotThrottled
}
