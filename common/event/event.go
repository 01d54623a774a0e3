package event

import (
	"fmt"

	messagebus "github.com/vardius/message-bus"

	"github.com/quibble-tools/quibble/api"
	"github.com/quibble-tools/quibble/api/apitype"
	"github.com/quibble-tools/quibble/common/logger"
)

type Broker struct {
	bus messagebus.MessageBus

	api.Sender
}

func InitBus(queueSize int) *Broker {
	return &Broker{
		bus: messagebus.New(queueSize),
	}
}

// InitDevNullBus returns a broker without any subscribers. Useful for
// services whose events nobody should observe, e.g. in tests.
func InitDevNullBus() *Broker {
	return &Broker{
		bus: messagebus.New(1),
	}
}

func (s *Broker) Subscribe(topic api.Topic, fn interface{}) {
	if err := s.bus.Subscribe(string(topic), fn); err != nil {
		logger.Error.Panic("Could not subscribe to topic ", topic)
	}
}

func (s *Broker) SendToTopic(topic api.Topic) {
	logger.Trace.Printf("Sending to '%s'", topic)
	s.bus.Publish(string(topic))
}

func (s *Broker) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	logger.Trace.Printf("Sending command to '%s'", topic)
	s.bus.Publish(string(topic), command)
}

func (s *Broker) SendError(message string, err error) {
	formattedMessage := ""
	if err != nil {
		formattedMessage = fmt.Sprintf("%s\n%s", message, err.Error())
	} else {
		formattedMessage = message
	}
	logger.Error.Printf("Error: %s", formattedMessage)
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: message})
}
