package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Verb is the first word of a callback token.
type Verb string

const (
	VerbEvents         Verb = "events"
	VerbAdmin          Verb = "admin"
	VerbListEvents     Verb = "list-event"
	VerbChangeEvent    Verb = "change-event"
	VerbRegister       Verb = "register"
	VerbUnregister     Verb = "unregister"
	VerbAddEvent       Verb = "add-event"
	VerbAddMessage     Verb = "add-message"
	VerbDelMessage     Verb = "del-message"
	VerbAddListMessage Verb = "add-emessage"
	VerbDelListMessage Verb = "del-emessage"
	VerbDeleteOld      Verb = "delete-old"
	VerbQRCode         Verb = "qrcode"
	VerbExport         Verb = "export"
	VerbSettings       Verb = "settings"
	VerbAddChannel     Verb = "add-channel"
)

// EventAction is the optional sub-verb of change-event.
type EventAction string

const (
	ActionShow       EventAction = ""
	ActionName       EventAction = "name"
	ActionDate       EventAction = "date"
	ActionTime       EventAction = "time"
	ActionCapacity   EventAction = "capacity"
	ActionMessage    EventAction = "message"
	ActionAddUser    EventAction = "add"
	ActionRemove     EventAction = "remove"
	ActionRemoveUser EventAction = "remove-user"
	ActionHidden     EventAction = "hidden"
	ActionDelete     EventAction = "delete"
)

// verbs maps every known verb to whether it carries a numeric id.
var verbs = map[Verb]bool{
	VerbEvents:         true,
	VerbAdmin:          true,
	VerbListEvents:     true,
	VerbChangeEvent:    true,
	VerbRegister:       true,
	VerbUnregister:     true,
	VerbAddEvent:       true,
	VerbAddMessage:     true,
	VerbDelMessage:     true,
	VerbAddListMessage: true,
	VerbDelListMessage: true,
	VerbDeleteOld:      true,
	VerbQRCode:         true,
	VerbExport:         true,
	VerbSettings:       false,
	VerbAddChannel:     false,
}

var eventActions = map[EventAction]bool{
	ActionName:       true,
	ActionDate:       true,
	ActionTime:       true,
	ActionCapacity:   true,
	ActionMessage:    true,
	ActionAddUser:    true,
	ActionRemove:     true,
	ActionRemoveUser: true,
	ActionHidden:     true,
	ActionDelete:     true,
}

// Command is a parsed callback token "<verb> <id> [<action> [<arg>]]".
type Command struct {
	Verb   Verb
	ID     int
	Action EventAction
	Arg    string
}

// ParseCommand parses callback data. Anything it does not fully understand
// yields ErrUnknownCommand.
func ParseCommand(data string) (Command, error) {
	fields := strings.Fields(data)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty", ErrUnknownCommand)
	}
	cmd := Command{Verb: Verb(fields[0])}
	hasID, ok := verbs[cmd.Verb]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, data)
	}
	if !hasID {
		if len(fields) != 1 {
			return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, data)
		}
		return cmd, nil
	}
	if len(fields) < 2 {
		return Command{}, fmt.Errorf("%w: %q has no id", ErrUnknownCommand, data)
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil || id <= 0 {
		return Command{}, fmt.Errorf("%w: %q has a bad id", ErrUnknownCommand, data)
	}
	cmd.ID = id

	rest := fields[2:]
	if cmd.Verb != VerbChangeEvent {
		if len(rest) != 0 {
			return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, data)
		}
		return cmd, nil
	}
	if len(rest) == 0 {
		return cmd, nil
	}
	cmd.Action = EventAction(rest[0])
	if !eventActions[cmd.Action] {
		return Command{}, fmt.Errorf("%w: %q has unknown action", ErrUnknownCommand, data)
	}
	switch {
	case cmd.Action == ActionRemoveUser && len(rest) == 2:
		cmd.Arg = rest[1]
	case cmd.Action != ActionRemoveUser && len(rest) == 1:
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, data)
	}
	return cmd, nil
}

// String encodes the command back into callback data.
func (c Command) String() string {
	if !verbs[c.Verb] {
		return string(c.Verb)
	}
	s := string(c.Verb) + " " + strconv.Itoa(c.ID)
	if c.Action != ActionShow {
		s += " " + string(c.Action)
	}
	if c.Arg != "" {
		s += " " + c.Arg
	}
	return s
}

// IsAdminOnly reports whether the command changes channel or event data.
func (c Command) IsAdminOnly() bool {
	switch c.Verb {
	case VerbEvents, VerbRegister, VerbUnregister:
		return false
	}
	return true
}

func cmdData(verb Verb, id int) string {
	return Command{Verb: verb, ID: id}.String()
}

func eventData(id int, action EventAction) string {
	return Command{Verb: VerbChangeEvent, ID: id, Action: action}.String()
}
