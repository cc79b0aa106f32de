package testutil

import (
	"strings"

	tele "gopkg.in/telebot.v3"
)

// Sent is one message sent or edited through a FakeContext
type Sent struct {
	What interface{}
	Opts []interface{}
}

// FakeContext records replies of a handler. Methods that are not
// overridden panic through the nil embedded interface.
type FakeContext struct {
	tele.Context

	User     *tele.User
	Payload  string
	MsgText  string
	Cb       *tele.Callback
	EditErr  error
	SendErr  error
	Sent     []Sent
	Edited   []Sent
	Answered []*tele.CallbackResponse
}

// NewFakeCommand builds a context for a command message like "/add cat кот"
func NewFakeCommand(userID int64, text string) *FakeContext {
	payload := ""
	if i := strings.Index(text, " "); i >= 0 {
		payload = text[i+1:]
	}
	return &FakeContext{
		User:    &tele.User{ID: userID, FirstName: "Ivan"},
		MsgText: text,
		Payload: payload,
	}
}

// NewFakeCallback builds a context for a pressed inline button
func NewFakeCallback(userID int64, unique, data string) *FakeContext {
	return &FakeContext{
		User: &tele.User{ID: userID, FirstName: "Ivan"},
		Cb:   &tele.Callback{ID: "cb", Unique: unique, Data: data},
	}
}

func (c *FakeContext) Sender() *tele.User {
	return c.User
}

func (c *FakeContext) Text() string {
	return c.MsgText
}

func (c *FakeContext) Callback() *tele.Callback {
	return c.Cb
}

func (c *FakeContext) Args() []string {
	if c.Cb != nil {
		return nil
	}
	return strings.Fields(c.Payload)
}

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	c.Sent = append(c.Sent, Sent{What: what, Opts: opts})
	return c.SendErr
}

func (c *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	if c.EditErr != nil {
		return c.EditErr
	}
	c.Edited = append(c.Edited, Sent{What: what, Opts: opts})
	return nil
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	c.Answered = append(c.Answered, resp...)
	return nil
}

// LastText returns the text of the last sent message
func (c *FakeContext) LastText() string {
	if len(c.Sent) == 0 {
		return ""
	}
	text, _ := c.Sent[len(c.Sent)-1].What.(string)
	return text
}
