package narration

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

// discord rejects longer messages
const maxMessageLength = 2000

// MessageSender is the part of *discordgo.Session used to post reports
type MessageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Discord buffers the lines of a report and posts them to a channel on Flush
type Discord struct {
	session   MessageSender
	channelID string
	lines     []string
}

func NewDiscord(session MessageSender, channelID string) *Discord {
	return &Discord{
		session:   session,
		channelID: channelID,
	}
}

func (d *Discord) Say(line string) {
	d.lines = append(d.lines, line)
}

// Flush posts the buffered report, split into as few messages as the length
// limit allows. The buffer is cleared even on error.
func (d *Discord) Flush(ctx context.Context) error {
	lines := d.lines
	d.lines = nil

	for _, msg := range splitMessages(lines) {
		if _, err := d.session.ChannelMessageSend(d.channelID, msg, discordgo.WithContext(ctx)); err != nil {
			return fmt.Errorf("cannot push message: %w", err)
		}
	}
	return nil
}

func splitMessages(lines []string) []string {
	var (
		msgs    []string
		current strings.Builder
	)

	for _, line := range lines {
		line = truncate(line, maxMessageLength)

		if current.Len() > 0 && current.Len()+1+len(line) > maxMessageLength {
			msgs = append(msgs, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte('\n')
		}
		current.WriteString(line)
	}

	if current.Len() > 0 {
		msgs = append(msgs, current.String())
	}
	return msgs
}

// truncate cuts s to at most n bytes without splitting a rune
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
