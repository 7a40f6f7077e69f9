package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ChannelMessage selects one of the two optional messages of a channel.
type ChannelMessage int

const (
	// MessageWelcome is sent after a user joins through the deep link.
	MessageWelcome ChannelMessage = iota
	// MessageEventList is shown above the event list.
	MessageEventList
)

// CreateChannel creates a channel administered by creator with fresh join tokens.
func (r *Registrar) CreateChannel(ctx context.Context, name, creator string) (*Channel, error) {
	name, err := ValidateName(name)
	if err != nil {
		return nil, err
	}
	if creator == "" {
		return nil, ErrNoUsername
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	ch := &Channel{
		Name:       name,
		Admins:     []string{creator},
		Token:      uuid.NewString(),
		AdminToken: uuid.NewString(),
	}
	if err := r.repo.InsertChannel(ctx, ch); err != nil {
		return nil, err
	}
	log.Info().Int("channel_id", ch.ID).Str("name", ch.Name).Str("user", creator).Msg("Channel created")
	return ch, nil
}

// JoinChannel adds username to the channel owning token. The admin token makes
// the user an admin, the user token a member. It reports whether the user was
// added, false meaning they already were, and whether the token was the admin one.
func (r *Registrar) JoinChannel(ctx context.Context, token, username string) (ch *Channel, added, admin bool, err error) {
	if username == "" {
		return nil, false, false, ErrNoUsername
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	ch, admin, err = r.repo.FindChannelByToken(ctx, token)
	if err != nil {
		return nil, false, false, err
	}
	if admin {
		if ch.HasAdmin(username) {
			return ch, false, true, nil
		}
		ch.Admins = append(ch.Admins, username)
	} else {
		if ch.HasUser(username) {
			return ch, false, false, nil
		}
		ch.RegisteredUsers = append(ch.RegisteredUsers, username)
	}
	if err := r.repo.UpdateChannel(ctx, ch); err != nil {
		return nil, false, false, err
	}
	log.Info().Int("channel_id", ch.ID).Str("user", username).Bool("admin", admin).Msg("User joined channel")
	return ch, true, admin, nil
}

// IsSuperAdmin reports whether username may manage every channel.
func (r *Registrar) IsSuperAdmin(username string) bool {
	return username != "" && r.superAdmin != nil && r.superAdmin(username)
}

// IsChannelAdmin reports whether username may manage the channel.
func (r *Registrar) IsChannelAdmin(ctx context.Context, channelID int, username string) (bool, error) {
	if username == "" {
		return false, nil
	}
	if r.IsSuperAdmin(username) {
		return true, nil
	}
	ch, err := r.repo.GetChannel(ctx, channelID)
	if err != nil {
		return false, err
	}
	return ch.HasAdmin(username), nil
}

// UserChannels returns the channels username joined and the channels they
// administer, both in id order.
func (r *Registrar) UserChannels(ctx context.Context, username string) (member, admin []Channel, err error) {
	channels, err := r.repo.ListChannels(ctx)
	if err != nil {
		return nil, nil, err
	}
	for _, ch := range channels {
		if ch.HasUser(username) {
			member = append(member, ch)
		}
		if ch.HasAdmin(username) {
			admin = append(admin, ch)
		}
	}
	return member, admin, nil
}

// SetChannelMessage stores blobID as the channel message of the given kind and
// returns the blob id it replaced, if any. An empty blobID clears the message.
func (r *Registrar) SetChannelMessage(ctx context.Context, channelID int, kind ChannelMessage, blobID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch, err := r.repo.GetChannel(ctx, channelID)
	if err != nil {
		return "", err
	}
	var old string
	switch kind {
	case MessageWelcome:
		old, ch.WelcomeMessage = ch.WelcomeMessage, blobID
	case MessageEventList:
		old, ch.EventListMessage = ch.EventListMessage, blobID
	default:
		return "", fmt.Errorf("unknown channel message kind %d", kind)
	}
	if err := r.repo.UpdateChannel(ctx, ch); err != nil {
		return "", err
	}
	return old, nil
}

// ClearChannelMessage removes the channel message of the given kind and
// returns its blob id, empty when none was set.
func (r *Registrar) ClearChannelMessage(ctx context.Context, channelID int, kind ChannelMessage) (string, error) {
	return r.SetChannelMessage(ctx, channelID, kind, "")
}
