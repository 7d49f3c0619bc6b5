package api

import (
	"context"
	"io"
	"time"

	"github.com/crusadia/journal/internal/platform"
	"github.com/crusadia/journal/internal/services"
)

const contextUserKey = "journal_user_id"

// TokenVerifier resolves the platform identity token into a member user id.
type TokenVerifier interface {
	VerifyUserToken(token string) (string, error)
}

type ChannelDirectory interface {
	ListChannels(ctx context.Context) ([]platform.Channel, error)
}

type UserDirectory interface {
	GetUser(ctx context.Context, userID string) (platform.UserInfo, error)
}

type MediaStore interface {
	UploadMedia(ctx context.Context, filename string, content io.Reader) (string, error)
}

type Handler struct {
	journal   *services.JournalService
	verifier  TokenVerifier
	directory ChannelDirectory
	users     UserDirectory
	media     MediaStore
	location  *time.Location
	now       func() time.Time
}

func NewHandler(journal *services.JournalService, verifier TokenVerifier, directory ChannelDirectory, users UserDirectory, media MediaStore, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		journal:   journal,
		verifier:  verifier,
		directory: directory,
		users:     users,
		media:     media,
		location:  location,
		now:       time.Now,
	}
}

// WithClock replaces the wall clock used for week metadata and window state.
func (handler *Handler) WithClock(clock func() time.Time) *Handler {
	handler.now = clock
	return handler
}
