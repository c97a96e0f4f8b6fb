package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"token-lifecycle-server/internal/model"
	"token-lifecycle-server/internal/ports"
)

const maxMediaTitleLength = 512

// MediaListService : избранное или watch list текущего пользователя.
// Пользователь определяется по username из access токена.
type MediaListService struct {
	name  string
	users ports.UserRepository
	items ports.MediaListRepository
}

func NewMediaListService(name string, users ports.UserRepository, items ports.MediaListRepository) *MediaListService {
	return &MediaListService{name: name, users: users, items: items}
}

func (s *MediaListService) List(ctx context.Context, username, mediaType string) ([]model.MediaItem, error) {
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))

	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	items, err := s.items.List(ctx, user.ID, mediaType)
	if err != nil {
		return nil, asInfrastructure(s.name+".list", username, err)
	}
	return items, nil
}

func (s *MediaListService) Add(ctx context.Context, username string, item model.MediaItem) (*model.MediaItem, error) {
	if err := validateMediaKey(item.MediaID, item.MediaType); err != nil {
		return nil, fmt.Errorf("[MediaListService] %w: %w", model.ErrValidation, err)
	}
	item.Title = strings.TrimSpace(item.Title)
	if len([]rune(item.Title)) > maxMediaTitleLength {
		return nil, fmt.Errorf("[MediaListService] %w: название не должно превышать %d символов", model.ErrValidation, maxMediaTitleLength)
	}

	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}
	item.UserID = user.ID

	created, err := s.items.Add(ctx, &item)
	if err != nil {
		if errors.Is(err, model.ErrMediaAlreadyListed) {
			return nil, err
		}
		return nil, asInfrastructure(s.name+".add", username, err)
	}
	return created, nil
}

func (s *MediaListService) Remove(ctx context.Context, username string, mediaID int, mediaType string) error {
	if err := validateMediaKey(mediaID, mediaType); err != nil {
		return fmt.Errorf("[MediaListService] %w: %w", model.ErrValidation, err)
	}

	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return err
	}

	if err := s.items.Remove(ctx, user.ID, mediaID, mediaType); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("[MediaListService] запись не найдена: %w", err)
		}
		return asInfrastructure(s.name+".remove", username, err)
	}
	return nil
}

func (s *MediaListService) Contains(ctx context.Context, username string, mediaID int, mediaType string) (bool, error) {
	if err := validateMediaKey(mediaID, mediaType); err != nil {
		return false, fmt.Errorf("[MediaListService] %w: %w", model.ErrValidation, err)
	}

	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return false, err
	}

	ok, err := s.items.Contains(ctx, user.ID, mediaID, mediaType)
	if err != nil {
		return false, asInfrastructure(s.name+".contains", username, err)
	}
	return ok, nil
}

// resolveUser : токен мог пережить удаление пользователя, тогда model.ErrNotFound
func (s *MediaListService) resolveUser(ctx context.Context, username string) (*model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("[MediaListService] пользователь не найден: %w", err)
		}
		return nil, asInfrastructure(s.name+".find_user", username, err)
	}
	return user, nil
}

func validateMediaKey(mediaID int, mediaType string) error {
	if !model.ValidMediaType(mediaType) {
		return fmt.Errorf("mediaType должен быть %q или %q", model.MediaMovie, model.MediaTV)
	}
	if mediaID <= 0 {
		return fmt.Errorf("mediaId должен быть положительным")
	}
	return nil
}
