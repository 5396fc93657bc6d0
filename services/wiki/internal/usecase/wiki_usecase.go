package usecase

import (
	"fmt"
	"math/rand"
	"strings"

	"campushub/pkg/apperrors"
	"campushub/pkg/logger"
	"campushub/services/wiki/internal/entity"
	"campushub/services/wiki/internal/repo/entrystore"

	"github.com/russross/blackfriday/v2"
)

var (
	ErrEntryNotFound = fmt.Errorf("%w: entry not found", apperrors.ErrNotFound)
	ErrEntryExists   = fmt.Errorf("%w: an entry with this title already exists", apperrors.ErrValidation)
	ErrTitleRequired = fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	ErrNoEntries     = fmt.Errorf("%w: no entries yet", apperrors.ErrNotFound)
)

type WikiUseCase interface {
	ListEntries() ([]string, error)
	GetEntry(title string) (*entity.Entry, error)
	CreateEntry(title, content string) (*entity.Entry, error)
	EditEntry(title, content string) (*entity.Entry, error)
	Search(query string) (*entity.SearchResult, error)
	RandomEntry() (string, error)
}

type wikiUseCase struct {
	store  entrystore.EntryStore
	logger *logger.Logger
}

func NewWikiUseCase(store entrystore.EntryStore, logger *logger.Logger) WikiUseCase {
	return &wikiUseCase{
		store:  store,
		logger: logger,
	}
}

func (uc *wikiUseCase) ListEntries() ([]string, error) {
	titles, err := uc.store.List()
	if err != nil {
		uc.logger.Error("Failed to list entries: %v", err)
		return nil, fmt.Errorf("%w: failed to list entries", apperrors.ErrInternal)
	}
	return titles, nil
}

func (uc *wikiUseCase) GetEntry(title string) (*entity.Entry, error) {
	// Lookup is case-insensitive but the stored casing wins for display.
	canonical, err := uc.findTitle(title)
	if err != nil {
		return nil, err
	}
	if canonical == "" {
		return nil, ErrEntryNotFound
	}

	content, ok, err := uc.store.Get(canonical)
	if err != nil {
		uc.logger.Error("Failed to get entry %q: %v", canonical, err)
		return nil, fmt.Errorf("%w: failed to load entry", apperrors.ErrInternal)
	}
	if !ok {
		return nil, ErrEntryNotFound
	}

	return &entity.Entry{
		Title:   canonical,
		Content: content,
		HTML:    string(blackfriday.Run([]byte(content))),
	}, nil
}

func (uc *wikiUseCase) CreateEntry(title, content string) (*entity.Entry, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	existing, err := uc.findTitle(title)
	if err != nil {
		return nil, err
	}
	if existing != "" {
		return nil, ErrEntryExists
	}

	if err := uc.store.Save(title, content); err != nil {
		uc.logger.Error("Failed to save entry %q: %v", title, err)
		return nil, fmt.Errorf("%w: failed to save entry", apperrors.ErrInternal)
	}

	return &entity.Entry{Title: title, Content: content}, nil
}

func (uc *wikiUseCase) EditEntry(title, content string) (*entity.Entry, error) {
	canonical, err := uc.findTitle(title)
	if err != nil {
		return nil, err
	}
	if canonical == "" {
		return nil, ErrEntryNotFound
	}

	if err := uc.store.Save(canonical, content); err != nil {
		uc.logger.Error("Failed to save entry %q: %v", canonical, err)
		return nil, fmt.Errorf("%w: failed to save entry", apperrors.ErrInternal)
	}

	return &entity.Entry{Title: canonical, Content: content}, nil
}

func (uc *wikiUseCase) Search(query string) (*entity.SearchResult, error) {
	titles, err := uc.store.List()
	if err != nil {
		uc.logger.Error("Failed to list entries: %v", err)
		return nil, fmt.Errorf("%w: search failed", apperrors.ErrInternal)
	}

	lowered := strings.ToLower(strings.TrimSpace(query))

	// An exact match short-circuits to a redirect.
	for _, title := range titles {
		if strings.ToLower(title) == lowered {
			return &entity.SearchResult{Exact: true, Title: title, Matches: []string{title}}, nil
		}
	}

	matches := []string{}
	for _, title := range titles {
		if strings.Contains(strings.ToLower(title), lowered) {
			matches = append(matches, title)
		}
	}

	return &entity.SearchResult{Matches: matches}, nil
}

func (uc *wikiUseCase) RandomEntry() (string, error) {
	titles, err := uc.store.List()
	if err != nil {
		uc.logger.Error("Failed to list entries: %v", err)
		return "", fmt.Errorf("%w: failed to list entries", apperrors.ErrInternal)
	}
	if len(titles) == 0 {
		return "", ErrNoEntries
	}
	return titles[rand.Intn(len(titles))], nil
}

// findTitle returns the stored casing of title, or "" when absent.
func (uc *wikiUseCase) findTitle(title string) (string, error) {
	titles, err := uc.store.List()
	if err != nil {
		uc.logger.Error("Failed to list entries: %v", err)
		return "", fmt.Errorf("%w: failed to list entries", apperrors.ErrInternal)
	}

	lowered := strings.ToLower(title)
	for _, t := range titles {
		if strings.ToLower(t) == lowered {
			return t, nil
		}
	}
	return "", nil
}
