package entrystore

import (
	"strings"

	"campushub/pkg/storage"
)

const entrySuffix = ".md"

// EntryStore persists wiki entries as title -> markdown content.
type EntryStore interface {
	List() ([]string, error)
	Get(title string) (string, bool, error)
	Save(title, content string) error
}

type s3EntryStore struct {
	client *storage.Client
}

// NewS3EntryStore stores each entry as a markdown object in the wiki bucket,
// keyed by the entry title.
func NewS3EntryStore(client *storage.Client) EntryStore {
	return &s3EntryStore{client: client}
}

func (s *s3EntryStore) List() ([]string, error) {
	keys, err := s.client.ListKeys("")
	if err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(keys))
	for _, key := range keys {
		if strings.HasSuffix(key, entrySuffix) {
			titles = append(titles, strings.TrimSuffix(key, entrySuffix))
		}
	}
	return titles, nil
}

func (s *s3EntryStore) Get(title string) (string, bool, error) {
	return s.client.GetText(title + entrySuffix)
}

func (s *s3EntryStore) Save(title, content string) error {
	return s.client.PutText(title+entrySuffix, content, "text/markdown")
}
