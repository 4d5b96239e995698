// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"fmt"
	"strings"
)

type topicsDoc struct {
	Topics []string `yaml:"topics"`
}

// Topics returns the subscribed topics in the order they were added.
func (s *Store) Topics() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.topics()
}

func (s *Store) topics() ([]string, error) {
	var doc topicsDoc
	if err := s.load(topicsFile, &doc); err != nil {
		return nil, err
	}
	return doc.Topics, nil
}

// AddTopic subscribes to topic. Surrounding whitespace is trimmed and a
// topic that differs from an existing one only by case is a duplicate.
func (s *Store) AddTopic(topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", fmt.Errorf("topic: %w", ErrEmpty)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	topics, err := s.topics()
	if err != nil {
		return "", err
	}
	for _, t := range topics {
		if strings.EqualFold(t, topic) {
			return "", fmt.Errorf("topic %q: %w", t, ErrDuplicate)
		}
	}
	topics = append(topics, topic)
	if err := s.save(topicsFile, topicsDoc{Topics: topics}); err != nil {
		return "", err
	}
	return topic, nil
}

// RemoveTopic unsubscribes from topic. The name must match exactly after
// trimming.
func (s *Store) RemoveTopic(topic string) error {
	topic = strings.TrimSpace(topic)

	s.mu.Lock()
	defer s.mu.Unlock()

	topics, err := s.topics()
	if err != nil {
		return err
	}
	for i, t := range topics {
		if t == topic {
			topics = append(topics[:i], topics[i+1:]...)
			return s.save(topicsFile, topicsDoc{Topics: topics})
		}
	}
	return fmt.Errorf("topic %q: %w", topic, ErrNotFound)
}
