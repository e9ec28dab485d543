// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"time"
)

// ValidateItem validates an Item according to domain rules.
//
// Validation rules:
//   - OwnerId must be set
//   - Type must be a known ItemType
//   - At least one of Title, Content, Link must be non-empty
//   - CreatedAt must not be in the future
//
// NOT validated (populated by the ingestion pipeline):
//   - Summary, Keywords, Embedding (empty until processors run)
//   - ID (0 is valid from database sequences)
func ValidateItem(item *Item) error {
	if item == nil {
		return fmt.Errorf("%w: item is nil", ErrInvalidItem)
	}

	if item.OwnerId == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidItem, ErrMissingOwner)
	}

	if err := ValidateItemType(item.Type); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidItem, err)
	}

	if item.Title == "" && item.Content == "" && item.Link == "" {
		return fmt.Errorf("%w: %w", ErrInvalidItem, ErrEmptyItem)
	}

	if !item.CreatedAt.IsZero() && !IsValidTimestamp(item.CreatedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidItem, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateItemType validates that an ItemType has a valid value.
func ValidateItemType(t ItemType) error {
	switch t {
	case ItemTypeNote, ItemTypeWebsite, ItemTypeSocial, ItemTypeVideo:
		return nil
	default:
		return fmt.Errorf("%w: value %d", ErrInvalidItemType, t)
	}
}

// ValidateStatus validates that a ProcessingStatus has a valid value.
func ValidateStatus(s ProcessingStatus) error {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("%w: value %d", ErrInvalidStatus, s)
	}
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
