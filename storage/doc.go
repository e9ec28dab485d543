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


// Package storage provides the storage abstraction layer for recall.
//
// This package defines the ItemRepository interface that decouples the
// retrieval engine and ingestion pipeline from the storage implementation.
// It allows for different storage backends (BadgerDB, in-memory, etc.)
// to be used interchangeably.
//
// # Constructor Return Type Pattern
//
// Public backend constructors return the storage.ItemRepository interface
// to enforce abstraction and enable multiple storage backend implementations:
//
//	repo, err := badger.NewItemRepository(backend)  // returns storage.ItemRepository
//
// Internal package constructors may return concrete types since they're
// only used within the implementation package.
//
// # Ownership Model
//
// Every item belongs to exactly one owner. All read paths used by the
// retrieval engine are owner-scoped: FindByOwner and GetOwnedItem never
// return another owner's items. Cross-owner reads (GetItemsByDateRange)
// exist only for maintenance tooling.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation
// and timeout support.
package storage
