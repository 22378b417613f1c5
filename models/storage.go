// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignedURLRequest asks the storage gateway for a fetchable URL of an object.
type SignedURLRequest struct {
	Key string `json:"key"`

	// Level is the access level prefix of the object ("public", "protected",
	// "private").
	Level string `json:"level"`

	// Expires is the URL lifetime in seconds.
	Expires int64 `json:"expires"`
}

// SignedURLResponse is returned by the storage gateway for a [SignedURLRequest].
type SignedURLResponse struct {
	URL string `json:"url"`
}
