// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrImagesDisabled = errors.New("images are disabled: no storage gateway configured")
)
