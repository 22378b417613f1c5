// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the notes client and the web front server.
//
// Configuration is assembled from several sources. A field keeps the value of
// the first source that sets it:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetClientConfig] for the terminal client and
// [GetServerConfig] for the web front server.
package config
