// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources. For every field the first
// source that sets a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. A .env file (path from DOTENV or -env, default ".env" when present)
//  4. JSON config file (path from CONFIG or -c / -config)
//  5. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the terminal client.
package config
