// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache provides a small generic LRU cache.
//
//	c := cache.New[float64, *text.Face](4)
//	face, err := c.GetOrCreate(16, func() (*text.Face, error) {
//	    return text.NewFace(src, 16)
//	})
//
// Cache is not safe for concurrent use; it is owned by a single State.
package cache
