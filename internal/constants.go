/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent = "pgnfetch/0.3.0 (+https://github.com/mikeb26/pgnfetch)"
	// used when --cachebucket isn't given; an unreachable bucket just means
	// an in-memory cache
	DefaultCacheBucket = "pgnfetch-webcache"
	PgnContentType     = "application/x-chess-pgn"
)
