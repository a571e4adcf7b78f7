// SPDX-License-Identifier: MIT
// Package: halton/permutation
//
// export_test.go — white-box hooks for permutation_test.

package permutation

// CacheLen_TestOnly returns how many tables the shared cache holds.
func CacheLen_TestOnly() int {
	shared.mu.RLock()
	defer shared.mu.RUnlock()
	return len(shared.tables)
}
